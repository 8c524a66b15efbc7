// Package telemetry exposes pipeline timings and counts as Prometheus
// metrics on a private registry.
//
// The pipeline is a batch job, so nothing is served over HTTP; the registry
// is written once per run in the node-exporter textfile format (see
// Recorder.WriteTextfile).
package telemetry
