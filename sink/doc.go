// Package sink persists feature tables.
//
// Two destinations are provided:
//
//	JSONSink    one <graph>.json per graph, next to the graph file
//	SQLiteSink  one database for the whole run (modernc.org/sqlite, no cgo)
//
// Non-finite scores are written as JSON null / SQL NULL.
package sink
