// Package builder assembles a core.Graph incrementally.
//
// A Builder registers vertices (in order) and directed edges one at a time,
// rejecting duplicates and edges from unknown sources as they arrive, and
// then freezes the result with Build. Edge targets need not be registered:
// dependency files routinely point at classes outside the analysed project,
// and those targets become vertices at Build time, appended after all
// registered vertices in first-seen order.
//
// A Builder is single-owner state and is not safe for concurrent use. Build
// consumes it; every later call fails with ErrBuilderConsumed.
//
// AI-Hints:
//   - Register every vertex before adding edges out of it.
//   - Pass core options (WithKatzBeta, WithObserver, ...) to Build.
package builder
