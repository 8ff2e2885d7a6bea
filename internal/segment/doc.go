// Package segment tracks, per dataset segment, which layouts have been
// materialized and at what row count. It supplies the build-context side
// of the planner's cost oracle.
//
// Two implementations are provided: Memory for tests and single-process
// dry runs, and Store, a DuckDB-backed variant for build state that must
// survive the process.
package segment
