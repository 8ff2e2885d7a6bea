// Package app wires the application together: logger, catalog loader,
// forest construction, planning, and plan rendering.
package app
