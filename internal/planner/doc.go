// Package planner drives a spanning forest through a complete dry-run
// build cycle and reports the resulting materialization plan.
//
// It plays the role of the surrounding build engine: it seeds the root
// layer, simulates building each layer's layouts into a segment (using the
// catalog's row estimates as stand-ins for observed counts), lets the
// forest decide parent assignments for the layer, and then collects the
// decided parents' children as the next layer, until nothing remains.
package planner
