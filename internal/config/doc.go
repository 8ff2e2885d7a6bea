// Package config defines the format-agnostic catalog model and the Loader
// interface that concrete format packages (internal/hcl) implement.
package config
