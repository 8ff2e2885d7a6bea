package config

import "context"

// Loader abstracts the configuration format. Implementations parse one or
// more paths (files or directories) and translate whatever they find into
// the unified Model.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Model, error)
}
