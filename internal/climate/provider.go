package climate

import "context"

// Loader abstracts the source of the dataset (a plain HTTP fetch in production).
type Loader interface {
	Name() string
	Load(ctx context.Context) (*Dataset, error)
}
