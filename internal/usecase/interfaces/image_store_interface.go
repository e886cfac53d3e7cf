package interfaces

import "context"

// IImageStore persists validated inspiration images and returns the stored
// reference kept on the budget.

type IImageStore interface {
	Save(ctx context.Context, name string, data []byte) (ref string, err error)
}
