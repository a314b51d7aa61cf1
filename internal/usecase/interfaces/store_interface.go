package interfaces

import "context"

// IStoreHealth reports whether the backing store answers.

type IStoreHealth interface {
	Ping(ctx context.Context) error
}
