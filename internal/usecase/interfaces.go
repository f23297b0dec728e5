package usecase

import "context"

// KVStore is the durable storage substrate: an opaque key-value contract over
// whole-document text blobs. Get reports absence through its second return
// value; absence is a valid initial state, not an error.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// ChangeNotifier is told after every successful mutation so presentation
// surfaces can re-read instead of holding ambient state.
type ChangeNotifier interface {
	DataChanged()
}
