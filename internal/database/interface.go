package database

import "context"

// KeyValueStore is the persistent string store the history lives in.
type KeyValueStore interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}

var _ KeyValueStore = (*Database)(nil)
