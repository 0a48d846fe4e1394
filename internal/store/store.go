// Package store is the CLI's local persistence: a small sqlite key/value
// table that keeps the resume credentials (username and token) across
// restarts. The core session/stories packages never touch it.
package store

import "context"

// Repository is a key/value store for session metadata. Get returns
// ("", nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Keys used by the CLI.
const (
	KeyUsername = "username"
	KeyToken    = "token"
)
