// Package http provides HTTP middleware and handlers for access key operations.
package http

import (
	"context"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
)

// actorKey is a context key type for storing the authenticated key.
type actorKey struct{}

// WithActor stores the authenticated key in the context. Called by the
// authentication middleware after a successful username/secret check.
func WithActor(ctx context.Context, key *accessDomain.Key) context.Context {
	return context.WithValue(ctx, actorKey{}, key)
}

// GetActor retrieves the authenticated key from the context.
// Returns (key, true) if present, or (nil, false) if no key was set.
func GetActor(ctx context.Context) (*accessDomain.Key, bool) {
	key, ok := ctx.Value(actorKey{}).(*accessDomain.Key)
	return key, ok
}
