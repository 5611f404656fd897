// Package identity carries the authenticated user id through the request
// context. Only the auth middleware sets it; handlers read it. Nothing
// client-supplied ever reaches this value.
package identity

import "context"

type ctxKey struct{}

// WithUserID returns a copy of ctx with the authenticated user id attached.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserID extracts the authenticated user id from ctx. Returns "" if absent.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
