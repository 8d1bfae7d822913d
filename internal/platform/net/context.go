// Package net carries request-scoped identity through contexts and builds the error envelope
// shared by middleware that writes before a handler runs
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type principalKey struct{}

// WithRequest stores reqID where chi's RequestID middleware would
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id, empty when none was assigned
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// WithPrincipal stores the authenticated subject, such as the admin token's owner
func WithPrincipal(ctx context.Context, subject string) context.Context {
	if subject == "" {
		return ctx
	}
	return context.WithValue(ctx, principalKey{}, subject)
}

// Principal returns the authenticated subject, empty for anonymous requests
func Principal(ctx context.Context) string {
	s, _ := ctx.Value(principalKey{}).(string)
	return s
}
