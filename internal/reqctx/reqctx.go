// internal/reqctx/reqctx.go
package reqctx

import "context"

type key int

const (
	keyRequestID key = iota
	keySessionID
	keyAuthToken
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRequestID).(string)
	return v, ok
}

func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keySessionID, id)
}

func GetSessionID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keySessionID).(string)
	return v, ok
}

// WithAuthToken attaches the visitor's backend token; the gateway forwards it as a bearer token.
func WithAuthToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, keyAuthToken, token)
}

func GetAuthToken(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyAuthToken).(string)
	return v, ok && v != ""
}
