package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID   ctxKey = "user_id"
	CtxKeyUserName ctxKey = "user_name"
	CtxKeyRole     ctxKey = "role"
	CtxKeySession  ctxKey = "session_id"
)

// UserIDFromCtx returns the authenticated user's id, or "" when the request
// was not authenticated.
func UserIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// UserNameFromCtx returns the authenticated user's display name.
func UserNameFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserName).(string); ok {
		return v
	}
	return ""
}

func roleFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRole).(string); ok {
		return v
	}
	return ""
}
