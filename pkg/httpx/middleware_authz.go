package httpx

import "net/http"

// RequireAnyRole lets the request through when the caller holds at least one
// of the listed roles. Board roles are a fixed set, so exact string match is
// enough.
func RequireAnyRole(required ...string) Middleware {
	want := make(map[string]struct{}, len(required))
	for _, r := range required {
		want[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := want[roleFromCtx(r.Context())]; ok {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_role"`)
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("insufficient_role"))
		})
	}
}
