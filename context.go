package authgate

import "context"

type clientIPKey struct{}

// WithClientIP attaches the caller's IP address to ctx so the engine can
// throttle and audit by origin. Pass the address the transport actually
// saw; the engine does not parse X-Forwarded-For.
func WithClientIP(ctx context.Context, ip string) context.Context {
	if ip == "" {
		return ctx
	}
	return context.WithValue(ctx, clientIPKey{}, ip)
}

func clientIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}
