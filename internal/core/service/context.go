package service

import "context"

type remoteIPKey struct{}

// WithRemoteIP attaches the client address to ctx for audit records.
func WithRemoteIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, remoteIPKey{}, ip)
}

// RemoteIPFromContext returns the address set by WithRemoteIP, or "".
func RemoteIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(remoteIPKey{}).(string)
	return ip
}
