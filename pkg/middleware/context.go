package middleware

import (
	"context"
	"net/http"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

type contextKey string

const (
	SessionIDKey contextKey = "session_id"
	LocaleKey    contextKey = "locale"

	SessionHeader = "X-Session-ID"
	sessionMDKey  = "x-session-id"
)

// Session copies the shopper session header and preferred language into the request context.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if id := r.Header.Get(SessionHeader); id != "" {
			ctx = context.WithValue(ctx, SessionIDKey, id)
		}
		if lang := r.Header.Get("Accept-Language"); lang != "" {
			ctx = context.WithValue(ctx, LocaleKey, lang)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ContextInterceptor does the same for unary gRPC calls, reading incoming metadata.
func ContextInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if v := md.Get(sessionMDKey); len(v) > 0 && v[0] != "" {
				ctx = context.WithValue(ctx, SessionIDKey, v[0])
			}
			if v := md.Get("accept-language"); len(v) > 0 && v[0] != "" {
				ctx = context.WithValue(ctx, LocaleKey, v[0])
			}
		}
		return handler(ctx, req)
	}
}
