package auth

import (
	"context"

	"github.com/fekuna/omnipos-storefront/pkg/middleware"
	"google.golang.org/grpc/metadata"
)

// GetSessionID returns the shopper session carried by ctx, or "" when the caller has none yet.
func GetSessionID(ctx context.Context) string {
	if val, ok := ctx.Value(middleware.SessionIDKey).(string); ok {
		return val
	}

	// Fallback to metadata
	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get("x-session-id"); len(val) > 0 {
			return val[0]
		}
	}
	return ""
}

// GetLocale returns the preferred language, "" when unset.
func GetLocale(ctx context.Context) string {
	if val, ok := ctx.Value(middleware.LocaleKey).(string); ok {
		return val
	}
	return ""
}
