package v1alpha1

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	grpcauth "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"google.golang.org/grpc/metadata"

	creaturev1alpha1 "github.com/KirkDiggler/creature-forge/api/creature/v1alpha1"
	"github.com/KirkDiggler/creature-forge/internal/entities"
	"github.com/KirkDiggler/creature-forge/internal/errors"
	"github.com/KirkDiggler/creature-forge/internal/orchestrators/auth"
)

type sessionContextKey struct{}

// publicMethods never look at the bearer token
var publicMethods = map[string]bool{
	"Register": true,
	"Login":    true,
}

// ContextWithSession returns ctx carrying the caller's session
func ContextWithSession(ctx context.Context, session *entities.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// SessionFromContext returns the caller's session, or nil for anonymous calls
func SessionFromContext(ctx context.Context) *entities.Session {
	session, _ := ctx.Value(sessionContextKey{}).(*entities.Session)
	return session
}

// AuthFunc resolves an optional bearer token into a session. Calls without
// an authorization header stay anonymous; a header with an unknown or
// malformed token is rejected.
func AuthFunc(service auth.Service) grpcauth.AuthFunc {
	return func(ctx context.Context) (context.Context, error) {
		if len(metadata.ValueFromIncomingContext(ctx, "authorization")) == 0 {
			return ctx, nil
		}

		token, err := grpcauth.AuthFromMD(ctx, "bearer")
		if err != nil {
			return nil, err
		}

		out, err := service.ResolveSession(ctx, &auth.ResolveSessionInput{Token: token})
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}

		return ContextWithSession(ctx, out.Session), nil
	}
}

// NeedsAuth selects the calls the auth interceptor runs on
func NeedsAuth(_ context.Context, callMeta interceptors.CallMeta) bool {
	return callMeta.Service != creaturev1alpha1.ServiceName || !publicMethods[callMeta.Method]
}
