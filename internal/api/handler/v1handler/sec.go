package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"qcscargo/internal/config"
	"qcscargo/pkg/controller"
	"qcscargo/pkg/domain"
	"qcscargo/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// CtxKey is the type of the context keys set by the security handler.
type CtxKey string

// PrincipalKey is the context key of the authenticated domain.Principal.
const PrincipalKey CtxKey = "principal"

// Claims are the JWT claims of an access token. The subject is the user ID.
type Claims struct {
	jwt.RegisteredClaims

	Role domain.Role `json:"role,omitempty"`
}

// SecHandlerOptions configures the bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key tokens are verified with.
	PublicKey string
}

// NewSecHandlerOptions builds SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates RS256 bearer tokens.
type SecHandler struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

// NewSecHandler parses the public key of opts.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{
		publicKey: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
	}, nil
}

// Authenticate verifies token and returns the principal it was issued to.
// Tokens without a role claim belong to customers.
func (s SecHandler) Authenticate(token string) (domain.Principal, error) {
	var claims Claims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}); err != nil {
		return domain.Principal{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := domain.ParseUserID(claims.Subject)
	if err != nil {
		return domain.Principal{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	role := claims.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if !role.Valid() {
		return domain.Principal{}, serrors.With(serrors.ErrUnauthorized, "unknown role %q", role)
	}

	return domain.Principal{UserID: userID, Role: role}, nil
}

// HandleBearerAuth authenticates the bearer token and stores the principal in
// the returned context.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	principal, err := s.Authenticate(token)
	if err != nil {
		return ctx, err
	}

	ctx = context.WithValue(ctx, PrincipalKey, principal)
	ctx = controller.AddAccessLogFields(ctx,
		zap.Stringer("user_id", principal.UserID),
		zap.String("role", string(principal.Role)))

	return ctx, nil
}

// bearerToken extracts the token of an "Authorization: Bearer" header.
func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}

	return strings.TrimSpace(token), true
}

// RequireAuth rejects requests without a valid bearer token.
func (s SecHandler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			controller.WriteError(r.Context(), w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), token)
		if err != nil {
			controller.WriteError(r.Context(), w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth authenticates the bearer token when one is sent. Anonymous
// requests pass through; an invalid token is still rejected.
func (s SecHandler) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), token)
		if err != nil {
			controller.WriteError(r.Context(), w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireStaff only lets staff and admins through. It must run after
// RequireAuth.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := GetPrincipalFromContext(r.Context())
		if !ok {
			controller.WriteError(r.Context(), w, serrors.KindOnly(serrors.ErrUnauthorized))

			return
		}
		if !principal.Role.IsStaff() {
			controller.WriteError(r.Context(), w, serrors.With(serrors.ErrForbidden, "staff only"))

			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetPrincipalFromContext returns the authenticated caller, if any.
func GetPrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(domain.Principal)

	return p, ok
}

// principalOrNil returns the caller of an optionally authenticated request.
func principalOrNil(ctx context.Context) *domain.Principal {
	if p, ok := GetPrincipalFromContext(ctx); ok {
		return &p
	}

	return nil
}

// mustPrincipal returns the caller of a request behind RequireAuth.
func mustPrincipal(ctx context.Context) domain.Principal {
	p, _ := GetPrincipalFromContext(ctx)

	return p
}
