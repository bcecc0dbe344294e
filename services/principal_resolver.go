package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/google/uuid"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/repository"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/utils"
)

// PrincipalResolver turns a bearer credential into the caller's identity.
// A resolver that does not recognise the credential returns ErrInvalidToken.
type PrincipalResolver interface {
	Resolve(ctx context.Context, token string) (*models.Principal, error)
}

// ════════════════════════════════════════════════════════════
// CMS admin tokens
// ════════════════════════════════════════════════════════════

type AdminTokenVerifier interface {
	VerifyAdminJWT(token string) (*AdminJWTClaims, error)
}

type SessionToucher interface {
	TouchSession(ctx context.Context, tokenHash string) (*models.AdminSession, error)
}

type AdminFinder interface {
	FindAdminByID(ctx context.Context, id uuid.UUID) (*models.Admin, error)
}

// AdminTokenResolver accepts CMS admin JWTs backed by a live session
type AdminTokenResolver struct {
	tokens   AdminTokenVerifier
	sessions SessionToucher
	admins   AdminFinder
}

func NewAdminTokenResolver(tokens AdminTokenVerifier, sessions SessionToucher, admins AdminFinder) *AdminTokenResolver {
	return &AdminTokenResolver{tokens: tokens, sessions: sessions, admins: admins}
}

func (r *AdminTokenResolver) Resolve(ctx context.Context, token string) (*models.Principal, error) {
	claims, err := r.tokens.VerifyAdminJWT(token)
	if err != nil {
		return nil, err
	}

	adminID, err := uuid.Parse(claims.AdminID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed admin id", ErrInvalidToken)
	}

	session, err := r.sessions.TouchSession(ctx, utils.HashToken(token))
	if err != nil {
		return nil, err
	}
	if session.AdminID != adminID {
		return nil, ErrInactiveSession
	}

	admin, err := r.admins.FindAdminByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	return &models.Principal{
		ID:      admin.ID.String(),
		Email:   admin.Email,
		Role:    admin.Role,
		IsAdmin: admin.CanViewAnalytics(),
		Source:  models.PrincipalSourceCMS,
	}, nil
}

// RequireAdmin checks that a resolved principal may read admin data. A missing
// principal is ErrInvalidToken, a non-admin one ErrNotAdmin.
func RequireAdmin(p *models.Principal) error {
	if p == nil {
		return ErrInvalidToken
	}
	if !p.IsAdmin {
		return fmt.Errorf("%w: %s", ErrNotAdmin, p.Email)
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// External OIDC ID tokens
// ════════════════════════════════════════════════════════════

type IDTokenVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*oidc.IDToken, error)
}

type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// OIDCResolver accepts ID tokens from the storefront identity provider and maps
// them to storefront accounts by verified email
type OIDCResolver struct {
	verifier IDTokenVerifier
	users    UserFinder
}

func NewOIDCResolver(verifier IDTokenVerifier, users UserFinder) *OIDCResolver {
	return &OIDCResolver{verifier: verifier, users: users}
}

type idTokenClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

func (r *OIDCResolver) Resolve(ctx context.Context, token string) (*models.Principal, error) {
	idToken, err := r.verifier.Verify(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	var claims idTokenClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Email == "" || !claims.EmailVerified {
		return nil, fmt.Errorf("%w: email missing or unverified", ErrInvalidToken)
	}

	user, err := r.users.FindByEmail(ctx, claims.Email)
	if errors.Is(err, repository.ErrNotFound) {
		log.Printf("[auth] oidc subject %s has no storefront account", idToken.Subject)
		return nil, fmt.Errorf("%w: unknown account", ErrInvalidToken)
	}
	if err != nil {
		return nil, err
	}

	return &models.Principal{
		ID:      user.ID.Hex(),
		Email:   strings.ToLower(claims.Email),
		IsAdmin: user.IsAdmin,
		Source:  models.PrincipalSourceOIDC,
	}, nil
}
