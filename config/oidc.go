package config

import (
	"context"
	"log"

	"github.com/coreos/go-oidc/v3/oidc"
)

// InitOIDCVerifier discovers the identity provider and returns an ID token
// verifier, or nil when OIDC is not configured
func InitOIDCVerifier(cfg AppConfig) *oidc.IDTokenVerifier {
	if !cfg.OIDCEnabled() {
		log.Println("⚠️  OIDC_ISSUER / OIDC_CLIENT_ID not set, external identity tokens disabled")
		return nil
	}

	provider, err := oidc.NewProvider(context.Background(), cfg.OIDCIssuer)
	if err != nil {
		log.Fatalf("❌ Failed to discover OIDC provider %s: %v", cfg.OIDCIssuer, err)
	}

	log.Printf("✅ OIDC verifier ready (issuer=%s)", cfg.OIDCIssuer)
	return provider.Verifier(&oidc.Config{ClientID: cfg.OIDCClientID})
}
