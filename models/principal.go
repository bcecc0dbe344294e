package models

const (
	PrincipalSourceCMS  = "cms_jwt"
	PrincipalSourceOIDC = "oidc"
)

// Principal is the authenticated caller of a request
type Principal struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Role    string `json:"role,omitempty"`
	IsAdmin bool   `json:"is_admin"`
	Source  string `json:"source"`
}
