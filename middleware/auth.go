package middleware

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/services"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/utils"
)

const PrincipalContextKey = "principal"

// Authenticate resolves the caller from the admin_token cookie or a Bearer
// header. Resolvers are tried in order and the first success wins. It never
// aborts: handlers decide what an anonymous caller may see.
func Authenticate(resolvers ...services.PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := requestToken(c)
		if token == "" {
			c.Next()
			return
		}

		for _, resolver := range resolvers {
			principal, err := resolver.Resolve(c.Request.Context(), token)
			if err == nil {
				c.Set(PrincipalContextKey, principal)
				break
			}
			if !errors.Is(err, services.ErrInvalidToken) {
				log.Printf("[auth] resolver %T: %v", resolver, err)
			}
		}

		c.Next()
	}
}

func requestToken(c *gin.Context) string {
	if token, err := c.Cookie(utils.AdminTokenCookie); err == nil && token != "" {
		return token
	}
	token, err := utils.ExtractBearerToken(c.GetHeader("Authorization"))
	if err != nil {
		return ""
	}
	return token
}

// GinAuthContext reads the principal stored by Authenticate
type GinAuthContext struct{}

func (GinAuthContext) CurrentPrincipal(c *gin.Context) (*models.Principal, bool) {
	return PrincipalFromContext(c)
}

func PrincipalFromContext(c *gin.Context) (*models.Principal, bool) {
	v, ok := c.Get(PrincipalContextKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*models.Principal)
	return p, ok && p != nil
}
