package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/logger"
	"guarashopp-storefront/internal/service/anonymous"
	"guarashopp-storefront/internal/service/customer"
	"guarashopp-storefront/internal/workspace"
)

const (
	workspaceKey = "workspace"
	visitorIDKey = "visitor_id"
)

// visitorMiddleware resolves the signed visitor cookie into the visitor's
// workspace, issuing a new visitor id when the cookie is missing or invalid.
func visitorMiddleware(store sessions.Store, cookie string, visitors *anonymous.Service, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := store.Get(c.Request, cookie)
		if err != nil {
			log.Debug().Err(err).Msg("discarding unreadable visitor cookie")
		}
		id, _ := sess.Values[visitorIDKey].(string)
		if id == "" {
			id = visitors.NewVisitorID()
			sess.Values[visitorIDKey] = id
			if err := sess.Save(c.Request, c.Writer); err != nil {
				log.Error().Err(err).Msg("write visitor cookie failed")
				c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody("Erro interno."))
				return
			}
		}
		c.Set(workspaceKey, visitors.Workspace(c.Request.Context(), id))
		c.Next()
	}
}

func ws(c *gin.Context) *workspace.Workspace {
	return c.MustGet(workspaceKey).(*workspace.Workspace)
}

func requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ws(c).Session.State() != customer.StateAuthenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody(msgOf(domain.ErrNotAuthenticated)))
			return
		}
		c.Next()
	}
}

func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := ws(c).Session
		if session.State() != customer.StateAuthenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody(msgOf(domain.ErrNotAuthenticated)))
			return
		}
		if !session.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, errorBody(msgOf(domain.ErrForbidden)))
			return
		}
		c.Next()
	}
}
