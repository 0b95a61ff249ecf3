package handler

import (
	"net/http"

	"github.com/rvbarade2024-dev/tour/internal/model"
	"github.com/rvbarade2024-dev/tour/internal/session"

	"github.com/gin-gonic/gin"
)

const ctxSessionKey = "session"

// LoadSession читает cookie сессии и кладет найденную сессию в контекст запроса.
// Отсутствие или истечение сессии ошибкой не является: публичные страницы
// работают анонимно.
func (h *Handler) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(h.cookieName)
		if err == nil && token != "" {
			if sess, err := h.sessions.Get(c.Request.Context(), token); err == nil {
				c.Set(ctxSessionKey, sess)
			}
		}
		c.Next()
	}
}

// currentSession возвращает сессию запроса либо nil для анонимного посетителя.
func currentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(ctxSessionKey)
	if !ok {
		return nil
	}
	sess, ok := v.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}

// RequireRole пускает дальше только сессии с заданной ролью,
// остальных отправляет на страницу входа.
func (h *Handler) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		if sess == nil || sess.Role != role {
			if role == model.RoleAgency {
				setFlash(c, "error", "Please login as agency")
			} else {
				setFlash(c, "error", "Please login as customer")
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSession пускает дальше любую аутентифицированную сессию.
func (h *Handler) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentSession(c) == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
