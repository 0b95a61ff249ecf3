package handler

import (
	"errors"
	"net/http"

	"github.com/rvbarade2024-dev/tour/internal/metrics"
	"github.com/rvbarade2024-dev/tour/internal/model"
	"github.com/rvbarade2024-dev/tour/internal/service"
	"github.com/rvbarade2024-dev/tour/internal/session"

	"github.com/gin-gonic/gin"
)

// ShowRegister отображает форму регистрации.
func (h *Handler) ShowRegister(c *gin.Context) {
	h.render(c, "register.html", nil)
}

// Register обрабатывает отправку формы регистрации.
func (h *Handler) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	email := c.PostForm("email")
	role := c.DefaultPostForm("role", model.RoleCustomer)
	agencyName := c.PostForm("agency_name")

	err := h.auth.Register(username, password, email, role, agencyName)
	if err != nil {
		if ve, ok := service.AsValidation(err); ok {
			redirectWithFlash(c, "/register", "error", ve.Message)
			return
		}
		if errors.Is(err, service.ErrDuplicateUser) {
			// Не уточняем, совпал username или email
			redirectWithFlash(c, "/register", "error", "Username or email already exists.")
			return
		}
		h.serverError(c, err)
		return
	}

	metrics.IncRegistration(role)
	redirectWithFlash(c, "/login", "success", "Registration successful. Please login.")
}

// ShowLogin отображает форму входа.
func (h *Handler) ShowLogin(c *gin.Context) {
	h.render(c, "login.html", nil)
}

// Login обрабатывает вход: устанавливает серверную сессию и перенаправляет
// пользователя в кабинет согласно роли.
func (h *Handler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.auth.Login(username, password)
	if err != nil {
		if ve, ok := service.AsValidation(err); ok {
			redirectWithFlash(c, "/login", "error", ve.Message)
			return
		}
		if errors.Is(err, service.ErrUserNotFound) {
			redirectWithFlash(c, "/register", "error", "User not found. Please register.")
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			redirectWithFlash(c, "/login", "error", "Invalid credentials")
			return
		}
		h.serverError(c, err)
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), session.Session{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, h.sessionTTL)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.SetCookie(h.cookieName, token, int(h.sessionTTL.Seconds()), "/", "", false, true)

	setFlash(c, "success", "Logged in successfully")
	if user.IsAgency() {
		c.Redirect(http.StatusFound, "/agency_dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/customer_dashboard")
}

// Logout безусловно очищает сессию и cookie.
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookieName); err == nil && token != "" {
		if err := h.sessions.Delete(c.Request.Context(), token); err != nil {
			h.log.Warn("не удалось удалить сессию", "error", err)
		}
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	redirectWithFlash(c, "/", "info", "Logged out")
}
