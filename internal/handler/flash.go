package handler

import (
	"encoding/base64"
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// Flash — одноразовое сообщение пользователю, переживающее один редирект.
type Flash struct {
	Level   string // "success", "error", "info"
	Message string
}

// setFlash сохраняет сообщение в короткоживущей cookie.
func setFlash(c *gin.Context, level, message string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(level + "|" + message))
	c.SetCookie(flashCookie, value, 60, "/", "", false, true)
}

// popFlash читает и сразу гасит flash-cookie. Возвращает nil, если сообщения нет.
func popFlash(c *gin.Context) *Flash {
	value, err := c.Cookie(flashCookie)
	if err != nil || value == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	level, message, found := strings.Cut(string(decoded), "|")
	if !found {
		return nil
	}
	return &Flash{Level: level, Message: message}
}
