package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound возвращается, когда сессия не существует или истекла.
var ErrNotFound = errors.New("сессия не найдена")

// Session — серверное состояние аутентифицированного пользователя.
type Session struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Store хранит сессии по непрозрачному токену, выдаваемому в cookie.
type Store interface {
	// Create сохраняет сессию и возвращает новый токен.
	Create(ctx context.Context, s Session, ttl time.Duration) (string, error)
	// Get возвращает сессию по токену либо ErrNotFound.
	Get(ctx context.Context, token string) (*Session, error)
	// Delete удаляет сессию. Удаление несуществующего токена не является ошибкой.
	Delete(ctx context.Context, token string) error
}
