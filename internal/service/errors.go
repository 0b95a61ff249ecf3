package service

import "errors"

// Ошибки уровня бизнес-логики. Обработчики переводят их
// во flash-сообщения и редиректы.
var (
	ErrUserNotFound       = errors.New("пользователь не найден")
	ErrInvalidCredentials = errors.New("неверные учетные данные")
	ErrDuplicateUser      = errors.New("пользователь с таким именем или email уже существует")
	ErrNotFound           = errors.New("запись не найдена")
)

// ValidationError несет готовое сообщение для пользователя.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// AsValidation возвращает ValidationError, если err им является.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
