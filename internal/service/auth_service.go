package service

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/rvbarade2024-dev/tour/internal/model"
	"github.com/rvbarade2024-dev/tour/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// emailPattern — базовая синтаксическая проверка: непустая часть до @,
// после @ и точка в домене.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserRepo — операции с пользователями, нужные сервису аутентификации.
type UserRepo interface {
	Create(user *model.User) (int, error)
	GetByUsername(username string) (*model.User, error)
}

// AuthService отвечает за регистрацию и вход пользователей.
type AuthService struct {
	userRepo UserRepo
}

// NewAuthService создает новый сервис аутентификации.
func NewAuthService(userRepo UserRepo) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register проверяет входные данные, хеширует пароль и создает пользователя.
// Нарушение уникальности username/email возвращается как ErrDuplicateUser
// без уточнения, какое именно поле совпало.
func (s *AuthService) Register(username, password, email, role, agencyName string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || password == "" {
		return validationError("Username and password are required")
	}
	if email != "" && !emailPattern.MatchString(email) {
		return validationError("Invalid email format")
	}
	if !passwordOK(password) {
		return validationError("Password must be 6+ chars and include letters and numbers")
	}
	if role != model.RoleAgency {
		role = model.RoleCustomer
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("не удалось захешировать пароль: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if email != "" {
		user.Email = &email
	}
	if agencyName != "" && role == model.RoleAgency {
		user.AgencyName = &agencyName
	}

	if _, err := s.userRepo.Create(user); err != nil {
		if repository.IsUniqueViolation(err) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}
	return nil
}

// Login проверяет имя пользователя и пароль. Различает отсутствие
// пользователя (ErrUserNotFound) и несовпадение пароля (ErrInvalidCredentials).
func (s *AuthService) Login(username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, validationError("Username and password required")
	}

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// passwordOK: минимум 6 символов, хотя бы одна буква и одна цифра.
func passwordOK(pw string) bool {
	if len(pw) < 6 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range pw {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
