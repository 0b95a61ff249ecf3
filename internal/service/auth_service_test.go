package service

import (
	"errors"
	"testing"

	"github.com/rvbarade2024-dev/tour/internal/model"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		email    string
		wantErr  string
	}{
		{
			name:     "empty username",
			username: "",
			password: "secret1",
			wantErr:  "Username and password are required",
		},
		{
			name:     "empty password",
			username: "alice",
			password: "",
			wantErr:  "Username and password are required",
		},
		{
			name:     "whitespace username",
			username: "   ",
			password: "secret1",
			wantErr:  "Username and password are required",
		},
		{
			name:     "invalid email",
			username: "alice",
			password: "secret1",
			email:    "not-an-email",
			wantErr:  "Invalid email format",
		},
		{
			name:     "short password",
			username: "alice",
			password: "a1",
			wantErr:  "Password must be 6+ chars and include letters and numbers",
		},
		{
			name:     "password without digit",
			username: "alice",
			password: "abcdefg",
			wantErr:  "Password must be 6+ chars and include letters and numbers",
		},
		{
			name:     "password without letter",
			username: "alice",
			password: "1234567",
			wantErr:  "Password must be 6+ chars and include letters and numbers",
		},
		{
			name:     "valid without email",
			username: "alice",
			password: "secret1",
		},
		{
			name:     "valid with email",
			username: "alice",
			password: "secret1",
			email:    "a@x.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(newStubUserRepo())
			err := svc.Register(tt.username, tt.password, tt.email, model.RoleCustomer, "")
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Register() error = %v, want nil", err)
				}
				return
			}
			ve, ok := AsValidation(err)
			if !ok {
				t.Fatalf("Register() error = %v, want ValidationError", err)
			}
			if ve.Message != tt.wantErr {
				t.Errorf("Register() message = %q, want %q", ve.Message, tt.wantErr)
			}
		})
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	if err := svc.Register("alice", "secret1", "a@x.com", model.RoleCustomer, ""); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	user := repo.lastUser
	if user == nil {
		t.Fatal("пользователь не был сохранен")
	}
	if user.PasswordHash == "secret1" {
		t.Error("пароль сохранен открытым текстом")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")); err != nil {
		t.Errorf("хеш не соответствует паролю: %v", err)
	}
	if user.Email == nil || *user.Email != "a@x.com" {
		t.Errorf("email = %v, want a@x.com", user.Email)
	}
}

func TestRegisterUnknownRoleBecomesCustomer(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	if err := svc.Register("bob", "secret1", "", "admin", ""); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if repo.lastUser.Role != model.RoleCustomer {
		t.Errorf("role = %q, want %q", repo.lastUser.Role, model.RoleCustomer)
	}
}

func TestRegisterAgencyKeepsAgencyName(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	if err := svc.Register("travels", "secret1", "", model.RoleAgency, "Sunny Travels"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if repo.lastUser.AgencyName == nil || *repo.lastUser.AgencyName != "Sunny Travels" {
		t.Errorf("agency_name = %v, want Sunny Travels", repo.lastUser.AgencyName)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	repo := newStubUserRepo()
	repo.createErr = &pq.Error{Code: "23505"}
	svc := NewAuthService(repo)

	err := svc.Register("alice", "secret1", "", model.RoleCustomer, "")
	if !errors.Is(err, ErrDuplicateUser) {
		t.Errorf("Register() error = %v, want ErrDuplicateUser", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)
	if err := svc.Register("alice", "secret1", "", model.RoleCustomer, ""); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "unknown user", username: "nobody", password: "secret1", wantErr: ErrUserNotFound},
		{name: "wrong password", username: "alice", password: "wrong99", wantErr: ErrInvalidCredentials},
		{name: "success", username: "alice", password: "secret1"},
		{name: "trimmed username", username: "  alice  ", password: "secret1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Login(tt.username, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if user.Username != "alice" {
				t.Errorf("Login() username = %q, want alice", user.Username)
			}
		})
	}
}

func TestLoginMissingFields(t *testing.T) {
	svc := NewAuthService(newStubUserRepo())
	_, err := svc.Login("", "")
	if _, ok := AsValidation(err); !ok {
		t.Errorf("Login() error = %v, want ValidationError", err)
	}
}
