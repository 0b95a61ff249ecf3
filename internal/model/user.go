package model

import "time"

// Роли пользователей маркетплейса.
const (
	RoleAgency   = "agency"
	RoleCustomer = "customer"
)

// User представляет учетную запись: турагентство или клиента.
type User struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password"` // bcrypt-хеш пароля
	Email        *string   `db:"email"`    // NULL, если не указан при регистрации
	Role         string    `db:"role"`     // "agency" или "customer"
	AgencyName   *string   `db:"agency_name"`
	CreatedAt    time.Time `db:"created_at"`
}

// IsAgency сообщает, является ли пользователь турагентством.
func (u *User) IsAgency() bool {
	return u.Role == RoleAgency
}
