package repository

import (
	"fmt"

	"github.com/rvbarade2024-dev/tour/internal/model"

	"github.com/jmoiron/sqlx"
)

// UserRepository обеспечивает доступ к данным пользователей в базе данных.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создаёт новый репозиторий пользователей.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create добавляет нового пользователя. Возвращает ID созданной записи.
// Нарушение уникальности username/email возвращается как есть —
// вызывающий различает его через IsUniqueViolation.
func (r *UserRepository) Create(user *model.User) (int, error) {
	query := `INSERT INTO users (username, password, email, role, agency_name)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int
	err := r.db.QueryRow(query, user.Username, user.PasswordHash, user.Email, user.Role, user.AgencyName).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByUsername ищет пользователя по имени. Возвращает sql.ErrNoRows, если не найдено.
func (r *UserRepository) GetByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, "SELECT * FROM users WHERE username=$1", username)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID возвращает пользователя по внутреннему идентификатору.
func (r *UserRepository) GetByID(id int) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, "SELECT * FROM users WHERE id=$1", id)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}
	return &user, nil
}
