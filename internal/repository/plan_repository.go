package repository

import (
	"fmt"

	"github.com/rvbarade2024-dev/tour/internal/model"

	"github.com/jmoiron/sqlx"
)

// PlanRepository обеспечивает доступ к данным туристических планов.
type PlanRepository struct {
	db *sqlx.DB
}

// NewPlanRepository создает новый репозиторий планов.
func NewPlanRepository(db *sqlx.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// Create создает новый план от имени агентства. Возвращает ID созданной записи.
func (r *PlanRepository) Create(plan *model.Plan) (int, error) {
	query := `INSERT INTO plans (agency_id, title, description, destination, duration, price)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var id int
	err := r.db.QueryRow(query, plan.AgencyID, plan.Title, plan.Description,
		plan.Destination, plan.Duration, plan.Price).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать план: %w", err)
	}
	return id, nil
}

// Update обновляет план, принадлежащий агентству. Возвращает число измененных строк:
// 0 означает, что план не существует или принадлежит другому агентству.
func (r *PlanRepository) Update(plan *model.Plan) (int64, error) {
	res, err := r.db.Exec(
		`UPDATE plans SET title=$1, description=$2, destination=$3, duration=$4, price=$5
		 WHERE id=$6 AND agency_id=$7`,
		plan.Title, plan.Description, plan.Destination, plan.Duration, plan.Price,
		plan.ID, plan.AgencyID)
	if err != nil {
		return 0, fmt.Errorf("не удалось обновить план: %w", err)
	}
	return res.RowsAffected()
}

// Delete удаляет план, принадлежащий агентству. Возвращает число удаленных строк.
func (r *PlanRepository) Delete(id, agencyID int) (int64, error) {
	res, err := r.db.Exec("DELETE FROM plans WHERE id=$1 AND agency_id=$2", id, agencyID)
	if err != nil {
		return 0, fmt.Errorf("не удалось удалить план: %w", err)
	}
	return res.RowsAffected()
}

// GetForAgency возвращает план по ID в пределах владения агентства.
// Возвращает sql.ErrNoRows при отсутствии или чужом плане.
func (r *PlanRepository) GetForAgency(id, agencyID int) (*model.Plan, error) {
	var plan model.Plan
	err := r.db.Get(&plan, "SELECT * FROM plans WHERE id=$1 AND agency_id=$2", id, agencyID)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetWithAgency возвращает план вместе с названием агентства (публичная карточка).
func (r *PlanRepository) GetWithAgency(id int) (*model.PlanWithAgency, error) {
	var plan model.PlanWithAgency
	err := r.db.Get(&plan,
		`SELECT p.*, u.agency_name FROM plans p JOIN users u ON p.agency_id=u.id WHERE p.id=$1`, id)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// ListByAgency возвращает планы агентства, новые сверху.
func (r *PlanRepository) ListByAgency(agencyID int) ([]model.Plan, error) {
	plans := []model.Plan{}
	err := r.db.Select(&plans,
		"SELECT * FROM plans WHERE agency_id=$1 ORDER BY created_at DESC", agencyID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении планов агентства: %w", err)
	}
	return plans, nil
}

// ListAll возвращает все планы с названиями агентств, новые сверху.
func (r *PlanRepository) ListAll() ([]model.PlanWithAgency, error) {
	plans := []model.PlanWithAgency{}
	err := r.db.Select(&plans,
		`SELECT p.*, u.agency_name FROM plans p JOIN users u ON p.agency_id=u.id
		 ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка планов: %w", err)
	}
	return plans, nil
}
