package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rvbarade2024-dev/tour/internal/model"
)

// PlanRepo — операции с планами, нужные сервису планов.
type PlanRepo interface {
	Create(plan *model.Plan) (int, error)
	Update(plan *model.Plan) (int64, error)
	Delete(id, agencyID int) (int64, error)
	GetForAgency(id, agencyID int) (*model.Plan, error)
	GetWithAgency(id int) (*model.PlanWithAgency, error)
	ListByAgency(agencyID int) ([]model.Plan, error)
	ListAll() ([]model.PlanWithAgency, error)
}

// PlanService содержит бизнес-логику работы с туристическими планами.
type PlanService struct {
	planRepo PlanRepo
}

// NewPlanService создает новый сервис планов.
func NewPlanService(planRepo PlanRepo) *PlanService {
	return &PlanService{planRepo: planRepo}
}

// CreatePlan создает план от имени агентства. Обязательны только название и цена.
func (s *PlanService) CreatePlan(agencyID int, title, description, destination, duration, price string) (int, error) {
	title = strings.TrimSpace(title)
	price = strings.TrimSpace(price)
	if title == "" || price == "" {
		return 0, validationError("Title and price required")
	}
	plan := &model.Plan{
		AgencyID:    agencyID,
		Title:       title,
		Description: description,
		Destination: destination,
		Duration:    duration,
		Price:       price,
	}
	return s.planRepo.Create(plan)
}

// UpdatePlan обновляет план в пределах владения агентства.
func (s *PlanService) UpdatePlan(agencyID, planID int, title, description, destination, duration, price string) error {
	title = strings.TrimSpace(title)
	price = strings.TrimSpace(price)
	if title == "" || price == "" {
		return validationError("Title and price required")
	}
	plan := &model.Plan{
		ID:          planID,
		AgencyID:    agencyID,
		Title:       title,
		Description: description,
		Destination: destination,
		Duration:    duration,
		Price:       price,
	}
	rows, err := s.planRepo.Update(plan)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePlan удаляет план в пределах владения агентства.
// Чужой или несуществующий план возвращает ErrNotFound.
func (s *PlanService) DeletePlan(planID, agencyID int) error {
	rows, err := s.planRepo.Delete(planID, agencyID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// GetPlanForAgency возвращает план агентства для формы редактирования.
func (s *PlanService) GetPlanForAgency(planID, agencyID int) (*model.Plan, error) {
	plan, err := s.planRepo.GetForAgency(planID, agencyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при поиске плана: %w", err)
	}
	return plan, nil
}

// GetPublicPlan возвращает публичную карточку плана с названием агентства.
func (s *PlanService) GetPublicPlan(planID int) (*model.PlanWithAgency, error) {
	plan, err := s.planRepo.GetWithAgency(planID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при поиске плана: %w", err)
	}
	return plan, nil
}

// ListAgencyPlans возвращает планы агентства для его кабинета.
func (s *PlanService) ListAgencyPlans(agencyID int) ([]model.Plan, error) {
	return s.planRepo.ListByAgency(agencyID)
}

// ListAllPlans возвращает все планы с названиями агентств.
func (s *PlanService) ListAllPlans() ([]model.PlanWithAgency, error) {
	return s.planRepo.ListAll()
}
