package service

import (
	"database/sql"

	"github.com/rvbarade2024-dev/tour/internal/model"
)

// stubUserRepo хранит пользователей в памяти для тестов AuthService.
type stubUserRepo struct {
	users     map[string]*model.User
	createErr error
	lastUser  *model.User
	nextID    int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*model.User)}
}

func (r *stubUserRepo) Create(user *model.User) (int, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.Username] = user
	r.lastUser = user
	return user.ID, nil
}

func (r *stubUserRepo) GetByUsername(username string) (*model.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

// stubPlanRepo реализует PlanRepo поверх карты планов.
// Мутации сверяют agency_id так же, как SQL со scoped WHERE.
type stubPlanRepo struct {
	plans  map[int]*model.Plan
	nextID int
}

func newStubPlanRepo() *stubPlanRepo {
	return &stubPlanRepo{plans: make(map[int]*model.Plan)}
}

func (r *stubPlanRepo) Create(plan *model.Plan) (int, error) {
	r.nextID++
	plan.ID = r.nextID
	r.plans[plan.ID] = plan
	return plan.ID, nil
}

func (r *stubPlanRepo) Update(plan *model.Plan) (int64, error) {
	existing, ok := r.plans[plan.ID]
	if !ok || existing.AgencyID != plan.AgencyID {
		return 0, nil
	}
	r.plans[plan.ID] = plan
	return 1, nil
}

func (r *stubPlanRepo) Delete(id, agencyID int) (int64, error) {
	existing, ok := r.plans[id]
	if !ok || existing.AgencyID != agencyID {
		return 0, nil
	}
	delete(r.plans, id)
	return 1, nil
}

func (r *stubPlanRepo) GetForAgency(id, agencyID int) (*model.Plan, error) {
	plan, ok := r.plans[id]
	if !ok || plan.AgencyID != agencyID {
		return nil, sql.ErrNoRows
	}
	return plan, nil
}

func (r *stubPlanRepo) GetWithAgency(id int) (*model.PlanWithAgency, error) {
	plan, ok := r.plans[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &model.PlanWithAgency{Plan: *plan}, nil
}

func (r *stubPlanRepo) ListByAgency(agencyID int) ([]model.Plan, error) {
	plans := []model.Plan{}
	for _, p := range r.plans {
		if p.AgencyID == agencyID {
			plans = append(plans, *p)
		}
	}
	return plans, nil
}

func (r *stubPlanRepo) ListAll() ([]model.PlanWithAgency, error) {
	plans := []model.PlanWithAgency{}
	for _, p := range r.plans {
		plans = append(plans, model.PlanWithAgency{Plan: *p})
	}
	return plans, nil
}

// stubBookingRepo реализует BookingRepo поверх карты броней.
type stubBookingRepo struct {
	bookings map[int]*model.Booking
	nextID   int
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{bookings: make(map[int]*model.Booking)}
}

func (r *stubBookingRepo) Create(booking *model.Booking) (int, error) {
	r.nextID++
	booking.ID = r.nextID
	r.bookings[booking.ID] = booking
	return booking.ID, nil
}

func (r *stubBookingRepo) GetForCustomer(id, customerID int) (*model.BookingWithPlan, error) {
	booking, ok := r.bookings[id]
	if !ok || booking.CustomerID != customerID {
		return nil, sql.ErrNoRows
	}
	return &model.BookingWithPlan{Booking: *booking}, nil
}

func (r *stubBookingRepo) ListByCustomer(customerID int) ([]model.BookingWithPlan, error) {
	bookings := []model.BookingWithPlan{}
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			bookings = append(bookings, model.BookingWithPlan{Booking: *b})
		}
	}
	return bookings, nil
}

func (r *stubBookingRepo) ListForAgency(agencyID int) ([]model.BookingExportRow, error) {
	return []model.BookingExportRow{}, nil
}

func (r *stubBookingRepo) MarkPaid(id int) error {
	if b, ok := r.bookings[id]; ok {
		paid := model.BookingStatusPaid
		b.Status = paid
		b.PaymentStatus = &paid
	}
	return nil
}

func (r *stubBookingRepo) DeleteByCustomer(id, customerID int) (string, error) {
	booking, ok := r.bookings[id]
	if !ok || booking.CustomerID != customerID {
		return "", sql.ErrNoRows
	}
	delete(r.bookings, id)
	return booking.Status, nil
}
