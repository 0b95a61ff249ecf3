package repository

import (
	"fmt"

	"github.com/rvbarade2024-dev/tour/internal/model"

	"github.com/jmoiron/sqlx"
)

// BookingRepository обеспечивает доступ к данным бронирований.
type BookingRepository struct {
	db *sqlx.DB
}

// NewBookingRepository создает новый репозиторий бронирований.
func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create создает новую бронь. Возвращает ID созданной записи.
func (r *BookingRepository) Create(booking *model.Booking) (int, error) {
	query := `INSERT INTO bookings (customer_id, plan_id, travel_date, seats, status)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int
	err := r.db.QueryRow(query, booking.CustomerID, booking.PlanID,
		booking.TravelDate, booking.Seats, booking.Status).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать бронирование: %w", err)
	}
	return id, nil
}

// GetForCustomer возвращает бронь клиента вместе с данными плана.
// Возвращает sql.ErrNoRows, если брони нет или она принадлежит другому клиенту.
func (r *BookingRepository) GetForCustomer(id, customerID int) (*model.BookingWithPlan, error) {
	var booking model.BookingWithPlan
	err := r.db.Get(&booking,
		`SELECT b.*, p.title, p.price FROM bookings b
		 JOIN plans p ON b.plan_id=p.id
		 WHERE b.id=$1 AND b.customer_id=$2`, id, customerID)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListByCustomer возвращает брони клиента с данными планов, новые сверху.
// LEFT JOIN: план мог быть удален агентством, бронь при этом остается.
func (r *BookingRepository) ListByCustomer(customerID int) ([]model.BookingWithPlan, error) {
	bookings := []model.BookingWithPlan{}
	err := r.db.Select(&bookings,
		`SELECT b.*, p.title, p.price FROM bookings b
		 LEFT JOIN plans p ON b.plan_id=p.id
		 WHERE b.customer_id=$1
		 ORDER BY b.booking_date DESC`, customerID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении бронирований клиента: %w", err)
	}
	return bookings, nil
}

// ListForAgency возвращает брони по планам агентства для выгрузки.
func (r *BookingRepository) ListForAgency(agencyID int) ([]model.BookingExportRow, error) {
	rows := []model.BookingExportRow{}
	err := r.db.Select(&rows,
		`SELECT b.id, p.title, u.username, b.travel_date, b.seats, b.status, b.booking_date
		 FROM bookings b
		 JOIN plans p ON b.plan_id=p.id
		 JOIN users u ON b.customer_id=u.id
		 WHERE p.agency_id=$1
		 ORDER BY b.booking_date DESC`, agencyID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при выгрузке бронирований агентства: %w", err)
	}
	return rows, nil
}

// MarkPaid переводит бронь в статус "paid". Повторный вызов не меняет состояние.
func (r *BookingRepository) MarkPaid(id int) error {
	_, err := r.db.Exec(
		"UPDATE bookings SET status=$1, payment_status=$1 WHERE id=$2",
		model.BookingStatusPaid, id)
	if err != nil {
		return fmt.Errorf("не удалось обновить статус бронирования: %w", err)
	}
	return nil
}

// DeleteByCustomer удаляет бронь в пределах владения клиента и возвращает
// статус на момент удаления. Возвращает sql.ErrNoRows для чужой или
// несуществующей брони (ноль затронутых строк).
func (r *BookingRepository) DeleteByCustomer(id, customerID int) (string, error) {
	var status string
	err := r.db.QueryRow(
		"DELETE FROM bookings WHERE id=$1 AND customer_id=$2 RETURNING status",
		id, customerID).Scan(&status)
	if err != nil {
		return "", err
	}
	return status, nil
}
