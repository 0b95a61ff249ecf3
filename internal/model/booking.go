package model

import "time"

// Статусы бронирования.
const (
	BookingStatusPending = "pending"
	BookingStatusPaid    = "paid"
)

// Booking представляет бронь клиента на план агентства.
type Booking struct {
	ID            int       `db:"id"`
	CustomerID    int       `db:"customer_id"`
	PlanID        int       `db:"plan_id"`
	TravelDate    string    `db:"travel_date"`
	Seats         int       `db:"seats"`
	Status        string    `db:"status"`         // "pending" или "paid"
	PaymentStatus *string   `db:"payment_status"` // NULL до подтверждения оплаты
	BookingDate   time.Time `db:"booking_date"`
}

// BookingWithPlan — бронь вместе с данными плана (для кабинета клиента).
// План может быть удален агентством, поэтому поля nullable (LEFT JOIN).
type BookingWithPlan struct {
	Booking
	PlanTitle *string `db:"title"`
	PlanPrice *string `db:"price"`
}

// BookingExportRow — строка выгрузки броней для агентства.
type BookingExportRow struct {
	ID         int       `db:"id"`
	PlanTitle  string    `db:"title"`
	Customer   string    `db:"username"`
	TravelDate string    `db:"travel_date"`
	Seats      int       `db:"seats"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"booking_date"`
}
