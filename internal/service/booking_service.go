package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rvbarade2024-dev/tour/internal/logger"
	"github.com/rvbarade2024-dev/tour/internal/model"
	"github.com/rvbarade2024-dev/tour/internal/notify"
)

// BookingRepo — операции с бронями, нужные сервису бронирований.
type BookingRepo interface {
	Create(booking *model.Booking) (int, error)
	GetForCustomer(id, customerID int) (*model.BookingWithPlan, error)
	ListByCustomer(customerID int) ([]model.BookingWithPlan, error)
	MarkPaid(id int) error
	DeleteByCustomer(id, customerID int) (string, error)
}

// BookingService содержит бизнес-логику бронирований: создание,
// отмену и подтверждение оплаты.
type BookingService struct {
	bookingRepo BookingRepo
	planRepo    PlanRepo
	notifier    notify.Notifier
	log         *logger.Logger
}

// NewBookingService создает новый сервис бронирований.
func NewBookingService(bookingRepo BookingRepo, planRepo PlanRepo, notifier notify.Notifier, log *logger.Logger) *BookingService {
	return &BookingService{bookingRepo: bookingRepo, planRepo: planRepo, notifier: notifier, log: log}
}

// CreateBooking создает бронь со статусом "pending". Обязательны план и дата
// поездки; число мест по умолчанию 1.
func (s *BookingService) CreateBooking(customerID int, customerName, planIDRaw, travelDate, seatsRaw string) (int, error) {
	planIDRaw = strings.TrimSpace(planIDRaw)
	travelDate = strings.TrimSpace(travelDate)
	if planIDRaw == "" || travelDate == "" {
		return 0, validationError("Plan and travel date required")
	}
	planID, err := strconv.Atoi(planIDRaw)
	if err != nil {
		return 0, validationError("Plan and travel date required")
	}

	seats := 1
	if seatsRaw = strings.TrimSpace(seatsRaw); seatsRaw != "" {
		seats, err = strconv.Atoi(seatsRaw)
		if err != nil || seats < 1 {
			return 0, validationError("Invalid number of seats")
		}
	}

	booking := &model.Booking{
		CustomerID: customerID,
		PlanID:     planID,
		TravelDate: travelDate,
		Seats:      seats,
		Status:     model.BookingStatusPending,
	}
	id, err := s.bookingRepo.Create(booking)
	if err != nil {
		return 0, err
	}

	// Уведомление менеджерам; название плана берем из карточки,
	// ошибка поиска уведомление не блокирует.
	title := ""
	if plan, err := s.planRepo.GetWithAgency(planID); err == nil {
		title = plan.Title
	}
	s.notifier.BookingCreated(id, title, customerName, seats)

	return id, nil
}

// GetBookingForCustomer возвращает бронь клиента с данными плана
// (страница подтверждения оплаты).
func (s *BookingService) GetBookingForCustomer(bookingID, customerID int) (*model.BookingWithPlan, error) {
	booking, err := s.bookingRepo.GetForCustomer(bookingID, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при поиске бронирования: %w", err)
	}
	return booking, nil
}

// ListCustomerBookings возвращает брони клиента для его кабинета.
func (s *BookingService) ListCustomerBookings(customerID int) ([]model.BookingWithPlan, error) {
	return s.bookingRepo.ListByCustomer(customerID)
}

// ConfirmPayment переводит бронь клиента в статус "paid". Интеграции с
// платежным шлюзом нет: успех безусловный. Повторное подтверждение
// уже оплаченной брони состояние не меняет.
func (s *BookingService) ConfirmPayment(bookingID, customerID int, customerName string) error {
	booking, err := s.GetBookingForCustomer(bookingID, customerID)
	if err != nil {
		return err
	}
	if err := s.bookingRepo.MarkPaid(booking.ID); err != nil {
		return err
	}
	s.notifier.PaymentConfirmed(booking.ID, customerName)
	return nil
}

// CancelBooking удаляет бронь в пределах владения клиента и возвращает ее
// статус на момент отмены. Отмена уже оплаченной брони разрешена, но
// логируется: компенсирующего возврата средств нет.
func (s *BookingService) CancelBooking(bookingID, customerID int) (string, error) {
	status, err := s.bookingRepo.DeleteByCustomer(bookingID, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("ошибка при отмене бронирования: %w", err)
	}
	if status == model.BookingStatusPaid {
		s.log.Warn("отменена оплаченная бронь без возврата средств",
			"booking_id", bookingID, "customer_id", customerID)
	}
	return status, nil
}
