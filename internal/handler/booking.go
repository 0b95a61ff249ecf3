package handler

import (
	"errors"
	"strconv"

	"github.com/rvbarade2024-dev/tour/internal/metrics"
	"github.com/rvbarade2024-dev/tour/internal/service"

	"github.com/gin-gonic/gin"
)

// CustomerDashboard — кабинет клиента: вся витрина плюс собственные брони.
func (h *Handler) CustomerDashboard(c *gin.Context) {
	sess := currentSession(c)
	plans, err := h.plans.ListAllPlans()
	if err != nil {
		h.serverError(c, err)
		return
	}
	bookings, err := h.bookings.ListCustomerBookings(sess.UserID)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.render(c, "customer_dashboard.html", gin.H{"plans": plans, "bookings": bookings})
}

// Book создает бронь со статусом "pending".
func (h *Handler) Book(c *gin.Context) {
	sess := currentSession(c)
	_, err := h.bookings.CreateBooking(sess.UserID, sess.Username,
		c.PostForm("plan_id"), c.PostForm("travel_date"), c.PostForm("seats"))
	if err != nil {
		if ve, ok := service.AsValidation(err); ok {
			redirectWithFlash(c, "/customer_dashboard", "error", ve.Message)
			return
		}
		h.serverError(c, err)
		return
	}
	metrics.IncBookingCreated()
	redirectWithFlash(c, "/customer_dashboard", "success", "Booking created (pending payment)")
}

// CancelBooking удаляет бронь в пределах владения клиента.
func (h *Handler) CancelBooking(c *gin.Context) {
	sess := currentSession(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectWithFlash(c, "/customer_dashboard", "error", "Booking not found")
		return
	}
	status, err := h.bookings.CancelBooking(id, sess.UserID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			redirectWithFlash(c, "/customer_dashboard", "error", "Booking not found")
			return
		}
		h.serverError(c, err)
		return
	}
	metrics.IncBookingCanceled(status)
	redirectWithFlash(c, "/customer_dashboard", "info", "Booking cancelled")
}

// ShowPayment отображает страницу подтверждения оплаты собственной брони.
func (h *Handler) ShowPayment(c *gin.Context) {
	sess := currentSession(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectWithFlash(c, "/customer_dashboard", "error", "Booking not found")
		return
	}
	booking, err := h.bookings.GetBookingForCustomer(id, sess.UserID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			redirectWithFlash(c, "/customer_dashboard", "error", "Booking not found")
			return
		}
		h.serverError(c, err)
		return
	}
	h.render(c, "payment.html", gin.H{"booking": booking})
}

// ConfirmPayment помечает бронь оплаченной. Платежного шлюза нет:
// POST безусловно успешен и идемпотентен.
func (h *Handler) ConfirmPayment(c *gin.Context) {
	sess := currentSession(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectWithFlash(c, "/customer_dashboard", "error", "Booking not found")
		return
	}
	if err := h.bookings.ConfirmPayment(id, sess.UserID, sess.Username); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			redirectWithFlash(c, "/customer_dashboard", "error", "Booking not found")
			return
		}
		h.serverError(c, err)
		return
	}
	metrics.IncPaymentConfirmed()
	redirectWithFlash(c, "/customer_dashboard", "success", "Payment successful. Booking confirmed!")
}
