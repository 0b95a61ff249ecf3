package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rvbarade2024-dev/tour/internal/service"

	"github.com/gin-gonic/gin"
)

// Index — публичная витрина: все планы с названиями агентств.
func (h *Handler) Index(c *gin.Context) {
	plans, err := h.plans.ListAllPlans()
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.render(c, "index.html", gin.H{"plans": plans})
}

// ViewPlan — публичная карточка плана.
func (h *Handler) ViewPlan(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectWithFlash(c, "/", "error", "Plan not found")
		return
	}
	plan, err := h.plans.GetPublicPlan(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			redirectWithFlash(c, "/", "error", "Plan not found")
			return
		}
		h.serverError(c, err)
		return
	}
	h.render(c, "view_plan.html", gin.H{"plan": plan})
}

// AgencyDashboard — кабинет агентства: только собственные планы.
func (h *Handler) AgencyDashboard(c *gin.Context) {
	sess := currentSession(c)
	plans, err := h.plans.ListAgencyPlans(sess.UserID)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.render(c, "agency_dashboard.html", gin.H{"plans": plans})
}

// ShowNewPlan отображает пустую форму плана.
func (h *Handler) ShowNewPlan(c *gin.Context) {
	h.render(c, "plan_form.html", gin.H{"plan": nil})
}

// CreatePlan обрабатывает создание плана.
func (h *Handler) CreatePlan(c *gin.Context) {
	sess := currentSession(c)
	_, err := h.plans.CreatePlan(sess.UserID,
		c.PostForm("title"), c.PostForm("description"), c.PostForm("destination"),
		c.PostForm("duration"), c.PostForm("price"))
	if err != nil {
		if ve, ok := service.AsValidation(err); ok {
			redirectWithFlash(c, "/agency/plan/new", "error", ve.Message)
			return
		}
		h.serverError(c, err)
		return
	}
	redirectWithFlash(c, "/agency_dashboard", "success", "Plan added")
}

// ShowEditPlan отображает форму редактирования собственного плана.
func (h *Handler) ShowEditPlan(c *gin.Context) {
	sess := currentSession(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectWithFlash(c, "/agency_dashboard", "error", "Plan not found")
		return
	}
	plan, err := h.plans.GetPlanForAgency(id, sess.UserID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			redirectWithFlash(c, "/agency_dashboard", "error", "Plan not found")
			return
		}
		h.serverError(c, err)
		return
	}
	h.render(c, "plan_form.html", gin.H{"plan": plan})
}

// UpdatePlan обрабатывает сохранение изменений плана.
func (h *Handler) UpdatePlan(c *gin.Context) {
	sess := currentSession(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectWithFlash(c, "/agency_dashboard", "error", "Plan not found")
		return
	}
	err = h.plans.UpdatePlan(sess.UserID, id,
		c.PostForm("title"), c.PostForm("description"), c.PostForm("destination"),
		c.PostForm("duration"), c.PostForm("price"))
	if err != nil {
		if ve, ok := service.AsValidation(err); ok {
			redirectWithFlash(c, fmt.Sprintf("/agency/plan/edit/%d", id), "error", ve.Message)
			return
		}
		if errors.Is(err, service.ErrNotFound) {
			redirectWithFlash(c, "/agency_dashboard", "error", "Plan not found")
			return
		}
		h.serverError(c, err)
		return
	}
	redirectWithFlash(c, "/agency_dashboard", "success", "Plan updated")
}

// DeletePlan удаляет собственный план агентства.
func (h *Handler) DeletePlan(c *gin.Context) {
	sess := currentSession(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectWithFlash(c, "/agency_dashboard", "error", "Plan not found")
		return
	}
	if err := h.plans.DeletePlan(id, sess.UserID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			redirectWithFlash(c, "/agency_dashboard", "error", "Plan not found")
			return
		}
		h.serverError(c, err)
		return
	}
	redirectWithFlash(c, "/agency_dashboard", "info", "Plan deleted")
}

// ExportBookings отдает xlsx-файл с бронями по планам агентства.
func (h *Handler) ExportBookings(c *gin.Context) {
	sess := currentSession(c)
	buf, err := h.export.ExportAgencyBookings(sess.UserID)
	if err != nil {
		h.serverError(c, err)
		return
	}
	filename := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
