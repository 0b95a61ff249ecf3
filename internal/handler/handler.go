package handler

import (
	"net/http"
	"time"

	"github.com/rvbarade2024-dev/tour/internal/logger"
	"github.com/rvbarade2024-dev/tour/internal/model"
	"github.com/rvbarade2024-dev/tour/internal/service"
	"github.com/rvbarade2024-dev/tour/internal/session"

	"github.com/gin-gonic/gin"
)

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	auth     *service.AuthService
	plans    *service.PlanService
	bookings *service.BookingService
	export   *service.ExportService
	sessions session.Store
	log      *logger.Logger

	cookieName string
	sessionTTL time.Duration
}

// NewHandler создает новый Handler с внедрением зависимостей.
func NewHandler(auth *service.AuthService, plans *service.PlanService, bookings *service.BookingService,
	export *service.ExportService, sessions session.Store, log *logger.Logger,
	cookieName string, sessionTTL time.Duration) *Handler {
	return &Handler{
		auth:       auth,
		plans:      plans,
		bookings:   bookings,
		export:     export,
		sessions:   sessions,
		log:        log,
		cookieName: cookieName,
		sessionTTL: sessionTTL,
	}
}

// RegisterRoutes регистрирует все маршруты приложения.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(h.LoadSession())

	router.GET("/", h.Index)
	router.GET("/plan/:id", h.ViewPlan)
	router.GET("/register", h.ShowRegister)
	router.POST("/register", h.Register)
	router.GET("/login", h.ShowLogin)
	router.POST("/login", h.Login)
	router.GET("/logout", h.Logout)

	agency := router.Group("/", h.RequireRole(model.RoleAgency))
	{
		agency.GET("/agency_dashboard", h.AgencyDashboard)
		agency.GET("/agency/plan/new", h.ShowNewPlan)
		agency.POST("/agency/plan/new", h.CreatePlan)
		agency.GET("/agency/plan/edit/:id", h.ShowEditPlan)
		agency.POST("/agency/plan/edit/:id", h.UpdatePlan)
		agency.POST("/agency/plan/delete/:id", h.DeletePlan)
		agency.GET("/agency/export", h.ExportBookings)
	}

	customer := router.Group("/", h.RequireRole(model.RoleCustomer))
	{
		customer.GET("/customer_dashboard", h.CustomerDashboard)
		customer.POST("/book", h.Book)
		customer.GET("/payment/:id", h.ShowPayment)
		customer.POST("/payment/:id", h.ConfirmPayment)
	}

	// Отмена доступна любой сессии; владение проверяется в запросе удаления.
	router.POST("/booking/cancel/:id", h.RequireSession(), h.CancelBooking)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// render отображает шаблон, добавляя flash-сообщение и текущую сессию.
func (h *Handler) render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["flash"] = popFlash(c)
	data["session"] = currentSession(c)
	c.HTML(http.StatusOK, name, data)
}

// redirectWithFlash сохраняет сообщение и делает редирект.
func redirectWithFlash(c *gin.Context, location, level, message string) {
	setFlash(c, level, message)
	c.Redirect(http.StatusFound, location)
}

// serverError логирует неожиданную ошибку хранилища и завершает запрос 500.
func (h *Handler) serverError(c *gin.Context, err error) {
	h.log.Error("внутренняя ошибка", "path", c.Request.URL.Path, "error", err)
	c.String(http.StatusInternalServerError, "Internal server error")
	c.Abort()
}
