package handler

import (
	"errors"
	"io"
	"net/http"

	"camtourvisor/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ImageStore сохраняет загруженные изображения и возвращает публичный URL.
type ImageStore interface {
	PutImage(bucket, prefix, filename string, src io.Reader) (string, error)
}

// Deps - зависимости обработчиков.
type Deps struct {
	Auth         *service.AuthService
	Admin        *service.AdminService
	Destinations *service.DestinationService
	Bookings     *service.BookingService
	Reviews      *service.ReviewService
	Saved        *service.SavedDestinationService
	Profiles     *service.ProfileService
	Chat         *service.ChatService

	Images         ImageStore
	ImageBucket    string
	MaxUploadBytes int64

	ChatRatePerSecond float64
	ChatBurst         int
}

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	Deps
	log         *zap.Logger
	chatLimiter *ipLimiter
}

// NewHandler создает новый Handler с внедрением зависимостей (сервисов).
func NewHandler(d Deps, log *zap.Logger) *Handler {
	return &Handler{
		Deps:        d,
		log:         log,
		chatLimiter: newIPLimiter(d.ChatRatePerSecond, d.ChatBurst),
	}
}

// Register регистрирует маршруты API.
func (h *Handler) Register(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/destinations", h.ListDestinations)
		api.GET("/destinations/:slug", h.GetDestination)
		api.GET("/destinations/:slug/coordinates", h.GetCoordinates)
		api.GET("/destinations/:slug/reviews", h.ListDestinationReviews)

		api.POST("/chat", h.rateLimit(h.chatLimiter), h.optionalUser(), h.Ask)
		api.GET("/chat/suggestions", h.ChatSuggestions)

		api.POST("/auth/signup", h.SignUp)
		api.POST("/auth/signin", h.SignIn)
		api.POST("/admin/login", h.AdminLogin)
	}

	me := api.Group("/me", h.requireUser())
	{
		me.GET("/profile", h.GetProfile)
		me.PUT("/profile", h.UpdateProfile)

		me.POST("/bookings", h.CreateBooking)
		me.GET("/bookings", h.ListMyBookings)
		me.POST("/bookings/:id/cancel", h.CancelBooking)

		me.POST("/reviews", h.CreateReview)
		me.GET("/reviews", h.ListMyReviews)
		me.PUT("/reviews/:id", h.UpdateReview)
		me.DELETE("/reviews/:id", h.DeleteReview)
		me.POST("/reviews/:id/helpful", h.MarkReviewHelpful)

		me.GET("/saved", h.ListSaved)
		me.GET("/saved/route", h.SavedRoute)
		me.POST("/saved/:slug", h.SaveDestination)
		me.DELETE("/saved/:slug", h.UnsaveDestination)
		me.GET("/saved/:slug", h.IsSaved)

		me.GET("/chat/history", h.ChatHistory)
	}

	admin := api.Group("/admin", h.requireAdmin())
	{
		admin.GET("/bookings", h.AdminListBookings)
		admin.GET("/bookings/export", h.AdminExportBookings)
		admin.PUT("/bookings/:id/status", h.AdminUpdateBookingStatus)

		admin.GET("/profiles", h.AdminListProfiles)
		admin.DELETE("/profiles/:id", h.AdminDeleteProfile)

		admin.GET("/reviews", h.AdminListReviews)
		admin.DELETE("/reviews/:id", h.AdminDeleteReview)

		admin.GET("/destinations", h.ListDestinations)
		admin.POST("/destinations", h.AdminSaveDestination)
		admin.PUT("/destinations/:id", h.AdminSaveDestination)
		admin.DELETE("/destinations/:id", h.AdminDeleteDestination)
		admin.POST("/images", h.AdminUploadImage)
	}
}

// fail переводит ошибку сервиса в HTTP-ответ.
func (h *Handler) fail(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	default:
		h.log.Error("ошибка обработки запроса",
			zap.String("method", c.Request.Method), zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
}
