package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/hourslot/booking-api/internal/audit"
	"github.com/hourslot/booking-api/internal/config"
	"github.com/hourslot/booking-api/internal/handlers"
	infraRepo "github.com/hourslot/booking-api/internal/infra/repository"
	"github.com/hourslot/booking-api/internal/middleware"
	ucBooking "github.com/hourslot/booking-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)
	identityRepo := infraRepo.NewIdentityGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
	)

	listUserBookingsUC := ucBooking.NewListUserBookings(
		bookingRepo,
	)

	deleteBookingUC := ucBooking.NewDeleteBooking(
		bookingRepo,
		auditDispatcher,
	)

	dayViewUC := ucBooking.NewDayView(
		bookingRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(identityRepo, cfg)

	appointmentHandler := handlers.NewAppointmentHandler(
		createBookingUC,
		listUserBookingsUC,
		deleteBookingUC,
		rdb,
	)

	calendarHandler := handlers.NewCalendarHandler(dayViewUC, rdb)
	serviceHandler := handlers.NewServiceHandler(catalogRepo, auditDispatcher, rdb)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/services", serviceHandler.List)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", authHandler.GetMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListMine)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			secured.GET("/calendar", calendarHandler.DayView)

			// ------------------------------
			// CATALOG (ADMIN)
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				admin.POST("/services", serviceHandler.Create)
				admin.DELETE("/services/:id", serviceHandler.Delete)
			}
		}
	}
}
