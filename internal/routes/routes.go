package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Pastormerlo/pilates-sistema/internal/audit"
	"github.com/Pastormerlo/pilates-sistema/internal/branding"
	"github.com/Pastormerlo/pilates-sistema/internal/config"
	"github.com/Pastormerlo/pilates-sistema/internal/handlers"
	infraRepo "github.com/Pastormerlo/pilates-sistema/internal/infra/repository"
	"github.com/Pastormerlo/pilates-sistema/internal/infra/storage"
	"github.com/Pastormerlo/pilates-sistema/internal/middleware"
	"github.com/Pastormerlo/pilates-sistema/internal/payments"
	ucSchedule "github.com/Pastormerlo/pilates-sistema/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	rdb := branding.NewRedisClient(cfg)
	brandingCache := branding.NewCache(rdb, db)

	logoStore := storage.NewLogoStore(cfg)
	if logoStore == nil {
		log.Println("logo storage deshabilitado (S3 sin configurar)")
	}

	linkBuilder, err := payments.NewLinkBuilder(cfg.MPAccessToken)
	if err != nil {
		log.Printf("mercadopago deshabilitado: %v", err)
	}

	// ======================================================
	// USE CASES — AGENDA
	// ======================================================
	buildWeekUC := ucSchedule.NewBuildWeek(appointmentRepo)

	insertSlotUC := ucSchedule.NewInsertSlot(
		appointmentRepo,
		auditDispatcher,
	)

	moveSlotUC := ucSchedule.NewMoveSlot(
		appointmentRepo,
		auditDispatcher,
	)

	deleteSlotUC := ucSchedule.NewDeleteSlot(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	studioHandler := handlers.NewStudioHandler(db, logoStore, brandingCache)

	clientHandler := handlers.NewClientHandler(db)
	paymentHandler := handlers.NewPaymentHandler(db, linkBuilder)

	scheduleHandler := handlers.NewScheduleHandler(
		appointmentRepo,
		buildWeekUC,
		insertSlotUC,
		moveSlotUC,
		deleteSlotUC,
	)

	brandingHandler := handlers.NewBrandingHandler(brandingCache)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/branding", brandingHandler.Get)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/studio", studioHandler.GetMeStudio)
			secured.PATCH("/me/studio", studioHandler.UpdateMeStudio)
			secured.POST("/me/studio/logo", studioHandler.UploadLogo)

			secured.GET("/me/alumnos", clientHandler.List)
			secured.POST("/me/alumnos", clientHandler.Create)
			secured.PATCH("/me/alumnos/:id", clientHandler.Update)
			secured.DELETE("/me/alumnos/:id", clientHandler.Delete)

			// ------------------------------
			// AGENDA
			// ------------------------------
			secured.GET("/me/agenda", scheduleHandler.Week)
			secured.POST("/me/agenda/turnos", scheduleHandler.Create)
			secured.GET("/me/agenda/turnos/:id", scheduleHandler.Get)
			secured.PATCH("/me/agenda/turnos/:id", scheduleHandler.Move)
			secured.DELETE("/me/agenda/turnos/:id", scheduleHandler.Delete)

			// ------------------------------
			// PAGOS
			// ------------------------------
			secured.GET("/me/pagos", paymentHandler.List)
			secured.POST("/me/pagos", paymentHandler.Create)
			secured.DELETE("/me/pagos/:id", paymentHandler.Delete)
			secured.GET("/me/pagos/resumen", paymentHandler.Summary)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
