package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/inventario-escolar/internal/application/auth"
	"github.com/tu-usuario/inventario-escolar/internal/application/reports"
	"github.com/tu-usuario/inventario-escolar/internal/application/usecase"
	infrapdf "github.com/tu-usuario/inventario-escolar/internal/infrastructure/pdf"
	"github.com/tu-usuario/inventario-escolar/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/inventario-escolar/internal/interfaces/http"
	"github.com/tu-usuario/inventario-escolar/pkg/config"
	"github.com/tu-usuario/inventario-escolar/pkg/logger"
)

const sweepInterval = 24 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios
	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	requestRepo := postgres.NewRequestRepository(pool)
	distributionRepo := postgres.NewDistributionRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	audit := usecase.NewAuditRecorder(auditRepo, log)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, itemRepo, audit)
	itemUC := usecase.NewItemUseCase(itemRepo, categoryRepo, movementRepo, txRunner, audit)
	requestUC := usecase.NewRequestUseCase(requestRepo, itemRepo, audit)
	distributionUC := usecase.NewDistributionUseCase(distributionRepo, txRunner, audit)
	dashboardUC := usecase.NewDashboardUseCase(reportRepo)
	reportsUC := reports.NewUseCase(reportRepo)

	// Export de reportes a PDF + retención de los archivos generados
	renderer := infrapdf.NewMarotoReportRenderer()
	exporter := reports.NewExporter(reportsUC, renderer, cfg.Reports.Dir)
	sweeper := reports.NewSweeper(cfg.Reports.Dir, cfg.Reports.RetentionDays, log)
	go sweeper.Run(ctx, sweepInterval)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Escolar API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		CategoryUC:     categoryUC,
		ItemUC:         itemUC,
		RequestUC:      requestUC,
		DistributionUC: distributionUC,
		DashboardUC:    dashboardUC,
		ReportsUC:      reportsUC,
		Exporter:       exporter,
		Log:            log,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	cancel() // detiene el barrido de retención

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
