package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "erp_vendas/docs"
	"erp_vendas/internal/adapter/http/handlers"
	"erp_vendas/internal/adapter/http/middleware"
	"erp_vendas/internal/adapter/persistence/repository"
	"erp_vendas/internal/config"
	"erp_vendas/internal/infrastructure/database"
	"erp_vendas/internal/infrastructure/spreadsheet"
	"erp_vendas/internal/logger"
	"erp_vendas/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownGrace = 10 * time.Second

// Handlers groups every HTTP handler mounted under /api.
type Handlers struct {
	Materials    *handlers.MaterialHandler
	Clients      *handlers.ClientHandler
	Orders       *handlers.OrderHandler
	Invoices     *handlers.InvoiceHandler
	Installments *handlers.InstallmentHandler
	Goals        *handlers.GoalHandler
	Reports      *handlers.ReportHandler
}

// Run serves the API until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg *config.Config) error {
	log := logger.WithComponent("http.server")

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return err
	}
	store := repository.NewStore(ddb, repository.TablesFromEnv(), cfg.StorageTimeout)

	gin.SetMode(cfg.GinMode)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(cfg, getHandlers(store), log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// getHandlers wires repositories into use cases and use cases into handlers.
func getHandlers(store *repository.Store) Handlers {
	clientRepo := repository.NewClientDynamoRepository(store)
	materialRepo := repository.NewMaterialDynamoRepository(store)
	orderRepo := repository.NewOrderDynamoRepository(store)
	invoiceRepo := repository.NewInvoiceDynamoRepository(store)
	installmentRepo := repository.NewInstallmentDynamoRepository(store)
	goalRepo := repository.NewGoalDynamoRepository(store)

	installmentUseCase := usecase.NewInstallmentUseCase(installmentRepo, invoiceRepo, orderRepo, materialRepo, nil)
	materialUseCase := usecase.NewMaterialUseCase(materialRepo, orderRepo, installmentUseCase, nil)
	clientUseCase := usecase.NewClientUseCase(clientRepo, orderRepo, nil)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, clientRepo, materialRepo, invoiceRepo, nil)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, orderRepo, materialRepo, installmentRepo, nil)
	goalUseCase := usecase.NewGoalUseCase(goalRepo, clientRepo, nil)
	reportUseCase := usecase.NewReportUseCase(usecase.ReportSources{
		Clients:      clientRepo,
		Materials:    materialRepo,
		Orders:       orderRepo,
		Invoices:     invoiceRepo,
		Installments: installmentRepo,
		Goals:        goalRepo,
	}, spreadsheet.NewCommissionExporter(), nil)

	return Handlers{
		Materials:    handlers.NewMaterialHandler(materialUseCase),
		Clients:      handlers.NewClientHandler(clientUseCase),
		Orders:       handlers.NewOrderHandler(orderUseCase),
		Invoices:     handlers.NewInvoiceHandler(invoiceUseCase),
		Installments: handlers.NewInstallmentHandler(installmentUseCase),
		Goals:        handlers.NewGoalHandler(goalUseCase),
		Reports:      handlers.NewReportHandler(reportUseCase),
	}
}

// NewRouter builds the engine: public ping and swagger, everything else behind
// the bearer token.
func NewRouter(cfg *config.Config, h Handlers, log zerolog.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	addPingRoutes(api)

	secured := api.Group("", middleware.Authenticate(cfg.JWTSecret))
	admin := middleware.RequireAdmin()
	addCatalogRoutes(secured, admin, h)
	addSalesRoutes(secured, admin, h)
	addReportRoutes(secured, admin, h)
	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, log zerolog.Logger) {
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	corsCfg.AddAllowHeaders("Authorization")
	corsCfg.AddExposeHeaders("Content-Disposition")
	router.Use(cors.New(corsCfg))

	router.Use(middleware.Timeout(cfg.RequestTimeout))
}
