package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/pizzaria/backend/internal/application/catalog"
	financeapp "github.com/pizzaria/backend/internal/application/finance"
	fiscalapp "github.com/pizzaria/backend/internal/application/fiscal"
	geoapp "github.com/pizzaria/backend/internal/application/geo"
	partnerapp "github.com/pizzaria/backend/internal/application/partner"
	"github.com/pizzaria/backend/internal/infrastructure/config"
	"github.com/pizzaria/backend/internal/infrastructure/logger"
	"github.com/pizzaria/backend/internal/infrastructure/persistence"
	"github.com/pizzaria/backend/internal/interfaces/http/handler"
	"github.com/pizzaria/backend/internal/interfaces/http/middleware"
	"github.com/pizzaria/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/pizzaria/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Pizzaria Backend API
//	@version		1.0
//	@description	Back-office API for the pizzeria distribution business: registries, fiscal invoices and accounts payable/receivable.

//	@contact.name	API Support
//	@contact.url	https://github.com/pizzaria/backend

//	@license.name	MIT

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Pizzaria Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	countryRepo := persistence.NewGormCountryRepository(db.DB)
	stateRepo := persistence.NewGormStateRepository(db.DB)
	cityRepo := persistence.NewGormCityRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	carrierRepo := persistence.NewGormCarrierRepository(db.DB)
	vehicleRepo := persistence.NewGormVehicleRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	methodRepo := persistence.NewGormPaymentMethodRepository(db.DB)
	conditionRepo := persistence.NewGormPaymentConditionRepository(db.DB)
	payableRepo := persistence.NewGormAccountPayableRepository(db.DB)
	receivableRepo := persistence.NewGormAccountReceivableRepository(db.DB)
	entryInvoiceRepo := persistence.NewGormEntryInvoiceRepository(db.DB)
	exitInvoiceRepo := persistence.NewGormExitInvoiceRepository(db.DB)

	// Initialize application services
	countryService := geoapp.NewCountryService(countryRepo)
	stateService := geoapp.NewStateService(stateRepo, countryRepo)
	cityService := geoapp.NewCityService(cityRepo, stateRepo, countryRepo)
	clientService := partnerapp.NewClientService(clientRepo, cityRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo, cityRepo)
	carrierService := partnerapp.NewCarrierService(carrierRepo)
	vehicleService := partnerapp.NewVehicleService(vehicleRepo, carrierRepo)
	productService := catalogapp.NewProductService(productRepo)
	methodService := financeapp.NewPaymentMethodService(methodRepo)
	conditionService := financeapp.NewPaymentConditionService(conditionRepo, methodRepo)
	payableService := financeapp.NewAccountPayableService(payableRepo, supplierRepo, methodRepo, conditionRepo)
	receivableService := financeapp.NewAccountReceivableService(receivableRepo, clientRepo, methodRepo, conditionRepo)
	entryInvoiceService := fiscalapp.NewEntryInvoiceService(entryInvoiceRepo, supplierRepo, productRepo, conditionRepo)
	exitInvoiceService := fiscalapp.NewExitInvoiceService(exitInvoiceRepo, clientRepo, carrierRepo, vehicleRepo, productRepo, conditionRepo)

	// Initialize HTTP handlers
	countryHandler := handler.NewCountryHandler(countryService)
	stateHandler := handler.NewStateHandler(stateService)
	cityHandler := handler.NewCityHandler(cityService)
	clientHandler := handler.NewClientHandler(clientService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	carrierHandler := handler.NewCarrierHandler(carrierService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	productHandler := handler.NewProductHandler(productService)
	methodHandler := handler.NewPaymentMethodHandler(methodService)
	conditionHandler := handler.NewPaymentConditionHandler(conditionService)
	payableHandler := handler.NewAccountPayableHandler(payableService)
	receivableHandler := handler.NewAccountReceivableHandler(receivableService)
	entryInvoiceHandler := handler.NewEntryInvoiceHandler(entryInvoiceService)
	exitInvoiceHandler := handler.NewExitInvoiceHandler(exitInvoiceService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID first so everything downstream can log it
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS())

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Swagger documentation endpoint
	if cfg.Swagger.Enabled {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Geo domain (countries, states, cities)
	geoRoutes := router.NewDomainGroup("geo", "/geo")
	geoRoutes.POST("/countries", countryHandler.Create)
	geoRoutes.GET("/countries", countryHandler.List)
	geoRoutes.GET("/countries/:id", countryHandler.GetByID)
	geoRoutes.GET("/countries/:id/states", stateHandler.ListByCountry)
	geoRoutes.PUT("/countries/:id", countryHandler.Update)
	geoRoutes.DELETE("/countries/:id", countryHandler.Delete)

	geoRoutes.POST("/states", stateHandler.Create)
	geoRoutes.GET("/states", stateHandler.List)
	geoRoutes.GET("/states/:id", stateHandler.GetByID)
	geoRoutes.GET("/states/:id/cities", cityHandler.ListByState)
	geoRoutes.PUT("/states/:id", stateHandler.Update)
	geoRoutes.DELETE("/states/:id", stateHandler.Delete)

	geoRoutes.POST("/cities", cityHandler.Create)
	geoRoutes.GET("/cities", cityHandler.List)
	geoRoutes.GET("/cities/:id", cityHandler.GetByID)
	geoRoutes.PUT("/cities/:id", cityHandler.Update)
	geoRoutes.DELETE("/cities/:id", cityHandler.Delete)

	// Partner domain (clients, suppliers, carriers, vehicles)
	partnerRoutes := router.NewDomainGroup("partner", "/partner")
	partnerRoutes.POST("/clients", clientHandler.Create)
	partnerRoutes.GET("/clients", clientHandler.List)
	partnerRoutes.GET("/clients/active", clientHandler.ListActive)
	partnerRoutes.GET("/clients/code/:code", clientHandler.GetByCode)
	partnerRoutes.GET("/clients/:id", clientHandler.GetByID)
	partnerRoutes.PUT("/clients/:id", clientHandler.Update)
	partnerRoutes.POST("/clients/:id/activate", clientHandler.Activate)
	partnerRoutes.POST("/clients/:id/deactivate", clientHandler.Deactivate)
	partnerRoutes.DELETE("/clients/:id", clientHandler.Delete)

	partnerRoutes.POST("/suppliers", supplierHandler.Create)
	partnerRoutes.GET("/suppliers", supplierHandler.List)
	partnerRoutes.GET("/suppliers/active", supplierHandler.ListActive)
	partnerRoutes.GET("/suppliers/code/:code", supplierHandler.GetByCode)
	partnerRoutes.GET("/suppliers/:id", supplierHandler.GetByID)
	partnerRoutes.PUT("/suppliers/:id", supplierHandler.Update)
	partnerRoutes.POST("/suppliers/:id/activate", supplierHandler.Activate)
	partnerRoutes.POST("/suppliers/:id/deactivate", supplierHandler.Deactivate)
	partnerRoutes.DELETE("/suppliers/:id", supplierHandler.Delete)

	partnerRoutes.POST("/carriers", carrierHandler.Create)
	partnerRoutes.GET("/carriers", carrierHandler.List)
	partnerRoutes.GET("/carriers/:id", carrierHandler.GetByID)
	partnerRoutes.GET("/carriers/:id/vehicles", vehicleHandler.ListByCarrier)
	partnerRoutes.PUT("/carriers/:id", carrierHandler.Update)
	partnerRoutes.POST("/carriers/:id/activate", carrierHandler.Activate)
	partnerRoutes.POST("/carriers/:id/deactivate", carrierHandler.Deactivate)
	partnerRoutes.DELETE("/carriers/:id", carrierHandler.Delete)

	partnerRoutes.POST("/vehicles", vehicleHandler.Create)
	partnerRoutes.GET("/vehicles", vehicleHandler.List)
	partnerRoutes.GET("/vehicles/plate/:plate", vehicleHandler.GetByPlate)
	partnerRoutes.GET("/vehicles/:id", vehicleHandler.GetByID)
	partnerRoutes.PUT("/vehicles/:id", vehicleHandler.Update)
	partnerRoutes.POST("/vehicles/:id/activate", vehicleHandler.Activate)
	partnerRoutes.POST("/vehicles/:id/deactivate", vehicleHandler.Deactivate)
	partnerRoutes.DELETE("/vehicles/:id", vehicleHandler.Delete)

	// Catalog domain (products)
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.POST("/products", productHandler.Create)
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.GET("/products/active", productHandler.ListActive)
	catalogRoutes.GET("/products/code/:code", productHandler.GetByCode)
	catalogRoutes.GET("/products/:id", productHandler.GetByID)
	catalogRoutes.PUT("/products/:id", productHandler.Update)
	catalogRoutes.POST("/products/:id/adjust-stock", productHandler.AdjustStock)
	catalogRoutes.POST("/products/:id/activate", productHandler.Activate)
	catalogRoutes.POST("/products/:id/deactivate", productHandler.Deactivate)
	catalogRoutes.DELETE("/products/:id", productHandler.Delete)

	// Finance domain (payment methods, conditions, payables, receivables)
	financeRoutes := router.NewDomainGroup("finance", "/finance")
	financeRoutes.POST("/payment-methods", methodHandler.Create)
	financeRoutes.GET("/payment-methods", methodHandler.List)
	financeRoutes.GET("/payment-methods/:id", methodHandler.GetByID)
	financeRoutes.PUT("/payment-methods/:id", methodHandler.Update)
	financeRoutes.POST("/payment-methods/:id/activate", methodHandler.Activate)
	financeRoutes.POST("/payment-methods/:id/deactivate", methodHandler.Deactivate)
	financeRoutes.DELETE("/payment-methods/:id", methodHandler.Delete)

	financeRoutes.POST("/payment-conditions", conditionHandler.Create)
	financeRoutes.GET("/payment-conditions", conditionHandler.List)
	financeRoutes.GET("/payment-conditions/:id", conditionHandler.GetByID)
	financeRoutes.PUT("/payment-conditions/:id", conditionHandler.Update)
	financeRoutes.POST("/payment-conditions/:id/simulate", conditionHandler.Simulate)
	financeRoutes.POST("/payment-conditions/:id/activate", conditionHandler.Activate)
	financeRoutes.POST("/payment-conditions/:id/deactivate", conditionHandler.Deactivate)
	financeRoutes.DELETE("/payment-conditions/:id", conditionHandler.Delete)

	financeRoutes.POST("/payables", payableHandler.Create)
	financeRoutes.POST("/payables/generate", payableHandler.Generate)
	financeRoutes.GET("/payables", payableHandler.List)
	financeRoutes.GET("/payables/overdue", payableHandler.ListOverdue)
	financeRoutes.GET("/payables/summary", payableHandler.Summary)
	financeRoutes.GET("/payables/status/:status", payableHandler.ListByStatus)
	financeRoutes.GET("/payables/supplier/:supplier_id", payableHandler.ListBySupplier)
	financeRoutes.GET("/payables/:id", payableHandler.GetByID)
	financeRoutes.PUT("/payables/:id", payableHandler.Update)
	financeRoutes.POST("/payables/:id/pay", payableHandler.Pay)
	financeRoutes.POST("/payables/:id/cancel", payableHandler.Cancel)
	financeRoutes.DELETE("/payables/:id", payableHandler.Delete)

	financeRoutes.POST("/receivables", receivableHandler.Create)
	financeRoutes.POST("/receivables/generate", receivableHandler.Generate)
	financeRoutes.GET("/receivables", receivableHandler.List)
	financeRoutes.GET("/receivables/overdue", receivableHandler.ListOverdue)
	financeRoutes.GET("/receivables/summary", receivableHandler.Summary)
	financeRoutes.GET("/receivables/status/:status", receivableHandler.ListByStatus)
	financeRoutes.GET("/receivables/client/:client_id", receivableHandler.ListByClient)
	financeRoutes.GET("/receivables/:id", receivableHandler.GetByID)
	financeRoutes.PUT("/receivables/:id", receivableHandler.Update)
	financeRoutes.POST("/receivables/:id/receive", receivableHandler.Receive)
	financeRoutes.POST("/receivables/:id/cancel", receivableHandler.Cancel)
	financeRoutes.DELETE("/receivables/:id", receivableHandler.Delete)

	// Fiscal domain (entry and exit invoices, composite NFe keys)
	fiscalRoutes := router.NewDomainGroup("fiscal", "/fiscal")
	fiscalRoutes.POST("/entry-invoices", entryInvoiceHandler.Create)
	fiscalRoutes.GET("/entry-invoices", entryInvoiceHandler.List)
	fiscalRoutes.GET("/entry-invoices/supplier/:supplier_id", entryInvoiceHandler.ListBySupplier)
	fiscalRoutes.GET("/entry-invoices/:number/:model/:series/:supplier_id", entryInvoiceHandler.GetByKey)
	fiscalRoutes.PUT("/entry-invoices/:number/:model/:series/:supplier_id", entryInvoiceHandler.Update)
	fiscalRoutes.DELETE("/entry-invoices/:number/:model/:series/:supplier_id", entryInvoiceHandler.Delete)

	fiscalRoutes.POST("/exit-invoices", exitInvoiceHandler.Create)
	fiscalRoutes.GET("/exit-invoices", exitInvoiceHandler.List)
	fiscalRoutes.GET("/exit-invoices/client/:client_id", exitInvoiceHandler.ListByClient)
	fiscalRoutes.GET("/exit-invoices/:number/:model/:series/:client_id", exitInvoiceHandler.GetByKey)
	fiscalRoutes.PUT("/exit-invoices/:number/:model/:series/:client_id", exitInvoiceHandler.Update)
	fiscalRoutes.DELETE("/exit-invoices/:number/:model/:series/:client_id", exitInvoiceHandler.Delete)

	// Register all domain groups
	r.Register(geoRoutes).
		Register(partnerRoutes).
		Register(catalogRoutes).
		Register(financeRoutes).
		Register(fiscalRoutes)

	r.Setup()

	// Simple ping for load balancer checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
