package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/handlers"
	"github.com/mmlabtech/lims_backend/middlewares"
	"github.com/mmlabtech/lims_backend/models"
	"github.com/sirupsen/logrus"
)

const defaultPort = "8080"

func main() {
	logger := config.GetLogger()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	if strings.EqualFold(os.Getenv("GIN_MODE"), "release") {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(customErrorLogger(logger))

	corsConfig := cors.DefaultConfig()
	if origins := splitAndTrim(os.Getenv("CORS_ALLOWED_ORIGINS")); len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	// Public surface.
	r.POST("/auth/login", handlers.Login)
	r.GET("/verify/:code", handlers.VerifyCertificate)

	api := r.Group("/api", middlewares.AuthMiddleware(), middlewares.RequireAuth())
	admin := middlewares.RequireRole(string(models.UserRoleAdmin))

	api.POST("/auth/register", admin, handlers.Register)
	api.GET("/users", admin, handlers.ListUsers)
	api.POST("/users/:id/deactivate", admin, handlers.DeactivateUser)

	api.GET("/sections", handlers.ListSections)
	api.GET("/sections/:id", handlers.GetSection)
	api.POST("/sections", admin, handlers.CreateSection)
	api.PUT("/sections/:id", admin, handlers.UpdateSection)
	api.DELETE("/sections/:id", admin, handlers.DeleteSection)

	api.GET("/patients", handlers.ListPatients)
	api.GET("/patients/:id", handlers.GetPatient)
	api.POST("/patients", handlers.CreatePatient)
	api.PUT("/patients/:id", handlers.UpdatePatient)
	api.DELETE("/patients/:id", admin, handlers.DeletePatient)

	api.GET("/tests", handlers.ListLabTests)
	api.GET("/tests/:id", handlers.GetLabTest)
	api.GET("/tests/:id/price-history", handlers.ListTestPriceHistory)
	api.POST("/tests", admin, handlers.CreateLabTest)
	api.PUT("/tests/:id", admin, handlers.UpdateLabTest)
	api.DELETE("/tests/:id", admin, handlers.DeleteLabTest)

	api.GET("/equipment", handlers.ListEquipment)
	api.GET("/equipment/:id", handlers.GetEquipment)
	api.POST("/equipment", handlers.CreateEquipment)
	api.PUT("/equipment/:id", handlers.UpdateEquipment)
	api.DELETE("/equipment/:id", admin, handlers.DeleteEquipment)

	api.GET("/calibrations", handlers.ListCalibrationRecords)
	api.POST("/calibrations", handlers.CreateCalibrationRecord)
	api.PUT("/calibrations/:id", handlers.UpdateCalibrationRecord)
	api.DELETE("/calibrations/:id", admin, handlers.DeleteCalibrationRecord)

	api.GET("/items", handlers.ListItems)
	api.GET("/items/:id", handlers.GetItem)
	api.GET("/items/:id/stock", handlers.GetItemStock)
	api.POST("/items", handlers.CreateItem)
	api.PUT("/items/:id", handlers.UpdateItem)
	api.DELETE("/items/:id", admin, handlers.DeleteItem)

	api.GET("/stock-ins", handlers.ListStockIns)
	api.POST("/stock-ins", handlers.CreateStockIn)
	api.GET("/stock-outs", handlers.ListStockOuts)
	api.POST("/stock-outs", handlers.CreateStockOut)

	api.GET("/results", handlers.ListLabResults)
	api.POST("/results", handlers.CreateLabResult)
	api.PUT("/results/:id", handlers.UpdateLabResult)
	api.DELETE("/results/:id", handlers.DeleteLabResult)

	api.GET("/transactions", handlers.ListTransactions)
	api.GET("/transactions/:id", handlers.GetTransaction)
	api.POST("/transactions", handlers.CreateTransaction)
	api.POST("/transactions/:id/status", handlers.SetTransactionStatus)

	api.GET("/certificates", handlers.ListCertificates)
	api.POST("/certificates", handlers.CreateCertificate)
	api.POST("/certificates/:id/issue", handlers.IssueCertificate)
	api.POST("/certificates/:id/revoke", handlers.RevokeCertificate)

	api.GET("/activity-logs", admin, handlers.ListActivityLogs)

	api.GET("/reports", handlers.GetReport)
	api.GET("/reports/export", handlers.ExportReport)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- srv.ListenAndServe()
	}()

	// Connect after the listener is up so health checks pass while the
	// database is still coming online.
	config.ConnectDatabaseWithRetry()
	models.MigrateTable()

	logger.WithFields(logrus.Fields{
		"port": port,
	}).Info("server started")

	select {
	case <-sigCtx.Done():
		// graceful shutdown below
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithFields(logrus.Fields{"field": "http"}).Error("server stopped unexpectedly: " + err.Error())
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithFields(logrus.Fields{"field": "http"}).Error("graceful shutdown failed: " + err.Error())
	}
}

// customErrorLogger is a custom Gin middleware that logs only errors
func customErrorLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			logger.Error(c.Errors.String())
		}
	}
}

func splitAndTrim(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
