package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"warbak/trainer-app/internal/api"
	"warbak/trainer-app/internal/config"
	"warbak/trainer-app/internal/repository/sheetrepo"
	"warbak/trainer-app/internal/service"
	"warbak/trainer-app/internal/sheets"
)

func main() {
	log.Println("Starting Trainer App Server...")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := newStore(ctx, cfg.Sheets)
	cancel()
	if err != nil {
		log.Fatalf("FATAL: Could not initialize sheets backend: %v", err)
	}
	log.Printf("Sheets backend ready (%s).", cfg.Sheets.Backend)

	// Create missing sheets and header rows up front; the repositories also
	// do this lazily, but failing here surfaces credential problems at boot.
	initCtx, cancelInit := context.WithTimeout(context.Background(), 1*time.Minute)
	err = sheetrepo.InitializeTables(initCtx, store)
	cancelInit()
	if err != nil {
		log.Fatalf("FATAL: Could not initialize tables: %v", err)
	}
	log.Println("Tables initialized.")

	log.Println("Initializing repositories...")
	clientRepo := sheetrepo.NewClientRepository(store)
	workoutRepo := sheetrepo.NewWorkoutRepository(store)
	trainerRepo := sheetrepo.NewTrainerRepository(store)

	log.Println("Initializing services...")
	authService := service.NewAuthService(trainerRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	clientService := service.NewClientService(clientRepo, workoutRepo)
	workoutService := service.NewWorkoutService(workoutRepo)
	defaultsService := service.NewDefaultsService(workoutRepo)

	router := gin.Default()

	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, clientService, workoutService, defaultsService, store)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

// newStore builds the configured spreadsheet backend.
func newStore(ctx context.Context, cfg config.SheetsConfig) (sheets.Store, error) {
	switch cfg.Backend {
	case config.BackendGoogle:
		if cfg.SpreadsheetID == "" {
			return nil, errors.New("sheets.spreadsheet_id is required for the google backend")
		}
		return sheets.NewGoogleStoreFromCredentialsFile(ctx, cfg.SpreadsheetID, cfg.CredentialsFile)
	case config.BackendExcel:
		return sheets.OpenExcelStore(cfg.ExcelPath)
	default:
		return nil, fmt.Errorf("unknown sheets backend %q", cfg.Backend)
	}
}
