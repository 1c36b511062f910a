package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eveshield-be/internal/bootstrap"
	"eveshield-be/internal/config"
	"eveshield-be/internal/server"
	"eveshield-be/internal/tracer"
	"eveshield-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.Options{Quiet: cfg.IsProduction()})
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(gormDB, cfg)
	if err != nil {
		log.Fatalf("Unable to build container: %v", err)
	}
	defer container.Close()
	defer container.Logger.Sync()

	shutdownTracer := tracer.InitTracer(cfg.Otel, container.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Start Background Services
	if err := container.ConsumerService.Consume(ctx); err != nil {
		container.Logger.Error("BOOT", "Report alert consumer failed to start", map[string]interface{}{"error": err.Error()})
	}
	if err := container.NotificationService.Start(ctx); err != nil {
		container.Logger.Error("BOOT", "Staff notifier failed to start", map[string]interface{}{"error": err.Error()})
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			container.Logger.Error("HTTP", "Graceful shutdown failed", map[string]interface{}{"error": err.Error()})
		}
		_ = shutdownTracer(shutdownCtx)
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		container.Logger.Error("HTTP", "Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
