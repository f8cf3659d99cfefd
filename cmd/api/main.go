package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/clinicbase/clinic-api/internal/config"
	"github.com/clinicbase/clinic-api/internal/handler"
	appointmentHandler "github.com/clinicbase/clinic-api/internal/handler/appointment"
	doctorHandler "github.com/clinicbase/clinic-api/internal/handler/doctor"
	patientHandler "github.com/clinicbase/clinic-api/internal/handler/patient"
	"github.com/clinicbase/clinic-api/internal/middleware"
	"github.com/clinicbase/clinic-api/internal/repository/postgres"
	"github.com/clinicbase/clinic-api/internal/router"
	appointmentService "github.com/clinicbase/clinic-api/internal/service/appointment"
	doctorService "github.com/clinicbase/clinic-api/internal/service/doctor"
	patientService "github.com/clinicbase/clinic-api/internal/service/patient"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if cfg.Migrations.Run {
		if err := postgres.RunMigrations(db, cfg.Migrations.Path); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		log.Info().Msg("migrations applied")
	}

	doctorRepo := postgres.NewDoctorRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)

	doctorSvc := doctorService.NewService(doctorRepo)
	patientSvc := patientService.NewService(patientRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, doctorRepo)

	r := router.NewRouter(
		router.Config{
			RateLimitRPS:   cfg.RateLimit.RPS,
			RateLimitBurst: cfg.RateLimit.Burst,
			CORSConfig:     middleware.DefaultCORSConfig(),
			MetricsPrefix:  "clinic_api",
		},
		doctorHandler.NewHandler(doctorSvc),
		patientHandler.NewHandler(patientSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		handler.NewHandler(db),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
