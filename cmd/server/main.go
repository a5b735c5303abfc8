package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"crud-backend/internal/config"
	"crud-backend/internal/database"
	"crud-backend/internal/router"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config yüklenemedi")
	}
	setupLogger(cfg)

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("veritabanına bağlanılamadı")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration başarısız")
	}

	app := router.New(cfg, db)

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("Server çalışıyor")
		if err := app.Listen(":" + cfg.HTTPPort); err != nil {
			log.Fatal().Err(err).Msg("server hatası")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server kapatılıyor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown hatası")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// setupLogger: development'ta okunabilir konsol, production'da JSON
func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
