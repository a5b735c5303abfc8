// cmd/seed: varsayılan kullanıcıları oluşturur (email zaten varsa atlar).
package main

import (
	"context"
	"os"
	"time"

	"crud-backend/internal/config"
	"crud-backend/internal/database"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config yüklenemedi")
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("veritabanına bağlanılamadı")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration başarısız")
	}

	n, err := database.SeedUsers(context.Background(), db, database.DefaultUsers)
	if err != nil {
		log.Fatal().Err(err).Msg("seed başarısız")
	}
	log.Info().Int("created", n).Msg("Kullanıcı seed tamamlandı")
}
