// migrate aplica o revierte las migraciones embebidas del esquema de onboarding.
//
// Uso: go run ./cmd/migrate [up|down|version]
// Por defecto ejecuta up. La conexión sale de DATABASE_URL o de DB_HOST, DB_NAME, etc.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/infrastructure/postgres"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/config"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/logger"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Carregar configuração: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("migrate")

	m, err := postgres.NewMigrator(cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("migrator")
	}
	defer m.Close()

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "version":
		v, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			log.Fatal().Err(verr).Msg("versão")
		}
		log.Info().Uint("version", v).Bool("dirty", dirty).Msg("estado do esquema")
		return
	default:
		fmt.Fprintf(os.Stderr, "comando desconhecido %q (use up, down ou version)\n", cmd)
		os.Exit(2)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal().Err(err).Str("cmd", cmd).Msg("migração falhou")
	}
	log.Info().Str("cmd", cmd).Msg("migrações ok")
}
