package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Andres06271/inventory-system-backend/pkg/config"
	"github.com/Andres06271/inventory-system-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	root := &cobra.Command{
		Use:   "inventoryctl",
		Short: "Herramienta de administración del sistema de inventario",
	}
	root.AddCommand(
		newMigrateCmd(cfg, log),
		newMigrateStatusCmd(cfg, log),
		newSeedCmd(cfg, log),
	)

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("comando falló")
		os.Exit(1)
	}
}
