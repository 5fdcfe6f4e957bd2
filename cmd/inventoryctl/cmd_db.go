package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/Andres06271/inventory-system-backend/internal/application/dto"
	"github.com/Andres06271/inventory-system-backend/internal/application/usecase"
	"github.com/Andres06271/inventory-system-backend/internal/domain"
	"github.com/Andres06271/inventory-system-backend/internal/domain/entity"
	"github.com/Andres06271/inventory-system-backend/internal/infrastructure/postgres"
	"github.com/Andres06271/inventory-system-backend/pkg/config"
	"github.com/Andres06271/inventory-system-backend/pkg/logger"
)

// newMigrateCmd aplica las migraciones pendientes.
func newMigrateCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones pendientes del esquema",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			applied, err := postgres.NewMigrator(pool).Apply(ctx)
			if err != nil {
				return err
			}
			log.Info().Int("applied", applied).Msg("migraciones aplicadas")
			return nil
		},
	}
}

// newMigrateStatusCmd muestra el estado de cada migración.
func newMigrateStatusCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:status",
		Short: "Muestra qué migraciones están aplicadas",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			statuses, err := postgres.NewMigrator(pool).Status(ctx)
			if err != nil {
				return err
			}
			for _, s := range statuses {
				ev := log.Info().Str("version", s.Version).Bool("applied", s.Applied)
				if s.AppliedAt != nil {
					ev = ev.Time("applied_at", *s.AppliedAt)
				}
				ev.Msg("migración")
			}
			return nil
		},
	}
}

// newSeedCmd crea los roles base y el usuario administrador inicial.
// Idempotente: se puede ejecutar varias veces sin duplicar nada.
func newSeedCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Crea roles base y el usuario administrador inicial",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			roleRepo := postgres.NewRoleRepository(pool)
			userRepo := postgres.NewUserRepository(pool)
			roleUC := usecase.NewRoleUseCase(roleRepo)
			userUC := usecase.NewUserUseCase(userRepo, roleRepo)

			seedRoles := []dto.CreateRoleRequest{
				{Name: entity.RoleAdmin, Description: strPtr("Acceso total al sistema")},
				{Name: entity.RoleVendedor, Description: strPtr("Registra ventas y abonos")},
				{Name: entity.RoleBodeguero, Description: strPtr("Gestiona inventario y movimientos")},
			}
			for _, r := range seedRoles {
				if _, err := roleUC.Create(r); err != nil {
					if errors.Is(err, domain.ErrDuplicate) {
						log.Debug().Str("role", r.Name).Msg("rol ya existe")
						continue
					}
					return err
				}
				log.Info().Str("role", r.Name).Msg("rol creado")
			}

			if cfg.Seed.AdminPassword == "" {
				log.Warn().Msg("SEED_ADMIN_PASSWORD vacío: se omite el usuario administrador")
				return nil
			}
			admin, err := roleRepo.GetByName(entity.RoleAdmin)
			if err != nil {
				return err
			}
			_, err = userUC.Create(dto.CreateUserRequest{
				FullName: cfg.Seed.AdminName,
				Email:    cfg.Seed.AdminEmail,
				Password: cfg.Seed.AdminPassword,
				RoleID:   admin.ID,
			})
			if err != nil {
				if errors.Is(err, domain.ErrEmailAlreadyExists) {
					log.Debug().Str("email", cfg.Seed.AdminEmail).Msg("administrador ya existe")
					return nil
				}
				return err
			}
			log.Info().Str("email", cfg.Seed.AdminEmail).Msg("administrador creado")
			return nil
		},
	}
}

func strPtr(s string) *string { return &s }
