package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/paulamunoz06/gestionproyectos/internal/config/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [company|coordinator|student]",
		Short:     "Create or update a service's tables",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: serviceNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(args)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			gdb, err := db.Open(cfg.DB, log)
			if err != nil {
				return err
			}
			if err := db.Migrate(gdb, cfg.Service); err != nil {
				return err
			}
			log.Info("migration complete", zap.String("service", cfg.Service))
			return nil
		},
	}
}
