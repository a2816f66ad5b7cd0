package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/vacation-hub/internal/config"
	"github.com/username/vacation-hub/internal/repository"
	"github.com/username/vacation-hub/internal/repository/jsonfile"
	"github.com/username/vacation-hub/internal/repository/postgres"
)

func migrateCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy team.json and vacations.json into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if dataDir == "" {
				dataDir = cfg.Storage.DataDir
			}

			src := jsonfile.New(dataDir, logger)
			if err := src.OnStart(ctx); err != nil {
				return fmt.Errorf("failed to open %s: %w", dataDir, err)
			}

			dst := postgres.New(ctx, logger, cfg)
			if err := dst.OnStart(ctx); err != nil {
				return fmt.Errorf("failed to connect to postgres: %w", err)
			}
			defer func() {
				if err := dst.OnStop(context.Background()); err != nil {
					logger.Warn("Failed to close postgres", zap.Error(err))
				}
			}()

			res, err := repository.Copy(ctx, src, dst, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✅ Migration completed\n")
			fmt.Fprintf(out, "  Members:   %d copied, %d already present\n", res.MembersCopied, res.MembersSkipped)
			fmt.Fprintf(out, "  Vacations: %d copied, %d already present\n", res.VacationsCopied, res.VacationsSkipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory with team.json and vacations.json (default: storage.data_dir)")

	return cmd
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var path string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "📝 Default config written to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&path, "path", "config.yaml", "Destination path")

	cmd.AddCommand(initCmd)
	return cmd
}
