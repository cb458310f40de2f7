package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/denisok6893-rgb/brew-matching/internal/catalog"
	"github.com/denisok6893-rgb/brew-matching/internal/storage"
)

func importCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import the catalog into a SQLite database",
		Long: `Import the configured catalog into SQLite. Records already present
(by id) are kept as they are, so the command can be re-run safely.

Example:
  brewmatch import --db brew.db --catalog my-catalog.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = cfg.Storage.SQLitePath
			}
			if dbPath == "" {
				return fmt.Errorf("--db is required (or set storage.sqlite_path)")
			}

			cat, err := catalog.Open(cfg.Catalog.Path)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			store, err := storage.OpenSQLite(dbPath)
			if err != nil {
				return fmt.Errorf("open sqlite: %w", err)
			}
			defer func() { _ = store.Close() }()

			ctx := cmd.Context()
			if err := store.EnsureSchema(ctx); err != nil {
				return err
			}
			if err := store.ImportCatalog(ctx, cat); err != nil {
				return err
			}
			n, err := store.CountBeans(ctx)
			if err != nil {
				return err
			}

			logger.Info("catalog imported", zap.String("db", dbPath), zap.Int("beans", n))
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d machines, %d grinders; %d beans stored in %s\n",
				len(cat.Machines), len(cat.Grinders), n, dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path")
	return cmd
}
