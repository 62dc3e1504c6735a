package cmd

import (
	"context"
	"fmt"

	"brick-manager/core/cache"
	"brick-manager/core/catalogapi"
	"brick-manager/core/config"
	"brick-manager/core/database"
	"brick-manager/core/logger"
	"brick-manager/feature/catalog"
	"brick-manager/feature/validate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var validateSourceID string

// validateCmd runs a single mapping validation against the live catalog.
var validateCmd = &cobra.Command{
	Use:   "validate <rb-part-id> <bl-part-id>",
	Short: "Validate one part mapping against the catalog",
	Long: `Probe the catalog for a stored BrickLink part ID and repair the mapping
table when a better candidate exists.

Examples:
  # Check the stored mapping for source part 3957a
  validate 3957a 3957b

  # Supply the raw source ID used to derive fallback candidates
  validate 3957a 9999 --source 3957a`,
	Args: cobra.ExactArgs(2),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateSourceID, "source", "", "Source catalog part ID used for fallback candidates (defaults to the first argument)")
	RootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	store := catalog.NewStore(db, l)
	provider := catalog.NewContextProvider(store, mappingContextTTL)
	service := validate.NewService(catalogapi.NewClient(cfg.CatalogAPI), store, provider, cache.New[string, bool](existsCacheSize), l)

	source := validateSourceID
	if source == "" {
		source = args[0]
	}

	resp, err := service.Validate(ctx, validate.Request{RBPartID: source, BLPartID: args[1]})
	if err != nil {
		return err
	}

	// The repair write runs detached; wait for it before exiting.
	service.Drain()

	if resp.ValidID == nil {
		l.Warn("No valid candidate found", zap.String("bl_part_id", args[1]))
		return nil
	}

	l.Info("Validation result",
		zap.String("valid_id", *resp.ValidID),
		zap.Bool("corrected", resp.Corrected),
	)
	return nil
}
