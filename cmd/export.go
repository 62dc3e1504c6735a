package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"brick-manager/core/config"
	"brick-manager/core/database"
	"brick-manager/core/logger"
	"brick-manager/feature/catalog"
	"brick-manager/feature/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportFormat    string
	exportSet       string
	exportRowsFile  string
	exportOutFile   string
	exportBOM       bool
	exportMinifigs  bool
	exportCondition string
)

// exportCmd renders a manifest offline, without the HTTP server.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a shortage manifest from a rows file",
	Long: `Render an import-ready CSV manifest from a JSON file of shortage rows.

The rows file holds an array of shortage rows as produced by the inventory
computation, e.g.:

  [{"part_id": "3001", "color_id": 4, "quantity_missing": 3}]

Examples:
  # BrickLink wanted list to stdout
  export --format bricklink --rows shortage.json

  # Element manifest with BOM, written to a file
  export --format element --rows shortage.json --bom --out manifest.csv`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", export.FormatBricklink, "Manifest format (rebrickable, bricklink, element)")
	exportCmd.Flags().StringVar(&exportSet, "set", "", "Set number the shortage belongs to")
	exportCmd.Flags().StringVar(&exportRowsFile, "rows", "", "Path to the JSON shortage rows file (required)")
	exportCmd.Flags().StringVar(&exportOutFile, "out", "", "Write the CSV here instead of stdout")
	exportCmd.Flags().BoolVar(&exportBOM, "bom", false, "Prefix the CSV with a UTF-8 byte-order mark")
	exportCmd.Flags().BoolVar(&exportMinifigs, "minifigs", false, "Include whole-unit minifig lines (rebrickable only)")
	exportCmd.Flags().StringVar(&exportCondition, "condition", "", "Wanted-list condition column (bricklink only)")
	_ = exportCmd.MarkFlagRequired("rows")

	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	raw, err := os.ReadFile(exportRowsFile)
	if err != nil {
		return fmt.Errorf("failed to read rows file: %w", err)
	}

	var rows []export.MissingRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return fmt.Errorf("failed to parse rows file: %w", err)
	}

	// The mapping database is optional here: without it, rows lacking a
	// precomputed identity simply land in the unmapped remainder.
	var provider *catalog.ContextProvider
	if db, err := database.Connect(cfg.Database); err != nil {
		l.Warn("Mapping database unavailable, unresolved rows stay unmapped", zap.Error(err))
	} else {
		provider = catalog.NewContextProvider(catalog.NewStore(db, l), mappingContextTTL)
	}

	service := export.NewService(provider, nil, cfg.Storage, l)
	result, err := service.Generate(ctx, exportFormat, exportSet, rows, export.Options{
		IncludeBOM:      exportBOM,
		IncludeMinifigs: exportMinifigs,
		Condition:       exportCondition,
	})
	if err != nil {
		return err
	}

	if exportOutFile != "" {
		if err := os.WriteFile(exportOutFile, []byte(result.CSV), 0o644); err != nil {
			return fmt.Errorf("failed to write manifest: %w", err)
		}
		l.Info("Manifest written", zap.String("path", exportOutFile))
	} else {
		fmt.Println(result.CSV)
	}

	l.Info("Manifest rendered",
		zap.String("format", exportFormat),
		zap.Int("rows", len(rows)),
		zap.Int("unmapped", len(result.Unmapped)),
	)

	for _, row := range result.Unmapped {
		l.Warn("Unmapped row",
			zap.String("part_id", row.PartID),
			zap.Int("color_id", row.ColorID),
			zap.Int("quantity_missing", row.QuantityMissing),
		)
	}

	return nil
}
