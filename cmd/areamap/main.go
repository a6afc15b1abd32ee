// Command areamap generates entsoe_area_map.json from ENTSO-E area XML.
//
// The official area directory can be downloaded from
// https://transparency.entsoe.eu/content/static_content/Static%20files/AreaDirectory.xml
// (or fetched via the ENTSO-E API with documentType=A86).
//
// Usage:
//
//	areamap --source AreaDirectory.xml --output entsoe_area_map.json
//	areamap --source https://example/AreaDirectory.xml --merge-existing entsoe_area_map.json
//
// Country detection is best-effort. Always review the resulting JSON
// before shipping it with the app.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/entsoe-tools/areamap"
)

var (
	source        string
	output        string
	mergeExisting []string
	defaultISO    string
	verbose       bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:          "areamap",
	Short:         "Generate an ISO country to EIC area map from ENTSO-E XML data",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := areamap.Generate(source,
			areamap.WithOutput(output),
			areamap.WithMergeFiles(mergeExisting...),
			areamap.WithDefaultISO(defaultISO),
			areamap.WithLogger(logger),
		)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %d ISO entries to %s\n", count, output)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&source, "source", "", "path or URL to AreaDirectory.xml or an ENTSO-E area XML response")
	rootCmd.Flags().StringVar(&output, "output", "./entsoe_area_map.json", "where to write the JSON map")
	rootCmd.Flags().StringSliceVar(&mergeExisting, "merge-existing", nil, "existing JSON maps that should be merged into the output")
	rootCmd.Flags().StringVar(&defaultISO, "default-iso", "", "fallback ISO code when detection fails")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkFlagRequired("source")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
