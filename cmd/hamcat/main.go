package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hamtools/hamcat/fetch"
)

var (
	// Global flags
	verbose     bool
	downloadDir string
	sourcesPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hamcat",
	Short: "hamcat - explore and parse HamLib Hamiltonian files",
	Long: `hamcat reads HamLib HDF5 files, rewrites the coefficient/Pauli-term
text encoding into canonical form, parses it into a sparse qubit-indexed
operator list, and maps out which variable values occur across
parameterized dataset collections.

Archives are fetched from the HamLib portal on demand and unpacked into
a local download directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logger.With(zap.String("run", uuid.NewString()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&downloadDir, "download-dir", fetch.DefaultDir, "Directory for fetched archives")
	rootCmd.PersistentFlags().StringVar(&sourcesPath, "sources", "", "YAML file overriding the built-in source mappings")

	// Add commands to root
	rootCmd.AddCommand(rangesCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
