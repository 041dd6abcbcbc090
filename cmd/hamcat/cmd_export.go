package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamtools/hamcat/export"
	"github.com/hamtools/hamcat/pauli"
)

var (
	exportRaw    bool
	exportFetch  bool
	exportStrict bool
	exportOut    string
)

// exportCmd dumps parsed terms to a parquet file
var exportCmd = &cobra.Command{
	Use:   "export <file> <dataset>",
	Short: "Export a parsed Hamiltonian to a parquet file",
	Long: `Parses a Hamiltonian dataset the way parse does, then writes the terms
to a parquet file with one row per term: coefficient, operator tokens and
Pauli weight.

Example:
  hamcat export -o tfim4.parquet downloaded_hamlib_files/tfim.hdf5 tfim_graph-1D-grid-pbc_size-4
  hamcat export --raw -o terms.parquet hamiltonian.txt`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&exportRaw, "raw", false, "Treat the argument as a raw Hamiltonian text file, not HDF5")
	exportCmd.Flags().BoolVar(&exportFetch, "fetch", false, "Fetch the file from the portal before reading")
	exportCmd.Flags().BoolVar(&exportStrict, "strict", false, "Fail on unrecognized tokens instead of skipping them")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "terms.parquet", "Output parquet path")
}

func runExport(cmd *cobra.Command, args []string) error {
	data, err := readHamiltonian(cmd.Context(), args, exportRaw, exportFetch)
	if err != nil || data == nil {
		return err
	}

	list, err := parseHamiltonian(data, exportStrict)
	if err != nil {
		return err
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", exportOut, err)
	}
	if err := export.WriteParquet(f, list); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("exported terms",
		zap.String("path", exportOut),
		zap.Int("terms", len(list)),
		zap.Int("qubits", pauli.QubitCount(list)))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d terms to %s\n", len(list), exportOut)
	return nil
}
