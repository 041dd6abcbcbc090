package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamtools/hamcat/pauli"
)

var (
	parseRaw    bool
	parseFetch  bool
	parseStrict bool
)

// parseCmd parses one Hamiltonian into sparse Pauli terms
var parseCmd = &cobra.Command{
	Use:   "parse <file> <dataset>",
	Short: "Parse a Hamiltonian dataset into sparse Pauli terms",
	Long: `Reads the named dataset, rewrites it into canonical "(coeff) [ops]" form
when needed, parses it into a sparse qubit-indexed operator list and
prints the canonical terms followed by a summary.

With --raw the single argument is a plain text file ("-" for stdin)
holding the Hamiltonian, useful for payloads extracted by other tools.

Example:
  hamcat parse downloaded_hamlib_files/tfim.hdf5 tfim_graph-1D-grid-pbc_size-4
  hamcat parse --fetch tfim.hdf5 tfim_graph-1D-grid-pbc_size-4
  echo "1.0 [X0] + 2.0 [Z1]" | hamcat parse --raw -`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseRaw, "raw", false, "Treat the argument as a raw Hamiltonian text file, not HDF5")
	parseCmd.Flags().BoolVar(&parseFetch, "fetch", false, "Fetch the file from the portal before reading")
	parseCmd.Flags().BoolVar(&parseStrict, "strict", false, "Fail on unrecognized tokens instead of skipping them")
}

func runParse(cmd *cobra.Command, args []string) error {
	data, err := readHamiltonian(cmd.Context(), args, parseRaw, parseFetch)
	if err != nil || data == nil {
		return err
	}

	list, err := parseHamiltonian(data, parseStrict)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, term := range list {
		fmt.Fprintln(out, term)
	}
	fmt.Fprintf(out, "terms: %d\nqubits: %d\n", len(list), pauli.QubitCount(list))
	return nil
}
