package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// keysCmd lists record names in a file
var keysCmd = &cobra.Command{
	Use:   "keys <file> [group]",
	Short: "List the record names under a group of an HDF5 file",
	Long: `Prints the names of subgroups and datasets directly under a group of
the given HDF5 file, one per line. The group defaults to the file root.

Example:
  hamcat keys downloaded_hamlib_files/tfim.hdf5
  hamcat keys downloaded_hamlib_files/FH_D-1.hdf5 fh-graph-1D-grid`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runKeys,
}

func runKeys(cmd *cobra.Command, args []string) error {
	st, err := openStore(args[0])
	if err != nil {
		return err
	}
	defer st.Close()

	group := ""
	if len(args) > 1 {
		group = args[1]
	}
	keys, err := st.ListKeys(group)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, key := range keys {
		fmt.Fprintln(out, key)
	}
	return nil
}
