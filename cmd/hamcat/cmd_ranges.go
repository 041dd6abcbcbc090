package main

import (
	"github.com/spf13/cobra"

	"github.com/hamtools/hamcat/catalog"
)

var rangesFormat string

// rangesCmd reports variable ranges across dataset collections
var rangesCmd = &cobra.Command{
	Use:   "ranges <name:path[:var=value]>...",
	Short: "Report which variable values occur per dataset collection",
	Long: `Scans the record names of each backing HDF5 file, decodes the variable
assignments they encode, and reports the distinct values observed per
variable. An optional var=value constraint restricts a scan to records
with that fixed assignment; the fixed variable itself is left out of the
report.

Example:
  hamcat ranges tfim1:downloaded_hamlib_files/tfim.hdf5:graph=1D
  hamcat ranges -f table vib:downloaded_hamlib_files/all-vib-h2o.hdf5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRanges,
}

func init() {
	rangesCmd.Flags().StringVarP(&rangesFormat, "format", "f", "text", "Output format: text, table, csv, json")
}

func runRanges(cmd *cobra.Command, args []string) error {
	specs := make([]catalog.Spec, 0, len(args))
	for _, arg := range args {
		spec, err := catalog.ParseSpec(arg)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
	}

	formatter, err := newFormatter(rangesFormat, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	scanner := catalog.NewScanner(openStore, logger)
	report, err := scanner.Ranges(specs)
	if err != nil {
		return err
	}
	return formatter.Format(report)
}
