package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamtools/hamcat/fetch"
)

// fetchCmd downloads a mapped archive
var fetchCmd = &cobra.Command{
	Use:   "fetch <file.hdf5>",
	Short: "Download and unpack a HamLib archive from the portal",
	Long: `Resolves the filename through the source mappings, downloads the zip
archive it lives in and unpacks it into the download directory.

Example:
  hamcat fetch tfim.hdf5
  hamcat fetch --sources mirrors.yaml FH_D-1.hdf5`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	sources, err := sourceMap()
	if err != nil {
		return err
	}

	fetcher := fetch.NewFetcher(downloadDir, logger)
	dir, err := fetcher.FetchAndUnpack(cmd.Context(), args[0], sources)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "unpacked %s into %s\n", args[0], dir)
	return nil
}
