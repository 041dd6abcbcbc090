package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/hamtools/hamcat/fetch"
	"github.com/hamtools/hamcat/output"
	"github.com/hamtools/hamcat/pauli"
	"github.com/hamtools/hamcat/store"
)

// newFormatter builds the report formatter for a --format value.
func newFormatter(format string, w io.Writer) (output.Formatter, error) {
	switch format {
	case "text":
		return output.NewTextFormatter(w), nil
	case "table":
		return output.NewTableFormatter(w), nil
	case "csv":
		return output.NewCSVFormatter(w), nil
	case "json":
		return output.NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (want text, table, csv or json)", format)
	}
}

// sourceMap resolves the effective source mappings: the built-in portal
// entries, overlaid with the --sources file when one is given.
func sourceMap() (fetch.SourceMap, error) {
	sources := fetch.DefaultSources()
	if sourcesPath == "" {
		return sources, nil
	}
	overrides, err := fetch.LoadSources(sourcesPath)
	if err != nil {
		return nil, err
	}
	return sources.Merge(overrides), nil
}

// openStore adapts store.Open to the catalog.Opener signature. It is a
// variable so tests can substitute an in-memory store.
var openStore = func(path string) (store.Store, error) {
	return store.Open(path)
}

// readHamiltonian loads the raw Hamiltonian text for a parse or export
// run. With raw set the single argument is a plain text file ("-" reads
// stdin). Otherwise the arguments are <file> <dataset>, where <file> is
// fetched from the portal first when fetchFirst is set. A missing dataset
// is logged and yields a nil payload with no error.
func readHamiltonian(ctx context.Context, args []string, raw, fetchFirst bool) ([]byte, error) {
	if raw {
		if len(args) != 1 {
			return nil, fmt.Errorf("--raw wants exactly one argument, got %d", len(args))
		}
		if args[0] == "-" {
			return io.ReadAll(os.Stdin)
		}
		return os.ReadFile(args[0])
	}

	if len(args) != 2 {
		return nil, fmt.Errorf("want <file> <dataset>, got %d arguments", len(args))
	}
	path, dataset := args[0], args[1]

	if fetchFirst {
		sources, err := sourceMap()
		if err != nil {
			return nil, err
		}
		fetcher := fetch.NewFetcher(downloadDir, logger)
		dir, err := fetcher.FetchAndUnpack(ctx, filepath.Base(path), sources)
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, filepath.Base(path))
	}

	st, err := openStore(path)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	payload, err := st.ReadDataset(dataset)
	if errors.Is(err, store.ErrDatasetNotFound) {
		logger.Warn("dataset not found",
			zap.String("file", path),
			zap.String("dataset", dataset))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// parseHamiltonian normalizes and parses one payload, logging whatever
// lenient mode skipped.
func parseHamiltonian(data []byte, strict bool) (pauli.OperatorList, error) {
	mode := pauli.Lenient
	if strict {
		mode = pauli.Strict
	}

	canonical := data
	if pauli.NeedsNormalization(data) {
		var err error
		canonical, err = pauli.NormalizeWithOptions(data, pauli.Options{Mode: mode})
		if err != nil {
			return nil, err
		}
		logger.Debug("normalized payload", zap.Int("bytes", len(canonical)))
	}

	res, err := pauli.ParseWithOptions(canonical, pauli.Options{Mode: mode})
	if err != nil {
		return nil, err
	}
	if len(res.Skipped) > 0 {
		logger.Warn("skipped unrecognized operator tokens",
			zap.Strings("tokens", res.Skipped))
	}
	return res.Terms, nil
}
