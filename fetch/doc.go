// Package fetch downloads and unpacks remote HamLib archives.
//
// HamLib publishes each dataset collection as a zip archive on the NERSC
// portal. The mapping from local filename to archive URL is an explicit
// SourceMap: use DefaultSources for the built-in portal entries, load
// overrides from YAML with LoadSources, or build one by hand.
//
// # Basic Usage
//
//	fetcher := fetch.NewFetcher("", logger)
//
//	dir, err := fetcher.FetchAndUnpack(ctx, "tfim.hdf5", fetch.DefaultSources())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	st, err := store.Open(filepath.Join(dir, "tfim.hdf5"))
//
// Each call makes a single attempt. Retry and backoff policy, if any,
// belongs to the caller.
//
// # Error Handling
//
//   - ErrUnmappedSource: the filename has no mapping; reported before any
//     network activity.
//   - *RetrievalError: the portal answered with a non-success status.
//   - Other errors wrap the underlying network, filesystem or archive
//     failure.
package fetch
