// Package store provides read access to the hierarchical record stores
// that back HamLib dataset collections.
//
// The Store interface is deliberately small: read one dataset payload,
// list the keys under a group, close. HDF5 files are read through a pure
// Go reader, so no C toolchain is required. MemStore offers the same
// surface in memory for tests and embedded catalogs.
//
// # Basic Usage
//
//	st, err := store.Open("downloaded_hamlib_files/tfim.hdf5")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer st.Close()
//
//	keys, err := st.ListKeys("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	payload, err := st.ReadDataset(keys[0])
//	if errors.Is(err, store.ErrDatasetNotFound) {
//	    // absent datasets are recoverable
//	}
package store
