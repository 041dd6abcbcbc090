// Package catalog maps out parameterized HamLib dataset collections.
//
// HamLib encodes problem parameters in record names: a name such as
// "tfim_graph-1D-grid-pbc_size-4" carries the variable assignments
// graph=1D and size=4. The catalog decomposes those names and aggregates,
// per collection, the distinct values each variable takes.
//
// # Basic Usage
//
//	specs := []catalog.Spec{
//	    {Name: "tfim1", Path: "downloaded_hamlib_files/tfim.hdf5", FixedVar: "graph", FixedValue: "1D"},
//	    {Name: "tfim2", Path: "downloaded_hamlib_files/tfim.hdf5"},
//	}
//
//	scanner := catalog.NewScanner(opener, logger)
//	report, err := scanner.Ranges(specs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The scanner opens collections through an Opener so callers choose the
// backing store: HDF5 files in production, MemStore in tests.
package catalog
