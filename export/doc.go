// Package export dumps parsed operator lists to parquet files for
// downstream analysis tooling.
//
// Each term becomes one row: its position, the real and imaginary parts of
// its coefficient, its operators in canonical token form, and its weight.
// ReadRecords loads such a file back for verification.
//
//	f, err := os.Create("terms.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	if err := export.WriteParquet(f, terms); err != nil {
//	    log.Fatal(err)
//	}
package export
