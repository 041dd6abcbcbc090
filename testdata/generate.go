package main

import (
	"log"
	"os"

	"github.com/hamtools/hamcat/export"
	"github.com/hamtools/hamcat/pauli"
)

// A loose-form transverse-field Ising Hamiltonian on 4 qubits, the way
// HamLib encodes terms before normalization.
const demo = "1.0 [Z0 Z1] + 1.0 [Z1 Z2] + 1.0 [Z2 Z3] + 0.5 [X0] + 0.5 [X1] + 0.5 [X2] + 0.5 [X3]"

func main() {
	if err := os.WriteFile("demo.txt", []byte(demo), 0o644); err != nil {
		log.Fatal(err)
	}

	list, err := pauli.Parse(pauli.NormalizeIfNeeded([]byte(demo)))
	if err != nil {
		log.Fatal(err)
	}

	file, err := os.Create("demo.parquet")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	if err := export.WriteParquet(file, list); err != nil {
		log.Fatal(err)
	}

	log.Printf("Generated demo.txt and demo.parquet with %d terms", len(list))
}
