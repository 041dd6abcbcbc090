package pauli

// QubitCount returns the number of qubits the list needs: one more than
// the highest qubit index any term touches, or 0 when every term is a pure
// identity.
func QubitCount(list OperatorList) int {
	highest := -1
	for _, t := range list {
		for q := range t.Ops {
			if q > highest {
				highest = q
			}
		}
	}
	return highest + 1
}
