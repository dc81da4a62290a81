// Command lattice-remove-ctc-blank rewrites every lattice of a keyed
// table by the CTC collapse rule: blanks deleted, runs of identical
// consecutive labels merged, weights preserved.
package main

func main() {
	Execute()
}
