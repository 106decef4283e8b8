package ean

// decodeE classifies an edge-pair width sum e against a 4-width reference
// sum s (one full character width, 7 modules) by rounding e*7/s to the
// nearest integer module count. A valid pair spans 2 to 5 of the
// character's 7 modules (the other 2 to 5 modules belong to its other
// three runs), so it returns a code in {0,1,2,3} for the 2,3,4,5-module
// cases respectively, or -1 if the rounded module count falls outside
// that range.
func decodeE(e, s uint) int {
	if s == 0 {
		return -1
	}
	E := (e*7*2 + s) / (s * 2)
	if E < 2 || E > 5 {
		return -1
	}
	return int(E) - 2
}
