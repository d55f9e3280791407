package qonqr

import "regexp"

// Grid references start with a top-level UTM-style cell (one or two digits
// plus a letter) followed by zero or more digit+letter quadrant refinements,
// e.g. "16S", "16S1H", "16S1H6S4Q".
var (
	gridReferenceRe = regexp.MustCompile(`^[0-9]{1,2}[A-Za-z](?:[0-9][A-Za-z])*$`)
	topLevelGridRe  = regexp.MustCompile(`^[0-9]{1,2}[A-Za-z]$`)
)

// ValidGridReference reports whether ref matches the grid reference grammar
// at any refinement depth.
func ValidGridReference(ref string) bool {
	return gridReferenceRe.MatchString(ref)
}

// ValidTopLevelGrid reports whether ref is a top-level cell with no
// refinements, the only form GridBreakdown accepts.
func ValidTopLevelGrid(ref string) bool {
	return topLevelGridRe.MatchString(ref)
}
