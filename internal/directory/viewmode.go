package directory

import "strings"

// ViewMode selects grid or list rendering density.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// ParseViewMode returns the mode for s. Anything unrecognised is grid.
func ParseViewMode(s string) ViewMode {
	if strings.EqualFold(strings.TrimSpace(s), string(ViewList)) {
		return ViewList
	}
	return ViewGrid
}
