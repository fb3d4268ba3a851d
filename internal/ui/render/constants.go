// Package render provides formatting functions for slider document data.
package render

// -----------------------------------------------------------------------------
// Display Limits
// -----------------------------------------------------------------------------

const (
	// MaxPointDisplay is the maximum number of control points listed
	// individually. Beyond this count, the point table is truncated.
	MaxPointDisplay = 32

	// PointRankWidth is the width for displaying point index numbers.
	PointRankWidth = 3

	// CoordWidth is the width for displaying playfield coordinates.
	CoordWidth = 6

	// TypeDisplayWidth is the width for displaying curve-type names.
	TypeDisplayWidth = 8
)

// -----------------------------------------------------------------------------
// Format Strings
// -----------------------------------------------------------------------------

const (
	// SectionHeaderFormat is the format for section titles.
	SectionHeaderFormat = "%s=== %s ===%s\n"
)
