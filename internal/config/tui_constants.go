package config

// Layout constants.
const (
	// MinColumnWidth is the minimum width for an entries table column.
	MinColumnWidth = 8

	// CompactModeThreshold hides the wide entries columns below this width.
	CompactModeThreshold = 100

	// TableHeight is the number of entry rows visible at once.
	TableHeight = 8

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxNameLength bounds engineer, verifier and sign-off names.
	MaxNameLength = 60

	// MaxLocationLength bounds the location/borehole id.
	MaxLocationLength = 40

	// MaxTextLength bounds free-text fields such as activities and notes.
	MaxTextLength = 2000
)

// Document layout, in millimetres and points.
const (
	PDFMargin          = 10.0
	PDFLineHeight      = 4.0
	PDFTableFontSize   = 7.0
	PDFHeaderFontSize  = 8.0
	PDFBodyFontSize    = 11.0
	PDFSectionFontSize = 14.0
)

// PDFColumnWidths matches the entries columns; they sum to the A4 printable width.
var PDFColumnWidths = []float64{18, 15, 20, 48, 20, 18, 18, 33}
