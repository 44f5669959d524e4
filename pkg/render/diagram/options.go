package diagram

const (
	// DefaultScreenWidth is the wrap width used when none is given,
	// matching a classic 80-column terminal.
	DefaultScreenWidth = 79

	// DefaultMaxHeight is the maximum number of physical lines the
	// diagram may occupy. Exceeding it aborts the render with a
	// DIAGRAM_TOO_TALL error rather than truncating.
	DefaultMaxHeight = 30

	// maxLabelGlyphs caps the number of label glyphs written onto an
	// arc; longer labels are truncated.
	maxLabelGlyphs = 250
)

// Options is the configuration bundle for one render.
// Every field is an independent boolean or numeric; no combination is
// invalid.
type Options struct {
	// ShowWalls forces boundary words to be displayed even when the
	// wall visibility policy would hide them.
	ShowWalls bool

	// HideSuffix merges split stem+suffix token pairs back into one
	// display word and hides the stem-to-suffix links.
	HideSuffix bool

	// ShowWordSubscripts controls disambiguation-subscript handling on
	// display words. The alternative token-selection branch of the
	// historical renderer was unreachable, so reconstruction treats
	// this as always on; the field is kept so callers can state their
	// intent.
	ShowWordSubscripts bool

	// ShowLinkSubscripts selects full arc labels; when false only the
	// leading upper-case run of each label is drawn.
	ShowLinkSubscripts bool

	// ShortDisplay collapses all connector rows above the word line
	// into a single row.
	ShortDisplay bool

	// ScreenWidth is the target display width for row wrapping, in
	// glyphs. Zero selects DefaultScreenWidth.
	ScreenWidth int

	// MaxHeight is the hard limit on diagram height in physical lines.
	// Zero selects DefaultMaxHeight.
	MaxHeight int
}

// DefaultOptions returns the options used by the CLI when no flags are
// given: full labels, subscripts on, standard terminal width.
func DefaultOptions() Options {
	return Options{
		ShowWordSubscripts: true,
		ShowLinkSubscripts: true,
		ScreenWidth:        DefaultScreenWidth,
		MaxHeight:          DefaultMaxHeight,
	}
}

// withDefaults resolves zero-valued numeric fields.
func (o Options) withDefaults() Options {
	if o.ScreenWidth <= 0 {
		o.ScreenWidth = DefaultScreenWidth
	}
	if o.MaxHeight <= 0 {
		o.MaxHeight = DefaultMaxHeight
	}
	return o
}
