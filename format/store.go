package format

// Store is the process-wide configuration store the formatter reads from:
// page/line geometry, fill/adjust/centering mode, hyphenation costs, and
// the font/trap oracle the original source reached through its `n_*`
// globals and font_swid/f_nexttrap. The formatter snapshots line geometry
// at the start of each line (Word/confUpdate); its only write to the store
// is confUpdate's ClearTempIndent, which consumes a pending temporary indent.
type Store interface {
	LineLength() int   // n_l
	Indent() int        // n_i
	TempIndent() int    // n_ti; negative when unset
	ClearTempIndent()   // consumes n_ti, resetting it to "unset"

	Fill() bool        // n_u: fill mode enabled
	CenterCount() int  // n_ce: remaining centered lines
	NoAdjust() bool    // n_na
	AdjustMode() int   // n_j, compared against AdjBoth
	ShrinkPercent() int // n_ssh

	HyFlags() int    // n_hy, tested against HyLast
	HyLinesMax() int // n_hlm
	HyCost1() int
	HyCost2() int
	HyCost3() int

	ShortLastLinePct() int  // n_pmll
	ShortLastLineCost() int // n_pmllcost

	Size() int               // n_s
	SpaceScale() int         // n_ss
	SentenceSpaceScale() int // n_sss
	Font() int               // n_f

	NextTrap() int   // f_nexttrap()
	LineHeight() int // n_L
	Baseline() int   // n_v

	// SpaceWidth is the font/metrics query font_swid(font, size, scale).
	SpaceWidth(font, size, scale int) int
}

// DefaultStore is a plain in-memory Store, suitable for tests and for
// cmd/ntrofftrace. Fields are exported so callers can set them directly;
// TempIndent starts negative (unset) as the specification requires.
type DefaultStore struct {
	NLineLength int
	NIndent     int
	NTempIndent int

	NFill        bool
	NCenterCount int
	NNoAdjust    bool
	NAdjustMode  int
	NShrinkPct   int

	NHyFlags   int
	NHyLinesMax int
	NHyCost1   int
	NHyCost2   int
	NHyCost3   int

	NShortLastLinePct  int
	NShortLastLineCost int

	NSize               int
	NSpaceScale         int
	NSentenceSpaceScale int
	NFont               int

	NNextTrap   int
	NLineHeight int
	NBaseline   int

	SpaceWidthFunc func(font, size, scale int) int
}

// NewDefaultStore returns a DefaultStore configured for fill-mode text
// adjusted on both sides (AdjBoth), with zero hyphenation penalties and no
// hyphenation-lines limit, at a given line length — a reasonable
// starting point for tests and the CLI.
func NewDefaultStore(lineLength int) *DefaultStore {
	return &DefaultStore{
		NLineLength: lineLength,
		NTempIndent: -1,
		NFill:       true,
		NAdjustMode: AdjBoth,
		NSize:       10,
		NSpaceScale: 100,
		NSentenceSpaceScale: 100,
		NLineHeight: 1,
		NBaseline:   1,
	}
}

func (s *DefaultStore) LineLength() int     { return s.NLineLength }
func (s *DefaultStore) Indent() int         { return s.NIndent }
func (s *DefaultStore) TempIndent() int     { return s.NTempIndent }
func (s *DefaultStore) ClearTempIndent()    { s.NTempIndent = -1 }
func (s *DefaultStore) Fill() bool          { return s.NFill }
func (s *DefaultStore) CenterCount() int    { return s.NCenterCount }
func (s *DefaultStore) NoAdjust() bool      { return s.NNoAdjust }
func (s *DefaultStore) AdjustMode() int     { return s.NAdjustMode }
func (s *DefaultStore) ShrinkPercent() int  { return s.NShrinkPct }
func (s *DefaultStore) HyFlags() int        { return s.NHyFlags }
func (s *DefaultStore) HyLinesMax() int     { return s.NHyLinesMax }
func (s *DefaultStore) HyCost1() int        { return s.NHyCost1 }
func (s *DefaultStore) HyCost2() int        { return s.NHyCost2 }
func (s *DefaultStore) HyCost3() int        { return s.NHyCost3 }
func (s *DefaultStore) ShortLastLinePct() int  { return s.NShortLastLinePct }
func (s *DefaultStore) ShortLastLineCost() int { return s.NShortLastLineCost }
func (s *DefaultStore) Size() int               { return s.NSize }
func (s *DefaultStore) SpaceScale() int         { return s.NSpaceScale }
func (s *DefaultStore) SentenceSpaceScale() int { return s.NSentenceSpaceScale }
func (s *DefaultStore) Font() int               { return s.NFont }
func (s *DefaultStore) NextTrap() int   { return s.NNextTrap }
func (s *DefaultStore) LineHeight() int { return s.NLineHeight }
func (s *DefaultStore) Baseline() int   { return s.NBaseline }

// SpaceWidth returns the configured SpaceWidthFunc's result, or
// size*scale/1000 as a crude fallback width (a tenth of the size at the
// default scale of 100) when no function was provided.
func (s *DefaultStore) SpaceWidth(font, size, scale int) int {
	if s.SpaceWidthFunc != nil {
		return s.SpaceWidthFunc(font, size, scale)
	}
	return size * scale / 1000
}
