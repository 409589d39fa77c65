package format

// Fixed capacities, compile-time bounds mirroring the original fixed-size
// C arrays (NWORDS, NLINES, ...) per the specification's Design Notes:
// keep these as contiguous arrays embedded in the formatter, not
// heap-growable slices.
const (
	NWORDS     = 1024 // capacity of the pending-word buffer
	NLINES     = 64   // capacity of the emitted-line ring buffer
	NHYPHSWORD = 32   // max hyphenation sub-words a single input word yields
)

// AdjBoth is the n_j adjustment-mode bit pattern meaning "both stretch and
// shrink are enabled" (AD_B in the original source).
const AdjBoth = 3

// HyLast is the n_hy flag bit meaning "no hyphenation on the last line
// before a trap" (HY_LAST in the original source).
const HyLast = 1
