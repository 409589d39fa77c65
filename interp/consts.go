package interp

// Fixed capacities named in the specification's external-interfaces
// section. NWORDS/NLINES/NHYPHSWORD belong to package format; the
// interpreter only needs the argument- and name-buffer bounds.
const (
	NMLEN  = 16  // register/macro name buffer; cparg keeps at most NMLEN-1 bytes
	ILNLEN = 256 // max bytes of an interpolation argument line
	GNLEN  = 16  // max bytes of a single (possibly escaped) glyph name
	NARGS  = 9   // number of positional macro/string arguments, \$1..\$9
)

// NI is the null-indicator: a transparent marker meaning "nothing special
// here", always drained by the readers below before they look at a rune.
const NI rune = 0x01

// EC is the escape character introducing an interpolation.
const EC rune = '\\'

// zeroWidthMarker is the `\&` escape: when used as a conditional's
// delimiter placeholder, the character following it is the real delimiter.
const zeroWidthMarker = string(EC) + "&"
