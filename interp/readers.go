package interp

// charReader scans an already-captured rune buffer (the result of
// quotedNext) with a cursor, treating an EC-prefixed pair as one logical
// character — this is what lets `\&` be compared against as a delimiter
// token in cp_cond. It corresponds to charread/charread_delim in the
// original source, which worked a string pointer instead of a stream
// because by the time cp_cond runs, the whole quoted argument has already
// been read off the input stack.
type charReader struct {
	buf []rune
	pos int
}

func newCharReader(s string) *charReader {
	return &charReader{buf: []rune(s)}
}

func (r *charReader) eof() bool { return r.pos >= len(r.buf) }

// next reads one logical character, returning it and true, or ("", false)
// at end of input.
func (r *charReader) next() (string, bool) {
	if r.eof() {
		return "", false
	}
	c := r.buf[r.pos]
	if c == EC && r.pos+1 < len(r.buf) {
		s := string([]rune{c, r.buf[r.pos+1]})
		r.pos += 2
		return s, true
	}
	r.pos++
	return string(c), true
}

// nextDelim reads one logical character unless it equals delim, in which
// case the read is not consumed and nextDelim reports false — the
// boundary signal charread_delim gives cp_cond's then/else scan loops.
func (r *charReader) nextDelim(delim string) (string, bool) {
	save := r.pos
	s, ok := r.next()
	if !ok {
		return "", false
	}
	if s == delim {
		r.pos = save
		return "", false
	}
	return s, true
}
