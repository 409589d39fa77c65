package cord

// Builder is for building cords by appending text fragments (leaves) in
// order. The empty instance is a valid cord builder, but clients may use
// NewBuilder instead.
type Builder struct {
	leaves []Leaf
	length uint64
	done   bool
}

// NewBuilder creates a new and empty cord builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Cord returns the cord which this builder is holding up to now.
// It is illegal to continue adding fragments after `Cord` has been called,
// but `Cord` may be called multiple times.
func (b *Builder) Cord() Cord {
	b.done = true
	if len(b.leaves) == 0 {
		tracer().Debugf("cord builder: cord is void")
	}
	return Cord{leaves: b.leaves, length: b.length}
}

// Reset drops the cord building currently in progress and prepares the
// builder for a fresh build.
func (b *Builder) Reset() {
	b.leaves = nil
	b.length = 0
	b.done = false
}

// Append appends a text fragment represented by a cord leaf at the end
// of the cord to build.
func (b *Builder) Append(leaf Leaf) error {
	if b.done {
		return ErrCordCompleted
	}
	if leaf == nil || leaf.Weight() == 0 {
		return nil
	}
	b.leaves = append(b.leaves, leaf)
	b.length += leaf.Weight()
	return nil
}

// AppendBytes is a convenience wrapper around Append for raw byte fragments,
// as produced by a prefetching reader.
func (b *Builder) AppendBytes(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	return b.Append(StringLeaf(string(p)))
}
