package cord

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"strings"
)

// Leaf is the interface for a fragment of text held by a Cord. The default
// implementation, StringLeaf, wraps a Go string directly.
type Leaf interface {
	Weight() uint64 // length of the leaf fragment in bytes
	String() string // the leaf fragment as a string
}

// Cord is an ordered, immutable sequence of text fragments. The zero value
// Cord{} is valid and behaves like the empty string.
type Cord struct {
	leaves []Leaf
	length uint64
}

// FromString creates a single-fragment cord from a Go string.
func FromString(s string) Cord {
	if s == "" {
		return Cord{}
	}
	return Cord{leaves: []Leaf{StringLeaf(s)}, length: uint64(len(s))}
}

// String concatenates every fragment of the cord into a single Go string.
// Clients assembling large texts fragment by fragment should prefer
// EachLeaf for streaming consumption over calling String repeatedly.
func (c Cord) String() string {
	if c.IsVoid() {
		return ""
	}
	var b strings.Builder
	b.Grow(int(c.length))
	for _, leaf := range c.leaves {
		b.WriteString(leaf.String())
	}
	return b.String()
}

// IsVoid returns true if c is "".
func (c Cord) IsVoid() bool {
	return c.length == 0
}

// Len returns the length in bytes of a cord.
func (c Cord) Len() uint64 {
	return c.length
}

// EachLeaf iterates over every fragment of the cord in order, stopping at
// the first error returned by f.
func (c Cord) EachLeaf(f func(Leaf) error) error {
	for _, leaf := range c.leaves {
		if err := f(leaf); err != nil {
			return err
		}
	}
	return nil
}

// --- Default Leaf implementation -------------------------------------------

// StringLeaf is the default implementation of type Leaf.
type StringLeaf string

// Weight of a leaf is its string length in bytes.
func (lstr StringLeaf) Weight() uint64 {
	return uint64(len(lstr))
}

func (lstr StringLeaf) String() string {
	return string(lstr)
}

var _ Leaf = StringLeaf("")
