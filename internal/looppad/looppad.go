// Package looppad computes the clone padding used to fake infinite looping
// and centralizes the mapping between public indices (over real frames) and
// internal indices (over the clone-padded sequence).
package looppad

// Padding describes the clone-padded frame sequence. The zero value is a
// non-looping sequence with no frames.
type Padding struct {
	clones int
	real   int
	loop   bool
}

// New derives the padding for a sequence of realFrames frames. The clone
// count is capped at the real frame count so no frame is ever duplicated
// more than once per edge, and forced to zero when looping is off.
func New(configuredClones, realFrames int, loop bool) Padding {
	c := configuredClones
	if c < 0 || !loop {
		c = 0
	}
	if c > realFrames {
		c = realFrames
	}
	return Padding{clones: c, real: realFrames, loop: loop}
}

// EffectiveClones returns the number of clones on each edge.
func (p Padding) EffectiveClones() int { return p.clones }

// Loop reports whether looping is enabled.
func (p Padding) Loop() bool { return p.loop }

// SequenceLen returns the length of the padded sequence actually laid out.
func (p Padding) SequenceLen() int {
	if p.real == 0 {
		return 0
	}
	return p.real + 2*p.clones
}

// ToInternal converts a public index to its position in the padded sequence.
// Exact inverse of ToPublic over the valid range.
func (p Padding) ToInternal(public int) int { return public + p.clones }

// ToPublic converts an internal index back to a public one.
func (p Padding) ToPublic(internal int) int { return internal - p.clones }

// First returns the internal index of the first real frame.
func (p Padding) First() int { return p.clones }

// Last returns the internal index of the last real frame.
func (p Padding) Last() int { return p.SequenceLen() - 1 - p.clones }

// IsClone reports whether an internal index lands on a clone rather than a
// real frame.
func (p Padding) IsClone(internal int) bool {
	if !p.loop || p.real == 0 {
		return false
	}
	return internal < p.First() || internal > p.Last()
}
