// Package layout computes frame and track sizing for a linear sequence of
// viewport-sized frames along a single axis.
package layout

// Metrics is the result of a layout pass. FrameSize keeps fractional
// precision; truncating to whole units accumulates visible drift across a
// long track.
type Metrics struct {
	Frames       int     // padded sequence length
	FrameSize    float64 // one frame along the active axis, absolute units
	TrackPercent float64 // track size as a percentage of the viewport
	FramePercent float64 // one frame as a percentage of the track
}

// Measure computes metrics for realFrames frames padded with clones on each
// edge, inside a viewport of parentSize units. Each frame occupies the full
// viewport along the axis. A zero frame count yields zero metrics and the
// caller renders nothing.
func Measure(parentSize float64, realFrames, clones int) Metrics {
	if realFrames <= 0 {
		return Metrics{}
	}
	total := realFrames + 2*clones
	return Metrics{
		Frames:       total,
		FrameSize:    parentSize,
		TrackPercent: float64(total) * 100,
		FramePercent: 100 / float64(total),
	}
}

// OffsetFor returns the resting track offset for an internal index.
// Negative direction is forward.
func (m Metrics) OffsetFor(internal int) float64 {
	return -float64(internal) * m.FrameSize
}
