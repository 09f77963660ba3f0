package radialbar

import (
	gomath "math"
)

// Triangle is a triple of vertex indices.
type Triangle [3]uint32

// FormTriangles triangulates the full closed ring of segmentCount segments,
// ignoring any value. Each segment is the quad
// (outer_i, outer_i+1, inner_i+1, inner_i) split into two triangles with the
// same counter-clockwise winding. The last segment wraps back to the first.
func FormTriangles(segmentCount int) []Triangle {
	if segmentCount <= 0 {
		return []Triangle{}
	}

	n := uint32(2 * segmentCount)
	triangles := make([]Triangle, 0, n)

	for i := range uint32(segmentCount) {
		outer := 2 * i
		next := (outer + 2) % n
		triangles = append(triangles,
			Triangle{outer, next, next + 1},
			Triangle{outer, next + 1, outer + 1},
		)
	}

	return triangles
}

// FormValueBarTriangles triangulates the ring and then drops whole segments
// from the tail so the remaining triangles cover value/maxValue of the ring.
// The fill is segment-granular: it moves in steps of 1/segmentCount.
//
// maxValue must be positive. A value outside [0, maxValue] is tolerated: the
// number of trimmed segments is clamped so the result ranges from the empty
// list to the full ring.
func FormValueBarTriangles(segmentCount int, maxValue, value float32) []Triangle {
	triangles := FormTriangles(segmentCount)
	trimmed := TrimmedSegments(segmentCount, maxValue, value)
	return triangles[:len(triangles)-2*trimmed]
}

// TrimmedSegments returns how many whole segments are removed from the tail
// of the ring for value/maxValue, clamped to [0, segmentCount].
// A NaN fraction trims everything.
func TrimmedSegments(segmentCount int, maxValue, value float32) int {
	if segmentCount <= 0 {
		return 0
	}

	fraction := value / maxValue
	trimmed := gomath.Floor(float64((1 - fraction) * float32(segmentCount)))

	switch {
	case gomath.IsNaN(trimmed):
		return segmentCount
	case trimmed <= 0:
		return 0
	case trimmed >= float64(segmentCount):
		return segmentCount
	default:
		return int(trimmed)
	}
}

// FlattenIndices converts triangles into a flat index list as uploaded to the GPU.
func FlattenIndices(triangles []Triangle) []uint32 {
	indices := make([]uint32, 0, 3*len(triangles))
	for _, tri := range triangles {
		indices = append(indices, tri[0], tri[1], tri[2])
	}
	return indices
}
