package clsvg

// BezierShape is an ordered collection of BezierPath, with no ownership
// structure beyond the list itself.
type BezierShape struct {
	paths []BezierPath
}

// Len returns the number of paths in the shape.
func (s BezierShape) Len() int { return len(s.paths) }

// Path returns the path at index i.
func (s BezierShape) Path(i int) BezierPath { return s.paths[i] }

// Paths returns the shape's paths. The returned slice is owned by the
// caller; mutating it does not affect s.
func (s BezierShape) Paths() []BezierPath {
	return append([]BezierPath(nil), s.paths...)
}

// Add appends path to the shape.
func (s BezierShape) Add(path BezierPath) BezierShape {
	out := s
	out.paths = append(append([]BezierPath(nil), s.paths...), path)
	return out
}

// Extend appends every path in other to the shape.
func (s BezierShape) Extend(other BezierShape) BezierShape {
	out := s
	out.paths = append(append([]BezierPath(nil), s.paths...), other.paths...)
	return out
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing every
// path in the shape.
func (s BezierShape) BoundingBox() Rectangle {
	if len(s.paths) == 0 {
		return RectanglePt(PtOrig, PtOrig)
	}
	rect := s.paths[0].BoundingBox()
	for _, p := range s.paths[1:] {
		rect = RectangleAppend(rect, p.BoundingBox())
	}
	return rect
}

// Rotate returns a copy of the shape with every path rotated rad radians
// about center.
func (s BezierShape) Rotate(rad Radians, center Pt) BezierShape {
	out := BezierShape{paths: make([]BezierPath, len(s.paths))}
	for i, p := range s.paths {
		out.paths[i] = p.Rotate(rad, center)
	}
	return out
}
