package clsvg

// --- Line Dominant Intersections ---

// IntersectionLineLine returns the intersection points of two lines. returns
// an empty slice if the lines do not intersect.
func IntersectionLineLine(a, b Line) []Pt {
	aTheta, bTheta := a.Angle(), b.Angle()
	if IsEqual(aTheta, bTheta) {
		// Parallel lines cannot meet in this geometry.
		// also catches the same line passed twice
		return nil
	}

	var p Pt
	switch {
	case a.IsUnknown():
		fallthrough
	case b.IsUnknown():
		return nil
	case a.IsVertical():
		b, a = a, b
		fallthrough
	case b.IsVertical():
		x := b.XForY(0)
		y := a.YForX(x)
		p = PtXy(x, y)
	case a.IsHorizontal():
		b, a = a, b
		fallthrough
	case b.IsHorizontal():
		y := b.YForX(0)
		x := a.XForY(y)
		p = PtXy(x, y)
	default:
		na, nb := a.NormalizeY(), b.NormalizeY()
		ma, _, ba := na.Abc()
		mb, _, bb := nb.Abc()

		x := Length((bb - ba) / (mb - ma))
		y := b.YForX(x)

		p = PtXy(x, y)
	}

	return []Pt{p}
}

// IntersectionLineBezier returns the intersection points of a line and a
// bezier, by rotating both onto the line's own axis and finding where the
// curve's Y coordinate crosses zero. Returns an empty slice if the two do
// not intersect.
func IntersectionLineBezier(a Line, b Bezier) []Pt {
	pts := RotateOrTranslateToXAxis(a, b.Points())

	// At this point, the line is now the X axis. Find the roots of the curve.
	b2 := BezierPt(pts[0], pts[1], pts[2], pts[3])
	yr := b2.y.Roots()
	roots := make([]Pt, 0, len(yr))
	for h := 0; h < len(yr); h++ {
		if 0 <= yr[h] && yr[h] <= 1.0 {
			roots = append(roots, b.PtAtT(yr[h]))
		}
	}

	return roots
}

// --- Rectangle Dominant Intersections ---

// IntersectionRectangleRectangle returns the overlapping region of a and b
// as a single element slice, or nil if they do not overlap.
func IntersectionRectangleRectangle(a, b Rectangle) []Rectangle {
	overlap := func(amax, bmax Length) Length {
		if bmax < amax {
			return bmax
		}
		return amax
	}

	var lx, mx Length
	switch {
	case IsEqual(a.MinPt().X(), b.MinPt().X()):
		lx = a.MinPt().X()
		mx = overlap(a.MaxPt().X(), b.MaxPt().X())
	case b.MinPt().X() < a.MinPt().X():
		a, b = b, a
		fallthrough
	case a.MinPt().X() < b.MinPt().X():
		if b.MinPt().X() > a.MaxPt().X() {
			return nil
		}
		lx = b.MinPt().X()
		mx = overlap(a.MaxPt().X(), b.MaxPt().X())
	}

	var ly, my Length
	switch {
	case IsEqual(a.MinPt().Y(), b.MinPt().Y()):
		ly = a.MinPt().Y()
		my = overlap(a.MaxPt().Y(), b.MaxPt().Y())
	case b.MinPt().Y() < a.MinPt().Y():
		a, b = b, a
		fallthrough
	case a.MinPt().Y() < b.MinPt().Y():
		if b.MinPt().Y() > a.MaxPt().Y() {
			return nil
		}
		ly = b.MinPt().Y()
		my = overlap(a.MaxPt().Y(), b.MaxPt().Y())
	}

	return []Rectangle{RectanglePt(PtXy(lx, ly), PtXy(mx, my))}
}
