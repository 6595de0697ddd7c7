package clsvg

import "math"

// BezierCtrl is a single cubic segment stored relative to an implicit start
// at (0,0): p1 and p2 are the control vectors, pos is the endpoint vector.
// The enclosing BezierPath supplies the actual start position for every
// operation that needs one.
//
// p2 is optional. When noP2 is set the segment behaves as if p2 == pos (the
// "no second control" case SVG's quadratic-to-cubic and straight line-to
// commands produce), but the sentinel is tracked explicitly rather than
// inferred from coincidence so a segment that happens to have p2 == pos by
// construction isn't silently treated the same way.
type BezierCtrl struct {
	p1, p2, pos Vector
	noP2        bool
}

// BezierCtrlPos builds a straight line segment: no controls at all.
func BezierCtrlPos(pos Vector) BezierCtrl {
	return BezierCtrl{pos: pos, noP2: true}
}

// BezierCtrlP1Pos builds a segment with only a leading control; p2 behaves
// as if it were pos.
func BezierCtrlP1Pos(p1, pos Vector) BezierCtrl {
	return BezierCtrl{p1: p1, pos: pos, noP2: true}
}

// BezierCtrlP1P2Pos builds a fully specified cubic segment.
func BezierCtrlP1P2Pos(p1, p2, pos Vector) BezierCtrl {
	return BezierCtrl{p1: p1, p2: p2, pos: pos}
}

func subVector(a, b Vector) Vector { return a.Add(b.Invert()) }

func crossVector(a, b Vector) Length {
	ai, aj := a.Units()
	bi, bj := b.Units()
	return ai*bj - aj*bi
}

// P1 returns the leading control vector.
func (c BezierCtrl) P1() Vector { return c.p1 }

// P2 returns the trailing control vector, substituting Pos when the segment
// was built without one.
func (c BezierCtrl) P2() Vector {
	if c.noP2 {
		return c.pos
	}
	return c.p2
}

// Pos returns the endpoint vector.
func (c BezierCtrl) Pos() Vector { return c.pos }

// HasP2 reports whether the segment carries an explicit trailing control.
func (c BezierCtrl) HasP2() bool { return !c.noP2 }

// bezier converts the segment to the package's absolute-coordinate Bezier
// engine, given the point the segment actually starts at.
func (c BezierCtrl) bezier(start Pt) Bezier {
	p1 := start.Add(c.P1())
	p2 := start.Add(c.P2())
	end := start.Add(c.pos)
	return BezierPt(start, p1, p2, end)
}

// casteljauNode is the intermediate hierarchy produced by one step of de
// Casteljau's algorithm, reused by ValueAt, Splitting, and the degenerate
// tangent cases.
type casteljauNode struct {
	n3 [3]Vector
	n2 [2]Vector
	n1 Vector
}

func (c BezierCtrl) casteljauPoints(t float64, start Vector) casteljauNode {
	p1, p2, pos := c.P1(), c.P2(), c.pos
	var node casteljauNode
	node.n3[0] = p1.Scale(Length(t)).Add(start)
	node.n3[1] = subVector(p2, p1).Scale(Length(t)).Add(p1).Add(start)
	node.n3[2] = subVector(pos, p2).Scale(Length(t)).Add(p2).Add(start)
	node.n2[0] = subVector(node.n3[1], node.n3[0]).Scale(Length(t)).Add(node.n3[0])
	node.n2[1] = subVector(node.n3[2], node.n3[1]).Scale(Length(t)).Add(node.n3[1])
	node.n1 = subVector(node.n2[1], node.n2[0]).Scale(Length(t)).Add(node.n2[0])
	return node
}

// ValueAt returns the point at parameter t, given the vector the segment
// starts at (zero vector for a segment measured from its own origin).
func (c BezierCtrl) ValueAt(t float64, start Vector) Vector {
	return c.casteljauPoints(t, start).n1
}

// Derivation returns the n-th analytic derivative (n is 1, 2, or 3) of the
// segment's position function, evaluated at t.
func (c BezierCtrl) Derivation(t float64, n int) Vector {
	p1, p2, pos := c.P1(), c.P2(), c.pos
	switch n {
	case 1:
		a := pos.Scale(3).Add(p2.Scale(-9)).Add(p1.Scale(9))
		b := p2.Scale(6).Add(p1.Scale(-12))
		return a.Scale(Length(t * t)).Add(b.Scale(Length(t))).Add(p1.Scale(3))
	case 2:
		a := pos.Scale(6).Add(p2.Scale(-18)).Add(p1.Scale(18))
		return a.Scale(Length(t)).Add(p2.Scale(6)).Add(p1.Scale(-12))
	case 3:
		return pos.Scale(6).Add(p2.Scale(-18)).Add(p1.Scale(18))
	}
	return VectorZero
}

// Splitting splits the segment at parameter t into two segments, both
// expressed relative to their own starts, whose concatenation reproduces
// the original.
func (c BezierCtrl) Splitting(t float64) (BezierCtrl, BezierCtrl) {
	node := c.casteljauPoints(t, VectorZero)
	first := BezierCtrlP1P2Pos(node.n3[0], node.n2[0], node.n1)
	second := BezierCtrlP1P2Pos(subVector(node.n2[1], node.n1), subVector(node.n3[2], node.n1), subVector(c.pos, node.n1))
	return first, second
}

// Splittings splits the segment at an ordered list of parameters, each
// subsequent split re-parameterised by (t-tPrev)/(1-tPrev).
func (c BezierCtrl) Splittings(tList []float64) []BezierCtrl {
	preT := 0.0
	ctrl := c
	r := make([]BezierCtrl, 0, len(tList)+1)
	for _, t := range tList {
		if IsEqual(t, preT) || IsEqual(t, 1.0) {
			continue
		}
		first, second := ctrl.Splitting((t - preT) / (1 - preT))
		r = append(r, first)
		ctrl = second
		preT = t
	}
	r = append(r, ctrl)
	return r
}

// Tangent returns the normalised tangent direction at parameter t, handling
// the degenerate cases where p1 is at the origin or p2 coincides with pos.
func (c BezierCtrl) Tangent(t float64, length Length) Vector {
	b1 := IsZeroPair(c.P1())
	b2 := IsEqualPair(c.P2(), c.pos)
	node := c.casteljauPoints(t, VectorZero)

	var tline Vector
	switch {
	case b1 && b2:
		tline = c.pos
	case b1 && IsZero(t):
		tline = c.P2()
	case b2 && IsEqual(t, 1.0):
		tline = subVector(c.pos, c.P1())
	default:
		tline = subVector(node.n2[1], node.n2[0])
	}

	if IsZeroPair(tline) {
		if b1 {
			tline = subVector(node.n3[2], node.n3[1])
		} else if b2 {
			tline = subVector(node.n3[1], node.n3[0])
		}
	}
	return tline.Normalize().Scale(length)
}

// Normals returns the perpendicular of the tangent at t alongside the point
// the tangent was measured from.
func (c BezierCtrl) Normals(t float64, length Length, start Vector) (Vector, Vector) {
	from := c.ValueAt(t, start)
	tangent := c.Tangent(t, length)
	return tangent.Rotate(math.Pi / 2), from
}

// BoundingBox returns the axis-aligned box of the segment, given the point
// it starts at.
func (c BezierCtrl) BoundingBox(start Pt) Rectangle {
	return c.bezier(start).BoundingBox()
}

// quadraticExtremeRoots returns the roots in (0,1) of the first derivative of the
// given component triple (v1, v2, v3 being p1, p2-p1, pos-p2 style deltas as
// used by the Python original's extermesXY).
func quadraticExtremeRoots(v1, v2, v3 float64) []float64 {
	a := 3*v3 - 6*v2 + 3*v1
	b := 6 * (v2 - v1)
	cc := 3 * v1
	roots := QuadraticAbc(a, b, cc).Roots()
	out := make([]float64, 0, len(roots))
	for _, t := range roots {
		if t > 0 && t < 1 {
			out = append(out, t)
		}
	}
	return out
}

// ExtermesXY returns, for x and y independently, the parameters in (0,1)
// where the segment's first derivative is zero.
func (c BezierCtrl) ExtermesXY() ([]float64, []float64) {
	p1x, p1y := c.P1().Units()
	p2x, p2y := c.P2().Units()
	posx, posy := c.pos.Units()
	xr := quadraticExtremeRoots(float64(p1x), float64(p2x-p1x), float64(posx-p2x))
	yr := quadraticExtremeRoots(float64(p1y), float64(p2y-p1y), float64(posy-p2y))
	return xr, yr
}

// Extermes returns the roots of the first and second derivatives, in x and
// y, after optionally rotating the segment by radian.
func (c BezierCtrl) Extermes(radian Radians) (xFirst, yFirst []float64, xSecond, ySecond float64, xSecondOk, ySecondOk bool) {
	ctrl := c.Rotate(radian)
	xFirst, yFirst = ctrl.ExtermesXY()

	one := func(v1, v2 Length) (float64, bool) {
		if IsZero(v2 - v1) {
			return 0, false
		}
		return float64(-v1 / (v2 - v1)), true
	}

	p1x, p1y := ctrl.P1().Units()
	p2x, p2y := ctrl.P2().Units()
	posx, posy := ctrl.pos.Units()
	xSecond, xSecondOk = one(p2x-2*p1x, posx-2*p2x+p1x)
	ySecond, ySecondOk = one(p2y-2*p1y, posy-2*p2y+p1y)
	return
}

// Roots returns the parameters t in interval at which the segment attains
// the given x and/or y coordinate, relative to start. Either target may be
// skipped by passing hasX/hasY false. Results are snapped to the interval
// bounds within tol and deduplicated so no two remaining roots are within
// tol of each other.
func (c BezierCtrl) Roots(x Length, hasX bool, y Length, hasY bool, start Vector, tol float64, lo, hi float64) []float64 {
	p1, p2, pos := c.P1(), c.P2(), c.pos
	var result []float64
	sx, sy := start.Units()
	p1x, p1y := p1.Units()
	p2x, p2y := p2.Units()
	posx, posy := pos.Units()

	if hasX {
		threeX := float64(3*(p1x+sx) - 3*(p2x+sx) - sx + (posx + sx))
		twoX := float64(3*sx - 6*(p1x+sx) + 3*(p2x+sx))
		oneX := float64(3*(p1x+sx) - 3*sx)
		result = append(result, CubicAbcd(threeX, twoX, oneX, float64(sx-x)).Roots()...)
	}
	if hasY {
		threeY := float64(3*(p1y+sy) - 3*(p2y+sy) - sy + (posy + sy))
		twoY := float64(3*sy - 6*(p1y+sy) + 3*(p2y+sy))
		oneY := float64(3*(p1y+sy) - 3*sy)
		result = append(result, CubicAbcd(threeY, twoY, oneY, float64(sy-y)).Roots()...)
	}

	return dedupeRoots(result, tol, lo, hi)
}

func dedupeRoots(roots []float64, tol, lo, hi float64) []float64 {
	sorted := append([]float64(nil), roots...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}

	out := make([]float64, 0, len(sorted))
	prev := lo - tol
	for _, r := range sorted {
		if math.Abs(lo-r) < tol {
			r = lo
		} else if math.Abs(r-hi) < tol {
			r = hi
		}
		if r < lo || r > hi {
			continue
		}
		if len(out) == 0 || r-prev > tol {
			out = append(out, r)
		}
		prev = r
	}
	return out
}

// PosAt returns the parameters where the segment passes within offset of
// target, given the segment's start. If either control is axis-aligned the
// segment is rotated by multiples of pi/90 until neither is, to avoid
// divisions by zero in Roots.
func (c BezierCtrl) PosAt(target, start Vector, offset Length) []float64 {
	ctrl := c
	radian := Radians(0)
	p1x, p1y := ctrl.P1().Units()
	p2x, p2y := ctrl.P2().Units()
	axisAligned := func(x, y Length) bool { return IsZero(x) != IsZero(y) }
	for axisAligned(p1x, p1y) || axisAligned(p2x, p2y) {
		radian += math.Pi / 90
		ctrl = c.Rotate(radian)
		p1x, p1y = ctrl.P1().Units()
		p2x, p2y = ctrl.P2().Units()
	}
	rotatedStart := start.Rotate(radian)
	rotatedTarget := target.Rotate(radian)

	length := ctrl.ApproximatedLength(12)
	tOffset := float64(offset)
	if length > 0 {
		tOffset = float64(offset) / float64(length)
	}

	tx, ty := rotatedTarget.Units()
	values := ctrl.Roots(tx, true, ty, true, rotatedStart, tOffset, 0, 1)

	result := make([]float64, 0, len(values))
	for _, t := range values {
		p := ctrl.ValueAt(t, rotatedStart)
		if subVector(p, rotatedTarget).Magnitude() <= offset {
			result = append(result, t)
		}
	}
	return result
}

// ApproximatedLength estimates the segment's length as a polyline of
// segment samples.
func (c BezierCtrl) ApproximatedLength(segments int) Length {
	prev := VectorZero
	var sum Length
	unit := 1.0 / float64(segments)
	for h := 1; h <= segments; h++ {
		t := float64(h) * unit
		var curr Vector
		if h == segments {
			curr = c.pos
		} else {
			curr = c.ValueAt(t, VectorZero)
		}
		sum += subVector(curr, prev).Magnitude()
		prev = curr
	}
	return sum
}

// LengthAt returns the arc length from 0 to t, via Gauss-Legendre
// quadrature of the norm of the first derivative over [0, t]. Reuses the
// package's existing 64-node table rather than a coarser one.
func (c BezierCtrl) LengthAt(t float64) Length {
	t2 := t / 2
	var sum float64
	for h := 0; h < len(legendregauss_weight); h++ {
		w := legendregauss_weight[h]
		abscissa := legendregauss_abscissa[h]
		d := c.Derivation(t2*abscissa+t2, 1)
		sum += w * float64(d.Magnitude())
	}
	return Length(t2 * sum)
}

// InDistance returns the parameter t such that LengthAt(t)/LengthAt(1)
// equals pct, found by binary search within tol over interval, at most 50
// iterations.
func (c BezierCtrl) InDistance(pct, tol float64, lo, hi float64) float64 {
	if IsZero(pct) {
		return 0
	}
	if IsEqual(pct, 1.0) {
		return 1
	}
	length := c.LengthAt(1)
	target := float64(length) * pct
	t := (lo + hi) / 2
	for i := 0; i < 50; i++ {
		t = (lo + hi) / 2
		pLength := float64(c.LengthAt(t))
		if math.Abs(pLength-target) < tol {
			return t
		} else if pLength > target {
			hi = t
		} else {
			lo = t
		}
	}
	return t
}

// Reverse returns the segment traversed back to front, still relative to
// its own (now different) start.
func (c BezierCtrl) Reverse() BezierCtrl {
	return BezierCtrlP1P2Pos(subVector(c.P2(), c.pos), subVector(c.P1(), c.pos), c.pos.Invert())
}

// Rotate applies the same rotation to all three component vectors.
func (c BezierCtrl) Rotate(rad Radians) BezierCtrl {
	ctrl := BezierCtrlP1P2Pos(c.P1().Rotate(rad), c.P2().Rotate(rad), c.pos.Rotate(rad))
	ctrl.noP2 = c.noP2
	return ctrl
}

// Mirror reflects the segment across the line through the origin in
// direction p.
func (c BezierCtrl) Mirror(p Vector) BezierCtrl {
	theta := p.Angle()
	reflect := func(v Vector) Vector {
		return v.Rotate(-theta).ScaleUnits(1, -1).Rotate(theta)
	}
	ctrl := BezierCtrlP1P2Pos(reflect(c.P1()), reflect(c.P2()), reflect(c.pos))
	ctrl.noP2 = c.noP2
	return ctrl
}

// Scale applies an independent scale factor to each axis of all three
// component vectors.
func (c BezierCtrl) Scale(sx, sy Length) BezierCtrl {
	ctrl := BezierCtrlP1P2Pos(c.P1().ScaleUnits(sx, sy), c.P2().ScaleUnits(sx, sy), c.pos.ScaleUnits(sx, sy))
	ctrl.noP2 = c.noP2
	return ctrl
}

// Rotations returns the sign of the cross product of the tangents at the
// segment's two endpoints, the local turning direction: -1, 0, or +1.
func (c BezierCtrl) Rotations() int {
	t0 := c.Tangent(0, 1)
	t1 := c.Tangent(1, 1)
	cross := math.Round(float64(crossVector(t0, t1))*1000) / 1000
	switch {
	case cross < 0:
		return -1
	case cross > 0:
		return 1
	default:
		return 0
	}
}

// TurningAngle returns the total signed turning angle from the t=0 tangent
// to the t=1 tangent, modulo 2*pi, with sign matching Rotations.
func (c BezierCtrl) TurningAngle() Radians {
	t0 := c.Tangent(0, 1)
	t1 := c.Tangent(1, 1)
	sRadian := t1.Angle() - t0.Angle()
	circle := 2 * math.Pi
	r := c.Rotations()
	var out Radians
	if r < 0 {
		out = Radians(math.Mod(float64(-sRadian), circle))
	} else {
		out = Radians(math.Mod(float64(sRadian), circle))
	}
	if out < 0 {
		out += Radians(circle)
	}
	return out
}

// IsLine reports whether both controls are collinear with (0,0)->pos,
// within a small offset.
func (c BezierCtrl) IsLine() bool {
	const offset = 0.1
	theta := -c.pos.Angle()
	_, y1 := c.P1().Rotate(theta).Units()
	_, y2 := c.P2().Rotate(theta).Units()
	return math.Abs(float64(y1)) < offset && math.Abs(float64(y2)) < offset
}

// IsValid reports whether at least one coordinate of the segment exceeds
// offset in magnitude, rejecting degenerate zero-length segments.
func (c BezierCtrl) IsValid(offset Length) bool {
	p1x, p1y := c.P1().Units()
	p2x, p2y := c.P2().Units()
	posx, posy := c.pos.Units()
	max := Length(0)
	for _, v := range []Length{p1x, p1y, p2x, p2y, posx, posy} {
		if v < 0 {
			v = -v
		}
		if v > max {
			max = v
		}
	}
	return max > offset
}

// RadianSegmentation splits the segment into subsegments each turning no
// more than delta radians, by iteratively rotating and splitting at the
// first extremum root.
func (c BezierCtrl) RadianSegmentation(delta Radians) ([]BezierCtrl, []float64) {
	const offset = 0.1
	sRadian := Radians(math.Mod(float64(c.Tangent(0, 1).Angle())+2*math.Pi, 2*math.Pi))
	r := c.TurningAngle()
	delta = Radians(math.Mod(float64(delta), 2*math.Pi))
	nextR := Radians(float64(delta) * float64(c.Rotations()))

	if math.Abs(float64(delta)) < offset {
		return []BezierCtrl{c}, []float64{1}
	}

	ctrl := c.Rotate(-sRadian)
	var tList []float64
	var cList []BezierCtrl
	preT := 0.0
	for math.Abs(float64(r)) > math.Abs(float64(delta)) && ctrl.IsValid(offset) {
		ctrl = ctrl.Rotate(-nextR)

		var t float64
		hasT := false
		_, yFirst, _, _, _, _ := ctrl.Extermes(0)
		for _, n := range yFirst {
			if n > 0 && n <= 1 && (!hasT || t > n) {
				t = n
				hasT = true
			}
		}
		if !hasT {
			break
		}

		tList = append(tList, t*(1-preT)+preT)
		_, rest := c.Splitting(preT)
		splitOfRest, _ := rest.Splitting(t)
		cList = append(cList, splitOfRest)
		preT = tList[len(tList)-1]
		_, ctrl = ctrl.Splitting(t)

		r -= delta
	}

	if len(tList) != 0 && 1-tList[len(tList)-1] < offset {
		if len(tList) > 1 {
			preT = tList[len(tList)-2]
		} else {
			preT = 0
		}
		tList[len(tList)-1] = 1
		_, cList[len(cList)-1] = c.Splitting(preT)
	} else {
		tList = append(tList, 1)
		_, rest := c.Splitting(preT)
		cList = append(cList, rest)
	}

	return cList, tList
}

// ThreePointT returns the chord-length ratio used by ThreePointCtrl and
// FromABC: d1/(d1+d2), the distances from p to start and end.
func ThreePointT(start, p, end Vector) float64 {
	d1 := subVector(start, p).Magnitude()
	d2 := subVector(end, p).Magnitude()
	return float64(d1 / (d1 + d2))
}

// circleCenter returns the center of the circle through p1, p2, p3, and
// whether the three points are non-collinear.
func circleCenter(p1, p2, p3 Vector) (Vector, bool) {
	ax, ay := p1.Units()
	bx, by := p2.Units()
	cx, cy := p3.Units()
	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if IsZero(d) {
		return VectorZero, false
	}
	ux := ((ax*ax+ay*ay)*(by-cy) + (bx*bx+by*by)*(cy-ay) + (cx*cx+cy*cy)*(ay-by)) / d
	uy := ((ax*ax+ay*ay)*(cx-bx) + (bx*bx+by*by)*(ax-cx) + (cx*cx+cy*cy)*(bx-ax)) / d
	return VectorIj(ux, uy), true
}

// ThreePointCtrl builds a cubic segment through start, mid, end using a
// circle-center tangent heuristic at mid.
func ThreePointCtrl(start, mid, end Vector) BezierCtrl {
	t := ThreePointT(start, mid, end)
	var tangent Vector
	if center, ok := circleCenter(start, mid, end); ok {
		tangent = subVector(mid, center).Rotate(math.Pi / 2).Normalize()
	} else {
		tangent = subVector(start, end).Normalize()
	}
	d := subVector(start, end).Magnitude() / 3.2

	sx, sy := start.Units()
	ex, ey := end.Units()
	mx, my := mid.Units()
	delt := Radians(math.Mod(math.Atan2(float64(ey-sy), float64(ex-sx))-math.Atan2(float64(my-sy), float64(mx-sx))+2*math.Pi, 2*math.Pi))
	if delt < 0 || delt > math.Pi {
		d = -d
	}

	e1 := mid.Add(tangent.Scale(Length(t) * d))
	e2 := subVector(mid, tangent.Scale(Length(1-t)*d))

	return FromABC(e1, e2, start, mid, end)
}

// FromABC reconstructs a cubic segment through start, mid, and end with the
// given tangent endpoints at mid, using the standard "ABC" construction.
func FromABC(tangent0, tangent1, start, mid, end Vector) BezierCtrl {
	t := math.Abs(float64(subVector(mid, tangent0).Magnitude() / subVector(tangent1, tangent0).Magnitude()))
	ut := cInterpolation(t)
	c := start.Scale(Length(ut)).Add(end.Scale(Length(1 - ut)))
	b := mid
	a := subVector(b, subVector(c, b).Scale(1/abcRotate(t)))

	v1 := subVector(tangent0, a.Scale(Length(t))).Scale(Length(1 / (1 - t)))
	v2 := subVector(tangent1, a.Scale(Length(1-t))).Scale(Length(1 / t))

	p1 := subVector(v1, start.Scale(Length(1-t))).Scale(Length(1 / t))
	p2 := subVector(v2, end.Scale(Length(t))).Scale(Length(1 / (1 - t)))

	return BezierCtrlP1P2Pos(subVector(p1, start), subVector(p2, start), subVector(end, start))
}

// cInterpolation is the "ABC" construction's u(t) weighting function.
func cInterpolation(t float64) Length {
	return Length(math.Pow(1-t, 3) / (math.Pow(t, 3) + math.Pow(1-t, 3)))
}

// abcRotate is the "ABC" construction's a/b ratio scale.
func abcRotate(t float64) Length {
	return Length(math.Abs((math.Pow(t, 3) + math.Pow(1-t, 3) - 1) / (math.Pow(t, 3) + math.Pow(1-t, 3))))
}

// ControlInto adjusts p1 and p2 so that ValueAt(t, VectorZero) == targetPos
// while preserving the directions of p1 and pos->p2. A non-vanishing control
// that is axis-aligned makes the segment rotate by one radian and retry. A
// vanishing control (p1 at the origin or p2 at pos) and nearly parallel
// control directions are each solved directly. When p2 is (nearly)
// collinear with the origin and pos, the straight segment to pos is
// returned and targetPos is not matched.
func (c BezierCtrl) ControlInto(t float64, targetPos Vector) BezierCtrl {
	if IsZeroPair(c.P1()) && IsEqualPair(c.P2(), c.pos) {
		return c
	}

	ctrl := c
	rotate := Radians(0)
	var A1, B1, A2, B2, C2 Length
	for {
		p1x, p1y := ctrl.P1().Units()
		p2x, p2y := ctrl.P2().Units()
		posx, posy := ctrl.pos.Units()
		A1, B1 = p1y, -p1x
		A2, B2 = p2y-posy, posx-p2x
		C2 = p2x*posy - posx*p2y

		if math.Abs(float64(C2)) < 0.1 {
			ctrl = BezierCtrlP1P2Pos(VectorZero, ctrl.pos, ctrl.pos)
			return ctrl.Rotate(-rotate)
		}

		p1Origin := IsZeroPair(ctrl.P1())
		p2AtPos := IsEqualPair(ctrl.P2(), ctrl.pos)
		if (!p1Origin && IsZero(A1*B1)) || (!p2AtPos && IsZero(A2*B2)) {
			rotate += 1
			ctrl = ctrl.Rotate(1)
			targetPos = targetPos.Rotate(1)
			continue
		}
		break
	}

	posx, posy := ctrl.pos.Units()
	tx, ty := targetPos.Units()
	denom := Length(3 * t * (1 - t))

	switch {
	case IsZeroPair(ctrl.P1()):
		x := (tx - Length(t*t*t)*posx) / denom / Length(t)
		ctrl.p2 = VectorIj(x, (-A2*x-C2)/B2)
		ctrl.noP2 = false
	case IsEqualPair(ctrl.P2(), ctrl.pos):
		p2x, _ := ctrl.P2().Units()
		x := ((tx-Length(t*t*t)*posx)/denom - Length(t)*p2x) / Length(1-t)
		ctrl.p1 = VectorIj(x, -A1/B1*x)
	case math.Abs(float64(A1*B2-B1*A2)) < 0.01:
		p1x, _ := ctrl.P1().Units()
		p2x, _ := ctrl.P2().Units()
		distance := p2x - p1x
		x := (tx-Length(t*t*t)*posx)/denom - Length(t)*distance
		ctrl.p1 = VectorIj(x, -A1/B1*x)
		ctrl.p2 = VectorIj(x+distance, (-A2*(x+distance)-C2)/B2)
		ctrl.noP2 = false
	default:
		a11, a12 := Length(1-t), Length(t)
		a21, a22 := Length(1-t)*-A1/B1, Length(t)*-A2/B2
		c1 := (tx - Length(t*t*t)*posx) / denom
		c2 := (ty-Length(t*t*t)*posy)/denom + C2*Length(t)/B2

		det := a11*a22 - a12*a21
		x1 := (c1*a22 - a12*c2) / det
		x2 := (a11*c2 - c1*a21) / det

		ctrl.p1 = VectorIj(x1, x1*-A1/B1)
		ctrl.p2 = VectorIj(x2, (-A2*(x2)-C2)/B2)
		ctrl.noP2 = false
	}

	return ctrl.Rotate(-rotate)
}
