package clsvg

import (
	"fmt"
	"math"
	"sort"
)

// JoinType selects how ToOutline joins two stroked segments at a corner.
type JoinType uint

const (
	JoinMiter JoinType = iota
	JoinRound
)

// CapType selects how ToOutline terminates an open path's two ends.
type CapType uint

const (
	CapButt CapType = iota
	CapRound
)

// semicircle is the control-point ratio for approximating a quarter turn
// (pi/2) with a single cubic segment: (4/3)*tan(pi/8).
var semicircle = Length(4.0 / 3.0 * math.Tan(math.Pi/8))

// arcMagicNumber is the same ratio generalised to an arbitrary turn.
func arcMagicNumber(radian Radians) Length {
	return Length(4.0 / 3.0 * math.Tan(float64(radian)/4))
}

func ptVector(p Pt) Vector    { return PtOrig.VectorTo(p) }
func vectorToPt(v Vector) Pt  { return PtOrig.Add(v) }

func rotatePt(p, center Pt, rad Radians) Pt {
	return RotatePts(rad, center, []Pt{p})[0]
}

// mirrorPt reflects p across the line through p1 and p2.
func mirrorPt(p, p1, p2 Pt) Pt {
	theta := p1.VectorTo(p2).Angle()
	rel := p1.VectorTo(p)
	reflected := rel.Rotate(-theta).ScaleUnits(1, -1).Rotate(theta)
	return p1.Add(reflected)
}

// BezierPath is an ordered chain of cubic segments. start is the absolute
// position of the first segment; every BezierCtrl in ctrls is relative to
// the point the previous one ended at. A path may additionally be marked
// closed, meaning its end coincides with its start and no further segments
// may be added.
type BezierPath struct {
	start  Pt
	ctrls  []BezierCtrl
	closed bool
}

// BezierPathStart begins a new, empty path at pos.
func BezierPathStart(pos Pt) BezierPath {
	return BezierPath{start: pos}
}

// Len returns the number of segments in the path.
func (p BezierPath) Len() int { return len(p.ctrls) }

// StartPos returns the path's absolute starting point.
func (p BezierPath) StartPos() Pt { return p.start }

// IsClosed reports whether Close has been called on the path.
func (p BezierPath) IsClosed() bool { return p.closed }

// Ctrl returns the segment at index i, relative to the point it starts at.
func (p BezierPath) Ctrl(i int) BezierCtrl { return p.ctrls[i] }

// PosIn returns the absolute point the segment at index i begins at. Passing
// Len() returns the path's end position.
func (p BezierPath) PosIn(i int) Pt {
	pos := p.start
	for h := 0; h < i; h++ {
		pos = pos.Add(p.ctrls[h].Pos())
	}
	return pos
}

// EndPos returns the absolute point the path currently ends at.
func (p BezierPath) EndPos() Pt { return p.PosIn(p.Len()) }

func (p BezierPath) clone() BezierPath {
	out := p
	out.ctrls = append([]BezierCtrl(nil), p.ctrls...)
	return out
}

// Connect appends a new segment, relative to the path's current end. hasP2
// false produces a segment with no second control (mirroring SVG's line-to
// and quadratic-to commands). smooth ignores the supplied p1 and instead
// reflects the previous segment's p2 across its end point, matching SVG's
// smooth curve commands.
func (p BezierPath) Connect(pos, p1, p2 Vector, hasP2, smooth bool) (BezierPath, error) {
	if p.closed {
		return p, fmt.Errorf("%w: connect onto closed path", ErrClosedPath)
	}
	if smooth && len(p.ctrls) > 0 {
		last := p.ctrls[len(p.ctrls)-1]
		p1 = subVector(last.Pos(), last.P2())
	}
	var ctrl BezierCtrl
	if hasP2 {
		ctrl = BezierCtrlP1P2Pos(p1, p2, pos)
	} else {
		ctrl = BezierCtrlP1Pos(p1, pos)
	}
	out := p.clone()
	out.ctrls = append(out.ctrls, ctrl)
	return out, nil
}

// Append adds ctrl to the end of the path unchanged.
func (p BezierPath) Append(ctrl BezierCtrl) (BezierPath, error) {
	if p.closed {
		return p, fmt.Errorf("%w: append onto closed path", ErrClosedPath)
	}
	out := p.clone()
	out.ctrls = append(out.ctrls, ctrl)
	return out, nil
}

// ConnectPath appends every segment of other to the end of the path.
// Neither path may already be closed.
func (p BezierPath) ConnectPath(other BezierPath) (BezierPath, error) {
	if p.closed || other.closed {
		return p, fmt.Errorf("%w: connectPath with closed path", ErrClosedPath)
	}
	out := p.clone()
	out.ctrls = append(out.ctrls, other.ctrls...)
	return out, nil
}

// Close marks the path closed, inserting a final connecting segment first if
// the end doesn't already coincide with the start. Calling Close on an
// already-closed path is a no-op.
func (p BezierPath) Close() (BezierPath, error) {
	if p.closed {
		return p, nil
	}
	const offset = 1
	out := p.clone()
	end, start := out.EndPos(), out.start
	if !IsEqualPair(end, start) {
		gap := end.VectorTo(start)
		if gap.Magnitude() < offset && len(out.ctrls) > 0 {
			last := out.ctrls[len(out.ctrls)-1]
			out.ctrls[len(out.ctrls)-1] = BezierCtrlP1P2Pos(last.P1(), last.P2(), last.Pos().Add(gap))
		} else {
			out.ctrls = append(out.ctrls, BezierCtrlPos(gap))
		}
	}
	out.closed = true
	return out, nil
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing every
// segment of the path.
func (p BezierPath) BoundingBox() Rectangle {
	rect := RectanglePt(p.start, p.start)
	pos := p.start
	for _, c := range p.ctrls {
		rect = RectangleAppend(rect, c.BoundingBox(pos))
		pos = pos.Add(c.Pos())
	}
	return rect
}

// Rotate returns a copy of the path rotated rad radians about center.
func (p BezierPath) Rotate(rad Radians, center Pt) BezierPath {
	out := BezierPathStart(rotatePt(p.start, center, rad))
	for _, c := range p.ctrls {
		out, _ = out.Append(c.Rotate(rad))
	}
	if p.closed {
		out, _ = out.Close()
	}
	return out
}

// Mirror returns a copy of the path reflected across the line through p1 and
// p2.
func (p BezierPath) Mirror(p1, p2 Pt) BezierPath {
	dir := subVector(ptVector(p1), ptVector(p2))
	out := BezierPathStart(mirrorPt(p.start, p1, p2))
	for _, c := range p.ctrls {
		out, _ = out.Append(c.Mirror(dir))
	}
	if p.closed {
		out, _ = out.Close()
	}
	return out
}

// Reverse returns the path traversed back to front.
func (p BezierPath) Reverse() BezierPath {
	out := BezierPathStart(p.start)
	rEnd := VectorZero
	for i := len(p.ctrls) - 1; i >= 0; i-- {
		c := p.ctrls[i]
		out, _ = out.Connect(c.Pos().Invert(), subVector(c.P2(), c.Pos()), subVector(c.P1(), c.Pos()), true, false)
		rEnd = rEnd.Add(c.Pos())
	}
	out.start = vectorToPt(ptVector(p.start).Add(rEnd))
	if p.closed {
		out, _ = out.Close()
	}
	return out
}

// Rotations returns the sign of the path's net winding about its own
// bounding-box center, sampled at each segment's midpoint: -1, 0, or +1.
func (p BezierPath) Rotations() int {
	center := ptVector(p.BoundingBox().Center())
	t := 0
	pos := ptVector(p.start)
	for _, c := range p.ctrls {
		rel := subVector(pos, center)
		mid := c.ValueAt(0.5, rel)
		switch v := crossVector(rel, mid); {
		case v < 0:
			t--
		case v > 0:
			t++
		}
		pos = pos.Add(c.Pos())
	}
	switch {
	case t < 0:
		return -1
	case t > 0:
		return 1
	default:
		return 0
	}
}

// ContainsPos reports whether pos lies within the path, which must be
// closed. Containment is decided by casting a ray in the +y direction and
// counting crossings; a query point that lands on the boundary counts as
// contained. When a segment's start point lies in an ambiguous band (at or
// above pos on y, within pixel tolerance of pos on x) the whole path is rotated
// about pos by pi/90 and retried, up to a full 2*pi sweep, after which
// ErrDegenerateRay is returned.
func (p BezierPath) ContainsPos(pos Pt) (bool, error) {
	var length Length
	for _, c := range p.ctrls {
		length += c.ApproximatedLength(12)
	}
	if length == 0 {
		return false, nil
	}

	pixOffset := Minimum(Length(3), length/10)
	const radianStep = math.Pi / 90
	offset := Minimum(0.01, float64(1/length))

	path := p
	sPos := path.start
	i, r := 0, Radians(0)
	for i < path.Len() {
		if sPos.VectorTo(pos).Magnitude() < Length(offset) {
			return true, nil
		}
		sx, sy := sPos.XY()
		px, py := pos.XY()
		dx := sx - px
		if dx < 0 {
			dx = -dx
		}
		if sy < py || dx > pixOffset {
			sPos = sPos.Add(path.ctrls[i].Pos())
			i++
			continue
		}
		i = 0
		r += radianStep
		path = p.Rotate(r, pos)
		sPos = path.start
		if r > 2*math.Pi {
			return false, fmt.Errorf("%w: containsPos", ErrDegenerateRay)
		}
	}

	count := 0
	sPos = path.start
	for _, c := range path.ctrls {
		x, y := pos.XY()
		roots := c.Roots(x, true, y, false, ptVector(sPos), offset, 0, 1)
		for _, t := range roots {
			cy := c.ValueAt(t, ptVector(sPos))
			_, cpy := cy.Units()
			if math.Abs(float64(cpy-y)) < 0.01 {
				return true, nil
			}
			if cpy > y {
				if len(roots) == 1 {
					epx := sPos.Add(c.Pos()).X()
					spx := sPos.X()
					if (epx < x && x < spx) || (epx > x && x > spx) {
						count++
					}
				} else {
					count++
				}
			}
		}
		sPos = sPos.Add(c.Pos())
	}

	return count%2 == 1, nil
}

// SplitAlongLine cuts the path everywhere it crosses the infinite line
// through p1 and p2, grouping the resulting sub-paths into the two sides of
// that line. Sub-paths on side 0 are returned first.
func (p BezierPath) SplitAlongLine(p1, p2 Pt) [2][]BezierPath {
	radian := p1.VectorTo(p2).Angle()
	rPath := p.Rotate(-radian, p1)

	var result [2][]BezierPath
	pos := rPath.start
	newPath := BezierPathStart(pos)

	index := 1
	if pos.Y() < p1.Y() {
		index = 0
	}
	startIndex := index

	for _, c := range rPath.ctrls {
		_, y := p1.XY()
		roots := c.Roots(0, false, y, true, ptVector(pos), 1e-9, 0, 1)
		if len(roots) > 0 && roots[0] < 0.0001 {
			roots = roots[1:]
			if newPath.Len() != 0 {
				result[index] = append(result[index], newPath.Rotate(radian, p1))
				newPath = BezierPathStart(pos)
				index = (index + 1) % 2
			}
		}

		if len(roots) > 0 {
			splits := c.Splittings(roots)
			for _, sCtrl := range splits[:len(splits)-1] {
				newPath, _ = newPath.Append(sCtrl)
				result[index] = append(result[index], newPath.Rotate(radian, p1))
				pos = pos.Add(sCtrl.Pos())
				newPath = BezierPathStart(pos)
				index = (index + 1) % 2
			}

			last := splits[len(splits)-1]
			sLength := last.LengthAt(1)
			if sLength > 1 || sLength*20 > c.LengthAt(1) {
				newPath, _ = newPath.Append(last)
				pos = pos.Add(last.Pos())
			}
		} else {
			newPath, _ = newPath.Append(c)
			pos = pos.Add(c.Pos())
		}
	}

	if rPath.closed && startIndex == index && len(result[index]) > 0 {
		head := result[index][0]
		merged := newPath.Rotate(radian, p1)
		merged, _ = merged.ConnectPath(head)
		result[index][0] = merged
	} else {
		result[index] = append(result[index], newPath.Rotate(radian, p1))
	}

	if math.Abs(float64(radian)) > math.Pi/2 {
		result[0], result[1] = result[1], result[0]
	}

	return result
}

// intersectSegments finds the absolute crossing points of two relative
// segments anchored at aStart and bStart. A segment that IsLine routes
// through the cheaper Line-based intersection (IntersectionLineLine when
// both sides are straight, IntersectionLineBezier when only one is); only a
// pair of genuinely curved segments falls through to the degree-9
// cubic-cubic Bezout solve.
func intersectSegments(a BezierCtrl, aStart Pt, b BezierCtrl, bStart Pt) []Pt {
	aIsLine, bIsLine := a.IsLine(), b.IsLine()
	switch {
	case aIsLine && bIsLine:
		aLine := LineFromPt(aStart, aStart.Add(a.Pos()))
		bLine := LineFromPt(bStart, bStart.Add(b.Pos()))
		return IntersectionLineLine(aLine, bLine)
	case aIsLine:
		aLine := LineFromPt(aStart, aStart.Add(a.Pos()))
		return IntersectionLineBezier(aLine, b.bezier(bStart))
	case bIsLine:
		bLine := LineFromPt(bStart, bStart.Add(b.Pos()))
		return IntersectionLineBezier(bLine, a.bezier(aStart))
	default:
		return IntersectionBezierBezier(a.bezier(aStart), b.bezier(bStart))
	}
}

// ctrlIntersections finds the parameters at which two relative segments,
// anchored at aStart and bStart, cross, by converting both to the absolute
// curve engine and mapping the resulting points back to t using each
// segment's own Roots.
func ctrlIntersections(a BezierCtrl, aStart Pt, b BezierCtrl, bStart Pt) (tsA, tsB []float64) {
	pts := intersectSegments(a, aStart, b, bStart)
	for _, pt := range pts {
		x, y := pt.XY()
		tsA = append(tsA, a.Roots(x, true, y, true, ptVector(aStart), 1e-4, 0, 1)...)
		tsB = append(tsB, b.Roots(x, true, y, true, ptVector(bStart), 1e-4, 0, 1)...)
	}
	sort.Float64s(tsA)
	sort.Float64s(tsB)
	return tsA, tsB
}

// trimInnerSide is ToOutline's join step on the side of a corner that gets
// shorter rather than longer: it trims the already-appended segment back to
// where it would cross the incoming one, and appends the trimmed remainder
// of the incoming segment in its place.
func trimInnerSide(path2 *BezierPath, c2 BezierCtrl, sn, en Vector) {
	lastIdx := path2.Len() - 1
	if lastIdx < 0 {
		*path2, _ = path2.Append(c2)
		return
	}

	last := path2.Ctrl(lastIdx)
	absStart := path2.PosIn(lastIdx)
	absEnd := absStart.Add(last.Pos())
	absStartC2 := absEnd.Add(subVector(sn, en))

	pts := intersectSegments(last, absStart, c2, absStartC2)
	if len(pts) == 0 {
		*path2, _ = path2.Append(c2)
		return
	}
	px, py := pts[0].XY()

	rest := c2
	if ts := last.Roots(px, true, py, true, ptVector(absStart), 1e-4, 0, 1); len(ts) > 0 {
		trimmed, _ := last.Splitting(Maximum(ts...))
		path2.ctrls[lastIdx] = trimmed
	}
	if ts := c2.Roots(px, true, py, true, ptVector(absStartC2), 1e-4, 0, 1); len(ts) > 0 {
		_, rest = c2.Splitting(Minimum(ts...))
	}
	*path2, _ = path2.Append(rest)
}

// ToOutline strokes the path into its offset outline at the given width. A
// closed source path produces two closed outlines (outer and inner); an
// open source path produces one, terminated at both ends by cap.
func (p BezierPath) ToOutline(width Length, join JoinType, capType CapType) ([]BezierPath, error) {
	if p.Len() == 0 {
		return nil, fmt.Errorf("%w: toOutline needs at least one segment", ErrInvalidArgument)
	}
	radius := width / 2
	var sides [2]BezierPath

	appendJoin := func(ctrl1, ctrl2 BezierCtrl, normals, preNormals Vector) {
		if sides[0].Len() == 0 {
			sides[0], _ = sides[0].Append(ctrl1)
			sides[1], _ = sides[1].Append(ctrl2)
			return
		}

		tangent := normals.Rotate(math.Pi / 2)
		preTangent := preNormals.Rotate(math.Pi / 2)
		delta := Radians(math.Atan2(
			math.Sin(float64(normals.Angle()-preNormals.Angle())),
			math.Cos(float64(normals.Angle()-preNormals.Angle())),
		))

		doJoin := func(path1, path2 *BezierPath, c1, c2 BezierCtrl, en, sn Vector, radian Radians) {
			ePos := subVector(en, sn)
			if join == JoinRound {
				mNum := arcMagicNumber(radian)
				*path1, _ = path1.Connect(ePos, preTangent.Scale(mNum), subVector(ePos, tangent.Scale(mNum)), true, false)
			} else {
				*path1, _ = path1.Connect(ePos, VectorZero, VectorZero, false, false)
			}
			*path1, _ = path1.Append(c1)
			trimInnerSide(path2, c2, sn, en)
		}

		switch {
		case delta > 0:
			doJoin(&sides[0], &sides[1], ctrl1, ctrl2, normals, preNormals, delta)
		case delta < 0:
			doJoin(&sides[1], &sides[0], ctrl2, ctrl1, normals.Invert(), preNormals.Invert(), -delta)
		default:
			sides[0], _ = sides[0].Append(ctrl1)
			sides[1], _ = sides[1].Append(ctrl2)
		}
	}

	startPos := p.start
	preNormals, prePos := p.ctrls[0].Normals(0, radius, ptVector(startPos))
	sides[0] = BezierPathStart(vectorToPt(prePos.Add(preNormals)))
	sides[1] = BezierPathStart(vectorToPt(subVector(prePos, preNormals)))

	for _, bCtrl := range p.ctrls {
		pOffset := 2 / float64(bCtrl.ApproximatedLength(12))

		t0, t1 := bCtrl.Tangent(0, 1), bCtrl.Tangent(1, 1)
		xRoots, yRoots, _, _, _, _ := bCtrl.Extermes(-subVector(t0, t1).Angle())

		var splitValues []float64
		for _, t := range append(append([]float64{}, xRoots...), yRoots...) {
			if t < pOffset || t > 1-pOffset {
				continue
			}
			splitValues = append(splitValues, t)
		}
		sort.Float64s(splitValues)

		var merged []float64
		sValue := 0.0
		for _, t := range splitValues {
			if t-sValue < pOffset {
				continue
			}
			merged = append(merged, (t+sValue)/2, t)
			sValue = t
		}
		if sValue != 0 && sValue+pOffset < 1 {
			merged = append(merged, (1+sValue)/2)
		}
		merged = append(merged, 1)
		splitValues = merged

		if bCtrl.IsLine() {
			normals := bCtrl.Pos().Normalize().Scale(radius).Rotate(math.Pi / 2)
			appendJoin(bCtrl, bCtrl, normals, preNormals)
			preNormals = normals
		} else {
			sValue := 0.0
			sNormals, sPos := bCtrl.Normals(0, radius, ptVector(startPos))
			for _, t := range splitValues {
				eNormals, ePos := bCtrl.Normals(t, radius, ptVector(startPos))

				_, afterS := bCtrl.Splitting(sValue)
				currentCtrl, _ := afterS.Splitting((t - sValue) / (1 - sValue))

				node := currentCtrl.casteljauPoints(0.5, sPos)
				mPos := node.n1
				diff := subVector(node.n2[1], node.n1)
				var mNormals Vector
				if !IsZeroPair(diff) {
					mNormals = diff.Normalize().Scale(radius).Rotate(math.Pi / 2)
				} else {
					mNormals = subVector(ePos, sPos).Normalize().Scale(radius).Rotate(math.Pi / 2)
				}

				lineS := LineFromPt(vectorToPt(sPos), vectorToPt(sPos.Add(sNormals)))
				lineE := LineFromPt(vectorToPt(ePos), vectorToPt(ePos.Add(eNormals)))
				var intersectPos Vector
				if ipts := IntersectionLineLine(lineS, lineE); len(ipts) > 0 {
					intersectPos = ptVector(ipts[0])
				} else {
					intersectPos = subVector(sPos, ePos).Scale(0.5)
				}

				dist := func(a, b Vector) Length { return subVector(a, b).Magnitude() }
				mDist := dist(mPos, intersectPos)

				ratio1 := float64(dist(mPos.Add(mNormals), intersectPos) / mDist)
				eCtrlPos1 := subVector(ePos.Add(eNormals), sPos.Add(sNormals))
				ratio2 := float64(dist(subVector(mPos, mNormals), intersectPos) / mDist)
				eCtrlPos2 := subVector(subVector(ePos, eNormals), subVector(sPos, sNormals))

				newCtrlGen := func(ratio float64, eCtrlPos Vector) BezierCtrl {
					p1 := currentCtrl.P1().Scale(Length(ratio))
					p2 := subVector(currentCtrl.P2(), currentCtrl.Pos()).Scale(Length(ratio)).Add(eCtrlPos)
					return BezierCtrlP1P2Pos(p1, p2, eCtrlPos)
				}

				c1 := newCtrlGen(ratio1, eCtrlPos1)
				c2 := newCtrlGen(ratio2, eCtrlPos2)

				if sValue == 0 {
					appendJoin(c1, c2, sNormals, preNormals)
				} else {
					sides[0], _ = sides[0].Append(c1)
					sides[1], _ = sides[1].Append(c2)
				}

				sValue = t
				sNormals = eNormals
				sPos = ePos
			}
			preNormals = sNormals
		}
		startPos = startPos.Add(bCtrl.Pos())
	}

	if p.closed {
		var tailCtrl [2]BezierCtrl
		for i := range sides {
			tailCtrl[i] = sides[i].Ctrl(0)
			sides[i] = BezierPath{
				start: sides[i].start.Add(tailCtrl[i].Pos()),
				ctrls: append([]BezierCtrl(nil), sides[i].ctrls[1:]...),
			}
		}

		normals, _ := p.ctrls[0].Normals(0, radius, VectorZero)
		appendJoin(tailCtrl[0], tailCtrl[1], normals, preNormals)

		if sides[0].EndPos().VectorTo(sides[0].StartPos()).Magnitude() > 0.1 ||
			sides[1].EndPos().VectorTo(sides[1].StartPos()).Magnitude() > 0.1 {
			return nil, fmt.Errorf("%w: outline sides did not close", ErrOpenOutline)
		}

		sides[0], _ = sides[0].Close()
		sides[1], _ = sides[1].Close()
		sides[1] = sides[1].Reverse()
		return []BezierPath{sides[0], sides[1]}, nil
	}

	reversedSide := sides[1].Reverse()
	result := sides[0]
	switch capType {
	case CapRound:
		tangent := preNormals.Rotate(math.Pi / 2)
		result, _ = result.Connect(subVector(tangent, preNormals), tangent.Scale(semicircle), subVector(tangent, preNormals.Scale(1-semicircle)), true, false)
		result, _ = result.Connect(subVector(preNormals.Invert(), tangent), VectorZero, subVector(preNormals.Invert(), tangent.Scale(1-semicircle)), true, true)
		result, _ = result.ConnectPath(reversedSide)

		lastIdx := result.Len() - 1
		lastStart := result.PosIn(lastIdx)
		preNormals, _ = result.Ctrl(lastIdx).Normals(1, radius, ptVector(lastStart))
		tangent = preNormals.Rotate(math.Pi / 2)
		result, _ = result.Connect(subVector(tangent, preNormals), tangent.Scale(semicircle), subVector(tangent, preNormals.Scale(1-semicircle)), true, false)
		result, _ = result.Connect(subVector(preNormals.Invert(), tangent), VectorZero, subVector(preNormals.Invert(), tangent.Scale(1-semicircle)), true, true)
	default:
		p2 := reversedSide.StartPos()
		endPos := result.EndPos()
		result, _ = result.Connect(endPos.VectorTo(p2), VectorZero, VectorZero, false, false)
		result, _ = result.ConnectPath(reversedSide)
	}

	if result.EndPos().VectorTo(result.StartPos()).Magnitude() > 1 {
		return nil, fmt.Errorf("%w: outline cap did not close", ErrOpenOutline)
	}
	result, _ = result.Close()
	return []BezierPath{result}, nil
}

func appendUniqueIndex(list []int, v int) []int {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}

func insertCtrl(s []BezierCtrl, i int, v BezierCtrl) []BezierCtrl {
	out := make([]BezierCtrl, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, v)
	return append(out, s[i:]...)
}

// SeparateFromPath cuts both self and other at every mutual intersection,
// returning each as an array of sub-paths split at the cuts. Both paths
// must already be closed.
func (p BezierPath) SeparateFromPath(other BezierPath) ([2][]BezierPath, error) {
	if !p.closed || !other.closed {
		return [2][]BezierPath{}, fmt.Errorf("%w: separateFromPath needs closed paths", ErrClosedPath)
	}

	const offset = 0.5
	paths := [2]BezierPath{p.clone(), other.clone()}
	var iList [2][]int

	pos1 := paths[0].start
	for index1 := 0; index1 < paths[0].Len(); index1++ {
		pos2 := paths[1].start
		for index2 := 0; index2 < paths[1].Len(); index2++ {
			ts1, ts2 := ctrlIntersections(paths[0].ctrls[index1], pos1, paths[1].ctrls[index2], pos2)

			if len(ts1) > 0 {
				t := ts1[0]
				first, second := paths[0].ctrls[index1].Splitting(t)
				if !first.IsValid(offset) || !second.IsValid(offset) {
					preIndex := index1 - 1
					if preIndex < 0 {
						preIndex = paths[0].Len() - 1
					}
					if t < 0.5 {
						iList[0] = appendUniqueIndex(iList[0], preIndex)
					} else {
						iList[0] = appendUniqueIndex(iList[0], index1)
					}
				} else {
					paths[0].ctrls = insertCtrl(paths[0].ctrls, index1+1, second)
					paths[0].ctrls[index1] = first
					for i := range iList[0] {
						if iList[0][i] >= index1 {
							iList[0][i]++
						}
					}
					iList[0] = append(iList[0], index1)
				}
			}

			if len(ts2) > 0 {
				t := ts2[0]
				first, second := paths[1].ctrls[index2].Splitting(t)
				if !first.IsValid(offset) || !second.IsValid(offset) {
					preIndex := index2 - 1
					if preIndex < 0 {
						preIndex = paths[1].Len() - 1
					}
					if t < 0.5 {
						iList[1] = appendUniqueIndex(iList[1], preIndex)
					} else {
						iList[1] = appendUniqueIndex(iList[1], index2)
					}
				} else {
					paths[1].ctrls = insertCtrl(paths[1].ctrls, index2+1, second)
					paths[1].ctrls[index2] = first
					for i := range iList[1] {
						if iList[1][i] >= index2 {
							iList[1][i]++
						}
					}
					iList[1] = append(iList[1], index2)
				}
			}

			pos2 = pos2.Add(paths[1].ctrls[index2].Pos())
		}
		pos1 = pos1.Add(paths[0].ctrls[index1].Pos())
	}

	var result [2][]BezierPath
	for n := 0; n < 2; n++ {
		oldPath := paths[n]
		pos := oldPath.start
		j := 0
		sort.Ints(iList[n])
		for _, i := range iList[n] {
			sub := BezierPathStart(pos)
			for j <= i {
				sub, _ = sub.Append(oldPath.ctrls[j])
				pos = pos.Add(oldPath.ctrls[j].Pos())
				j++
			}
			result[n] = append(result[n], sub)
		}
		if j < oldPath.Len() {
			tail := BezierPathStart(pos)
			for j < oldPath.Len() {
				tail, _ = tail.Append(oldPath.ctrls[j])
				j++
			}
			if len(result[n]) > 0 {
				tail, _ = tail.ConnectPath(result[n][0])
				result[n][0] = tail
			} else {
				tail, _ = tail.Close()
				result[n] = append(result[n], tail)
			}
		}
	}

	return result, nil
}

// connectPaths greedily stitches a pair of sub-path lists - typically
// produced by SeparateFromPath and then filtered by containment - end to
// end into closed paths, reversing a candidate sub-path when that's what
// makes the endpoints meet. Endpoints within reconnectOffset of each other
// are treated as touching.
func connectPaths(paths [2][]BezierPath) []BezierPath {
	const reconnectOffset = 2

	if len(paths[0]) == 0 {
		if len(paths[1]) == 0 {
			return nil
		}
		paths[0], paths[1] = paths[1], paths[0]
	}

	var out []BezierPath
	for side := 0; side < 2; side++ {
		group := paths[side]
		i := 0
		for i < len(group) {
			if len(group) != 1 {
				j := (i + 1) % len(group)
				if group[i].EndPos().VectorTo(group[j].StartPos()).Magnitude() < reconnectOffset {
					group[i], _ = group[i].ConnectPath(group[j])
					group = append(group[:j], group[j+1:]...)
					if j == 0 {
						i--
					} else {
						continue
					}
				}
			}

			if group[i].EndPos().VectorTo(group[i].StartPos()).Magnitude() < reconnectOffset {
				group[i], _ = group[i].Close()
			}

			if group[i].IsClosed() {
				out = append(out, group[i])
				group = append(group[:i], group[i+1:]...)
			} else {
				i++
			}
		}
		paths[side] = group
	}

	a := 0
	for len(paths[0]) > 0 || len(paths[1]) > 0 {
		if len(paths[a]) == 0 {
			a = (a + 1) % 2
		}
		connectPath := paths[a][0]
		paths[a] = paths[a][1:]
		a = (a + 1) % 2
		if len(paths[a]) == 0 {
			a = (a + 1) % 2
		}
		pos := connectPath.EndPos()

		for {
			if connectPath.StartPos().VectorTo(pos).Magnitude() < reconnectOffset {
				connectPath, _ = connectPath.Close()
				break
			}
			if len(paths[a]) == 0 {
				break
			}
			matched := false
			for i, cand0 := range paths[a] {
				for _, cand := range []BezierPath{cand0, cand0.Reverse()} {
					if pos.VectorTo(cand.StartPos()).Magnitude() < reconnectOffset {
						pos = cand.EndPos()
						connectPath, _ = connectPath.ConnectPath(cand)
						paths[a] = append(append([]BezierPath(nil), paths[a][:i]...), paths[a][i+1:]...)
						a = (a + 1) % 2
						matched = true
						break
					}
				}
				if matched {
					break
				}
			}
			if !matched {
				break
			}
		}
		out = append(out, connectPath)
	}

	return out
}

// And returns the intersection of self and other: every sub-path that lies
// within both source paths.
func (p BezierPath) And(other BezierPath) ([]BezierPath, error) {
	if p.Len() == 0 || other.Len() == 0 {
		return nil, nil
	}
	return booleanCombine(p, other, func(contains bool) bool { return contains })
}

// Or returns the union of self and other: every sub-path that lies outside
// the opposite source path.
func (p BezierPath) Or(other BezierPath) ([]BezierPath, error) {
	switch {
	case p.Len() == 0 && other.Len() == 0:
		return nil, nil
	case p.Len() == 0:
		return []BezierPath{other}, nil
	case other.Len() == 0:
		return []BezierPath{p}, nil
	}
	return booleanCombine(p, other, func(contains bool) bool { return !contains })
}

// Sub returns self with other's area removed. Both paths must be closed;
// an open operand is returned unchanged (as the sole result).
func (p BezierPath) Sub(other BezierPath) ([]BezierPath, error) {
	if !p.closed || !other.closed {
		return []BezierPath{p}, nil
	}

	newPaths, err := p.SeparateFromPath(other)
	if err != nil {
		return nil, err
	}
	oldPath := [2]BezierPath{p, other}
	a, b := 0, 1
	flag := true
	for {
		var kept []BezierPath
		for _, sub := range newPaths[a] {
			i := 0
			for i+1 < sub.Len() && !sub.Ctrl(i).IsValid(5) {
				i++
			}
			pos := vectorToPt(sub.Ctrl(i).ValueAt(0.5, ptVector(sub.PosIn(i))))
			contains, err := oldPath[b].ContainsPos(pos)
			if err != nil {
				return nil, err
			}
			if contains != flag {
				kept = append(kept, sub)
			}
		}
		newPaths[a] = kept
		if a == 0 {
			a, b = b, a
			flag = false
		} else {
			break
		}
	}
	return connectPaths(newPaths), nil
}

// booleanCombine implements the shared shape of And/Or: separate both paths
// at their mutual intersections, keep whichever sub-paths satisfy keep
// relative to the opposite source path's containment, then stitch survivors
// back into closed paths.
func booleanCombine(p, other BezierPath, keep func(contains bool) bool) ([]BezierPath, error) {
	newPaths, err := p.SeparateFromPath(other)
	if err != nil {
		return nil, err
	}
	oldPath := [2]BezierPath{p, other}
	a, b := 0, 1
	for {
		var kept []BezierPath
		for _, sub := range newPaths[a] {
			pos := vectorToPt(sub.Ctrl(0).ValueAt(0.5, ptVector(sub.StartPos())))
			contains, err := oldPath[b].ContainsPos(pos)
			if err != nil {
				return nil, err
			}
			if keep(contains) {
				kept = append(kept, sub)
			}
		}
		newPaths[a] = kept
		if a == 0 {
			a, b = b, a
		} else {
			break
		}
	}
	return connectPaths(newPaths), nil
}
