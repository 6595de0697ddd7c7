package clsvg

import "fmt"

// OrderedPtser is implemented by any type that exposes its defining points
// in a fixed winding order.
type OrderedPtser interface {
	Points() []Pt
}

// Rectangle represents an axis aligned rectangle. The resulting rectangle will
// always be aligned with the X and Y axis.
type Rectangle struct {
	pts [2]Pt
}

// RectanglePt builds a Rectangle from two corner points, in any order; the
// result is normalised so MinPt().X() <= MaxPt().X() and similarly for Y.
func RectanglePt(p1, p2 Pt) Rectangle {
	lx, mx, ly, my := LimitsPts([]Pt{p1, p2})
	return Rectangle{
		pts: [2]Pt{PtXy(lx, ly), PtXy(mx, my)},
	}
}

// RectangleAppend returns the smallest Rectangle containing both r and o.
func RectangleAppend(r, o Rectangle) Rectangle {
	lx := Minimum(r.pts[0].X(), o.pts[0].X())
	ly := Minimum(r.pts[0].Y(), o.pts[0].Y())
	mx := Maximum(r.pts[1].X(), o.pts[1].X())
	my := Maximum(r.pts[1].Y(), o.pts[1].Y())
	return RectanglePt(PtXy(lx, ly), PtXy(mx, my))
}

func (r Rectangle) MinPt() Pt    { return r.pts[0] }
func (r Rectangle) MaxPt() Pt    { return r.pts[1] }
func (r Rectangle) Points() []Pt { return r.pts[:] }
func (r Rectangle) Dims() (Length, Length) {
	return r.pts[0].VectorTo(r.pts[1]).Units()
}
func (r Rectangle) Width() Length {
	w, _ := r.Dims()
	return w
}
func (r Rectangle) Height() Length {
	h, _ := r.Dims()
	return h
}

// Area returns the width times height of the rectangle.
func (r Rectangle) Area() Length {
	w, h := r.Dims()
	return w * h
}

// Center returns the midpoint of the rectangle.
func (r Rectangle) Center() Pt {
	v := r.pts[0].VectorTo(r.pts[1]).Scale(0.5)
	return r.pts[0].Add(v)
}

// Intersects reports whether r and o overlap once offset is subtracted from
// the gap between them on each axis; a positive offset makes near-misses
// count as intersections.
func (r Rectangle) Intersects(o Rectangle, offset Length) bool {
	xgap := Maximum(r.pts[0].X()-o.pts[1].X(), o.pts[0].X()-r.pts[1].X())
	ygap := Maximum(r.pts[0].Y()-o.pts[1].Y(), o.pts[0].Y()-r.pts[1].Y())
	return xgap-offset < 0 && ygap-offset < 0
}

// Contains reports whether o lies entirely within r, widened by offset.
func (r Rectangle) Contains(o Rectangle, offset Length) bool {
	return r.pts[0].X()-offset <= o.pts[0].X() &&
		o.pts[1].X() <= r.pts[1].X()+offset &&
		r.pts[0].Y()-offset <= o.pts[0].Y() &&
		o.pts[1].Y() <= r.pts[1].Y()+offset
}

// ContainsPt reports whether p lies within r, widened by offset.
func (r Rectangle) ContainsPt(p Pt, offset Length) bool {
	return r.pts[0].X()-offset <= p.X() && p.X() <= r.pts[1].X()+offset &&
		r.pts[0].Y()-offset <= p.Y() && p.Y() <= r.pts[1].Y()+offset
}

func (r Rectangle) OrErr() (Rectangle, *FloatingPointError) {
	if _, err := r.pts[0].OrErr(); err != nil {
		return r, err
	} else if _, err = r.pts[1].OrErr(); err != nil {
		return r, err
	}
	return r, nil
}
func (r Rectangle) String() string {
	minmax, maxmin := PtXy(r.pts[0].X(), r.pts[1].Y()), PtXy(r.pts[1].X(), r.pts[0].Y())
	return fmt.Sprintf("Rectangle[ Polygon(%v, %v, %v, %v) ]",
		r.pts[0], minmax, r.pts[1], maxmin)
}
