package svgpath

import "github.com/chilingg/clsvg"

// Polyline builds an open path visiting every point in pts in order, with
// straight segments between them.
func Polyline(pts []clsvg.Pt) (clsvg.BezierPath, error) {
	if len(pts) == 0 {
		return clsvg.BezierPath{}, nil
	}
	path := clsvg.BezierPathStart(pts[0])
	pos := pts[0]
	var err error
	for _, p := range pts[1:] {
		path, err = path.Connect(pos.VectorTo(p), clsvg.VectorZero, clsvg.VectorZero, false, false)
		if err != nil {
			return path, err
		}
		pos = p
	}
	return path, nil
}

// Line builds the single-segment open path from p1 to p2.
func Line(p1, p2 clsvg.Pt) (clsvg.BezierPath, error) {
	return Polyline([]clsvg.Pt{p1, p2})
}

// semicircle is the cubic control-handle ratio for a quarter turn, matching
// the kernel's own constant used to stroke round joins and caps.
const semicircle = 4.0 / 3.0 * 0.4142135623730951 // (4/3)*tan(pi/8)

// Circle builds a closed path approximating a circle of radius r centred
// at center, out of four cubic quadrants.
func Circle(center clsvg.Pt, r clsvg.Length) (clsvg.BezierPath, error) {
	k := r * clsvg.Length(semicircle)
	start := center.Add(clsvg.VectorIj(0, -r))
	path := clsvg.BezierPathStart(start)

	path, err := path.Connect(clsvg.VectorIj(r, r), clsvg.VectorIj(k, 0), clsvg.VectorIj(r, r-k), true, false)
	if err != nil {
		return path, err
	}
	path, err = path.Connect(clsvg.VectorIj(-r, r), clsvg.VectorZero, clsvg.VectorIj(-r+k, r), true, true)
	if err != nil {
		return path, err
	}
	path, err = path.Connect(clsvg.VectorIj(-r, -r), clsvg.VectorZero, clsvg.VectorIj(-r, -r+k), true, true)
	if err != nil {
		return path, err
	}
	path, err = path.Connect(clsvg.VectorIj(r, -r), clsvg.VectorZero, clsvg.VectorIj(r-k, -r), true, true)
	if err != nil {
		return path, err
	}
	return path.Close()
}

// Rect builds the closed rectangular path with corner at (x,y) and the
// given width and height.
func Rect(x, y, width, height clsvg.Length) (clsvg.BezierPath, error) {
	path := clsvg.BezierPathStart(clsvg.PtXy(x, y))
	path, err := path.Connect(clsvg.VectorIj(width, 0), clsvg.VectorZero, clsvg.VectorZero, false, false)
	if err != nil {
		return path, err
	}
	path, err = path.Connect(clsvg.VectorIj(0, height), clsvg.VectorZero, clsvg.VectorZero, false, false)
	if err != nil {
		return path, err
	}
	path, err = path.Connect(clsvg.VectorIj(-width, 0), clsvg.VectorZero, clsvg.VectorZero, false, false)
	if err != nil {
		return path, err
	}
	path, err = path.Connect(clsvg.VectorIj(0, -height), clsvg.VectorZero, clsvg.VectorZero, false, false)
	if err != nil {
		return path, err
	}
	return path.Close()
}
