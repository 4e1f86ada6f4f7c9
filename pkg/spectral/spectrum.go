package spectral

import "sort"

// Point is one (wavelength, intensity) sample of a piecewise-linear spectrum.
type Point struct {
	Wavelength float64
	Y          float64
}

// Spectrum is a piecewise-linear function of wavelength, defined by an
// ordered set of points. Evaluating outside the convex hull of the points
// returns 0 rather than the boundary value — a deliberate-looking but
// suspicious choice inherited from the original implementation (see
// DESIGN.md's Open Question log); it is reproduced here rather than
// "fixed" to an endpoint clamp.
type Spectrum struct {
	points []Point
}

// NewSpectrum builds a Spectrum from points already sorted by wavelength.
// Construction fails if the points are not sorted or contain a negative Y,
// per spec.md §3's invariant ("y ≥ 0", "sorted by λ").
func NewSpectrum(points []Point) (*Spectrum, error) {
	for i, p := range points {
		if p.Y < 0 {
			return nil, &BuildError{Path: "points", Err: errNegativeY}
		}
		if i > 0 && points[i-1].Wavelength > p.Wavelength {
			return nil, &BuildError{Path: "points", Err: errUnsorted}
		}
	}
	cp := make([]Point, len(points))
	copy(cp, points)
	return &Spectrum{points: cp}, nil
}

// Get looks up the spectrum's value at wavelength, linearly interpolating
// between the enclosing points. Returns 0 for an empty spectrum or for a
// wavelength outside [points[0].Wavelength, points[len-1].Wavelength].
func (s *Spectrum) Get(wavelength float64) float64 {
	n := len(s.points)
	if n == 0 {
		return 0
	}

	minX := s.points[0].Wavelength
	maxX := s.points[n-1].Wavelength
	if wavelength < minX || wavelength > maxX {
		return 0
	}

	// Binary search for the interval enclosing wavelength.
	i := sort.Search(n, func(i int) bool { return s.points[i].Wavelength >= wavelength })
	if i < n && s.points[i].Wavelength == wavelength {
		return s.points[i].Y
	}
	if i == 0 {
		return 0
	}

	lo, hi := s.points[i-1], s.points[i]
	if lo.Wavelength == hi.Wavelength {
		return lo.Y
	}
	t := (wavelength - lo.Wavelength) / (hi.Wavelength - lo.Wavelength)
	return lo.Y + (hi.Y-lo.Y)*t
}

// Segment is one trapezoid of a Segments iteration: the interpolated
// (wavelength, y) value at each endpoint.
type Segment struct {
	Start, End Point
}

// Segments splits [min, max] into n adjacent segments and returns the
// spectrum's interpolated value at each segment boundary, for trapezoidal
// integration over the range.
func (s *Spectrum) Segments(min, max float64, n int) []Segment {
	if n < 1 {
		panic("spectral: need at least one segment")
	}

	segments := make([]Segment, n)
	width := (max - min) / float64(n)
	for i := 0; i < n; i++ {
		start := min + float64(i)*width
		end := min + float64(i+1)*width
		segments[i] = Segment{
			Start: Point{Wavelength: start, Y: s.Get(start)},
			End:   Point{Wavelength: end, Y: s.Get(end)},
		}
	}
	return segments
}
