package layout

import (
	"math"
	"sort"

	"github.com/katalvlaran/tda/filtration"
	"github.com/katalvlaran/tda/persistence"
	"github.com/katalvlaran/tda/vectorize"
)

// Analyze samples every placement as its center and four corners,
// builds an alpha filtration over the samples, and reads dead spaces,
// coverage, and connectivity off the persistence diagrams. The
// boundary polygon is the room outline; coverage is measured against
// its area. Plans with fewer than four sample points return an empty
// Analysis.
func Analyze(placements []Placement, boundary [][2]float64, opts Options) (*Analysis, error) {
	opts = withDefaults(opts)

	points := samplePoints(placements)
	if len(points) < 4 {
		return &Analysis{}, nil
	}

	src, err := filtration.NewAlpha(points)
	if err != nil {
		return nil, err
	}
	res, err := persistence.Compute(src, 1)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		DeadSpaces:        deadSpaces(res.Diagrams[1], opts.DeadSpaceThreshold),
		CoverageScore:     coverage(placements, boundary),
		ConnectivityScore: connectivity(res.Diagrams[0], opts.ConnectivityThreshold),
		Diagrams:          res.Diagrams,
		NumPoints:         len(points),
	}, nil
}

// Compare analyzes both plans against the same room boundary and
// measures how far apart their topologies are, one Wasserstein
// distance per homology dimension.
func Compare(a, b []Placement, boundary [][2]float64, opts Options) (*Comparison, error) {
	ra, err := Analyze(a, boundary, opts)
	if err != nil {
		return nil, err
	}
	rb, err := Analyze(b, boundary, opts)
	if err != nil {
		return nil, err
	}

	dims := len(ra.Diagrams)
	if len(rb.Diagrams) > dims {
		dims = len(rb.Diagrams)
	}
	distances := make([]float64, dims)
	for d := 0; d < dims; d++ {
		distances[d] = vectorize.Wasserstein(diagramAt(ra.Diagrams, d), diagramAt(rb.Diagrams, d))
	}

	return &Comparison{A: *ra, B: *rb, Distances: distances}, nil
}

// samplePoints expands placements into center and corner samples.
func samplePoints(placements []Placement) [][]float64 {
	points := make([][]float64, 0, 5*len(placements))
	for _, p := range placements {
		w, d := p.Width, p.Depth
		if w <= 0 {
			w = defaultExtent
		}
		if d <= 0 {
			d = defaultExtent
		}
		hw, hd := w/2, d/2
		points = append(points,
			[]float64{p.X, p.Y},
			[]float64{p.X - hw, p.Y - hd},
			[]float64{p.X + hw, p.Y - hd},
			[]float64{p.X + hw, p.Y + hd},
			[]float64{p.X - hw, p.Y + hd},
		)
	}

	return points
}

// deadSpaces converts long-lived H₁ features into reports. Alpha
// births and deaths are squared radii, so the threshold is squared
// before comparison and the reported radii and persistence
// square-rooted back into floor units after.
func deadSpaces(h1 persistence.Diagram, threshold float64) []DeadSpace {
	sq := threshold * threshold

	var out []DeadSpace
	for _, p := range h1.Finite() {
		span := p.Lifespan()
		if span <= sq {
			continue
		}
		severity := "medium"
		if span > 2*sq {
			severity = "high"
		}
		out = append(out, DeadSpace{
			BirthRadius:    math.Sqrt(p.Birth),
			DeathRadius:    math.Sqrt(p.Death),
			Persistence:    math.Sqrt(span),
			ApproxDiameter: 2 * math.Sqrt(p.Death),
			Severity:       severity,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Persistence > out[j].Persistence })

	return out
}

// connectivity maps the count of strong H₀ separations into (0,1]: a
// single cluster scores 1, each fragmentation beyond the threshold
// radius halves the trust roughly harmonically.
func connectivity(h0 persistence.Diagram, threshold float64) float64 {
	sq := threshold * threshold
	var splits int
	for _, p := range h0.Finite() {
		if p.Lifespan() > sq {
			splits++
		}
	}

	return 1 / float64(1+splits)
}

// coverage is the placed area over the room boundary area, capped at
// 1. A degenerate or missing boundary scores 0.
func coverage(placements []Placement, boundary [][2]float64) float64 {
	area := shoelace(boundary)
	if area < 1e-10 {
		return 0
	}

	var placed float64
	for _, p := range placements {
		w, d := p.Width, p.Depth
		if w <= 0 {
			w = defaultExtent
		}
		if d <= 0 {
			d = defaultExtent
		}
		placed += w * d
	}

	score := placed / area
	if score > 1 {
		score = 1
	}

	return score
}

// shoelace is the polygon area of a vertex ring, orientation-agnostic.
func shoelace(ring [][2]float64) float64 {
	if len(ring) < 3 {
		return 0
	}
	var twice float64
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		twice += p[0]*q[1] - p[1]*q[0]
	}

	return math.Abs(twice) / 2
}

// diagramAt returns the diagram at dimension d, or an empty one when
// the analysis did not reach that dimension.
func diagramAt(diagrams []persistence.Diagram, d int) persistence.Diagram {
	if d < len(diagrams) {
		return diagrams[d]
	}

	return persistence.Diagram{Dim: d}
}

// withDefaults fills zero-valued options.
func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.DeadSpaceThreshold <= 0 {
		opts.DeadSpaceThreshold = def.DeadSpaceThreshold
	}
	if opts.ConnectivityThreshold <= 0 {
		opts.ConnectivityThreshold = def.ConnectivityThreshold
	}

	return opts
}
