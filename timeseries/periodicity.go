package timeseries

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tda/distance"
	"github.com/katalvlaran/tda/filtration"
	"github.com/katalvlaran/tda/persistence"
)

// confidenceDominance divides the max/mean lifespan ratio when mapping
// it into [0,1]: a top lifespan five times the mean is full confidence.
const confidenceDominance = 5.0

// DetectPeriodicity scores each candidate period by the maximum H₁
// lifespan of the quarter-period-delayed 2D embedding of the
// normalized series. A delay of period/4 puts consecutive samples a
// quarter phase apart, which opens a periodic signal into the roundest
// possible loop; a delay equal to the full period would collapse it
// onto the diagonal. Results are ranked by score descending;
// candidates needing more than ⌊n/3⌋ samples per period are skipped.
func DetectPeriodicity(series []float64, opts PeriodicityOptions) ([]Periodicity, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrInsufficientLength)
	}
	periods := opts.Periods
	if len(periods) == 0 {
		periods = DefaultPeriods
	}

	normed := normalize01(series)

	var results []Periodicity
	for _, period := range periods {
		if period < 1 || len(normed) < 3*period {
			continue
		}

		delay := period / 4
		if delay < 1 {
			delay = 1
		}
		cloud, err := Embed(normed, delay, 2)
		if err != nil {
			return nil, err
		}
		h1, err := loopDiagram(cloud)
		if err != nil {
			return nil, err
		}

		cand := Periodicity{Period: period, Label: periodLabel(period)}
		finite := h1.Finite()
		if len(finite) > 0 {
			var sum float64
			for _, p := range finite {
				span := p.Lifespan()
				sum += span
				if span > cand.Score {
					cand.Score = span
				}
			}
			mean := sum / float64(len(finite))
			conf := cand.Score / (mean + 1e-10) / confidenceDominance
			if conf > 1 {
				conf = 1
			}
			cand.Confidence = conf
		}
		results = append(results, cand)
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })

	return results, nil
}

// loopDiagram runs H₁ persistence on a point cloud via an exact,
// unthresholded Rips filtration.
func loopDiagram(cloud [][]float64) (persistence.Diagram, error) {
	dist, err := distance.FromPoints(cloud)
	if err != nil {
		return persistence.Diagram{}, err
	}
	src, err := filtration.NewRips(dist, filtration.DefaultRipsOptions())
	if err != nil {
		return persistence.Diagram{}, err
	}
	res, err := persistence.Compute(src, 1)
	if err != nil {
		return persistence.Diagram{}, err
	}

	return res.Diagrams[1], nil
}

// periodLabel converts a period in samples (daily cadence assumed) to
// a human-readable label.
func periodLabel(period int) string {
	switch {
	case period <= 7:
		return "weekly"
	case period <= 14:
		return "biweekly"
	case period <= 31:
		return "monthly"
	case period <= 93:
		return "quarterly"
	case period <= 366:
		return "annual"
	default:
		return fmt.Sprintf("%d-sample", period)
	}
}
