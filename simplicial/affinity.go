package simplicial

import (
	"fmt"
	"sort"
)

// Affinities computes row-normalized co-occurrence scores between the
// two designated entity types across all relations: how often each
// column entity appears in relations with each row entity, divided by
// the row entity's total. Pairs scoring below MinScore are dropped and
// the top Limit pairs are returned, ranked by score descending (ties
// broken by row then column key for determinism).
func Affinities(relations []Relation, opts AffinityOptions) (*AffinityResult, error) {
	if len(relations) == 0 {
		return nil, fmt.Errorf("%w: got 0", ErrNoRelations)
	}
	minScore := opts.MinScore
	if minScore <= 0 {
		minScore = 0.1
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	counts := make(map[[2]string]int)
	rows := make(map[string]int)
	cols := make(map[string]struct{})
	for _, rel := range relations {
		var rIDs, cIDs []string
		for _, e := range rel.Entities {
			switch e.Type {
			case opts.RowType:
				rIDs = append(rIDs, e.ID)
			case opts.ColType:
				cIDs = append(cIDs, e.ID)
			}
		}
		for _, r := range rIDs {
			rows[r] += len(cIDs)
			for _, c := range cIDs {
				counts[[2]string{r, c}]++
				cols[c] = struct{}{}
			}
		}
	}
	if len(rows) == 0 || len(cols) == 0 {
		return &AffinityResult{}, nil
	}

	var out []Affinity
	for pair, c := range counts {
		total := rows[pair[0]]
		if total == 0 {
			continue
		}
		score := float64(c) / float64(total)
		if score > minScore {
			out = append(out, Affinity{Row: pair[0], Col: pair[1], Score: score, Count: c})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}

		return out[i].Col < out[j].Col
	})
	if len(out) > limit {
		out = out[:limit]
	}

	return &AffinityResult{
		Affinities: out,
		NumRows:    len(rows),
		NumCols:    len(cols),
		Density:    float64(len(counts)) / float64(len(rows)*len(cols)),
	}, nil
}

// DetectSignals derives higher-order pattern signals: the Gini
// coefficient of per-entity relation counts for anchorType (a skew /
// "gradient strength" proxy) and a cycle flag raised when the complex
// holds any 2-simplex.
func DetectSignals(cx *Complex, relations []Relation, anchorType string) Signals {
	counts := make(map[string]int)
	for _, rel := range relations {
		seen := make(map[string]struct{})
		for _, e := range rel.Entities {
			if e.Type != anchorType {
				continue
			}
			if _, dup := seen[e.ID]; dup {
				continue
			}
			seen[e.ID] = struct{}{}
			counts[e.ID]++
		}
	}

	sig := Signals{
		CycleDetected: cx.Counts[2] > 0,
		NumTriangles:  cx.Counts[2],
		NumTetrahedra: cx.Counts[3],
	}
	if len(counts) == 0 {
		return sig
	}

	vals := make([]float64, 0, len(counts))
	for _, c := range counts {
		vals = append(vals, float64(c))
	}
	sig.GradientStrength = gini(vals)

	return sig
}

// gini computes the Gini coefficient of nonnegative counts; 0 means a
// uniform distribution, values near 1 mean extreme skew.
func gini(vals []float64) float64 {
	sort.Float64s(vals)
	n := float64(len(vals))
	var weighted, total float64
	for i, v := range vals {
		weighted += float64(i+1) * v
		total += v
	}
	if total == 0 {
		return 0
	}
	g := 2*weighted/(n*total) - (n+1)/n
	if g < 0 {
		return 0
	}

	return g
}
