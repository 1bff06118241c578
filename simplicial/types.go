// Package simplicial core types, options, and sentinel errors.
package simplicial

import "errors"

// Sentinel errors for relational complex construction.
var (
	// ErrNoRelations indicates an empty relation list.
	ErrNoRelations = errors.New("simplicial: at least one relation required")
	// ErrRelationTooLarge indicates a relation with more entities than
	// MaxRelationEntities (its subset expansion would be exponential).
	ErrRelationTooLarge = errors.New("simplicial: relation exceeds maximum entity count")
)

// MaxRelationEntities bounds the size of a single relation's entity
// set; the subset expansion of one relation is 2^k − 1 simplices.
const MaxRelationEntities = 16

// Entity is a typed identifier participating in relations, e.g.
// {Type: "venue", ID: "12"}. The canonical key is "type:id".
type Entity struct {
	Type string
	ID   string
}

// Key returns the canonical "type:id" form of the entity.
func (e Entity) Key() string { return e.Type + ":" + e.ID }

// Relation is one k-way relational record over typed entities, e.g. a
// booking naming a venue, an event, zero or more vendors, and a slot.
type Relation struct {
	Entities []Entity
}

// Complex is a relational simplicial complex. SimplicesByDim maps each
// dimension to the canonical sorted entity-key tuples present; Betti
// maps dimension to the Betti number (β₀ exact, higher dimensions
// estimated — see package doc).
type Complex struct {
	SimplicesByDim map[int][][]string
	Counts         map[int]int
	NumEntities    int
	Betti          map[int]int
}

// Affinity is one row-entity/column-entity co-occurrence score.
type Affinity struct {
	Row   string
	Col   string
	Score float64
	Count int
}

// AffinityOptions configures the co-occurrence analysis.
//
// Fields:
//   - RowType, ColType — the two designated entity types to relate.
//   - MinScore — drop pairs scoring below this (default 0.1).
//   - Limit — keep at most this many top pairs (default 50).
type AffinityOptions struct {
	RowType  string
	ColType  string
	MinScore float64
	Limit    int
}

// DefaultAffinityOptions returns AffinityOptions with MinScore=0.1 and
// Limit=50 for the given entity types.
func DefaultAffinityOptions(rowType, colType string) AffinityOptions {
	return AffinityOptions{RowType: rowType, ColType: colType, MinScore: 0.1, Limit: 50}
}

// AffinityResult holds the ranked affinities plus matrix shape and
// occupancy.
type AffinityResult struct {
	Affinities []Affinity
	NumRows    int
	NumCols    int
	Density    float64
}

// Signals summarizes higher-order structure: GradientStrength is the
// Gini coefficient of per-entity relation counts for the anchor type
// (how skewed participation is); CycleDetected is true iff any
// 2-simplex exists.
type Signals struct {
	GradientStrength float64
	CycleDetected    bool
	NumTriangles     int
	NumTetrahedra    int
}
