// Package tda extracts topological structure from relational, spatial,
// and temporal data: point clouds, distance matrices, multi-way
// relations, and scalar time series go in; persistence diagrams, Betti
// numbers, summary graphs, and fixed-length feature vectors come out.
//
// What is tda?
//
//	A pure-Go persistent-homology toolkit organized as focused packages:
//		• distance    — mixed-feature (Gower-style) and Euclidean distance matrices
//		• filtration  — Vietoris–Rips and 2D alpha-complex filtrations
//		• persistence — diagram computation + size-adaptive strategy selection
//		• simplicial  — relational simplicial complexes and Betti estimates
//		• mapper      — Mapper summary graphs (PCA lens, cover, DBSCAN)
//		• timeseries  — delay embeddings: periodicity, regime change, anomalies
//		• vectorize   — 36-feature diagram statistics, bottleneck/Wasserstein
//		• layout      — floor-plan dead-space analysis via alpha complexes
//
// Why tda?
//
//   - Deterministic — identical inputs and seeds produce identical diagrams
//   - Stateless — every call owns its inputs and allocates fresh outputs
//   - Scale-aware — exact below 3k points, approximate but bounded beyond
//   - Plain errors — package-level sentinels, no panics in library code
//
// Typical flow:
//
//	distance → filtration → persistence → {vectorize, timeseries, layout}
//
// with mapper and simplicial consuming raw features and relations
// directly. See each package's doc.go for contracts and complexity.
package tda
