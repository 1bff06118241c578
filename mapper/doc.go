// Package mapper builds Mapper summary graphs of a joint compatibility
// space between two labeled point sets.
//
// What:
//
//	Each (row, column) pair contributes one joint feature vector —
//	row features, column features, and the pair's compatibility
//	scalar. The pipeline then:
//	 1. projects the joint matrix to a 2D lens via principal
//	    components (variance-maximizing linear projection);
//	 2. covers the lens range with NCubes overlapping intervals per
//	    axis (Overlap fraction of the interval width);
//	 3. clusters the members of each cover cell with DBSCAN
//	    (Eps neighborhood radius, MinSamples minimum density);
//	 4. turns every cluster into a node (size, mean compatibility,
//	    member indices, decoded pair indices);
//	 5. connects two nodes iff their member sets intersect.
//
// Connected components are counted by breadth-first traversal over the
// node/edge graph.
//
// Why:
//
//	The graph is an interpretable summary: components are distinct
//	market segments, branches are niche specializations, loops are
//	versatile regions of the compatibility space.
//
// Errors:
//
//   - ErrInsufficientData: either input point set is empty.
//   - ErrShapeMismatch: the compatibility matrix does not match the
//     two point sets.
//   - ErrProjection: the principal-component decomposition failed.
package mapper
