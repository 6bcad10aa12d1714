// Package octree builds and queries hyperoctrees: adaptive, axis-aligned
// spatial trees in arbitrary dimension that subdivide a cell into up to
// 2^d axis-aligned children.
//
// A tree is constructed once from a set of points, spheres ("elements")
// or "sparse elements") via BuildTree, and stored as a flat,
// breadth-first array of nodes (see Tree). Four derived structures are
// produced lazily and memoized on first use: child pointers
// (Tree.ChildData), per-node geometry (Tree.GeometryData), neighbor
// lists (Tree.Neighbors) and interaction lists
// (Tree.InteractionList). A fifth operation, Tree.Search, maps query
// objects onto their containing node at every level.
//
// The package does no I/O, holds no global state and is single-threaded
// and synchronous from the caller's perspective; see Config.Workers for
// the optional parallel derived-data passes.
package octree
