// Package matrix provides the dense storage behind pathmx adjacency matrices.
//
// Dense is a row-major, int64-valued matrix backed by a single flat slice.
// Square instances hold edge weights of a graph: cell (u,v) is the weight of
// the directed edge u→v and 0 means "no edge".
//
// Public indexers (At/Set/Row) validate their arguments and return
// ErrOutOfRange instead of panicking. Hot loops that already proved their
// indices valid may use RowView, which returns a slice aliasing the storage.
//
// FloydWarshall computes all-pairs shortest distances over a square weight
// matrix. pathmx uses it as an O(n³) reference for the single-source engines.
//
// Dense is not synchronized. Concurrent readers are safe once writers have
// finished; pathmx builds every matrix completely before publishing it.
package matrix
