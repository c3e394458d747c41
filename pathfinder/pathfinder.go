// Package pathfinder implements an incremental A* search over a mesh's
// visibility graph: nodes are mesh verts plus the two query endpoints,
// edges join mutually visible nodes weighted by Euclidean distance
// (spec.md §4.6). Ported from original_source/Jig/PathFinder.cpp; the
// std::map-keyed priority queue becomes container/heap (grounded on
// missinglink-simplefeatures/rtree/nearest.go's use of the same package
// for its own nearest-neighbour search), and GetPathToStart's walk-back-
// through-prev becomes Finder.bestPathFrom.
package pathfinder

import (
	"container/heap"

	"jigmesh"
	"jigmesh/geom2d"
	"jigmesh/visibility"
)

// node is one entry in the done-map: the best known cost to reach vert
// from start, and the predecessor that achieved it (spec.md §4.6, "done-
// map").
type node struct {
	g    float64
	prev jigmesh.VertHandle
	has  bool // false for the synthetic start-adjacent entries with no predecessor
}

// queueItem is one entry in the open set's priority queue.
type queueItem struct {
	priority float64
	vert     jigmesh.VertHandle
	prev     jigmesh.VertHandle
	hasPrev  bool
	index    int
}

type openQueue []*queueItem

func (q openQueue) Len() int { return len(q) }
func (q openQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	if q[i].vert != q[j].vert {
		return q[i].vert < q[j].vert
	}
	return q[i].prev < q[j].prev
}
func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index, q[j].index = i, j
}
func (q *openQueue) Push(x any) {
	item := x.(*queueItem)
	item.index = len(*q)
	*q = append(*q, item)
}
func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// Finder is a single incremental A* search, queryable between Step calls
// (spec.md §4.6). The zero value is not usable; build one with New.
type Finder struct {
	mesh  *jigmesh.Mesh
	start geom2d.Vector2
	end   geom2d.Vector2

	endVisible map[jigmesh.VertHandle]bool
	done       map[jigmesh.VertHandle]node
	queue      openQueue

	finished bool
	path     []geom2d.Vector2
	length   float64

	lastVert    jigmesh.VertHandle
	hasLastVert bool
}

// New builds a Finder for the path from start to end over mesh's
// visibility graph. If start and end already see each other directly, the
// search is finished immediately with the trivial two-point path (spec.md
// §4.6, Constructor).
func New(mesh *jigmesh.Mesh, start, end geom2d.Vector2) *Finder {
	f := &Finder{
		mesh:       mesh,
		start:      start,
		end:        end,
		endVisible: map[jigmesh.VertHandle]bool{},
		done:       map[jigmesh.VertHandle]node{},
	}

	if visibility.IsVisible(mesh, start, end) {
		f.length = end.Sub(start).Length()
		f.path = []geom2d.Vector2{start, end}
		f.finished = true
		return f
	}

	startVisible := visibility.From(mesh, start)
	endVisible := visibility.From(mesh, end)
	if len(startVisible) == 0 || len(endVisible) == 0 {
		f.finished = true
		return f
	}

	for _, v := range endVisible {
		f.endVisible[v] = true
	}
	for _, v := range startVisible {
		f.addVert(v, jigmesh.NoVert, false)
	}

	return f
}

// IsFinished reports whether the search has concluded, successfully or
// not.
func (f *Finder) IsFinished() bool { return f.finished }

func (f *Finder) addVert(v, prev jigmesh.VertHandle, hasPrev bool) {
	g := f.pathLengthToStart(v, prev, hasPrev)
	if n, already := f.done[v]; already && n.g <= g {
		return
	}
	f.done[v] = node{g: g, prev: prev, has: hasPrev}
	h := f.end.Sub(f.mesh.Pos(v)).Length()
	heap.Push(&f.queue, &queueItem{priority: g + h, vert: v, prev: prev, hasPrev: hasPrev})
}

// pathLengthToStart computes g for v given it is reached via prev (or
// directly from start if hasPrev is false), by adding one segment's length
// to prev's already-known g.
func (f *Finder) pathLengthToStart(v, prev jigmesh.VertHandle, hasPrev bool) float64 {
	if !hasPrev {
		return f.mesh.Pos(v).Sub(f.start).Length()
	}
	prevNode := f.done[prev]
	return prevNode.g + f.mesh.Pos(v).Sub(f.mesh.Pos(prev)).Length()
}

// bestPathFrom walks the done-map's prev chain from vert back to start,
// returning the polyline (vert first, start last) and its total length —
// spec.md §4.6's GetPathToStart, usable whether or not the search has
// finished (spec.md §C.5).
func (f *Finder) bestPathFrom(vert jigmesh.VertHandle) ([]geom2d.Vector2, float64) {
	var pts []geom2d.Vector2
	var length float64

	cur := vert
	for {
		pts = append(pts, f.mesh.Pos(cur))
		n := f.done[cur]
		if !n.has {
			break
		}
		length += f.mesh.Pos(cur).Sub(f.mesh.Pos(n.prev)).Length()
		cur = n.prev
	}
	pts = append(pts, f.start)
	length += f.mesh.Pos(cur).Sub(f.start).Length()
	return pts, length
}

// Step pops the least-cost open-set entry and expands it (spec.md §4.6,
// Step). Duplicate queue entries for an already-done vert are discarded at
// pop time via the done-map's presence check — a stale entry's recorded
// prev won't match the done-map's recorded prev once a cheaper route has
// won, so it is simply skipped.
func (f *Finder) Step() {
	if f.finished {
		return
	}
	for f.queue.Len() > 0 {
		item := heap.Pop(&f.queue).(*queueItem)
		n, ok := f.done[item.vert]
		if !ok || n.prev != item.prev || n.has != item.hasPrev {
			continue // superseded by a cheaper route already recorded
		}

		f.lastVert, f.hasLastVert = item.vert, true
		path, length := f.bestPathFrom(item.vert)
		f.path, f.length = path, length

		if f.endVisible[item.vert] {
			f.path = append([]geom2d.Vector2{f.end}, f.path...)
			f.length += f.end.Sub(f.mesh.Pos(item.vert)).Length()
			f.finished = true
			return
		}

		data := visibility.GetData(f.mesh, item.vert)
		if data != nil {
			for _, u := range data.Visible {
				f.addVert(u, item.vert, true)
			}
		}
		return
	}

	f.path = nil
	f.length = 0
	f.finished = true
}

// Go runs Step until the search finishes.
func (f *Finder) Go() {
	for !f.IsFinished() {
		f.Step()
	}
}

// Path returns the best path found so far, start to end — final if
// IsFinished, otherwise the best-so-far chain back to start from the most
// recently expanded vert (spec.md §4.6, GetPath).
func (f *Finder) Path() []geom2d.Vector2 {
	if f.finished {
		out := make([]geom2d.Vector2, len(f.path))
		for i, p := range f.path {
			out[len(f.path)-1-i] = p
		}
		return out
	}
	if !f.hasLastVert {
		return nil
	}
	out := make([]geom2d.Vector2, len(f.path))
	for i, p := range f.path {
		out[len(f.path)-1-i] = p
	}
	return out
}

// Length returns the length of Path() (spec.md §4.6, GetLength).
func (f *Finder) Length() float64 { return f.length }
