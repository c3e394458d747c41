package jigmesh

import (
	"jigmesh/geom2d"
	"jigmesh/quadtree"
)

// Update recomputes every face's cached bounding box, the mesh's overall
// bounding box, and rebuilds the spatial index from scratch (spec.md §4.1,
// Update). Call it after a batch of mutations and before HitTest; the
// quadtree is never incrementally maintained (see package quadtree's doc
// comment).
func (m *Mesh) Update() {
	m.bbox = geom2d.Empty()
	faces := m.Faces()
	if len(faces) == 0 {
		m.qt = nil
		return
	}

	bboxes := make(map[FaceHandle]geom2d.Rect, len(faces))
	for _, f := range faces {
		poly := m.FacePolygon(f)
		bb := poly.BBox()
		m.faces[f].bbox = bb
		bboxes[f] = bb
		m.bbox = m.bbox.Union(bb)
	}

	qt := quadtree.New[FaceHandle](m.bbox)
	for _, f := range faces {
		qt.Insert(bboxes[f], f)
	}
	m.qt = qt

	m.log.Debugw("mesh updated", "faces", len(faces), "verts", m.VertCount(), "bbox", m.bbox)
}

// BBox returns the mesh's overall bounding box as of the last Update call.
func (m *Mesh) BBox() geom2d.Rect { return m.bbox }
