// Package jigmesh implements a 2D planar subdivision on top of a half-edge
// data structure: a mesh of Verts, Edges, and Faces, the mutation
// primitives that keep the mesh's topological invariants intact, and the
// query operations (point location, boundary walks) the rest of the module
// builds on.
//
// Verts, Edges, and Faces live in flat, stable-index arenas owned by Mesh;
// every cross-reference between them is an opaque handle rather than a
// pointer (see DESIGN.md, "arena + index"). A handle stays valid for the
// lifetime of the Mesh even across Remove/Insert cycles, which is what lets
// reversible commands (package command) restore exact prior state on Undo.
package jigmesh

import "jigmesh/geom2d"

// VertHandle identifies a vert in a Mesh's vert arena.
type VertHandle int

// EdgeHandle identifies a half-edge in a Mesh's edge arena.
type EdgeHandle int

// FaceHandle identifies a face in a Mesh's face arena.
type FaceHandle int

// NoVert, NoEdge, and NoFace are the sentinel "absent" handles: the zero
// value of a Mesh's arena index space is a valid slot 0, so an explicit
// negative sentinel is required (mirroring the source's use of nullptr for
// "no twin" / "no reference").
const (
	NoVert VertHandle = -1
	NoEdge EdgeHandle = -1
	NoFace FaceHandle = -1
)

type vertSlot struct {
	alive bool
	pos   geom2d.Vector2
	data  any
}

type edgeSlot struct {
	alive            bool
	vert             VertHandle
	face             FaceHandle
	prev, next, twin EdgeHandle
}

type faceSlot struct {
	alive bool
	start EdgeHandle
	bbox  geom2d.Rect
}
