package jigmesh

import "github.com/pkg/errors"

// Sentinel precondition errors (spec.md §7, "Precondition violation"). A
// caller can compare with errors.Is, or errors.Cause a wrapped error back to
// one of these for a GUI-facing message.
var (
	ErrNotAdjacent       = errors.New("edges are not adjacent on the given face")
	ErrWrongFace         = errors.New("edge does not belong to the expected face")
	ErrWouldCollapseFace = errors.New("operation would collapse a face below 3 edges or merge a twin with itself")
	ErrNoTwin            = errors.New("edge has no twin")
	ErrNotOuterEdge      = errors.New("edge is not an outer (twin-less) edge")
	ErrDegenerate        = errors.New("polyline is degenerate or self-intersecting")
	ErrOutsideMesh       = errors.New("point does not lie inside any face")
	ErrNoBridge          = errors.New("no valid bridge edge could be found")
	ErrVertNotFound      = errors.New("vert handle does not reference a live vert")
	ErrFaceNotFound      = errors.New("face handle does not reference a live face")
)
