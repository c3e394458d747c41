package command

import (
	"jigmesh"
	"jigmesh/geom2d"
)

// MoveVert swaps a vert's position with a new one. Undo is the same
// operation applied again — it's its own inverse (spec.md §4.4, MoveVert).
type MoveVert struct {
	mesh   *jigmesh.Mesh
	vert   jigmesh.VertHandle
	newPos geom2d.Vector2
}

// NewMoveVert builds the command; call Do to apply it.
func NewMoveVert(mesh *jigmesh.Mesh, vert jigmesh.VertHandle, newPos geom2d.Vector2) *MoveVert {
	return &MoveVert{mesh: mesh, vert: vert, newPos: newPos}
}

func (c *MoveVert) CanDo() (bool, error) {
	return c.mesh.VertExists(c.vert), nil
}

func (c *MoveVert) swap() error {
	old := c.mesh.Pos(c.vert)
	c.mesh.SetPos(c.vert, c.newPos)
	c.newPos = old
	return nil
}

func (c *MoveVert) Do() error   { return c.swap() }
func (c *MoveVert) Undo() error { return c.swap() }
