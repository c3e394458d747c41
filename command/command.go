// Package command packages jigmesh mutations as reversible commands: each
// one can report whether its preconditions hold, apply itself, and restore
// the exact prior topology on demand (spec.md §4.4). Grounded on
// original_source/Jig/EdgeMeshCommand.h's Base/Compound/Do/Undo shape,
// translated from virtual dispatch to a small interface plus concrete
// structs.
package command

import "github.com/pkg/errors"

// Command is a single reversible mesh edit.
type Command interface {
	// CanDo reports whether Do's preconditions currently hold.
	CanDo() (bool, error)
	Do() error
	Undo() error
}

// Compound runs a sequence of commands as one unit: Do applies them in
// order, Undo reverses them in the opposite order, and CanDo is their
// conjunction (spec.md §4.4, Compound).
type Compound struct {
	Children []Command
}

// NewCompound builds a Compound from the given children, in Do order.
func NewCompound(children ...Command) *Compound {
	return &Compound{Children: children}
}

func (c *Compound) CanDo() (bool, error) {
	for _, child := range c.Children {
		ok, err := child.CanDo()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (c *Compound) Do() error {
	for i, child := range c.Children {
		if err := child.Do(); err != nil {
			return errors.Wrapf(err, "compound: child %d", i)
		}
	}
	return nil
}

func (c *Compound) Undo() error {
	for i := len(c.Children) - 1; i >= 0; i-- {
		if err := c.Children[i].Undo(); err != nil {
			return errors.Wrapf(err, "compound: child %d", i)
		}
	}
	return nil
}
