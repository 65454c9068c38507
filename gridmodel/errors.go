package gridmodel

import "errors"

var (
	// ErrSlotRange indicates a slot index outside [0, SlotCount).
	ErrSlotRange = errors.New("gridmodel: slot index out of range")
	// ErrSlotOccupied indicates an attempt to set a slot that is already present.
	ErrSlotOccupied = errors.New("gridmodel: slot already present")
	// ErrDegreeExceeded indicates an edge would push a node above MaxDegree.
	ErrDegreeExceeded = errors.New("gridmodel: node degree would exceed limit")
	// ErrBadDiagonal indicates a diagonal outside the cell lattice or with a
	// pivot that is not one of its off-diagonal corners.
	ErrBadDiagonal = errors.New("gridmodel: invalid diagonal")
)
