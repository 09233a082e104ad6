package shiftsystem

import "errors"

var (
	ErrShiftSystemNotFound  = errors.New("shift system not found")
	ErrNoShiftDefinitions   = errors.New("shift system has no shift definitions")
	ErrInvalidSystemType    = errors.New("invalid shift system type")
	ErrInvalidShiftDuration = errors.New("shift duration plus break exceeds 24 hours")
	ErrShiftsDoNotTile      = errors.New("three-shift system must tile 24 hours with no gap or overlap")
)
