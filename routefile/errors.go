package routefile

import "errors"

var (
	// ErrBadRoute indicates a record with fewer than two fields.
	ErrBadRoute = errors.New("routefile: route needs an origin and a destination")
	// ErrBadCost indicates a cost column that is not an integer.
	ErrBadCost = errors.New("routefile: route cost is not an integer")
)
