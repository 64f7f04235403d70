package commons

import "errors"

var (
	ErrInvalidPair      = errors.New("pair values cannot be the same")
	ErrClashing         = errors.New("pair clashes with another pair in the set")
	ErrNotFound         = errors.New("value does not exist")
	ErrUnsupportedShape = errors.New("unsupported pair shape")
	ErrInvalidErrorMode = errors.New("error mode must be strict or lenient")
)
