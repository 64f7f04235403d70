package commons

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrorMode selects how a PairSet reports a missing key. Invariant
// violations are reported as errors in both modes.
type ErrorMode int

const (
	// Strict reports a missing key as ErrNotFound.
	Strict ErrorMode = iota
	// Lenient reports a missing key by returning the zero value.
	Lenient
)

func ParseErrorMode(s string) (ErrorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "lenient":
		return Lenient, nil
	}
	return Strict, errors.Wrapf(ErrInvalidErrorMode, "got %q", s)
}

func (m ErrorMode) Valid() bool {
	return m == Strict || m == Lenient
}

func (m ErrorMode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return "ErrorMode(" + strconv.Itoa(int(m)) + ")"
	}
}

func (m ErrorMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, errors.Wrapf(ErrInvalidErrorMode, "got %d", int(m))
	}
	return []byte(m.String()), nil
}

func (m *ErrorMode) UnmarshalText(text []byte) error {
	mode, err := ParseErrorMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
