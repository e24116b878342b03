// Package offset implements the canonical string encoding of fixed UTC
// offsets as "±HH:MM:SS".
package offset

import (
	"fmt"
	"strconv"
	"strings"
)

// Offset is a fixed UTC offset in whole seconds. Positive values are
// east of Greenwich.
type Offset int

// Parse parses an offset string of the form "±HH:MM:SS" or "±HH:MM".
// The sign character is required; minutes and seconds must be below 60.
func Parse(s string) (Offset, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("invalid offset %q: empty", s)
	}

	sign := 1
	switch s[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, fmt.Errorf("invalid offset %q: missing sign", s)
	}

	parts := strings.Split(s[1:], ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid offset %q: expected ±HH:MM:SS or ±HH:MM", s)
	}

	fields := make([]int, 3)
	for i, p := range parts {
		// strconv.Atoi would accept a sign inside a field, so require
		// exactly two ASCII digits before converting.
		if len(p) != 2 || !isDigits(p) {
			return 0, fmt.Errorf("invalid offset %q: field %q is not two digits", s, p)
		}
		n, _ := strconv.Atoi(p)
		fields[i] = n
	}

	if fields[1] > 59 || fields[2] > 59 {
		return 0, fmt.Errorf("invalid offset %q: minutes and seconds must be below 60", s)
	}

	total := fields[0]*3600 + fields[1]*60 + fields[2]
	return Offset(sign * total), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Seconds returns the offset in whole seconds.
func (o Offset) Seconds() int {
	return int(o)
}

// String encodes the offset as "±HH:MM:SS" with zero-padded fields.
// The zero offset encodes as "+00:00:00".
func (o Offset) String() string {
	sign := "+"
	sec := int(o)
	if sec < 0 {
		sign = "-"
		sec = -sec
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, sec/3600, (sec/60)%60, sec%60)
}
