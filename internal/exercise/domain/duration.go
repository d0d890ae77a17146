package domain

import (
	"math"
	"strconv"
	"strings"
)

// ParseDuration coerces a submitted duration to whole minutes the lenient way
// form handlers traditionally did: leading whitespace and sign are accepted,
// the leading run of digits is used and anything after it, including a
// fractional part, is dropped. "30", " 30 ", "30.9" and "30min" all yield 30.
// Input with no leading digits is rejected.
func ParseDuration(value string) (int64, bool) {
	s := strings.TrimLeft(value, " \t\r\n")
	if s == "" {
		return 0, false
	}

	negative := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		negative = true
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		n = math.MaxInt64
	}
	if negative {
		n = -n
	}
	return n, true
}
