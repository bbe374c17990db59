package util

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SPICE style magnitude suffixes. M means milli here, the mega spelling is
// meg.
var unitMap = map[string]float64{
	"T":   1e12,
	"G":   1e9,
	"meg": 1e6,
	"K":   1e3,
	"k":   1e3,
	"M":   1e-3,
	"m":   1e-3,
	"u":   1e-6,
	"n":   1e-9,
	"p":   1e-12,
	"f":   1e-15,
}

var valuePattern = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)(meg|[TGMKkmunpf])?m?$`)

// ParseValue parses a number with an optional magnitude suffix and an
// optional trailing meter unit, so "19u", "19um" and "1.9e-5" all give the
// same width.
func ParseValue(val string) (float64, error) {
	matches := valuePattern.FindStringSubmatch(strings.TrimSpace(val))
	if matches == nil {
		return 0, fmt.Errorf("invalid value format: %s", val)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %s: %v", matches[1], err)
	}

	if matches[2] != "" {
		num *= unitMap[matches[2]]
	}
	return num, nil
}
