package utils

import (
	"strconv"
	"strings"
)

// DefaultSideLength is used when the cell count argument is missing or unparsable
const DefaultSideLength = 100

// ParseSideLength parses the grid side length given on the command line.
// Unparsable input falls back to fallback; parsed values are returned as is,
// so a non-positive number reaches the engine and is rejected there.
func ParseSideLength(arg string, fallback int) int {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return fallback
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fallback
	}
	return n
}
