// Package cmd holds helpers shared by the command packages.
package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNoteID parses a note id argument, tolerating a leading '#'.
func ParseNoteID(arg string) (int, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(arg), "#")
	id, err := strconv.Atoi(trimmed)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid note id %q", arg)
	}
	return id, nil
}
