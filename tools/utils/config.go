// License: GPLv3 Copyright: 2023, Kovid Goyal, <kovid at kovidgoyal.net>

package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var _ = fmt.Print

// ParseConfData calls callback with the first word and the rest of every
// non-blank, non-comment line in src. Parsing stops at the first error
// returned by callback, which is returned annotated with the line number.
func ParseConfData(src io.Reader, callback func(key, val string, line int) error) error {
	scanner := bufio.NewScanner(src)
	lnum := 0
	for scanner.Scan() {
		line := strings.TrimLeft(scanner.Text(), " ")
		lnum++
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, _ := strings.Cut(line, " ")
		if err := callback(key, val, lnum); err != nil {
			return fmt.Errorf("line %d: %w", lnum, err)
		}
	}
	return scanner.Err()
}
