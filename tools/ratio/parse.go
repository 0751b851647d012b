// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package ratio

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSizeRequest parses a comma separated list of key=value pairs, with
// keys ratio, min and size, for example: ratio=2,min=5 or size=20. A bare
// number is a ratio.
func ParseSizeRequest(spec string) (ans SizeRequest, err error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return ans, fmt.Errorf("empty size request")
	}
	for _, item := range strings.Split(spec, ",") {
		key, val, found := strings.Cut(strings.TrimSpace(item), "=")
		if !found {
			key, val = "ratio", key
		}
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return ans, fmt.Errorf("invalid value in size request %#v: %w", spec, err)
		}
		if n < 0 {
			return ans, fmt.Errorf("negative value in size request %#v", spec)
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "ratio", "r":
			ans.Ratio = n
		case "min", "minimum", "m":
			ans.MinimumSize = n
		case "size", "s":
			ans.Size = n
		default:
			return ans, fmt.Errorf("unknown key %#v in size request %#v", key, spec)
		}
	}
	return
}

func ParseSizeRequests(specs ...string) ([]SizeRequest, error) {
	ans := make([]SizeRequest, len(specs))
	for i, spec := range specs {
		r, err := ParseSizeRequest(spec)
		if err != nil {
			return nil, err
		}
		ans[i] = r
	}
	return ans, nil
}
