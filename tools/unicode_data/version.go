// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package unicode_data

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var _ = fmt.Print

var ErrBadVersion = errors.New("badly formatted unicode version")

type VersionError struct {
	Version string
}

func (self *VersionError) Error() string {
	return fmt.Sprintf("unicode version string %#v is badly formatted", self.Version)
}

func (self *VersionError) Unwrap() error { return ErrBadVersion }

type Version struct {
	Major, Minor, Patch int
}

func (self Version) String() string {
	return fmt.Sprintf("%d.%d.%d", self.Major, self.Minor, self.Patch)
}

func (self Version) Compare(other Version) int {
	if c := cmp.Compare(self.Major, other.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(self.Minor, other.Minor); c != 0 {
		return c
	}
	return cmp.Compare(self.Patch, other.Patch)
}

// ParseVersion parses a dotted version string such as "15", "15.1" or
// "15.1.0". Missing components default to zero, components after the third
// are checked but ignored. Any non-numeric component is an error.
func ParseVersion(version string) (ans Version, err error) {
	parts := strings.Split(version, ".")
	nums := [3]int{}
	for i, x := range parts {
		n, cerr := strconv.Atoi(x)
		if cerr != nil {
			return ans, &VersionError{Version: version}
		}
		if i < len(nums) {
			nums[i] = n
		}
	}
	return Version{nums[0], nums[1], nums[2]}, nil
}

func MustParseVersion(version string) Version {
	ans, err := ParseVersion(version)
	if err != nil {
		panic(err)
	}
	return ans
}
