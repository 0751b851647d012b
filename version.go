package termcells

import (
	_ "embed"
	"fmt"
	"regexp"
	"runtime/debug"
	"strconv"
)

//go:embed VERSION
var raw string

type VersionType struct {
	major, minor, patch int
}

func (self VersionType) String() string {
	return fmt.Sprint(self.major, ".", self.minor, ".", self.patch)
}

var VersionString string
var Version VersionType
var VCSRevision string

func parse_version(raw string) (ans VersionType, err error) {
	verpat := regexp.MustCompile(`^\s*(\d+)\.(\d+)\.(\d+)\s*$`)
	matches := verpat.FindStringSubmatch(raw)
	if matches == nil {
		return ans, fmt.Errorf("Invalid version: %#v", raw)
	}
	if ans.major, err = strconv.Atoi(matches[1]); err != nil {
		return
	}
	if ans.minor, err = strconv.Atoi(matches[2]); err != nil {
		return
	}
	ans.patch, err = strconv.Atoi(matches[3])
	return
}

func init() {
	var err error
	if Version, err = parse_version(raw); err != nil {
		panic(err)
	}
	VersionString = Version.String()
	bi, ok := debug.ReadBuildInfo()
	if ok {
		for _, bs := range bi.Settings {
			if bs.Key == "vcs.revision" {
				VCSRevision = bs.Value
			}
		}
	}
	if VCSRevision != "" {
		VersionString += " (" + VCSRevision[:min(12, len(VCSRevision))] + ")"
	}
}
