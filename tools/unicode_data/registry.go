// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package unicode_data

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/termcells/termcells/tools/utils"
	"golang.org/x/exp/slices"
)

var _ = fmt.Print

const (
	UNICODE_VERSION_ENV = "UNICODE_VERSION"
	// Use the version from UNICODE_VERSION, falling back to LATEST
	AUTO   = "auto"
	LATEST = "latest"
	// The number of distinct requested version strings whose resolution is remembered
	MAX_CACHED_REQUESTS = 256
)

// VERSION_ORDER is VERSIONS parsed and sorted ascending
var VERSION_ORDER = sync.OnceValue(func() []Version {
	ans := make([]Version, len(VERSIONS))
	for i, v := range VERSIONS {
		ans[i] = MustParseVersion(v)
	}
	sort.Slice(ans, func(i, j int) bool { return ans[i].Compare(ans[j]) < 0 })
	return ans
})

var VERSION_SET = sync.OnceValue(func() *utils.Set[string] {
	return utils.NewSetWithItems(VERSIONS...)
})

// Registry resolves version strings to cell tables, memoizing both the
// tables themselves, built at most once per Unicode version, and the
// resolution of every distinct requested version string.
type Registry struct {
	// Called with diagnostics about version resolution, may be nil
	Debug func(format string, args ...any)
	// Used to read UNICODE_VERSION, defaults to os.LookupEnv
	LookupEnv func(key string) (string, bool)

	tables    map[string]*utils.Once[*CellTable]
	requested *utils.LRUCache[string, *CellTable]
}

func NewRegistry() *Registry {
	ans := Registry{
		LookupEnv: os.LookupEnv,
		tables:    make(map[string]*utils.Once[*CellTable], len(VERSIONS)),
		requested: utils.NewLRUCache[string, *CellTable](MAX_CACHED_REQUESTS),
	}
	for _, name := range VERSIONS {
		ans.tables[name] = utils.NewOnce(func() *CellTable {
			t, err := load_table(name)
			if err != nil {
				panic(err)
			}
			ans.debug("Loaded cell widths for unicode %s with %d ranges", name, len(t.Widths))
			return t
		})
	}
	return &ans
}

var Default = sync.OnceValue(NewRegistry)

func (self *Registry) debug(format string, args ...any) {
	if self.Debug != nil {
		self.Debug(format, args...)
	}
}

func (self *Registry) Latest() string { return VERSIONS[len(VERSIONS)-1] }

func (self *Registry) Versions() []string { return slices.Clone(VERSIONS) }

// Resolve returns the name of the bundled table that serves the requested
// version. It never fails: malformed versions resolve to the latest table,
// versions between bundled ones to the nearest lower bundled version,
// versions below the first to the first and above the last to the last.
func (self *Registry) Resolve(requested string) string {
	if requested == AUTO || requested == "" {
		requested = LATEST
		if q, found := self.LookupEnv(UNICODE_VERSION_ENV); found {
			if _, err := ParseVersion(q); err == nil {
				requested = q
			} else {
				self.debug("Ignoring invalid %s=%#v", UNICODE_VERSION_ENV, q)
			}
		}
	}
	if requested == LATEST {
		return self.Latest()
	}
	if VERSION_SET().Has(requested) {
		return requested
	}
	v, err := ParseVersion(requested)
	if err != nil {
		self.debug("%s, using the latest unicode version", err)
		return self.Latest()
	}
	if name := v.String(); VERSION_SET().Has(name) {
		return name
	}
	order := VERSION_ORDER()
	idx, _ := slices.BinarySearchFunc(order, v, Version.Compare)
	ans := order[max(0, idx-1)].String()
	self.debug("No cell widths for unicode %s, using %s", requested, ans)
	return ans
}

// Load returns the cell table for the requested version, see Resolve for
// how versions are matched. Repeated calls with the same string return the
// same instance.
func (self *Registry) Load(requested string) *CellTable {
	return self.requested.MustGetOrCreate(requested, func(requested string) *CellTable {
		return self.tables[self.Resolve(requested)].Get()
	})
}

// Load returns the cell table for the requested version from the default registry
func Load(requested string) *CellTable {
	return Default().Load(requested)
}
