package constraints

import (
	"fmt"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// rule pins extra build requirements for the versions of a package known to
// need them
type rule struct {
	pkg   string
	rng   goversion.Constraints
	lines []string
}

// table is fixed at build time; pins live here until the upstream packages
// no longer need them
var table = []rule{
	{
		pkg:   "pyyaml",
		rng:   mustConstraint(">= 5.4, <= 6.0"),
		lines: []string{"Cython < 3.0"},
	},
}

func mustConstraint(s string) goversion.Constraints {
	c, err := goversion.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}

// For returns the newline-joined build constraints for a package version, or
// the empty string when none apply. Package names match case-insensitively;
// the first matching table row wins. The version is only parsed once a row's
// name matches: untabled packages may carry index version forms (post/dev
// releases, epochs) the range checker does not understand, and those must
// still resolve to "no constraints" rather than an error.
func For(name, versionStr string) (string, error) {
	name = strings.ToLower(name)

	var v *goversion.Version
	for _, r := range table {
		if r.pkg != name {
			continue
		}
		if v == nil {
			var err error
			v, err = goversion.NewVersion(versionStr)
			if err != nil {
				return "", fmt.Errorf("failed to parse version %s for %s: %w", versionStr, name, err)
			}
		}
		if r.rng.Check(v) {
			return strings.Join(r.lines, "\n"), nil
		}
	}

	return "", nil
}
