package model

import "strings"

// BuildSpec identifies one wheel artifact the pipeline must produce: a single
// (package, version, platform, python, abi) combination. It is a comparable
// value type so a map[BuildSpec]struct{} works as a deduplicating set.
type BuildSpec struct {
	Package          string
	Version          string
	PlatformInstance string
	PlatformArch     string
	PythonTag        string
	ABITag           string
	PlatformTag      string
	SdistURL         string
	Constraints      string
}

// SdistDir is the directory name the sdist unpacks to: the package name with
// dashes folded to underscores, joined to the resolved version
func (s BuildSpec) SdistDir() string {
	return strings.ReplaceAll(s.Package, "-", "_") + "-" + s.Version
}

// Filename derives the canonical wheel filename for this spec. An empty ABI
// tag repeats the python tag, per the wheel naming contract; this must match
// byte for byte what the build job uploads.
func (s BuildSpec) Filename() string {
	abi := s.ABITag
	if abi == "" {
		abi = s.PythonTag
	}

	parts := make([]string, 0, 4)
	for _, part := range []string{s.SdistDir(), s.PythonTag, abi, s.PlatformTag} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "-") + ".whl"
}
