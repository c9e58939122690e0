package model

import (
	"fmt"
	"regexp"
	"strconv"
)

// pythonTagPattern accepts CPython tags like cp38 or cp310: implementation
// marker, one digit major, one or two digit minor
var pythonTagPattern = regexp.MustCompile(`^cp(\d)(\d{1,2})$`)

// InvalidTagError reports a python tag that does not follow the expected
// implementation+major+minor form
type InvalidTagError struct {
	Tag string
}

func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("invalid python tag %q", e.Tag)
}

// PyVersion is a numeric (major, minor) python version, kept numeric so that
// 3.10 orders after 3.9
type PyVersion struct {
	Major int
	Minor int
}

// ParsePythonTag extracts the numeric python version from a compact tag
// such as cp39. Malformed tags fail with InvalidTagError.
func ParsePythonTag(tag string) (PyVersion, error) {
	m := pythonTagPattern.FindStringSubmatch(tag)
	if m == nil {
		return PyVersion{}, &InvalidTagError{Tag: tag}
	}

	// The pattern guarantees both groups are digits
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	return PyVersion{Major: major, Minor: minor}, nil
}

// String renders the dotted form, e.g. "3.9"
func (v PyVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Interpreter renders the interpreter executable name, e.g. "python3.9"
func (v PyVersion) Interpreter() string {
	return "python" + v.String()
}

// Less orders versions by (major, minor) tuple comparison
func (v PyVersion) Less(other PyVersion) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	return v.Minor < other.Minor
}
