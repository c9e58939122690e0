package constraints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	tests := []struct {
		name    string
		pkg     string
		version string
		want    string
	}{
		{name: "pyyaml lower bound", pkg: "pyyaml", version: "5.4", want: "Cython < 3.0"},
		{name: "pyyaml inside range", pkg: "pyyaml", version: "5.4.1", want: "Cython < 3.0"},
		{name: "pyyaml upper bound", pkg: "pyyaml", version: "6.0", want: "Cython < 3.0"},
		{name: "pyyaml outside range", pkg: "pyyaml", version: "6.1", want: ""},
		{name: "pyyaml below range", pkg: "pyyaml", version: "5.3", want: ""},
		{name: "case-insensitive package match", pkg: "PyYAML", version: "5.4", want: "Cython < 3.0"},
		{name: "unknown package", pkg: "cryptography", version: "36.0.1", want: ""},
		{name: "untabled package with post-release version", pkg: "cryptography", version: "1.0.post1", want: ""},
		{name: "untabled package with dev version", pkg: "setuptools-scm", version: "8.0.dev0", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := For(tt.pkg, tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestForBadVersion(t *testing.T) {
	// Only a tabled package's version has to be range-checkable
	_, err := For("pyyaml", "not-a-version")
	assert.Error(t, err)

	got, err := For("cryptography", "not-a-version")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
