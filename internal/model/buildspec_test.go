package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		spec BuildSpec
		want string
	}{
		{
			name: "empty abi falls back to python tag",
			spec: BuildSpec{
				Package:     "pkg",
				Version:     "1.2.3",
				PythonTag:   "cp39",
				ABITag:      "",
				PlatformTag: "manylinux_2_17_x86_64",
			},
			want: "pkg-1.2.3-cp39-cp39-manylinux_2_17_x86_64.whl",
		},
		{
			name: "explicit abi tag",
			spec: BuildSpec{
				Package:     "pkg",
				Version:     "1.2.3",
				PythonTag:   "cp39",
				ABITag:      "abi3",
				PlatformTag: "manylinux_2_17_x86_64",
			},
			want: "pkg-1.2.3-cp39-abi3-manylinux_2_17_x86_64.whl",
		},
		{
			name: "dashed package name folds to underscores",
			spec: BuildSpec{
				Package:     "some-pkg",
				Version:     "0.1",
				PythonTag:   "cp311",
				ABITag:      "abi3",
				PlatformTag: "freebsd_13_0",
			},
			want: "some_pkg-0.1-cp311-abi3-freebsd_13_0.whl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.Filename())
		})
	}
}

func TestSdistDir(t *testing.T) {
	spec := BuildSpec{Package: "a-b-c", Version: "2.0"}
	assert.Equal(t, "a_b_c-2.0", spec.SdistDir())
}

func TestBuildSpecSetSemantics(t *testing.T) {
	base := BuildSpec{
		Package:          "cryptography",
		Version:          "36.0.1",
		PlatformInstance: "freebsd/13.0",
		PlatformArch:     "x86_64",
		PythonTag:        "cp38",
		ABITag:           "abi3",
		PlatformTag:      "freebsd/13.0",
		SdistURL:         "https://example.invalid/cryptography-36.0.1.tar.gz",
	}

	set := map[BuildSpec]struct{}{}
	set[base] = struct{}{}
	set[base] = struct{}{}
	assert.Len(t, set, 1, "identical specs must dedup")

	// A differing sdist URL is a different tuple: dedup is on full
	// structural equality, not the filename alone
	other := base
	other.SdistURL = "https://example.invalid/other.tar.gz"
	set[other] = struct{}{}
	assert.Len(t, set, 2)
	assert.Equal(t, base.Filename(), other.Filename())
}
