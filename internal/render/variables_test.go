package render

import (
	"strings"
	"testing"

	"github.com/sourceplane/wheelmatrix/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitVariablesWithJobs(t *testing.T) {
	matrix := model.Matrix{
		"wheel_freebsd/13.0": {
			Instance: "freebsd/13.0",
			Arch:     "x86_64",
			Python:   "3.8",
			Pythons:  "3.10",
			JobData:  `{"instance":"freebsd/13.0","arch":"x86_64","packages":[]}`,
		},
	}

	var out strings.Builder
	require.NoError(t, EmitVariables(&out, matrix))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "##vso[task.setvariable variable=matrix;isOutput=true]{"))
	assert.Contains(t, lines[0], `"wheel_freebsd/13.0"`)
	assert.Contains(t, lines[0], `"python":"3.8"`)
	assert.Contains(t, lines[0], `"pythons":"3.10"`)
	assert.Equal(t, "##vso[task.setvariable variable=matrix_has_jobs;isOutput=true]true", lines[1])
}

func TestEmitVariablesEmptyMatrix(t *testing.T) {
	var out strings.Builder
	require.NoError(t, EmitVariables(&out, model.Matrix{}))

	assert.Equal(t, "##vso[task.setvariable variable=matrix;isOutput=true]{}\n", out.String())
	assert.NotContains(t, out.String(), "matrix_has_jobs")
}

func TestEmitVariablesDeterministicKeyOrder(t *testing.T) {
	matrix := model.Matrix{
		"wheel_b": {Instance: "b", Arch: "x86_64", Python: "3.9", JobData: "{}"},
		"wheel_a": {Instance: "a", Arch: "x86_64", Python: "3.9", JobData: "{}"},
	}

	var first, second strings.Builder
	require.NoError(t, EmitVariables(&first, matrix))
	require.NoError(t, EmitVariables(&second, matrix))

	assert.Equal(t, first.String(), second.String())
	assert.Less(t, strings.Index(first.String(), "wheel_a"), strings.Index(first.String(), "wheel_b"))
}
