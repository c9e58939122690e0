package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sourceplane/wheelmatrix/internal/model"
)

// Variable names understood by the downstream pipeline stages
const (
	matrixVariable  = "matrix"
	hasJobsVariable = "matrix_has_jobs"
)

// EmitVariables prints the pipeline variable directives for a computed
// matrix: the matrix itself, and matrix_has_jobs only when at least one job
// exists. Stage conditions cannot distinguish an empty matrix value from an
// absent one, hence the separate flag. This is the only place that writes
// the line protocol.
func EmitVariables(w io.Writer, matrix model.Matrix) error {
	data, err := json.Marshal(matrix)
	if err != nil {
		return fmt.Errorf("failed to encode matrix: %w", err)
	}

	emitVariable(w, matrixVariable, string(data))
	if matrix.HasJobs() {
		emitVariable(w, hasJobsVariable, "true")
	}

	return nil
}

// emitVariable writes one output-variable directive in the pipeline's
// line-based protocol
func emitVariable(w io.Writer, name, value string) {
	fmt.Fprintf(w, "##vso[task.setvariable variable=%s;isOutput=true]%s\n", name, value)
}
