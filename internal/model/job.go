package model

// Job accumulates every missing build for one platform while the matrix is
// being assembled. It is the structured intermediate form; the transport
// representation lives in Entry.
type Job struct {
	Name     string
	Instance string
	Arch     string
	Packages []JobPackage
}

// JobPackage is one package build inside a job. The JSON tags define the
// job_data payload consumed by the downstream build stage.
type JobPackage struct {
	Name                   string `json:"name"`
	Version                string `json:"version"`
	Python                 string `json:"python"`
	PythonVersion          string `json:"python_version"`
	PythonTag              string `json:"python_tag"`
	ABI                    string `json:"abi"`
	SdistDir               string `json:"sdist_dir"`
	SdistURL               string `json:"sdist_url"`
	ExpectedOutputFilename string `json:"expected_output_filename"`
	Constraints            string `json:"constraints"`
}

// JobData is the nested per-job payload that gets JSON-encoded into a single
// string field, because the pipeline variable format rejects deep nesting and
// non-string values
type JobData struct {
	Instance string       `json:"instance"`
	Arch     string       `json:"arch"`
	Packages []JobPackage `json:"packages"`
}

// Entry is the flattened transport form of one job in the emitted matrix
type Entry struct {
	Instance string `json:"instance"`
	Arch     string `json:"arch"`
	Python   string `json:"python"`
	Pythons  string `json:"pythons"`
	JobData  string `json:"job_data"`
}

// Matrix maps job name to its flattened entry. encoding/json marshals map
// keys in sorted order, which keeps the emitted variable deterministic.
type Matrix map[string]Entry

// HasJobs reports whether at least one job needs to run
func (m Matrix) HasJobs() bool {
	return len(m) > 0
}
