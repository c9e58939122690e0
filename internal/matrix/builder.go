package matrix

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/sourceplane/wheelmatrix/internal/model"
)

// jobNamePrefix keys each job by its platform tag in the emitted matrix
const jobNamePrefix = "wheel_"

// Build groups missing build specs into per-platform jobs and flattens each
// job into its transport form. Grouping and flattening are separate steps:
// the structured model.Job is assembled first, then serialized, so the
// transport format's no-nesting rule never leaks into the domain logic.
func Build(missing []model.BuildSpec) (model.Matrix, error) {
	jobs := make(map[string]*model.Job)

	for _, spec := range missing {
		pv, err := model.ParsePythonTag(spec.PythonTag)
		if err != nil {
			return nil, fmt.Errorf("package %s version %s: %w", spec.Package, spec.Version, err)
		}

		name := jobNamePrefix + spec.PlatformTag
		job, ok := jobs[name]
		if !ok {
			job = &model.Job{
				Name:     name,
				Instance: spec.PlatformInstance,
				Arch:     spec.PlatformArch,
			}
			jobs[name] = job
		}

		job.Packages = append(job.Packages, model.JobPackage{
			Name:                   spec.Package,
			Version:                spec.Version,
			Python:                 pv.Interpreter(),
			PythonVersion:          pv.String(),
			PythonTag:              spec.PythonTag,
			ABI:                    spec.ABITag,
			SdistDir:               spec.SdistDir(),
			SdistURL:               spec.SdistURL,
			ExpectedOutputFilename: spec.Filename(),
			Constraints:            spec.Constraints,
		})
	}

	matrix := make(model.Matrix, len(jobs))
	for name, job := range jobs {
		entry, err := flatten(job)
		if err != nil {
			return nil, fmt.Errorf("failed to flatten job %s: %w", name, err)
		}
		matrix[name] = entry
	}

	return matrix, nil
}

// flatten converts one structured job into its transport entry: the primary
// python version provisions the instance, the remaining versions are
// space-joined ascending, and the nested payload is JSON-encoded into the
// job_data string field
func flatten(job *model.Job) (model.Entry, error) {
	versions, err := pythonVersions(job.Packages)
	if err != nil {
		return model.Entry{}, err
	}

	primary := versions[0]
	additional := make([]string, 0, len(versions)-1)
	for _, v := range versions[1:] {
		additional = append(additional, v.String())
	}

	data, err := json.Marshal(model.JobData{
		Instance: job.Instance,
		Arch:     job.Arch,
		Packages: job.Packages,
	})
	if err != nil {
		return model.Entry{}, fmt.Errorf("failed to encode job data: %w", err)
	}

	return model.Entry{
		Instance: job.Instance,
		Arch:     job.Arch,
		Python:   primary.String(),
		Pythons:  strings.Join(additional, " "),
		JobData:  string(data),
	}, nil
}

// pythonVersions collects the distinct numeric python versions a job's
// packages request, sorted by (major, minor) tuple so "3.10" orders after
// "3.9"
func pythonVersions(packages []model.JobPackage) ([]model.PyVersion, error) {
	seen := make(map[model.PyVersion]struct{})
	versions := make([]model.PyVersion, 0, len(packages))

	for _, pkg := range packages {
		pv, err := model.ParsePythonTag(pkg.PythonTag)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[pv]; ok {
			continue
		}
		seen[pv] = struct{}{}
		versions = append(versions, pv)
	}

	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Less(versions[j])
	})

	return versions, nil
}
