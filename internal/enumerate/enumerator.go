package enumerate

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/sourceplane/wheelmatrix/internal/constraints"
	"github.com/sourceplane/wheelmatrix/internal/model"
	"github.com/sourceplane/wheelmatrix/internal/pypi"
)

// Resolver resolves a (package, version selector) pair against the package
// index
type Resolver interface {
	Resolve(ctx context.Context, name, selector string) (pypi.Resolved, error)
}

// Checker probes storage for an already-published wheel
type Checker interface {
	Exists(ctx context.Context, spec model.BuildSpec) (bool, error)
}

// Enumerator expands the manifest's nested package → version → platform →
// python structure into concrete build specs
type Enumerator struct {
	resolver Resolver
	checker  Checker
	stdout   io.Writer
}

// NewEnumerator creates an enumerator
func NewEnumerator(resolver Resolver, checker Checker, stdout io.Writer) *Enumerator {
	return &Enumerator{
		resolver: resolver,
		checker:  checker,
		stdout:   stdout,
	}
}

// EnumerateMissing expands the manifest and keeps only the build specs whose
// wheel is absent from storage. The result is deduplicated and sorted.
func (e *Enumerator) EnumerateMissing(ctx context.Context, manifest *model.Manifest) ([]model.BuildSpec, error) {
	missing := make(map[model.BuildSpec]struct{})

	err := e.walk(ctx, manifest, func(ctx context.Context, spec model.BuildSpec) error {
		fmt.Fprintf(e.stdout, "checking bucket for %s\n", spec.Filename())
		exists, err := e.checker.Exists(ctx, spec)
		if err != nil {
			return err
		}
		if !exists {
			fmt.Fprintf(e.stdout, "%s is not present in bucket\n", spec.Filename())
			missing[spec] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sortSpecs(missing), nil
}

// EnumerateAll expands the manifest into every declared build spec without
// touching storage
func (e *Enumerator) EnumerateAll(ctx context.Context, manifest *model.Manifest) ([]model.BuildSpec, error) {
	all := make(map[model.BuildSpec]struct{})

	err := e.walk(ctx, manifest, func(_ context.Context, spec model.BuildSpec) error {
		all[spec] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sortSpecs(all), nil
}

// walk performs the cross-product expansion and calls visit once per concrete
// build spec. Iteration order over the manifest maps is sorted so the walk is
// deterministic. Each version selector resolves once, before the platform and
// python loops fan out.
func (e *Enumerator) walk(ctx context.Context, manifest *model.Manifest, visit func(context.Context, model.BuildSpec) error) error {
	if manifest == nil {
		return fmt.Errorf("manifest cannot be nil")
	}

	for _, pkgName := range sortedKeys(manifest.Packages) {
		pkg := manifest.Packages[pkgName]

		for _, selector := range sortedKeys(pkg.Versions) {
			builds := pkg.Versions[selector]

			resolved, err := e.resolver.Resolve(ctx, pkgName, selector)
			if err != nil {
				return err
			}

			pkgConstraints, err := constraints.For(pkgName, resolved.Version)
			if err != nil {
				return err
			}

			for _, wheel := range builds.Wheels {
				for _, pySpec := range wheel.Python {
					// Tag validation is a manifest-correctness check and
					// must fail before any storage probe
					if _, err := model.ParsePythonTag(pySpec.Tag); err != nil {
						return fmt.Errorf("package %s version %s: %w", pkgName, resolved.Version, err)
					}

					spec := model.BuildSpec{
						Package:          pkgName,
						Version:          resolved.Version,
						PlatformInstance: wheel.PlatformInstance,
						PlatformArch:     wheel.PlatformArch,
						PythonTag:        pySpec.Tag,
						ABITag:           pySpec.ABI,
						PlatformTag:      wheel.PlatformTag,
						SdistURL:         resolved.SdistURL,
						Constraints:      pkgConstraints,
					}

					if err := visit(ctx, spec); err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}

// sortSpecs imposes a total order on a spec set; set iteration order is
// never relied on for output determinism
func sortSpecs(set map[model.BuildSpec]struct{}) []model.BuildSpec {
	specs := make([]model.BuildSpec, 0, len(set))
	for spec := range set {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool {
		a, b := specs[i], specs[j]
		if a.Package != b.Package {
			return a.Package < b.Package
		}
		if a.Version != b.Version {
			return a.Version < b.Version
		}
		if a.PlatformTag != b.PlatformTag {
			return a.PlatformTag < b.PlatformTag
		}
		if a.PythonTag != b.PythonTag {
			return a.PythonTag < b.PythonTag
		}
		return a.ABITag < b.ABITag
	})
	return specs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
