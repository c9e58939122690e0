package model

// Manifest is the top-level declarative description of every wheel the
// pipeline is expected to publish
type Manifest struct {
	Packages map[string]Package `yaml:"packages" json:"packages"`
}

// Package holds the requested versions for a single package
type Package struct {
	Versions map[string]VersionBuilds `yaml:"versions" json:"versions"`
}

// VersionBuilds lists the wheel builds requested for one version selector.
// The selector is either an exact version string or the sentinel "latest".
type VersionBuilds struct {
	Wheels []Wheel `yaml:"wheels" json:"wheels"`
}

// Wheel declares one platform target and the python interpreters to build for
type Wheel struct {
	PlatformTag      string       `yaml:"platform_tag" json:"platform_tag"`
	PlatformInstance string       `yaml:"platform_instance" json:"platform_instance"`
	PlatformArch     string       `yaml:"platform_arch" json:"platform_arch"`
	Python           []PythonSpec `yaml:"python" json:"python"`
}

// PythonSpec names a python tag and an optional ABI qualifier
type PythonSpec struct {
	Tag string `yaml:"tag" json:"tag"`
	ABI string `yaml:"abi,omitempty" json:"abi,omitempty"`
}

// VersionSelectorLatest requests whatever version the package index
// currently reports as newest
const VersionSelectorLatest = "latest"
