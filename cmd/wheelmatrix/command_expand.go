package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sourceplane/wheelmatrix/internal/enumerate"
	"github.com/sourceplane/wheelmatrix/internal/loader"
	"github.com/sourceplane/wheelmatrix/internal/pypi"
	"github.com/spf13/cobra"
)

var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Resolve versions and list every declared build target",
	Long:  "expand resolves each requested version against the package index and prints the full platform × python cross product, without probing the artifact bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return expandManifest()
	},
}

func registerExpandCommand(root *cobra.Command) {
	root.AddCommand(expandCmd)

	expandCmd.Flags().StringVar(&indexURL, "index-url", pypi.DefaultEndpoint, "Package index JSON API endpoint")
}

func expandManifest() error {
	ctx := context.Background()

	fmt.Println("□ Loading manifest...")
	manifest, err := loader.LoadManifest(manifestFile)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}

	resolver, err := newIndexClient()
	if err != nil {
		return err
	}

	fmt.Println("□ Expanding build targets...")
	enumerator := enumerate.NewEnumerator(resolver, nil, io.Discard)
	specs, err := enumerator.EnumerateAll(ctx, manifest)
	if err != nil {
		return fmt.Errorf("failed to expand manifest: %w", err)
	}

	for _, spec := range specs {
		fmt.Fprintf(os.Stdout, "  %s (instance %s, arch %s)\n", spec.Filename(), spec.PlatformInstance, spec.PlatformArch)
	}

	fmt.Printf("✓ %d build targets declared\n", len(specs))
	return nil
}
