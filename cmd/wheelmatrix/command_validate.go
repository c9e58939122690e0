package main

import (
	"fmt"

	"github.com/sourceplane/wheelmatrix/internal/loader"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the wheel manifest YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateManifest()
	},
}

func registerValidateCommand(root *cobra.Command) {
	root.AddCommand(validateCmd)
}

func validateManifest() error {
	fmt.Println("□ Validating manifest...")
	manifest, err := loader.LoadManifest(manifestFile)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Manifest is valid (%d packages)\n", len(manifest.Packages))
	return nil
}
