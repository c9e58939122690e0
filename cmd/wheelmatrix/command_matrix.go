package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/sourceplane/wheelmatrix/internal/enumerate"
	"github.com/sourceplane/wheelmatrix/internal/loader"
	"github.com/sourceplane/wheelmatrix/internal/matrix"
	"github.com/sourceplane/wheelmatrix/internal/pypi"
	"github.com/sourceplane/wheelmatrix/internal/render"
	"github.com/sourceplane/wheelmatrix/internal/storage"
	"github.com/spf13/cobra"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Compute the missing-wheel job matrix and emit pipeline variables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return generateMatrix()
	},
}

func registerMatrixCommand(root *cobra.Command) {
	root.AddCommand(matrixCmd)

	matrixCmd.Flags().StringVarP(&bucketName, "bucket", "b", "spare-tire", "Artifact bucket name")
	matrixCmd.Flags().StringVar(&indexURL, "index-url", pypi.DefaultEndpoint, "Package index JSON API endpoint")
	matrixCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug output")
}

func generateMatrix() error {
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

	fmt.Println("□ Connecting to artifact storage...")
	checker, err := storage.NewCheckerFromEnv(ctx, bucketName)
	if err != nil {
		return err
	}

	fmt.Println("□ Enumerating missing wheels...")
	enumerator := enumerate.NewEnumerator(resolver, checker, os.Stdout)
	missing, err := enumerator.EnumerateMissing(ctx, manifest)
	if err != nil {
		return fmt.Errorf("failed to enumerate missing wheels: %w", err)
	}

	fmt.Println("□ Building job matrix...")
	buildMatrix, err := matrix.Build(missing)
	if err != nil {
		return fmt.Errorf("failed to build job matrix: %w", err)
	}

	if debugMode {
		jobNames := make([]string, 0, len(buildMatrix))
		for name := range buildMatrix {
			jobNames = append(jobNames, name)
		}
		sort.Strings(jobNames)
		for _, name := range jobNames {
			fmt.Printf("%s data is %s\n", name, buildMatrix[name].JobData)
		}
	}

	fmt.Println("dumping build matrix to variable `matrix`")
	if err := render.EmitVariables(os.Stdout, buildMatrix); err != nil {
		return err
	}

	fmt.Printf("✓ %d jobs required\n", len(buildMatrix))
	return nil
}
