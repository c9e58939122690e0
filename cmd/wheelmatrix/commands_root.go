package main

import (
	"github.com/sourceplane/wheelmatrix/internal/pypi"
	"github.com/spf13/cobra"
)

var (
	manifestFile string
	bucketName   string
	indexURL     string
	debugMode    bool
)

var rootCmd = &cobra.Command{
	Use:          "wheelmatrix",
	Short:        "Build-matrix generator: wheel manifest → CI job matrix",
	Long:         "wheelmatrix compares a declarative wheel manifest against the artifact bucket and emits a pipeline job matrix covering every wheel that still needs building",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&manifestFile, "manifest", "m", "wheel_matrix.yml", "Wheel manifest file path")

	registerMatrixCommand(rootCmd)
	registerValidateCommand(rootCmd)
	registerExpandCommand(rootCmd)
}

func newIndexClient() (*pypi.Client, error) {
	return pypi.NewClient(indexURL)
}
