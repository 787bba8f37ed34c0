package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Steel cross-section properties",
	Long: `Compute the properties a test case needs (A, I, Z) for a steel
cross-section, either a standard I-section given by its plate sizes or any
polygonal outline defined in a JSON or YAML file.

Subcommands:
  properties  - Area, second moment, elastic and plastic section modulus

Example JSON file structure:
{
  "name": "Built-up I-section",
  "fy": 250,
  "vertices": [
    {"x": 0, "y": 0}, {"x": 150, "y": 0}, {"x": 150, "y": 10},
    {"x": 79, "y": 10}, {"x": 79, "y": 290}, {"x": 150, "y": 290},
    {"x": 150, "y": 300}, {"x": 0, "y": 300}, {"x": 0, "y": 290},
    {"x": 71, "y": 290}, {"x": 71, "y": 10}, {"x": 0, "y": 10}
  ]
}`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
