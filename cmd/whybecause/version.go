package main

import (
	"fmt"
	"strings"

	whybecause "github.com/NeoVand/WhyBecause"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of whybecause",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("whybecause version %s\n", strings.TrimSpace(whybecause.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
