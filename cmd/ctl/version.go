package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/tringgo-backend/internal/app"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the build version",
	Annotations: map[string]string{skipConfig: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
	},
}
