// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the environment variables the toolchain exports",
	Long: TitleStyle.Render("zmkenv env") + `

Prints one NAME=VALUE line per exported variable, PATH first. Useful
for inspecting what a shell session would receive.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		composer, err := newComposer()
		if err != nil {
			return reportError(err)
		}

		env, err := composer.Compose(cmd.Context())
		if err != nil {
			return reportError(err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "PATH=%s\n", env.PathValue(os.Getenv("PATH")))
		for _, b := range env.Bindings {
			fmt.Fprintf(out, "%s=%s\n", b.Name, b.Value)
		}
		return nil
	},
}
