// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Print POSIX shell statements that activate the environment",
	Long: TitleStyle.Render("zmkenv hook") + `

Prints export statements for PATH and the build variables, suitable
for eval in the current shell:

  eval "$(zmkenv hook)"

No banner is shown and no subshell is spawned.`,
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

		script, err := env.Hook()
		if err != nil {
			return reportError(err)
		}
		fmt.Fprint(cmd.OutOrStdout(), script)
		return nil
	},
}
