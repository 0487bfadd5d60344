// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"zmkenv-cli/internal/session"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Enter an interactive shell with the firmware toolchain on PATH",
	Long: TitleStyle.Render("zmkenv shell") + `

Resolves the pinned toolchain for the current project, exports the
build variables, shows the banner, and hands you an interactive shell.
Exit the shell to return to your original environment.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		composer, err := newComposer()
		if err != nil {
			return reportError(err)
		}

		ctx := cmd.Context()
		env, err := composer.Compose(ctx)
		if err != nil {
			return reportError(err)
		}

		shell, err := session.DefaultShell(appConfig().Shell)
		if err != nil {
			return reportError(err)
		}

		launch := func(ctx context.Context) error {
			return session.Launch(ctx, &session.Config{
				WorkDir: env.WorkDir,
				Shell:   shell,
				Env:     env.EnvSlice(os.Environ()),
				Logger:  logger,
			})
		}

		if err := composer.Enter(ctx, env, cmd.OutOrStdout(), appConfig().Banner.Enabled, launch); err != nil {
			var sessionExit *session.ExitError
			if errors.As(err, &sessionExit) {
				return err
			}
			return reportError(err)
		}
		return nil
	},
}
