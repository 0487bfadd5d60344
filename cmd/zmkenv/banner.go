// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"zmkenv-cli/internal/banner"
	"zmkenv-cli/internal/issue"
)

var bannerCmd = &cobra.Command{
	Use:   "banner",
	Short: "Render the project banner",
	Long: TitleStyle.Render("zmkenv banner") + `

Resolves the banner renderer and invokes it with the project fields
and tips from the manifest. Unlike entering a shell, a renderer
failure here is reported as an error.`,
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

		if err := banner.Invoke(cmd.Context(), env.BannerExe, env.BannerRequest, cmd.OutOrStdout()); err != nil {
			return reportError(issue.NewErrorContext().
				WithOperation("render banner").
				WithResource(env.BannerExe).
				WithSuggestion("Run 'zmkenv resolve' to re-materialize the renderer, or disable the banner in config").
				Wrap(err).
				Build())
		}
		return nil
	},
}
