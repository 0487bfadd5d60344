// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"zmkenv-cli/internal/lockfile"
	"zmkenv-cli/internal/resolver"
	"zmkenv-cli/pkg/envfile"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve all pinned inputs and write the lockfile",
	Long: TitleStyle.Render("zmkenv resolve") + `

Materializes every pinned input for the target platform, including
the banner renderer, and records the result in ` + lockfile.FileName + `.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return reportError(err)
		}

		manifest, err := envfile.Load(wd)
		if err != nil {
			return reportError(err)
		}

		system, err := targetSystem()
		if err != nil {
			return reportError(err)
		}

		c := appConfig()
		store := resolver.NewStoreResolver(c.StoreRoot, c.FetchCommand)
		store.Logger = logger

		resolved, err := resolver.ResolveAll(cmd.Context(), store, system, manifest.AllInputs())
		if err != nil {
			return reportError(err)
		}

		lock := lockfile.New(system.String(), resolved, clockwork.NewRealClock())
		if err := lock.Write(wd); err != nil {
			return reportError(err)
		}

		out := cmd.OutOrStdout()
		for _, inst := range resolved {
			fmt.Fprintf(out, "%s %s %s\n", SuccessStyle.Render("ok"), inst.Tool.Name, inst.Tool.Version)
		}
		fmt.Fprintf(out, "wrote %s (%d inputs, %s)\n", CmdStyle.Render(lockfile.FileName), len(resolved), system)
		return nil
	},
}
