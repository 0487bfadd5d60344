// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zmkenv-cli/internal/lockfile"
	"zmkenv-cli/internal/resolver"
	"zmkenv-cli/pkg/envfile"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the pinned inputs and their store status",
	Long: TitleStyle.Render("zmkenv tools") + `

Shows every pinned input for the target platform, whether it is
materialized in the store, and any drift against ` + lockfile.FileName + `.
Nothing is fetched.`,
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

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, SubtitleStyle.Render(fmt.Sprintf("%s (%s)", manifest.Project.Product, system)))
		for _, tool := range manifest.AllInputs() {
			_, present := store.Present(system, tool)
			status := WarningStyle.Render("missing")
			if present {
				status = SuccessStyle.Render("present")
			}
			marker := ""
			if tool.Cross {
				marker = " " + CmdStyle.Render("[cross]")
			}
			fmt.Fprintf(out, "  %-22s %-10s %s%s\n", tool.Name, tool.Version, status, marker)
		}

		lock, err := lockfile.Read(wd)
		if err != nil {
			return reportError(err)
		}
		if lock == nil {
			fmt.Fprintf(out, "\nno %s yet, run %s\n", lockfile.FileName, CmdStyle.Render("zmkenv resolve"))
			return nil
		}

		drifts := lock.DriftFrom(manifest)
		if len(drifts) == 0 {
			fmt.Fprintf(out, "\n%s matches the manifest\n", lockfile.FileName)
			return nil
		}
		fmt.Fprintf(out, "\n%s\n", WarningStyle.Render(fmt.Sprintf("%d drift(s) against %s:", len(drifts), lockfile.FileName)))
		for _, d := range drifts {
			switch {
			case d.Locked == "":
				fmt.Fprintf(out, "  %s: %s (pin %s)\n", d.Name, d.Reason, d.Pinned)
			case d.Pinned == "":
				fmt.Fprintf(out, "  %s: %s (locked %s)\n", d.Name, d.Reason, d.Locked)
			default:
				fmt.Fprintf(out, "  %s: %s (%s -> %s)\n", d.Name, d.Reason, d.Locked, d.Pinned)
			}
		}
		fmt.Fprintf(out, "run %s to refresh\n", CmdStyle.Render("zmkenv resolve"))
		return nil
	},
}
