// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"zmkenv-cli/internal/issue"
)

// formatErrorForDisplay renders an error for terminal output. Actionable
// errors get their structured rendering; everything else falls back to
// the plain message.
func formatErrorForDisplay(err error, verbose bool) string {
	var actionable *issue.ActionableError
	if errors.As(err, &actionable) {
		return actionable.Format(verbose)
	}
	return err.Error()
}

// issueFor maps a composition error onto its knowledge-base card, or
// nil when no card applies.
func issueFor(err error) *issue.Issue {
	var unsupported *issue.UnsupportedPlatformError
	if errors.As(err, &unsupported) {
		return issue.ById(issue.HostNotSupportedId)
	}
	var conflict *issue.ToolConflictError
	if errors.As(err, &conflict) {
		return issue.ById(issue.ToolConflictId)
	}
	var resolution *issue.FatalResolutionError
	if errors.As(err, &resolution) {
		return issue.ById(issue.ResolutionFailedId)
	}
	return nil
}

// reportError prints an error to stderr, preceded by its issue card
// when one exists, and returns it wrapped for exit-code handling.
func reportError(err error) error {
	if card := issueFor(err); card != nil {
		if rendered, renderErr := card.Render(); renderErr == nil {
			fmt.Fprintln(os.Stderr, rendered)
		}
	}
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
	return &ExitError{Code: 1, Err: err}
}
