// SPDX-License-Identifier: MPL-2.0

package compose

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Hook renders the composition as an eval-able POSIX snippet: one
// PATH prepend followed by the five exports in emission order. Values
// are shell-quoted; the trailing "$PATH" reference is left for the
// evaluating shell to expand.
func (e *Environment) Hook() (string, error) {
	var b strings.Builder

	if len(e.PathDirs) > 0 {
		quoted := make([]string, 0, len(e.PathDirs))
		for _, dir := range e.PathDirs {
			q, err := syntax.Quote(dir, syntax.LangPOSIX)
			if err != nil {
				return "", fmt.Errorf("quote path entry %q: %w", dir, err)
			}
			quoted = append(quoted, q)
		}
		fmt.Fprintf(&b, "export PATH=%s:\"$PATH\"\n", strings.Join(quoted, ":"))
	}

	for _, binding := range e.Bindings {
		q, err := syntax.Quote(binding.Value, syntax.LangPOSIX)
		if err != nil {
			return "", fmt.Errorf("quote %s: %w", binding.Name, err)
		}
		fmt.Fprintf(&b, "export %s=%s\n", binding.Name, q)
	}
	return b.String(), nil
}
