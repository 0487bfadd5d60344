// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	HostNotSupportedId Id = iota + 1
	ToolConflictId
	ResolutionFailedId
	BannerFailedId
	EnvfileNotFoundId
	EnvfileParseErrorId
	ShellNotFoundId
	ConfigLoadFailedId
	LockfileDriftId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render returns the issue card rendered for the terminal.
func (i *Issue) Render() (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n## See also\n"
		for _, link := range i.docLinks {
			extraMd += "- " + string(link) + "\n"
		}
	}
	return render(string(i.mdMsg) + extraMd)
}

var (
	render = func(in string) (string, error) {
		return glamour.Render(in, "dark")
	}

	hostNotSupportedIssue = &Issue{
		id: HostNotSupportedId,
		mdMsg: `
# This platform is not supported

The manifest declares the systems this environment can be composed
for, and the current host is not one of them.

## Things you can try
- Run with an explicit system:
~~~
$ zmkenv shell --system x86_64-linux
~~~
- Add your system triple to the ` + "`systems`" + ` list in zmkenv.cue
`,
		docLinks: []HttpLink{"https://zmk.dev/docs/development/setup"},
	}

	toolConflictIssue = &Issue{
		id: ToolConflictId,
		mdMsg: `
# Toolchain executables collide

Two toolchain inputs expose the same executable name but resolve to
different targets. The composed PATH would be ambiguous.

## Things you can try
- Check the ` + "`provides`" + ` lists in zmkenv.cue for duplicates
- Pin both inputs to versions that agree on the shared executable
`,
		docLinks: []HttpLink{"https://zmk.dev/docs/development/setup"},
	}

	resolutionFailedIssue = &Issue{
		id: ResolutionFailedId,
		mdMsg: `
# Toolchain resolution failed

A declared input could not be materialized from its source locator.
Nothing was exported; the session did not start.

## Things you can try
- Run the resolver once to populate the store:
~~~
$ zmkenv resolve
~~~
- Check the configured store root and fetch command in your config
`,
		docLinks: []HttpLink{"https://zmk.dev/docs/development/setup"},
	}

	bannerFailedIssue = &Issue{
		id: BannerFailedId,
		mdMsg: `
# Banner renderer unavailable

The banner is informational only; the environment was composed and
the session started without it.

## Things you can try
- Re-run ` + "`zmkenv resolve`" + ` to materialize the banner tool
- Disable the banner with ` + "`banner.enabled: false`" + ` in your config
`,
		docLinks: []HttpLink{"https://zmk.dev/docs"},
	}

	shellNotFoundIssue = &Issue{
		id: ShellNotFoundId,
		mdMsg: `
# No interactive shell found

The composer could not determine a shell to hand the session to.

## Things you can try
- Set ` + "`shell`" + ` in your zmkenv config
- Make sure $SHELL points at an existing executable
`,
		docLinks: []HttpLink{"https://zmk.dev/docs"},
	}
)

var issues = map[Id]*Issue{
	HostNotSupportedId: hostNotSupportedIssue,
	ToolConflictId:     toolConflictIssue,
	ResolutionFailedId: resolutionFailedIssue,
	BannerFailedId:     bannerFailedIssue,
	ShellNotFoundId:    shellNotFoundIssue,
}

// ById returns the issue card registered for id, or nil.
func ById(id Id) *Issue {
	return issues[id]
}

// Ids returns all registered issue ids in ascending order.
func Ids() []Id {
	ids := maps.Keys(issues)
	slices.Sort(ids)
	return ids
}
