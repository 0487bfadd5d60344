// SPDX-License-Identifier: MPL-2.0

// Package banner builds and invokes the external banner renderer: a
// fixed set of labeled project fields plus the ordered tip lines,
// rendered on environment entry. The renderer itself is an external
// executable; failures here are informational, never fatal to setup.
package banner

import (
	"fmt"

	"zmkenv-cli/pkg/envfile"
)

// Request is the full input to one banner invocation. Constructed
// fresh per invocation, never persisted.
type Request struct {
	Owner   string
	Logo    string
	Product string
	Part    string
	Code    string

	// Tips are the ordered usage lines, passed verbatim.
	Tips []string
}

// NewRequest builds a Request from the manifest's project constants
// and tip literals.
func NewRequest(project envfile.Project, tips []string) (*Request, error) {
	if len(tips) != envfile.TipCount {
		return nil, fmt.Errorf("banner request needs exactly %d tips, got %d", envfile.TipCount, len(tips))
	}
	req := &Request{
		Owner:   project.Owner,
		Logo:    project.Logo,
		Product: project.Product,
		Part:    project.Part,
		Code:    project.Code,
		Tips:    append([]string(nil), tips...),
	}
	return req, nil
}

// Args renders the renderer's argument vector: the five field pairs in
// fixed order, then one --tip per line in declared order. Tip text is
// passed through untouched; embedded quoting is the renderer's to
// interpret.
func (r *Request) Args() []string {
	args := []string{
		"--owner", r.Owner,
		"--logo", r.Logo,
		"--product", r.Product,
		"--part", r.Part,
		"--code", r.Code,
	}
	for _, tip := range r.Tips {
		args = append(args, "--tip", tip)
	}
	return args
}
