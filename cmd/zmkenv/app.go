// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"

	"zmkenv-cli/internal/compose"
	"zmkenv-cli/internal/config"
	"zmkenv-cli/internal/issue"
	"zmkenv-cli/internal/platform"
	"zmkenv-cli/internal/resolver"
	"zmkenv-cli/pkg/envfile"
)

// targetSystem returns the platform composition runs for: the
// --system flag when given, the detected host otherwise.
func targetSystem() (platform.Context, error) {
	if systemFlag != "" {
		return platform.Parse(systemFlag)
	}
	return platform.Current(), nil
}

// appConfig returns the loaded user config, loading defaults when the
// cobra initializer has not run (direct calls from tests).
func appConfig() *config.Config {
	if cfg == nil {
		initRootConfig()
	}
	return cfg
}

// newComposer assembles a composer for the current working directory:
// its manifest (or the embedded default), the configured store
// resolver, and the target platform.
func newComposer() (*compose.Composer, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, issue.WrapWithOperation(err, "determine working directory")
	}

	manifest, err := envfile.Load(wd)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load manifest").
			WithResource(wd).
			WithSuggestion("Fix the zmkenv.cue syntax, or remove it to use the built-in defaults").
			Wrap(err).
			Build()
	}

	system, err := targetSystem()
	if err != nil {
		return nil, err
	}

	c := appConfig()
	store := resolver.NewStoreResolver(c.StoreRoot, c.FetchCommand)
	store.Logger = logger

	return &compose.Composer{
		Manifest: manifest,
		Resolver: store,
		System:   system,
		WorkDir:  wd,
		Logger:   logger,
	}, nil
}
