// SPDX-License-Identifier: MPL-2.0

package compose

import (
	"context"
	"fmt"
	"io"

	"zmkenv-cli/internal/banner"
)

// EmitBanner runs the banner step. The banner is informational only:
// a missing renderer or a non-zero exit is logged as a warning and
// composition proceeds. The composer always advances to
// PhaseBannerEmitted.
func (c *Composer) EmitBanner(ctx context.Context, env *Environment, out io.Writer, enabled bool) {
	if enabled {
		if err := banner.Invoke(ctx, env.BannerExe, env.BannerRequest, out); err != nil {
			c.logger().Warn("banner renderer failed, continuing without banner", "err", err)
		}
	} else {
		c.logger().Debug("banner disabled by config")
	}
	c.phase = PhaseBannerEmitted
}

// Enter performs the banner step and hands control to launch, which
// starts the interactive session with the composed environment. Once
// the session starts the composer is at its terminal phase and takes
// no further action; the launch error is the session's exit error,
// not a composition failure.
func (c *Composer) Enter(ctx context.Context, env *Environment, out io.Writer, bannerEnabled bool, launch func(context.Context) error) error {
	if c.phase != PhaseVariablesExported {
		return fmt.Errorf("cannot enter session from phase %s", c.phase)
	}

	c.EmitBanner(ctx, env, out, bannerEnabled)

	c.phase = PhaseSessionActive
	return launch(ctx)
}
