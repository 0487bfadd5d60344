// SPDX-License-Identifier: MPL-2.0

package main

import cmd "zmkenv-cli/cmd/zmkenv"

func main() {
	cmd.Execute()
}
