// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/linepipe/linepipe/cmd/linepipe"

func main() {
	cmd.Execute()
}
