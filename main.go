// SPDX-License-Identifier: MPL-2.0

package main

import cmd "cargohook/cmd/cargohook"

func main() {
	cmd.Execute()
}
