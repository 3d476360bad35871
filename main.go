// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/spatialtools/pomwalk/cmd/pomwalk"

func main() {
	cmd.Execute()
}
