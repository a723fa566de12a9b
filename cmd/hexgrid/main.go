// hexgrid converts between hex grid coordinates and pixels from the command line.
//
// Usage:
//
//	hexgrid pixel <q> <r> [s]               - Pixel center of a hex
//	hexgrid corners <q> <r> [s]             - Polygon corners of a hex
//	hexgrid locate <x> <y>                  - Hex containing a pixel
//	hexgrid offset to-hex <col> <row>       - Offset address to cube coordinate
//	hexgrid offset from-hex <q> <r> [s]     - Cube coordinate to offset address
//	hexgrid distance <q1> <r1> <q2> <r2>    - Hex distance
//	hexgrid line <q1> <r1> <q2> <r2>        - Hexes on a straight line
//	hexgrid grid                            - List every cell of the configured grid
//	hexgrid path <q1> <r1> <q2> <r2>        - Shortest path inside a disk
//
// Global flags:
//
//	--config <path>     - YAML configuration (default: $HEXGRID_CONFIG)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
