package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitas-015/hexcore/hex"
	"github.com/gravitas-015/hexcore/path"
	"github.com/gravitas-015/hexcore/shape"
)

func (a *app) gridCmd() *cobra.Command {
	var wkt bool
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "List every cell of the configured rectangular grid",
		Long: `Walks the grid row by row, column by column, and prints for each cell:
  col row q r s x y
where (x, y) is the pixel center of the hex. With --wkt the whole grid is
printed as a single GEOMETRYCOLLECTION of polygons instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cols, rows := a.cfg.Grid.Cols, a.cfg.Grid.Rows
			hexes, err := hex.Rectangle(cols, rows, a.scheme)
			if err != nil {
				return err
			}
			a.logger.Debug("grid", "cols", cols, "rows", rows, "cells", len(hexes))

			out := cmd.OutOrStdout()
			if wkt {
				gc, err := shape.Collection(a.layout, hexes)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, gc.AsText())
				return nil
			}
			for i, h := range hexes {
				fmt.Fprintf(out, "%d %d %s %s\n", i%cols, i/cols, formatHex(h), formatPoint(a.layout.ToPixel(h)))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&wkt, "wkt", false, "Print the grid as a WKT geometry collection")
	return cmd
}

func (a *app) pathCmd() *cobra.Command {
	var (
		radius  int
		seed    int64
		blocked []string
	)
	cmd := &cobra.Command{
		Use:   "path <q1> <r1> <q2> <r2>",
		Short: "Print a shortest path between two axial coordinates",
		Long: `Finds a shortest path inside the disk of --radius around the origin,
avoiding any --block cells. A* is used by default; a non-zero --seed switches
to a breadth-first search with seeded tie breaking.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInts(args)
			if err != nil {
				return err
			}
			start, goal := hex.NewAxial(n[0], n[1]), hex.NewAxial(n[2], n[3])

			walls := make(map[hex.Hex]bool, len(blocked))
			for _, b := range blocked {
				h, err := parseAxialPair(b)
				if err != nil {
					return err
				}
				walls[h] = true
			}
			center := hex.Hex{}
			passable := func(h hex.Hex) bool {
				return !walls[h] && center.Distance(h) <= radius
			}
			if !passable(start) || !passable(goal) {
				return fmt.Errorf("no path from %v to %v: endpoint blocked or outside radius %d", start, goal, radius)
			}
			nbs := path.NeighborsWhere(passable)

			var route []hex.Hex
			if seed != 0 {
				route = path.BFS(start, goal, nbs, rand.New(rand.NewSource(seed)))
			} else {
				route = path.AStar(start, goal, path.HeuristicTo(goal), nbs, nil)
			}
			if route == nil {
				return fmt.Errorf("no path from %v to %v", start, goal)
			}
			a.logger.Debug("path found", "steps", len(route)-1)
			for _, h := range route {
				fmt.Fprintln(cmd.OutOrStdout(), formatHex(h))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&radius, "radius", 10, "Search disk radius around the origin")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Use seeded breadth-first search (0 = A*)")
	cmd.Flags().StringSliceVar(&blocked, "block", nil, "Blocked cell as q:r (repeatable)")
	return cmd
}

func parseAxialPair(s string) (hex.Hex, error) {
	qs, rs, ok := strings.Cut(s, ":")
	if !ok {
		return hex.Hex{}, fmt.Errorf("blocked cell %q must be q:r", s)
	}
	q, err := strconv.Atoi(strings.TrimSpace(qs))
	if err != nil {
		return hex.Hex{}, fmt.Errorf("invalid integer %q", qs)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return hex.Hex{}, fmt.Errorf("invalid integer %q", rs)
	}
	return hex.NewAxial(q, r), nil
}
