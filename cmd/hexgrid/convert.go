package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitas-015/hexcore/hex"
	"github.com/gravitas-015/hexcore/internal/config"
	"github.com/gravitas-015/hexcore/shape"
)

func (a *app) pixelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pixel <q> <r> [s]",
		Short: "Print the pixel center of a hex",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := parseHex(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatPoint(a.layout.ToPixel(h)))
			return nil
		},
	}
}

func (a *app) cornersCmd() *cobra.Command {
	var wkt bool
	cmd := &cobra.Command{
		Use:   "corners <q> <r> [s]",
		Short: "Print the six polygon corners of a hex and its center",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := parseHex(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if wkt {
				text, err := shape.WKT(a.layout, h)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, text)
				return nil
			}
			corners, center := a.layout.PolygonCorners(h)
			for i, c := range corners {
				fmt.Fprintf(out, "%d %s\n", i, formatPoint(c))
			}
			fmt.Fprintf(out, "center %s\n", formatPoint(center))
			return nil
		},
	}
	cmd.Flags().BoolVar(&wkt, "wkt", false, "Print the outline as WKT")
	return cmd
}

func (a *app) locateCmd() *cobra.Command {
	var frac bool
	cmd := &cobra.Command{
		Use:   "locate <x> <y>",
		Short: "Print the hex containing a pixel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			f := a.layout.ToFractionalHex(hex.Pt(v[0], v[1]))
			a.logger.Debug("unprojected", "fractional", f)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatHex(f.Round()))
			if frac {
				fmt.Fprintf(out, "fractional %g %g %g\n", f.Q(), f.R(), f.S())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&frac, "fractional", false, "Also print the unrounded coordinate")
	return cmd
}

func (a *app) offsetCmd() *cobra.Command {
	var schemeName string
	scheme := func() (hex.OffsetScheme, error) {
		if schemeName == "" {
			return a.scheme, nil
		}
		return config.ParseScheme(schemeName)
	}

	cmd := &cobra.Command{
		Use:   "offset",
		Short: "Convert between offset (col, row) and cube coordinates",
	}
	cmd.PersistentFlags().StringVar(&schemeName, "scheme", "", "Offset scheme: even-q, odd-q, even-r, odd-r (default from config)")

	cmd.AddCommand(&cobra.Command{
		Use:   "to-hex <col> <row>",
		Short: "Resolve the hex at an offset address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scheme()
			if err != nil {
				return err
			}
			n, err := parseInts(args)
			if err != nil {
				return err
			}
			h, err := s.ToHex(hex.Offset{Col: n[0], Row: n[1]})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatHex(h))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "from-hex <q> <r> [s]",
		Short: "Print the offset address of a hex",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scheme()
			if err != nil {
				return err
			}
			h, err := parseHex(args)
			if err != nil {
				return err
			}
			o, err := s.FromHex(h)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", o.Col, o.Row)
			return nil
		},
	})

	return cmd
}

func (a *app) distanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <q1> <r1> <q2> <r2>",
		Short: "Print the hex distance between two axial coordinates",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInts(args)
			if err != nil {
				return err
			}
			d := hex.NewAxial(n[0], n[1]).Distance(hex.NewAxial(n[2], n[3]))
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func (a *app) lineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "line <q1> <r1> <q2> <r2>",
		Short: "Print the hexes on a straight line between two axial coordinates",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInts(args)
			if err != nil {
				return err
			}
			for _, h := range hex.Line(hex.NewAxial(n[0], n[1]), hex.NewAxial(n[2], n[3])) {
				fmt.Fprintln(cmd.OutOrStdout(), formatHex(h))
			}
			return nil
		},
	}
}
