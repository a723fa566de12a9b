package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gravitas-015/hexcore/hex"
	"github.com/gravitas-015/hexcore/internal/config"
)

// app carries the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	layout hex.Layout
	scheme hex.OffsetScheme
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "hexgrid",
		Short: "Hex grid coordinate conversions",
		Long: `hexgrid projects hex grid coordinates to pixels and back, converts
between cube and offset addressing, and lists grids and paths.

The layout (orientation, size, origin) and offset scheme come from a YAML
config file; without one, a pointy 10x10 layout at the origin and the odd-r
scheme are used. Put -- before arguments that start with a minus sign.

Examples:
  hexgrid pixel 3 4
  hexgrid locate 121.6 161 --config hexgrid.yaml
  hexgrid offset to-hex 2 5 --scheme even-q
  hexgrid corners 0 0 --wkt
  hexgrid distance -- 0 0 3 -7`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to YAML config (default: $HEXGRID_CONFIG)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	root.AddCommand(a.pixelCmd())
	root.AddCommand(a.cornersCmd())
	root.AddCommand(a.locateCmd())
	root.AddCommand(a.offsetCmd())
	root.AddCommand(a.distanceCmd())
	root.AddCommand(a.lineCmd())
	root.AddCommand(a.gridCmd())
	root.AddCommand(a.pathCmd())

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "hexgrid",
	})

	path := a.configPath
	if path == "" {
		path = os.Getenv("HEXGRID_CONFIG")
	}

	if path == "" {
		a.cfg = config.Default()
	} else {
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		a.cfg = cfg
	}

	level := a.cfg.Log.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	a.logger.SetLevel(lvl)

	if path != "" {
		a.logger.Debug("configuration loaded", "config", path)
	}

	if a.layout, err = a.cfg.HexLayout(); err != nil {
		return err
	}
	if a.scheme, err = a.cfg.Scheme(); err != nil {
		return err
	}
	a.logger.Debug("layout ready",
		"orientation", a.layout.Orientation,
		"size", a.layout.Size,
		"origin", a.layout.Origin,
		"scheme", a.scheme,
	)
	return nil
}

// parseHex reads "q r" as axial or "q r s" as cube.
func parseHex(args []string) (hex.Hex, error) {
	n, err := parseInts(args)
	if err != nil {
		return hex.Hex{}, err
	}
	switch len(n) {
	case 2:
		return hex.NewAxial(n[0], n[1]), nil
	case 3:
		return hex.New(n[0], n[1], n[2])
	}
	return hex.Hex{}, fmt.Errorf("expected 2 or 3 coordinates, got %d", len(n))
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", s)
		}
		out[i] = v
	}
	return out, nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", s)
		}
		out[i] = v
	}
	return out, nil
}

func formatHex(h hex.Hex) string {
	return fmt.Sprintf("%d %d %d", h.Q(), h.R(), h.S())
}

func formatPoint(p hex.Point) string {
	return strconv.FormatFloat(p.X, 'f', -1, 64) + " " + strconv.FormatFloat(p.Y, 'f', -1, 64)
}
