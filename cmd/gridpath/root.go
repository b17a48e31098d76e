package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/board"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

var version = "dev"

var errBadPosition = errors.New("gridpath: position must be \"row,col\"")

// config is the resolved driver configuration: flags, then GRIDPATH_* env,
// then the config file, then defaults.
type config struct {
	Rows     int    `mapstructure:"rows"`
	Cols     int    `mapstructure:"cols"`
	Diagonal bool   `mapstructure:"diagonal"`
	FPS      int    `mapstructure:"fps"`
	Density  string `mapstructure:"density"`
	Seed     int64  `mapstructure:"seed"`
	Start    string `mapstructure:"start"`
	End      string `mapstructure:"end"`
	Animate  bool   `mapstructure:"animate"`
	LogLevel string `mapstructure:"log-level"`
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "gridpath",
		Short:         "Solve a random grid maze with A*",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	f := cmd.Flags()
	f.Int("rows", 20, "grid rows")
	f.Int("cols", 40, "grid columns")
	f.Bool("diagonal", true, "allow diagonal moves (8-connectivity)")
	f.Int("fps", 30, "animation frames per second")
	f.String("density", "normal", "maze density: none, low, normal, high")
	f.Int64("seed", 0, "maze seed; 0 picks one from the clock")
	f.String("start", "", "start cell as row,col (default top-left)")
	f.String("end", "", "end cell as row,col (default bottom-right)")
	f.Bool("animate", false, "draw a frame per search step")
	f.String("log-level", "warn", "log level: debug, info, warn, error")
	f.String("config", "", "optional config file (yaml, json, toml)")

	_ = v.BindPFlags(f)
	v.SetEnvPrefix("GRIDPATH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the gridpath version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "gridpath", version)
		},
	})

	return cmd
}

func loadConfig(v *viper.Viper) (config, error) {
	var cfg config
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// run builds the board, drops the maze, and solves it, writing frames and a
// summary to out and logs to errOut.
func run(ctx context.Context, out, errOut io.Writer, cfg config) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	density, err := board.ParseDensity(cfg.Density)
	if err != nil {
		return err
	}

	conn := gridgraph.Conn4
	if cfg.Diagonal {
		conn = gridgraph.Conn8
	}
	b, err := board.New(cfg.Rows, cfg.Cols, gridgraph.GridOptions{Conn: conn})
	if err != nil {
		return err
	}

	start, err := parsePosition(cfg.Start, gridgraph.Pos(0, 0))
	if err != nil {
		return err
	}
	end, err := parsePosition(cfg.End, gridgraph.Pos(cfg.Rows-1, cfg.Cols-1))
	if err != nil {
		return err
	}
	if start == end {
		return fmt.Errorf("%w: start and end are both %s", astar.ErrInvalidEndpoints, start)
	}
	if err := b.SetStart(start); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if err := b.SetEnd(end); err != nil {
		return fmt.Errorf("end: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	walls := b.GenerateMaze(density, rand.New(rand.NewSource(seed)))
	b.Grid().RefreshNeighbors()
	comps := b.Grid().ConnectedComponents()
	logger.Info("maze generated",
		"seed", seed,
		"density", density.String(),
		"barriers", walls,
		"regions", len(comps),
		"connected", gridgraph.ComponentOf(comps, start) == gridgraph.ComponentOf(comps, end),
	)

	opts := []astar.Option{astar.WithContext(ctx), astar.WithLogger(logger)}
	var onFrame func(*board.Board)
	if cfg.Animate {
		opts = append(opts, astar.WithFPS(cfg.FPS))
		onFrame = func(b *board.Board) {
			fmt.Fprint(out, "\033[H\033[2J")
			_ = b.Render(out)
		}
	}

	res, err := b.Solve(onFrame, opts...)
	if err != nil {
		return err
	}

	if err := b.Render(out); err != nil {
		return err
	}
	fmt.Fprintf(out, "status: %s\n", res.Status)
	if res.Found() {
		fmt.Fprintf(out, "length: %d\n", res.Cost)
	}
	fmt.Fprintf(out, "expanded: %d\n", res.Expanded)
	fmt.Fprintf(out, "seed: %d\n", seed)
	return nil
}

// parsePosition reads "row,col". An empty string yields def.
func parsePosition(s string, def gridgraph.Position) (gridgraph.Position, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Position{}, fmt.Errorf("%w: %q", errBadPosition, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return gridgraph.Position{}, fmt.Errorf("%w: %q", errBadPosition, s)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return gridgraph.Position{}, fmt.Errorf("%w: %q", errBadPosition, s)
	}
	return gridgraph.Pos(r, c), nil
}
