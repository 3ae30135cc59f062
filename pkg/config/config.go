package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/cbodonnell/connectn/pkg/board"
	"github.com/cbodonnell/connectn/pkg/log"
	"github.com/cbodonnell/connectn/pkg/players"
	"golang.org/x/image/colornames"
)

var ErrInvalidConfig = errors.New("invalid config")

// MinWindowSize is the smallest window width or height accepted.
const MinWindowSize = 200

// Duration reads a duration written as a string, e.g. "2s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type BoardConfig struct {
	Rows   int `toml:"rows"`
	Cols   int `toml:"cols"`
	Streak int `toml:"streak"`
}

type PlayerConfig struct {
	Color string `toml:"color"`
	Kind  string `toml:"kind"`
	Name  string `toml:"name,omitempty"`
}

type RevealConfig struct {
	Enabled  bool `toml:"enabled"`
	FakeOuts int  `toml:"fake_outs"`
}

type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type Config struct {
	Board       BoardConfig    `toml:"board"`
	Players     []PlayerConfig `toml:"players"`
	Reveal      RevealConfig   `toml:"reveal"`
	JoinTimeout Duration       `toml:"join_timeout"`
	LogLevel    string         `toml:"log_level"`
	Window      WindowConfig   `toml:"window"`
}

// Default returns the classic game: 6 by 7, four in a row, a human against the computer.
func Default() *Config {
	return &Config{
		Board: BoardConfig{Rows: 6, Cols: 7, Streak: 4},
		Players: []PlayerConfig{
			{Color: "red", Kind: players.KindHuman.String()},
			{Color: "blue", Kind: players.KindAI.String()},
		},
		Reveal:      RevealConfig{Enabled: true, FakeOuts: 2},
		JoinTimeout: Duration{2 * time.Second},
		LogLevel:    "info",
		Window:      WindowConfig{Width: 800, Height: 760},
	}
}

// Load reads a TOML file over the defaults. Players listed in the file replace
// the default players.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %v", err)
	}
	defer f.Close()

	cfg := Default()
	defaultPlayers := cfg.Players
	cfg.Players = nil
	if _, err := toml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if len(cfg.Players) == 0 {
		cfg.Players = defaultPlayers
	}
	return cfg, nil
}

// Validate checks the config against the limits of the game.
func (c *Config) Validate() error {
	b := c.Board
	if b.Rows < 1 || b.Rows > board.MaxSize || b.Cols < 1 || b.Cols > board.MaxSize {
		return fmt.Errorf("%w: board must be between 1x1 and %dx%d, got %dx%d", ErrInvalidConfig, board.MaxSize, board.MaxSize, b.Rows, b.Cols)
	}
	if b.Streak < 1 || b.Streak > min(b.Rows, b.Cols) {
		return fmt.Errorf("%w: streak must be between 1 and %d, got %d", ErrInvalidConfig, min(b.Rows, b.Cols), b.Streak)
	}
	if len(c.Players) == 0 {
		return fmt.Errorf("%w: at least one player is required", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if _, err := ParseColor(p.Color); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		key := strings.ToLower(p.Color)
		if seen[key] {
			return fmt.Errorf("%w: color %s is used twice", ErrInvalidConfig, p.Color)
		}
		seen[key] = true
		if _, err := players.ParseKind(p.Kind); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	if c.Reveal.FakeOuts < 0 {
		return fmt.Errorf("%w: fake_outs must not be negative", ErrInvalidConfig)
	}
	if c.JoinTimeout.Duration <= 0 {
		return fmt.Errorf("%w: join_timeout must be positive", ErrInvalidConfig)
	}
	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Window.Width < MinWindowSize || c.Window.Height < MinWindowSize {
		return fmt.Errorf("%w: window must be at least %dx%d", ErrInvalidConfig, MinWindowSize, MinWindowSize)
	}
	return nil
}

// PlayerSpecs converts the configured players. Colors are lowercased so they
// can be used as identities.
func (c *Config) PlayerSpecs() ([]players.Spec, error) {
	specs := make([]players.Spec, 0, len(c.Players))
	for _, p := range c.Players {
		kind, err := players.ParseKind(p.Kind)
		if err != nil {
			return nil, err
		}
		specs = append(specs, players.Spec{Color: strings.ToLower(p.Color), Kind: kind, Name: p.Name})
	}
	return specs, nil
}

// ParsePlayerFlag parses "color" or "color:kind". The kind defaults to human.
func ParsePlayerFlag(s string) (PlayerConfig, error) {
	color, kind, found := strings.Cut(s, ":")
	if !found {
		kind = players.KindHuman.String()
	}
	p := PlayerConfig{Color: strings.TrimSpace(color), Kind: strings.TrimSpace(kind)}
	if _, err := ParseColor(p.Color); err != nil {
		return PlayerConfig{}, err
	}
	if _, err := players.ParseKind(p.Kind); err != nil {
		return PlayerConfig{}, err
	}
	return p, nil
}

// ParseColor accepts a CSS color name or #rrggbb.
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if len(name) == 7 && name[0] == '#' {
		rgb, err := hex.DecodeString(name[1:])
		if err == nil {
			return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

// Overrides are command line settings applied on top of a loaded config. Nil
// and empty fields leave the config alone.
type Overrides struct {
	Rows     *int
	Cols     *int
	Streak   *int
	Players  []string
	NoReveal bool
	LogLevel string
}

// Apply writes the overrides into c. Players are given as "color[:kind]" and
// replace the configured players.
func (o Overrides) Apply(c *Config) error {
	if o.Rows != nil {
		c.Board.Rows = *o.Rows
	}
	if o.Cols != nil {
		c.Board.Cols = *o.Cols
	}
	if o.Streak != nil {
		c.Board.Streak = *o.Streak
	}
	if len(o.Players) > 0 {
		ps := make([]PlayerConfig, 0, len(o.Players))
		for _, s := range o.Players {
			p, err := ParsePlayerFlag(s)
			if err != nil {
				return fmt.Errorf("invalid player %q: %w", s, err)
			}
			ps = append(ps, p)
		}
		c.Players = ps
	}
	if o.NoReveal {
		c.Reveal.Enabled = false
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	return nil
}
