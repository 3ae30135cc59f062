package config

import (
	"image/color"
	"testing"
	"time"

	"github.com/cbodonnell/connectn/pkg/players"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, BoardConfig{Rows: 6, Cols: 7, Streak: 4}, cfg.Board)
	assert.Equal(t, 2*time.Second, cfg.JoinTimeout.Duration)

	specs, err := cfg.PlayerSpecs()
	require.NoError(t, err)
	assert.Equal(t, []players.Spec{
		{Color: "red", Kind: players.KindHuman},
		{Color: "blue", Kind: players.KindAI},
	}, specs)
}

func TestLoad(t *testing.T) {
	cfg, err := Load("testdata/tournament.toml")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, BoardConfig{Rows: 8, Cols: 9, Streak: 5}, cfg.Board)
	assert.Equal(t, 500*time.Millisecond, cfg.JoinTimeout.Duration)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, RevealConfig{Enabled: false, FakeOuts: 0}, cfg.Reveal)
	assert.Equal(t, WindowConfig{Width: 800, Height: 760}, cfg.Window, "unset sections keep their defaults")

	specs, err := cfg.PlayerSpecs()
	require.NoError(t, err)
	assert.Equal(t, []players.Spec{
		{Color: "green", Kind: players.KindBetterAI},
		{Color: "#ff8800", Kind: players.KindAI, Name: "Orange"},
		{Color: "purple", Kind: players.KindHuman},
	}, specs)
}

func TestLoad_Partial(t *testing.T) {
	cfg, err := Load("testdata/partial.toml")
	require.NoError(t, err)
	assert.Equal(t, BoardConfig{Rows: 6, Cols: 7, Streak: 3}, cfg.Board)
	assert.Equal(t, Default().Players, cfg.Players)
	assert.True(t, cfg.Reveal.Enabled)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("testdata/missing.toml")
	assert.Error(t, err)

	_, err = Load("testdata/broken.toml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{name: "no rows", modify: func(c *Config) { c.Board.Rows = 0 }},
		{name: "too wide", modify: func(c *Config) { c.Board.Cols = 21 }},
		{name: "streak too long", modify: func(c *Config) { c.Board.Rows = 3; c.Board.Streak = 4 }},
		{name: "no players", modify: func(c *Config) { c.Players = nil }},
		{name: "unknown color", modify: func(c *Config) { c.Players[0].Color = "reddish" }},
		{name: "duplicate color", modify: func(c *Config) { c.Players[1].Color = "RED" }},
		{name: "unknown kind", modify: func(c *Config) { c.Players[1].Kind = "robot" }},
		{name: "negative fake outs", modify: func(c *Config) { c.Reveal.FakeOuts = -1 }},
		{name: "zero join timeout", modify: func(c *Config) { c.JoinTimeout = Duration{} }},
		{name: "bad log level", modify: func(c *Config) { c.LogLevel = "loud" }},
		{name: "tiny window", modify: func(c *Config) { c.Window.Height = 100 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestParsePlayerFlag(t *testing.T) {
	tests := []struct {
		in      string
		want    PlayerConfig
		wantErr bool
	}{
		{in: "red", want: PlayerConfig{Color: "red", Kind: "human"}},
		{in: "blue:ai", want: PlayerConfig{Color: "blue", Kind: "ai"}},
		{in: "#00ff00:better-ai", want: PlayerConfig{Color: "#00ff00", Kind: "better-ai"}},
		{in: "blue:robot", wantErr: true},
		{in: "notacolor:ai", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePlayerFlag(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("Red")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, c)

	c, err = ParseColor("#1a2b3c")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}, c)

	_, err = ParseColor("#12345")
	assert.Error(t, err)
	_, err = ParseColor("#gggggg")
	assert.Error(t, err)
}

func TestOverrides_Apply(t *testing.T) {
	rows, streak := 5, 3
	tests := []struct {
		name      string
		overrides Overrides
		check     func(t *testing.T, c *Config)
		wantErr   bool
	}{
		{
			name:      "nothing set",
			overrides: Overrides{},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, Default(), c)
			},
		},
		{
			name:      "board",
			overrides: Overrides{Rows: &rows, Streak: &streak},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, BoardConfig{Rows: 5, Cols: 7, Streak: 3}, c.Board)
			},
		},
		{
			name:      "players replace the defaults",
			overrides: Overrides{Players: []string{"green:better-ai", "orange"}},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, []PlayerConfig{
					{Color: "green", Kind: "better-ai"},
					{Color: "orange", Kind: "human"},
				}, c.Players)
			},
		},
		{
			name:      "reveal and log level",
			overrides: Overrides{NoReveal: true, LogLevel: "trace"},
			check: func(t *testing.T, c *Config) {
				assert.False(t, c.Reveal.Enabled)
				assert.Equal(t, "trace", c.LogLevel)
			},
		},
		{
			name:      "bad player",
			overrides: Overrides{Players: []string{"red", "blue:robot"}},
			wantErr:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := tt.overrides.Apply(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
