package autoplay

import (
	"fmt"
	"io"
	"sort"

	"github.com/cbodonnell/connectn/pkg/config"
	"github.com/gookit/color"
)

// Standing is one player's line in a report.
type Standing struct {
	Identity string
	Wins     int
}

// Standings orders identities by wins, most first, then by name. Identities
// that never won are listed with zero wins.
func (t *Tally) Standings(identities []string) []Standing {
	seen := make(map[string]bool, len(identities))
	standings := make([]Standing, 0, len(identities))
	for _, id := range identities {
		if seen[id] {
			continue
		}
		seen[id] = true
		standings = append(standings, Standing{Identity: id, Wins: t.Wins[id]})
	}
	for id, wins := range t.Wins {
		if !seen[id] {
			standings = append(standings, Standing{Identity: id, Wins: wins})
		}
	}
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}
		return standings[i].Identity < standings[j].Identity
	})
	return standings
}

// Report writes the tally with each identity in the color it plays.
func (t *Tally) Report(w io.Writer, identities []string) error {
	if _, err := fmt.Fprintf(w, "%s %d\n", color.Bold.Sprint("Games:"), t.Games); err != nil {
		return err
	}
	for _, s := range t.Standings(identities) {
		name := s.Identity
		if rgb, err := config.ParseColor(s.Identity); err == nil {
			name = color.RGB(rgb.R, rgb.G, rgb.B).Sprint(s.Identity)
		}
		if _, err := fmt.Fprintf(w, "  %s %d wins (%s)\n", name, s.Wins, percent(s.Wins, t.Games)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "  %s %d (%s)\n", color.Gray.Sprint("draws"), t.Draws, percent(t.Draws, t.Games)); err != nil {
		return err
	}
	if t.Stopped > 0 {
		if _, err := fmt.Fprintf(w, "  %s %d\n", color.Yellow.Sprint("stopped early"), t.Stopped); err != nil {
			return err
		}
	}
	return nil
}

func percent(n, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(total))
}
