package cli

import (
	"github.com/fatih/color"

	"github.com/tiwariParth/tasklist/internal/models"
)

// palette holds the colors used by the shell. Colors are forced on or off
// so output does not depend on whether stdout is a terminal.
type palette struct {
	bold   *color.Color
	red    *color.Color
	green  *color.Color
	yellow *color.Color
	faint  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		bold:   color.New(color.Bold),
		red:    color.New(color.FgRed, color.Bold),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		faint:  color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.bold, p.red, p.green, p.yellow, p.faint} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) Bold(s string) string  { return p.bold.Sprint(s) }
func (p palette) Red(s string) string   { return p.red.Sprint(s) }
func (p palette) Green(s string) string { return p.green.Sprint(s) }
func (p palette) Faint(s string) string { return p.faint.Sprint(s) }

// Priority colors the priority label: high red, medium yellow, low green.
func (p palette) Priority(pr models.Priority) string {
	label := pr.String()
	switch pr {
	case models.High:
		return p.red.Sprint(label)
	case models.Medium:
		return p.yellow.Sprint(label)
	default:
		return p.green.Sprint(label)
	}
}
