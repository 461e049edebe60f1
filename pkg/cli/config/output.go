package config

import (
	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
)

// Output holds terminal output configuration
type Output struct {
	NoColor bool
}

// Flags returns CLI flags for output configuration
func (c *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable colored prompts and menus",
			Destination: &c.NoColor,
		},
	}
}

// ColorEnabled reports whether prompts should be colored. Color is also off
// when stdout is not a terminal or NO_COLOR is set.
func (c *Output) ColorEnabled() bool {
	return !c.NoColor && !color.NoColor
}
