package config

import "github.com/urfave/cli/v3"

// Pack holds skin packing configuration
type Pack struct {
	Dir      string
	Excludes []string
}

// Flags returns CLI flags for packing configuration
func (c *Pack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dir",
			Aliases:     []string{"d"},
			Usage:       "Directory whose subfolders are offered as skins (default: current directory)",
			Destination: &c.Dir,
		},
		&cli.StringSliceFlag{
			Name:        "exclude",
			Aliases:     []string{"x"},
			Usage:       "Glob of files to leave out of archives, relative to the skin folder (e.g. **/.DS_Store)",
			Destination: &c.Excludes,
		},
	}
}
