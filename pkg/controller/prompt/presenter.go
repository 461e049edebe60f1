package prompt

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// RGB is a 24-bit terminal color
type RGB struct {
	R, G, B int
}

// Palette maps named style tokens to colors. Colors are cosmetic only.
type Palette struct {
	Muted        RGB // separators and summaries
	Heading      RGB // menu titles
	Item         RGB // numbered menu entries
	SourcePrompt RGB // folder selection prompt
	DestPrompt   RGB // destination selection prompt
	Notice       RGB // input validation messages and warnings
	Result       RGB // created archive lines
	Failure      RGB // per-folder errors
}

// DefaultPalette returns the stock truecolor palette
func DefaultPalette() Palette {
	return Palette{
		Muted:        RGB{108, 112, 134},
		Heading:      RGB{249, 226, 175},
		Item:         RGB{137, 180, 250},
		SourcePrompt: RGB{166, 227, 161},
		DestPrompt:   RGB{203, 166, 247},
		Notice:       RGB{137, 220, 235},
		Result:       RGB{205, 214, 244},
		Failure:      RGB{243, 139, 168},
	}
}

type presenter struct {
	out io.Writer

	muted        *color.Color
	heading      *color.Color
	item         *color.Color
	sourcePrompt *color.Color
	destPrompt   *color.Color
	notice       *color.Color
	result       *color.Color
	failure      *color.Color
}

func newPresenter(out io.Writer, palette Palette, enableColor bool) *presenter {
	style := func(c RGB) *color.Color {
		s := color.RGB(c.R, c.G, c.B)
		if enableColor {
			s.EnableColor()
		} else {
			s.DisableColor()
		}
		return s
	}

	return &presenter{
		out:          out,
		muted:        style(palette.Muted),
		heading:      style(palette.Heading),
		item:         style(palette.Item),
		sourcePrompt: style(palette.SourcePrompt),
		destPrompt:   style(palette.DestPrompt),
		notice:       style(palette.Notice),
		result:       style(palette.Result),
		failure:      style(palette.Failure),
	}
}

func (p *presenter) line(c *color.Color, format string, args ...any) {
	_, _ = c.Fprintln(p.out, fmt.Sprintf(format, args...))
}

func (p *presenter) prompt(c *color.Color, text string) {
	_, _ = c.Fprint(p.out, text)
}

func (p *presenter) menu(title string, items []string) {
	p.line(p.heading, "%s", title)
	for i, item := range items {
		p.line(p.item, "%d. %s", i+1, item)
	}
}

func (p *presenter) plain(text string) {
	_, _ = fmt.Fprintln(p.out, text)
}
