// Command keylegend inspects the registered keyboard layouts: lists
// languages, prints the legends of a layout, and renders key
// expressions the way the keycap UI would.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/grafana/keylegend/hid"
	"github.com/grafana/keylegend/keycode"
	"github.com/grafana/keylegend/layout"
	"github.com/grafana/keylegend/log"
)

type cli struct {
	Verbose bool `short:"v" help:"Enable debug logging."`

	List   listCmd   `cmd:"" help:"List registered layout languages."`
	Show   showCmd   `cmd:"" help:"Print the keycap legends of a layout."`
	Render renderCmd `cmd:"" help:"Render a key expression against a layout."`
}

type listCmd struct{}

func (listCmd) Run() error {
	bold := color.New(color.Bold).SprintFunc()
	for _, lang := range layout.Languages() {
		l := layout.LayoutFor(lang)
		fmt.Printf("%s\t%s (%s)\n", bold(lang), l.Name, l.Geometry)
	}
	return nil
}

type showCmd struct {
	Lang string `arg:"" help:"Layout language code, e.g. us."`
}

func (c showCmd) Run() error {
	l := layout.LayoutFor(c.Lang)
	if l.Language == "" {
		return fmt.Errorf("unknown layout %q", c.Lang)
	}

	var (
		name   = color.New(color.FgCyan).SprintFunc()
		center = color.New(color.Bold).SprintFunc()
		corner = color.New(color.FgYellow).SprintFunc()
	)
	for code := hid.KeyA; code <= hid.KeyRightGui; code++ {
		legend, ok := l.LegendForUsageCode(code)
		if !ok {
			continue
		}
		fmt.Printf("0x%02X %-16s", uint16(code), name(hid.Name(code)))
		if legend.Center != "" {
			fmt.Printf(" [%s]", center(legend.Center))
		}
		for _, s := range []string{legend.TopLeft, legend.TopRight, legend.BottomLeft, legend.BottomRight, legend.CenterTop, legend.CenterBottom} {
			if s != "" {
				fmt.Printf(" %s", corner(s))
			}
		}
		fmt.Println()
	}
	return nil
}

type renderCmd struct {
	Lang string `arg:"" help:"Layout language code, e.g. us."`
	Expr string `arg:"" help:"Key expression, e.g. 'AltGr+Shift+E'."`
}

func (c renderCmd) Run() error {
	l := layout.LayoutFor(c.Lang)
	if l.Language == "" {
		return fmt.Errorf("unknown layout %q", c.Lang)
	}
	expr, err := keycode.ParseExpression(c.Expr)
	if err != nil {
		return err
	}

	r := l.Render(expr)
	if r.Text.Empty() {
		fmt.Println("(no legend)")
		return nil
	}
	slots := []struct{ name, text string }{
		{"top-left", r.Text.TopLeft},
		{"top-right", r.Text.TopRight},
		{"bottom-left", r.Text.BottomLeft},
		{"bottom-right", r.Text.BottomRight},
		{"center-top", r.Text.CenterTop},
		{"center", r.Text.Center},
		{"center-bottom", r.Text.CenterBottom},
	}
	for _, s := range slots {
		if s.text != "" {
			fmt.Printf("%-14s %q\n", s.name, s.text)
		}
	}
	return nil
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("keylegend"),
		kong.Description("Keyboard layout legend inspector"),
		kong.UsageOnError(),
	)

	ll := logrus.New()
	ll.SetOutput(os.Stderr)
	if c.Verbose {
		ll.SetLevel(logrus.DebugLevel)
	}
	layout.SetLogger(log.New(ll, nil))

	ctx.FatalIfErrorf(ctx.Run())
}
