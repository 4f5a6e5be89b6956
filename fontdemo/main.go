/*
Command fontdemo shows a window with a single label set in a font which is
embedded in the binary.

The font is extracted and registered when the window starts up; any error
aborts the program. With -png the form is rendered to a PNG file instead of
being shown in a window.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/npillmayer/fontloader/fontcoll"
	"github.com/npillmayer/fontloader/internal/shell"
	"github.com/npillmayer/fontloader/resource"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fontloader.shell'
func tracer() tracing.Trace {
	return tracing.Select("fontloader.shell")
}

const margin = 20

func main() {
	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":           "go",
		"trace.fontloader":          "Info",
		"trace.fontloader.coll":     "Error",
		"trace.fontloader.resource": "Error",
		"trace.fontloader.shell":    "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	formConf := shell.DefaultConfig
	resources := flag.String("resources", strings.Join(formConf.Resources, ","), "Comma separated font resources to load")
	flag.StringVar(&formConf.Family, "family", formConf.Family, "Font family of the label")
	flag.Float64Var(&formConf.Size, "size", formConf.Size, "Font size in points")
	style := flag.String("style", formConf.Style.String(), "Font style [Regular|Bold|Italic|BoldItalic]")
	flag.StringVar(&formConf.Text, "text", formConf.Text, "Label text")
	pngOut := flag.String("png", "", "Render the form to a PNG file instead of opening a window")
	list := flag.Bool("list", false, "List the embedded font resources and exit")
	flag.Parse()

	store := resource.Bundled()
	if *list {
		for _, name := range store.Names() {
			pterm.Println(name)
		}
		return
	}
	formConf.Resources = splitList(*resources)
	var err error
	if formConf.Style, err = fontcoll.ParseStyle(*style); err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}

	if err := shell.Run(store, formConf, func(form *shell.Form) error {
		return host(form, *pngOut)
	}); err != nil {
		pterm.Error.Println(err)
		os.Exit(exitCode(err))
	}
}

// startupError marks failures of the host after the form loaded.
type startupError struct {
	code int
	err  error
}

func (e startupError) Error() string { return e.err.Error() }
func (e startupError) Unwrap() error { return e.err }

// exitCode is 3 for a failing form load, otherwise the host's code.
func exitCode(err error) int {
	var serr startupError
	if errors.As(err, &serr) {
		return serr.code
	}
	return 3
}

// host shows the loaded form in a window, or renders it to pngOut.
func host(form *shell.Form, pngOut string) error {
	if pngOut != "" {
		if err := renderPNG(form, pngOut); err != nil {
			return startupError{code: 4, err: err}
		}
		pterm.Info.Printf("wrote %s\n", pngOut)
		return nil
	}
	w, h := form.Label.Size()
	ebiten.SetWindowSize(w+2*margin, h+2*margin)
	ebiten.SetWindowTitle(form.Title)
	if err := ebiten.RunGame(&window{form: form}); err != nil {
		tracer().Errorf(err.Error())
		return startupError{code: 5, err: err}
	}
	return nil
}

func renderPNG(form *shell.Form, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = form.Label.RenderPNG(f, margin); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// window hosts the form in an ebiten window.
type window struct {
	form *shell.Form
}

func (win *window) Update() error {
	return nil
}

func (win *window) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	label := win.form.Label
	if label.Font == nil {
		return
	}
	text.Draw(screen, label.DisplayText(), label.Font.Face, margin, margin+label.Ascent(), label.Color)
}

func (win *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
