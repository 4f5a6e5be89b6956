/*
Package shell is the application shell: a form with a single label, styled
with a font that is embedded in the application binary.

The form is toolkit-agnostic. A host program (a window, or a headless
renderer) calls Form.Load from its startup callback, draws Form.Label and
closes the form when it shuts down.
*/
package shell

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/npillmayer/fontloader"
	"github.com/npillmayer/fontloader/fontcoll"
	"github.com/npillmayer/fontloader/resource"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontloader.shell'
func tracer() tracing.Trace {
	return tracing.Select("fontloader.shell")
}

// Config is the startup configuration of a form.
type Config struct {
	Resources []string       // font resources to load at startup
	Family    string         // family of the label font
	Size      float64        // label font size in points
	Style     fontcoll.Style // label font style
	Text      string         // label text
	DPI       float64        // resolution, 0 for 72 dpi
	TempDir   string         // directory for extracted font files, "" for the system default
}

// DefaultConfig is the configuration the application ships with.
var DefaultConfig = Config{
	Resources: []string{"fontloader.Go-Regular.ttf"},
	Family:    "Go",
	Size:      18,
	Style:     fontcoll.Regular,
	Text:      "The quick brown fox jumps over the lazy dog",
	DPI:       72,
}

// Form hosts one label. Its font is loaded from embedded resources when the
// form loads.
type Form struct {
	Title string
	Label *Label

	conf   Config
	store  resource.Store
	loader *fontloader.Loader
}

// NewForm creates a form which will take its fonts from store.
func NewForm(store resource.Store, conf Config) *Form {
	return &Form{
		Title: "Custom Font Loader",
		Label: &Label{Text: conf.Text, Color: color.Black},
		conf:  conf,
		store: store,
	}
}

// Load is the startup callback of the form. It loads the configured font
// resources and styles the label. Any failure is returned unchanged; there
// is no fallback font.
func (form *Form) Load() error {
	if form.loader != nil {
		return errors.New("form already loaded")
	}
	var opts []fontloader.Option
	if form.conf.TempDir != "" {
		opts = append(opts, fontloader.WithTempDir(form.conf.TempDir))
	}
	if form.conf.DPI > 0 {
		opts = append(opts, fontloader.WithDPI(form.conf.DPI))
	}
	form.loader = fontloader.New(form.store, opts...)
	if err := form.loader.LoadFontsFromResources(form.conf.Resources...); err != nil {
		return err
	}
	f, err := form.loader.NewFont(form.conf.Family, form.conf.Size, form.conf.Style)
	if err != nil {
		return err
	}
	form.Label.SetFont(f)
	tracer().Infof("label font is %s", f)
	return nil
}

// Run creates a form, loads it and hands it to host. The form is closed when
// Run returns, whether loading or host failed or not, so no temporary font
// files outlive the call. Host programs exit only after Run has returned.
func Run(store resource.Store, conf Config, host func(*Form) error) error {
	form := NewForm(store, conf)
	defer form.Close()
	if err := form.Load(); err != nil {
		return err
	}
	return host(form)
}

// Loader returns the form's font loader, nil before Load.
func (form *Form) Loader() *fontloader.Loader {
	return form.loader
}

// Close releases the label font and disposes the font loader.
func (form *Form) Close() error {
	var err error
	if form.Label.Font != nil {
		err = form.Label.Font.Close()
		form.Label.Font = nil
	}
	if form.loader != nil {
		form.loader.Dispose()
	}
	if err != nil {
		return fmt.Errorf("closing form: %w", err)
	}
	return nil
}
