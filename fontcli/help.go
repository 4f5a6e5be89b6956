package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, arg string) (error, bool) {
	help(arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "load", "resources":
		pterm.Info.Println("Loading fonts")
		pterm.Println(`
	resources                 list the embedded font resources
	load <name>[, <name>...]  load fonts from resources, in order

	Each resource is extracted to a temporary file and registered with a
	private font collection. Only the first family of a font file is kept.
	Loading stops at the first error; fonts loaded before stay loaded.
	A family name may be loaded only once.
	`)
	case "font", "text", "render":
		pterm.Info.Println("Rendering a label")
		pterm.Println(`
	font <family>[,<size>[,<style>]]   set the label font (default 18pt Regular)
	text <text>                        set the label text
	render <file.png>                  render the label to a PNG file

	Styles are Regular, Bold, Italic and BoldItalic.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	resources   list embedded font resources
	load        load fonts from resources          (help load)
	families    list loaded families
	family      show styles of a loaded family
	font        set the label font                 (help font)
	text        set the label text
	render      render the label to PNG
	files       list temporary font files
	dispose     release all fonts and remove temporary files
	quit        leave the CLI
	`)
	}
}
