/*
Command fontcli is an interactive shell around a font loader.

It loads fonts from the resources embedded in the binary, looks up
families, sets a label in one of them and renders it to PNG. Type "help"
at the prompt for a list of commands.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontloader"
	"github.com/npillmayer/fontloader/fontcoll"
	"github.com/npillmayer/fontloader/internal/shell"
	"github.com/npillmayer/fontloader/resource"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fontloader'
func tracer() tracing.Trace {
	return tracing.Select("fontloader")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":  "go",
		"trace.fontloader": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	preload := flag.String("load", "", "Comma separated font resources to load at startup")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)           // will set the correct level later
	pterm.Info.Println("Welcome to the font loader CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("fonts > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := newIntp(repl, resource.Bundled())
	defer intp.loader.Dispose()
	//
	// load fonts requested by flag
	if *preload != "" {
		if err, _ := loadOp(intp, *preload); err != nil {
			tracer().Errorf(err.Error())
			intp.loader.Dispose()
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		intp.loader.Dispose()
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl   *readline.Instance
	store  resource.Store
	loader *fontloader.Loader
	label  shell.Label
}

func newIntp(repl *readline.Instance, store resource.Store) *Intp {
	return &Intp{
		repl:   repl,
		store:  store,
		loader: fontloader.New(store),
		label:  shell.Label{Text: "The quick brown fox jumps over the lazy dog"},
	}
}

func (intp *Intp) String() string {
	if intp.label.Font == nil {
		return fmt.Sprintf("( families=%d font=none )", len(intp.loader.Families()))
	}
	return fmt.Sprintf("( families=%d font=%s )", len(intp.loader.Families()), intp.label.Font)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, arg := parseCommand(line)
		f, ok := commandFn[cmd]
		if !ok {
			pterm.Error.Printf("unknown command: %s\n", cmd)
			help("")
			continue
		}
		err, quit := f(intp, arg)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// parseCommand splits a line into a lower-case command word and its
// argument, e.g. "family Go Mono" -> ("family", "Go Mono").
func parseCommand(line string) (string, string) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}

var commandFn = map[string]func(*Intp, string) (error, bool){
	"quit":      quitOp,
	"help":      helpOp,
	"resources": resourcesOp,
	"load":      loadOp,
	"families":  familiesOp,
	"family":    familyOp,
	"font":      fontOp,
	"text":      textOp,
	"render":    renderOp,
	"files":     filesOp,
	"dispose":   disposeOp,
}

var errNoArg = errors.New("command needs an argument")

func quitOp(intp *Intp, arg string) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

func resourcesOp(intp *Intp, arg string) (error, bool) {
	for _, name := range intp.store.Names() {
		pterm.Println(name)
	}
	return nil, false
}

func loadOp(intp *Intp, arg string) (error, bool) {
	names := splitList(arg)
	if len(names) == 0 {
		return errNoArg, false
	}
	if err := intp.loader.LoadFontsFromResources(names...); err != nil {
		return err, false
	}
	pterm.Info.Printf("loaded families: %v\n", intp.loader.Families())
	return nil, false
}

func familiesOp(intp *Intp, arg string) (error, bool) {
	for _, name := range intp.loader.Families() {
		pterm.Println(name)
	}
	return nil, false
}

func familyOp(intp *Intp, arg string) (error, bool) {
	if arg == "" {
		return errNoArg, false
	}
	fam, err := intp.loader.GetFontFamilyByName(arg)
	if err != nil {
		return err, false
	}
	pterm.Printf("%s: styles %v\n", fam.Name(), fam.Styles())
	return nil, false
}

// fontOp sets the label font, argument is "family[,size[,style]]".
func fontOp(intp *Intp, arg string) (error, bool) {
	parts := splitList(arg)
	if len(parts) == 0 {
		return errNoArg, false
	}
	size, style := 18.0, fontcoll.Regular
	var err error
	if len(parts) > 1 {
		if size, err = strconv.ParseFloat(parts[1], 64); err != nil {
			return fmt.Errorf("invalid font size %q", parts[1]), false
		}
	}
	if len(parts) > 2 {
		if style, err = fontcoll.ParseStyle(parts[2]); err != nil {
			return err, false
		}
	}
	f, err := intp.loader.NewFont(parts[0], size, style)
	if err != nil {
		return err, false
	}
	if intp.label.Font != nil {
		intp.label.Font.Close()
	}
	intp.label.SetFont(f)
	return nil, false
}

func textOp(intp *Intp, arg string) (error, bool) {
	if arg == "" {
		return errNoArg, false
	}
	intp.label.Text = arg
	return nil, false
}

func renderOp(intp *Intp, arg string) (error, bool) {
	if arg == "" {
		return errNoArg, false
	}
	if intp.label.Font == nil {
		return errors.New("no font set, use 'font' first"), false
	}
	f, err := os.Create(arg)
	if err != nil {
		return err, false
	}
	if err = intp.label.RenderPNG(f, 10); err != nil {
		f.Close()
		return err, false
	}
	if err = f.Close(); err != nil {
		return err, false
	}
	pterm.Info.Printf("wrote %s\n", arg)
	return nil, false
}

func filesOp(intp *Intp, arg string) (error, bool) {
	for _, path := range intp.loader.TempFiles() {
		pterm.Println(path)
	}
	return nil, false
}

func disposeOp(intp *Intp, arg string) (error, bool) {
	if intp.label.Font != nil {
		intp.label.Font.Close()
		intp.label.Font = nil
	}
	intp.loader.Dispose()
	pterm.Info.Println("all fonts released")
	return nil, false
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
