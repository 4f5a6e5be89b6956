package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/fontloader"
	"github.com/npillmayer/fontloader/fontcoll"
	"github.com/npillmayer/fontloader/internal/shell"
	"github.com/npillmayer/fontloader/resource"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("font-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for loading embedded fonts and rendering labels with them.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("resources").
		SetDescription("List the font resources embedded in this binary.").
		SetShortDescription("list resources").
		SetAction(runResourcesCommand)

	commando.
		Register("families").
		SetDescription("Load font resources and print the families registered for them.").
		SetShortDescription("load and list families").
		AddArgument("resources...", "font resource names", "").
		AddFlag("all,a", "also list families of a resource which the loader discards", commando.Bool, nil).
		SetAction(runFamiliesCommand)

	commando.
		Register("render").
		SetDescription("Render a label set in a loaded font family to a PNG image.").
		SetShortDescription("render label").
		AddArgument("family", "font family name", "").
		AddArgument("text...", "label text (variadic argument parts joined by comma by commando)", "").
		AddFlag("resources,r", "comma separated font resources to load", commando.String, "fontloader.Go-Regular.ttf").
		AddFlag("size,s", "font size in points", commando.Int, 18).
		AddFlag("style", "font style: Regular|Bold|Italic|BoldItalic", commando.String, "Regular").
		AddFlag("output,o", "output PNG file", commando.String, "font-tools-label.png").
		AddFlag("padding,p", "margin around the label in pixels", commando.Int, 10).
		SetAction(runRenderCommand)

	commando.Parse(nil)
}

func runResourcesCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	for _, name := range resource.Bundled().Names() {
		fmt.Println(name)
	}
}

func runFamiliesCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	names := splitList(args["resources"].Value)
	if len(names) == 0 {
		fatalf("at least one resource name is required")
	}
	store := resource.Bundled()
	if mustFlagBool(flags["all"], "all") {
		for _, name := range names {
			printAllFamilies(store, name)
		}
	}
	loader := fontloader.New(store)
	defer loader.Dispose()
	err := loader.LoadFontsFromResources(names...)
	if lerr := listFamilies(os.Stdout, loader); lerr != nil {
		loader.Dispose()
		fatalf("%v", lerr)
	}
	if err != nil {
		loader.Dispose()
		fatalf("%v", err)
	}
}

// listFamilies prints every loaded family with its styles.
func listFamilies(w io.Writer, loader *fontloader.Loader) error {
	for _, family := range loader.Families() {
		fam, err := loader.GetFontFamilyByName(family)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %v\n", family, fam.Styles())
	}
	return nil
}

// printAllFamilies lists every family contained in a resource, bypassing
// the loader's first-family rule.
func printAllFamilies(store resource.Store, name string) {
	data, err := resource.ReadAll(store, name)
	if err != nil {
		fmt.Printf("%s: %v\n", name, err)
		return
	}
	coll := fontcoll.New()
	defer coll.Close()
	if err = coll.AddMemoryFont(data); err != nil {
		fmt.Printf("%s: %v\n", name, err)
		return
	}
	for i, fam := range coll.Families() {
		fmt.Printf("%s #%d: %s %v\n", name, i, fam.Name(), fam.Styles())
	}
}

func runRenderCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	family := strings.TrimSpace(args["family"].Value)
	if family == "" {
		fatalf("family name is required")
	}
	text := strings.TrimSpace(args["text"].Value)
	if text == "" {
		fatalf("label text is empty")
	}
	styleName, err := flags["style"].GetString()
	if err != nil {
		fatalf("invalid --style flag: %v", err)
	}
	style, err := fontcoll.ParseStyle(styleName)
	if err != nil {
		fatalf("%v", err)
	}
	size := mustFlagInt(flags["size"], "size")
	if size <= 0 {
		fatalf("--size must be > 0")
	}
	padding := mustFlagInt(flags["padding"], "padding")
	if padding < 0 {
		fatalf("--padding must be >= 0")
	}
	outPath := strings.TrimSpace(mustFlagString(flags["output"], "output"))
	if outPath == "" {
		fatalf("output path is empty")
	}
	conf := shell.Config{
		Resources: splitList(mustFlagString(flags["resources"], "resources")),
		Family:    family,
		Size:      float64(size),
		Style:     style,
		Text:      text,
	}
	form := shell.NewForm(resource.Bundled(), conf)
	if err := form.Load(); err != nil {
		form.Close()
		fatalf("%v", err)
	}
	err = writeLabel(form.Label, outPath, padding)
	form.Close()
	if err != nil {
		fatalf("render failed: %v", err)
	}
	fmt.Printf("wrote %s\n", outPath)
}

func writeLabel(label *shell.Label, path string, padding int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = label.RenderPNG(f, padding); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// --- Helpers ---------------------------------------------------------------

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func mustFlagBool(f commando.FlagValue, name string) bool {
	b, err := f.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func mustFlagInt(f commando.FlagValue, name string) int {
	i, err := f.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return i
}

func mustFlagString(f commando.FlagValue, name string) string {
	s, err := f.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "font-tools: "+format+"\n", args...)
	os.Exit(1)
}
