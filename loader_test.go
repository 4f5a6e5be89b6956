package fontloader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/fontloader/fontcoll"
	"github.com/npillmayer/fontloader/internal/fonttest"
	"github.com/npillmayer/fontloader/resource"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type LoaderTestEnviron struct {
	suite.Suite
	store   resource.Map
	regular string // family name of Go Regular
	mono    string // family name of Go Mono
	tempDir string
	loader  *Loader
}

// listen for 'go test' command --> run test methods
func TestLoaderFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontloader")
	defer teardown()
	suite.Run(t, new(LoaderTestEnviron))
}

// run once, before test suite methods
func (env *LoaderTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("fontloader").SetTraceLevel(tracing.LevelInfo)
	env.regular = fonttest.FamilyName(fonttest.Regular())
	env.mono = fonttest.FamilyName(fonttest.Mono())
	env.Require().NotEqual(env.regular, env.mono)
	env.store = resource.Map{
		"TEST.Go-Regular.ttf":   fonttest.Regular(),
		"TEST.Go-Regular-2.ttf": fonttest.Regular(), // same family, different resource
		"TEST.Go-Mono.ttf":      fonttest.Mono(),
		"TEST.Mono-Regular.ttc": fonttest.Collection(fonttest.Mono(), fonttest.Regular()),
		"TEST.Garbage.ttf":      []byte("definitely not a font"),
	}
}

// run before each test method
func (env *LoaderTestEnviron) SetupTest() {
	env.tempDir = env.T().TempDir()
	env.loader = New(env.store, WithTempDir(env.tempDir))
}

// run after each test method
func (env *LoaderTestEnviron) TearDownTest() {
	env.loader.Dispose()
}

// --- Tests -----------------------------------------------------------------

func (env *LoaderTestEnviron) TestLoadAndLookup() {
	err := env.loader.LoadFontsFromResources("TEST.Go-Regular.ttf")
	env.Require().NoError(err)
	fam, err := env.loader.GetFontFamilyByName(env.regular)
	env.Require().NoError(err)
	env.Require().NotNil(fam)
	env.Equal(env.regular, fam.Name())
	env.Equal([]string{env.regular}, env.loader.Families())
}

func (env *LoaderTestEnviron) TestLoadBatchInOrder() {
	err := env.loader.LoadFontsFromResources("TEST.Go-Mono.ttf", "TEST.Go-Regular.ttf")
	env.Require().NoError(err)
	env.Equal([]string{env.mono, env.regular}, env.loader.Families())
	env.Len(env.loader.TempFiles(), 2)
}

func (env *LoaderTestEnviron) TestTempFileIsVerbatimCopy() {
	env.Require().NoError(env.loader.LoadFontsFromResources("TEST.Go-Mono.ttf"))
	files := env.loader.TempFiles()
	env.Require().Len(files, 1)
	env.Equal(env.tempDir, filepath.Dir(files[0]))
	env.True(strings.HasSuffix(files[0], ".ttf"), "expected .ttf suffix, have %s", files[0])
	data, err := os.ReadFile(files[0])
	env.Require().NoError(err)
	env.Equal(fonttest.Mono(), data)
}

func (env *LoaderTestEnviron) TestTempFilesAreUnique() {
	env.Require().NoError(env.loader.LoadFontsFromResources("TEST.Go-Mono.ttf", "TEST.Go-Regular.ttf"))
	files := env.loader.TempFiles()
	env.Require().Len(files, 2)
	env.NotEqual(files[0], files[1])
}

func (env *LoaderTestEnviron) TestResourceNotFound() {
	env.Require().NoError(env.loader.LoadFontsFromResources("TEST.Go-Regular.ttf"))
	err := env.loader.LoadFontsFromResources("TEST.Nevan RUS.ttf")
	env.Require().Error(err)
	env.True(errors.Is(err, ResourceNotFound), "expected ResourceNotFound, got %v", err)
	env.Equal(ResourceNotFound, KindOf(err))
	env.True(errors.Is(err, fs.ErrNotExist))
	env.Equal(`resource not found: resource "TEST.Nevan RUS.ttf": file does not exist`, err.Error())
	env.Equal([]string{env.regular}, env.loader.Families(), "mapping must be unchanged")
	env.Len(env.loader.TempFiles(), 1, "no temp file for a missing resource")
}

func (env *LoaderTestEnviron) TestDuplicateFamily() {
	err := env.loader.LoadFontsFromResources("TEST.Go-Regular.ttf", "TEST.Go-Regular-2.ttf", "TEST.Go-Mono.ttf")
	env.Require().Error(err)
	env.True(errors.Is(err, DuplicateFontFamily), "expected DuplicateFontFamily, got %v", err)
	var ferr *FontError
	env.Require().True(errors.As(err, &ferr))
	env.Equal("TEST.Go-Regular-2.ttf", ferr.Resource)
	env.Equal(env.regular, ferr.Family)
	// the batch is aborted, the first registration stays
	env.Equal([]string{env.regular}, env.loader.Families())
	_, err = env.loader.GetFontFamilyByName(env.mono)
	env.True(errors.Is(err, FontFamilyNotFound))
	// both temp files stay recorded for cleanup
	env.Len(env.loader.TempFiles(), 2)
}

func (env *LoaderTestEnviron) TestDuplicateAcrossCalls() {
	env.Require().NoError(env.loader.LoadFontsFromResources("TEST.Go-Regular.ttf"))
	err := env.loader.LoadFontsFromResources("TEST.Go-Regular.ttf")
	env.Equal(DuplicateFontFamily, KindOf(err))
	env.Equal([]string{env.regular}, env.loader.Families())
}

func (env *LoaderTestEnviron) TestEmptyFontFile() {
	err := env.loader.LoadFontsFromResources("TEST.Garbage.ttf")
	env.Require().Error(err)
	env.Equal(EmptyFontFile, KindOf(err))
	env.Empty(env.loader.Families())
	env.Len(env.loader.TempFiles(), 1, "temp file is recorded even if registration fails")
}

func (env *LoaderTestEnviron) TestFamilyNotFound() {
	_, err := env.loader.GetFontFamilyByName("Nevan RUS")
	env.True(errors.Is(err, FontFamilyNotFound), "expected FontFamilyNotFound, got %v", err)
	env.Require().NoError(env.loader.LoadFontsFromResources("TEST.Go-Regular.ttf"))
	// lookup is exact
	_, err = env.loader.GetFontFamilyByName(strings.ToUpper(env.regular))
	env.True(errors.Is(err, FontFamilyNotFound), "expected FontFamilyNotFound, got %v", err)
}

func (env *LoaderTestEnviron) TestFirstFamilyOnly() {
	env.Require().NoError(env.loader.LoadFontsFromResources("TEST.Mono-Regular.ttc"))
	fam, err := env.loader.GetFontFamilyByName(env.mono)
	env.Require().NoError(err)
	env.Equal(env.mono, fam.Name())
	_, err = env.loader.GetFontFamilyByName(env.regular)
	env.True(errors.Is(err, FontFamilyNotFound), "second family must not be registered, got %v", err)
	// the discarded family does not block loading it from elsewhere
	env.NoError(env.loader.LoadFontsFromResources("TEST.Go-Regular.ttf"))
}

func (env *LoaderTestEnviron) TestDispose() {
	env.Require().NoError(env.loader.LoadFontsFromResources("TEST.Go-Regular.ttf", "TEST.Go-Mono.ttf"))
	_ = env.loader.LoadFontsFromResources("TEST.Garbage.ttf")
	files := env.loader.TempFiles()
	env.Require().Len(files, 3)
	fam, err := env.loader.GetFontFamilyByName(env.mono)
	env.Require().NoError(err)
	env.loader.Dispose()
	for _, path := range files {
		_, err := os.Stat(path)
		env.True(errors.Is(err, os.ErrNotExist), "expected %s to be removed", path)
	}
	env.Empty(env.loader.Families())
	env.Empty(env.loader.TempFiles())
	_, err = env.loader.GetFontFamilyByName(env.mono)
	env.True(errors.Is(err, FontFamilyNotFound))
	_, err = fam.NewFont(12, fontcoll.Regular, 0)
	env.ErrorIs(err, fontcoll.ErrClosed, "family must be released by Dispose")
}

func (env *LoaderTestEnviron) TestDisposeTwice() {
	env.Require().NoError(env.loader.LoadFontsFromResources("TEST.Go-Regular.ttf"))
	env.loader.Dispose()
	env.Empty(env.loader.Families())
	env.loader.Dispose()
	env.Empty(env.loader.Families())
	env.Empty(env.loader.TempFiles())
	env.NoError(env.loader.Close())
}

func (env *LoaderTestEnviron) TestDisposeIgnoresMissingFiles() {
	env.Require().NoError(env.loader.LoadFontsFromResources("TEST.Go-Regular.ttf"))
	for _, path := range env.loader.TempFiles() {
		env.Require().NoError(os.Remove(path))
	}
	env.loader.Dispose()
	env.Empty(env.loader.TempFiles())
}

func (env *LoaderTestEnviron) TestNewFont() {
	env.Require().NoError(env.loader.LoadFontsFromResources("TEST.Go-Mono.ttf"))
	f, err := env.loader.NewFont(env.mono, 18, fontcoll.Regular)
	env.Require().NoError(err)
	defer f.Close()
	env.Equal(18.0, f.Size)
	env.Greater(f.LineHeight(), 0)
	_, err = env.loader.NewFont("Nevan RUS", 18, fontcoll.Regular)
	env.Equal(FontFamilyNotFound, KindOf(err))
}

// --- Error type ------------------------------------------------------------

func TestFontErrorMessages(t *testing.T) {
	err := &FontError{Kind: DuplicateFontFamily, Resource: "r.ttf", Family: "F"}
	if msg := err.Error(); msg != `duplicate font family: family "F" from resource "r.ttf"` {
		t.Errorf("unexpected message %q", msg)
	}
	cause := errors.New("boom")
	err = &FontError{Kind: EmptyFontFile, Resource: "r.ttf", Err: cause}
	if !errors.Is(err, cause) || !errors.Is(err, EmptyFontFile) {
		t.Errorf("expected error to match both kind and cause")
	}
	if errors.Is(err, ResourceNotFound) {
		t.Errorf("error must not match a different kind")
	}
	if KindOf(errors.New("plain")) != 0 {
		t.Errorf("expected no kind for a plain error")
	}
	if KindOf(FontFamilyNotFound) != FontFamilyNotFound {
		t.Errorf("expected bare kind to report itself")
	}
}

func TestRegistrationErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontloader")
	defer teardown()
	//
	pathErr := &fs.PathError{Op: "open", Path: "/tmp/x.ttf", Err: fs.ErrPermission}
	err := registrationError("r.ttf", pathErr)
	if KindOf(err) != 0 {
		t.Errorf("I/O error must not be reported as %v", KindOf(err))
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("expected I/O cause to be wrapped, got %v", err)
	}
	err = registrationError("r.ttf", fs.ErrNotExist)
	if KindOf(err) != 0 || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected plain not-exist error, got %v", err)
	}
	err = registrationError("r.ttf", errors.New("font file r.ttf: sfnt: invalid font"))
	if KindOf(err) != EmptyFontFile {
		t.Errorf("expected parse failure to be EmptyFontFile, got %v", err)
	}
}
