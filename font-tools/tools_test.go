package main

import (
	"bytes"
	"testing"

	"github.com/npillmayer/fontloader"
	"github.com/npillmayer/fontloader/resource"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFamilies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontloader")
	defer teardown()
	//
	loader := fontloader.New(resource.Bundled(), fontloader.WithTempDir(t.TempDir()))
	defer loader.Dispose()
	require.NoError(t, loader.LoadFontsFromResources("fontloader.Go-Regular.ttf"))
	var buf bytes.Buffer
	require.NoError(t, listFamilies(&buf, loader))
	assert.Contains(t, buf.String(), "Go: [")
	//
	loader.Dispose()
	buf.Reset()
	require.NoError(t, listFamilies(&buf, loader))
	assert.Empty(t, buf.String())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a.ttf", "b.ttf"}, splitList(" a.ttf, ,b.ttf "))
	assert.Nil(t, splitList(""))
}
