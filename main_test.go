package main

import (
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/14790897/esp32-ws2812/config"
)

func writeConfig(t *testing.T, yml string) string {
	dir, errGo := ioutil.TempDir("", "ws2812")
	require.NoError(t, errGo)
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "strip.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(yml), 0644))
	return path
}

func TestVerboseFromFileRaisesLogLevel(t *testing.T) {
	path := writeConfig(t, "verbose: true\npixels: 12\n")

	cfg := config.Defaults()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-config", path}))

	resolved, err := resolve(cfg, fs)
	require.Nil(t, err)
	assert.True(t, resolved.Verbose)
	assert.Equal(t, 12, resolved.Pixels)

	assert.True(t, newLogger(resolved).IsDebug())
	assert.False(t, newLogger(config.Defaults()).IsDebug())
}

func TestFlagsWinOverFile(t *testing.T) {
	path := writeConfig(t, "pixels: 12\ndriver: opc\n")

	cfg := config.Defaults()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-config", path, "-pixels", "40"}))

	resolved, err := resolve(cfg, fs)
	require.Nil(t, err)
	assert.Equal(t, 40, resolved.Pixels)
	assert.Equal(t, "opc", resolved.Driver)
}

func TestResolveWithoutFile(t *testing.T) {
	cfg := config.Defaults()
	resolved, err := resolve(cfg, flag.NewFlagSet("test", flag.ContinueOnError))
	require.Nil(t, err)
	assert.Equal(t, cfg, resolved)
}
