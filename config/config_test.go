package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/framegrace/texelslide/slideout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "right", cfg.Panel.Dock)
	assert.Equal(t, "30%", cfg.Panel.Size)
	assert.True(t, cfg.Panel.CloseOnMaskClick)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "monokai", cfg.Demo.Style)

	opts, err := cfg.Panel.Options()
	require.NoError(t, err)
	assert.Equal(t, slideout.SideRight, opts.Dock)
	assert.Equal(t, slideout.DefaultSize, opts.Size)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeFile(t, "panel.yaml", `
panel:
  dock: left
  size: 40
  min_size: 10
  max_size: 80
  title: Files
logger:
  level: debug
`)
	t.Setenv("TEXELSLIDE_PANEL_TITLE", "From env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "left", cfg.Panel.Dock)
	assert.Equal(t, "From env", cfg.Panel.Title)
	assert.Equal(t, "debug", cfg.Logger.Level)

	opts, err := cfg.Panel.Options()
	require.NoError(t, err)
	assert.Equal(t, slideout.RelativeSize(slideout.Cells(40)), opts.Size)
	assert.Equal(t, 10, opts.MinSize)
	assert.Equal(t, 80, opts.MaxSize)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidPanel(t *testing.T) {
	path := writeFile(t, "bad.yaml", "panel:\n  dock: middle\n")
	_, err := Load(path)
	require.ErrorIs(t, err, slideout.ErrInvalidDock)
}

func TestPanelOptionsFixedSize(t *testing.T) {
	opts, err := PanelConfig{FixedSize: []string{"40", "10"}, Offset: "2"}.Options()
	require.NoError(t, err)
	assert.True(t, opts.Size.IsFixed())
	assert.Equal(t, slideout.Cells(10), opts.Size.Height())
	assert.Equal(t, slideout.Cells(2), opts.Offset)

	opts, err = PanelConfig{FixedSize: []string{"50%"}}.Options()
	require.NoError(t, err)
	assert.Equal(t, slideout.Percent(50), opts.Size.Height())
}

func TestPanelOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  PanelConfig
		want error
	}{
		{"dock", PanelConfig{Dock: "up"}, slideout.ErrInvalidDock},
		{"size", PanelConfig{Size: "wide"}, slideout.ErrInvalidSize},
		{"fixed", PanelConfig{FixedSize: []string{"1", "2", "3"}}, slideout.ErrInvalidSize},
		{"offset", PanelConfig{Offset: "x"}, slideout.ErrInvalidSize},
		{"bounds", PanelConfig{MinSize: -1}, slideout.ErrInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Options()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
