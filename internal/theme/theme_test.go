package theme

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tentapress/tentapress/internal/config"
	"github.com/tentapress/tentapress/internal/db"
)

func testConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	return cfg
}

func writeLayout(t *testing.T, cfg *config.Config, themeID, rel string) {
	t.Helper()
	path := filepath.Join(cfg.ThemesDir(), themeID, "layouts", rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0644))
}

func TestActiveThemeID_FromOptions(t *testing.T) {
	d := db.OpenTest(t)
	db.CreateOptionsTable(t, d)
	_, err := d.Exec(context.Background(),
		`INSERT INTO tp_options (option_key, option_value) VALUES ('active_theme', 'aurora')`)
	require.NoError(t, err)

	cfg := testConfig(t)
	cfg.Themes.Default = "fallback"

	id, err := NewRegistry(d, cfg).ActiveThemeID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "aurora", id)
}

func TestActiveThemeID_FallsBackToDefault(t *testing.T) {
	cfg := testConfig(t)
	cfg.Themes.Default = "fallback"

	// No database at all.
	id, err := NewRegistry(nil, cfg).ActiveThemeID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fallback", id)

	// Database without an options table.
	d := db.OpenTest(t)
	id, err = NewRegistry(d, cfg).ActiveThemeID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fallback", id)
}

func TestLayouts(t *testing.T) {
	cfg := testConfig(t)
	cfg.Themes.Default = "aurora"
	writeLayout(t, cfg, "aurora", "default.html")
	writeLayout(t, cfg, "aurora", "wide.html")
	writeLayout(t, cfg, "aurora", "landing/hero.html")

	layouts, err := NewRegistry(nil, cfg).Layouts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "landing/hero", "wide"}, layouts)
}

func TestLayouts_NoActiveTheme(t *testing.T) {
	cfg := testConfig(t)

	_, err := NewRegistry(nil, cfg).Layouts(context.Background())
	require.Error(t, err)
}

func TestLayouts_ThemeDirMissing(t *testing.T) {
	cfg := testConfig(t)
	cfg.Themes.Default = "ghost"

	_, err := NewRegistry(nil, cfg).Layouts(context.Background())
	require.Error(t, err)
}

func TestLayouts_EmptyThemeDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.Themes.Default = "bare"
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.ThemesDir(), "bare"), 0755))

	layouts, err := NewRegistry(nil, cfg).Layouts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, layouts)
}
