package config

import (
	"flag"
	"github.com/adrg/xdg"
	. "github.com/janpfeifer/hexGo/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"board_size": 5, "rules": "square"}`), 0644))
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.BoardSize)
	assert.Equal(t, "square", cfg.Rules)
	assert.Equal(t, Default.AIConfig, cfg.AIConfig)
	rules, err := cfg.NewRules()
	require.NoError(t, err)
	assert.Equal(t, SquareRules{}, rules)

	for name, contents := range map[string]string{
		"bad_json.json":  `{"board_size": `,
		"bad_size.json":  `{"board_size": 0}`,
		"bad_rules.json": `{"rules": "havannah"}`,
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
		_, err = LoadFile(path)
		assert.Error(t, err, "file %s", name)
	}

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestLoadAndSave(t *testing.T) {
	t.Cleanup(xdg.Reload) // Runs after the environment is restored.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()

	cfg, path, err := Load()
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default, *cfg)

	cfg.BoardSize = 9
	cfg.AIConfig = "ab,max_depth=2"
	savedPath, err := cfg.Save()
	require.NoError(t, err)

	cfg2, path, err := Load()
	require.NoError(t, err)
	assert.Equal(t, savedPath, path)
	assert.Equal(t, *cfg, *cfg2)

	cfg.BoardSize = 100
	_, err = cfg.Save()
	assert.Error(t, err)
}

func TestMergeFlags(t *testing.T) {
	newFlagSet := func() *flag.FlagSet {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.Int("size", DefaultBoardSize, "")
		fs.String("rules", "hex", "")
		fs.String("config", "ab", "")
		fs.String("config2", "minimax", "")
		fs.Bool("watch", false, "")
		return fs
	}

	cfg := Config{BoardSize: 5, Rules: "square", AIConfig: "random", AIConfig2: "random"}
	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"-config2=ab", "-watch"}))
	require.NoError(t, cfg.MergeFlags(fs))
	assert.Equal(t, Config{BoardSize: 5, Rules: "square", AIConfig: "random", AIConfig2: "ab"}, cfg)

	fs = newFlagSet()
	require.NoError(t, fs.Parse([]string{"-size=11", "-rules=hex"}))
	require.NoError(t, cfg.MergeFlags(fs))
	assert.Equal(t, 11, cfg.BoardSize)
	assert.Equal(t, "hex", cfg.Rules)

	fs = newFlagSet()
	require.NoError(t, fs.Parse([]string{"-size=0"}))
	assert.Error(t, cfg.MergeFlags(fs))
}
