package prefabs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func useDir(t *testing.T, dir string) {
	t.Helper()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
}

func TestEmbeddedSpecs(t *testing.T) {
	useDir(t, t.TempDir())

	player, err := LoadPlayerSpec()
	require.NoError(t, err)
	require.Equal(t, 10.0, player.AttackPower)
	require.Equal(t, 3, player.Gourds)
	require.Equal(t, 15, player.Emblems)

	boss, err := LoadBossSpec()
	require.NoError(t, err)
	require.Equal(t, 200.0, boss.Base.MaxHealth)
	require.Equal(t, 140.0, boss.PerLevel.MaxHealth)
	require.Equal(t, "boss_tuning.tengo", boss.Script)

	src, err := LoadScript(boss.Script)
	require.NoError(t, err)
	require.Contains(t, string(src), "adjust")
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "player.yaml"), []byte("attack_power: 42\nmax_health: 10\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scripts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scripts", "custom.tengo"), []byte("adjust := 1"), 0o644))

	player, err := LoadPlayerSpec()
	require.NoError(t, err)
	require.Equal(t, 42.0, player.AttackPower)
	require.Equal(t, 10.0, player.MaxHealth)
	require.Zero(t, player.Gourds)

	src, err := LoadScript("prefabs/scripts/custom.tengo")
	require.NoError(t, err)
	require.Equal(t, "adjust := 1", string(src))

	_, ok := ModTime("player.yaml")
	require.True(t, ok)
	_, ok = ModTime("boss.yaml")
	require.False(t, ok)
}

func TestLoadIntoKeepsMissingKeys(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "partial.yaml"), []byte("gourds: 9\n"), 0o644))

	spec := PlayerSpec{AttackPower: 7, Gourds: 1}
	require.NoError(t, LoadInto("partial.yaml", &spec))
	require.Equal(t, 7.0, spec.AttackPower)
	require.Equal(t, 9, spec.Gourds)
}

func TestLoadErrors(t *testing.T) {
	useDir(t, t.TempDir())

	_, err := LoadSpec[PlayerSpec]("nope.yaml")
	require.ErrorContains(t, err, "prefabs: load nope.yaml")

	dir := t.TempDir()
	useDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("attack_power: [1, 2\n"), 0o644))
	_, err = LoadSpec[PlayerSpec]("bad.yaml")
	require.ErrorContains(t, err, "prefabs: unmarshal bad.yaml")
}

func TestCleanPaths(t *testing.T) {
	tests := []struct {
		in, prefab, script string
	}{
		{in: "", prefab: "", script: ""},
		{in: "duel.yaml", prefab: "duel.yaml", script: "scripts/duel.yaml"},
		{in: "prefabs/duel.yaml", prefab: "duel.yaml", script: "scripts/duel.yaml"},
		{in: "prefabs/scripts/a.tengo", prefab: "scripts/a.tengo", script: "scripts/a.tengo"},
		{in: "a.tengo", prefab: "a.tengo", script: "scripts/a.tengo"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.prefab, cleanPrefabPath(tt.in), tt.in)
		require.Equal(t, tt.script, cleanScriptPath(tt.in), tt.in)
	}
}

func TestWatched(t *testing.T) {
	for path, want := range map[string]bool{
		"duel.yaml":         true,
		"boss.YML":          true,
		"scripts/ai.tengo":  true,
		"notes.txt":         false,
		"duel.yaml.swp":     false,
		"prefabs/embed.go":  false,
		"no_extension_file": false,
	} {
		require.Equal(t, want, Watched(path), path)
	}
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "duel.yaml"), []byte("arena: {}"), 0o644))

	select {
	case name := <-w.Events:
		require.True(t, strings.HasSuffix(name, "duel.yaml"), name)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("no event for duel.yaml")
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	for range w.Events {
	}
}
