package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "actors.yaml", `
actors:
  - id: player
    name: Avatar
    max_hp: 12
    min_damage: 1
    max_damage: 3
    retreat_ratio: 0.1
  - id: rat
`)
	writeFile(t, dir, "missions.yaml", `
missions:
  - titles: ["Slay the Rat"]
    enemies: [rat]
`)

	ac, mc, err := LoadAll(dir)
	require.NoError(t, err)
	require.Len(t, ac.Actors, 2)
	assert.Equal(t, ActorDef{ID: "player", Name: "Avatar", MaxHP: 12, MinDamage: 1, MaxDamage: 3, RetreatRatio: 0.1}, ac.Actors[0])
	assert.Equal(t, ActorDef{ID: "rat", Name: "rat", MaxHP: 10, MinDamage: 1, MaxDamage: 2}, ac.Actors[1])

	require.Len(t, mc.Missions, 1)
	assert.Equal(t, "Slay the Rat", mc.Missions[0].ID)
	assert.Equal(t, []string{"rat"}, mc.Missions[0].Enemies)
}

func TestLoadAllMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "actors.yaml", "actors: []\n")
	_, _, err := LoadAll(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadAllBadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "actors.yaml", "actors: [\n")
	writeFile(t, dir, "missions.yaml", "missions: []\n")
	_, _, err := LoadAll(dir)
	assert.Error(t, err)
}

func TestLoadAllShippedAssets(t *testing.T) {
	ac, mc, err := LoadAll(filepath.Join("..", "..", "assets"))
	require.NoError(t, err)
	assert.NotEmpty(t, ac.Actors)
	assert.NotEmpty(t, mc.Missions)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("ADHOP_SEED", "99")
	t.Setenv("ADHOP_RUNS", "500")
	t.Setenv("ADHOP_DEBUG", "true")

	var s Settings
	require.NoError(t, ParseEnv(&s))
	assert.Equal(t, "assets", s.ConfigDir)
	assert.Equal(t, int64(99), s.Seed)
	assert.Equal(t, 500, s.Runs)
	assert.Equal(t, 8, s.Workers)
	assert.True(t, s.Debug)
	assert.False(t, s.Verbose)
}

func TestParseEnvInvalid(t *testing.T) {
	t.Setenv("ADHOP_RUNS", "many")
	var s Settings
	assert.Error(t, ParseEnv(&s))
}

func TestLoadAllKeepsExplicitZeroStats(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "actors.yaml", `
actors:
  - id: ghost
    max_hp: 0
  - id: pacifist
    min_damage: 0
    max_damage: 0
  - id: brute
    min_damage: 3
`)
	writeFile(t, dir, "missions.yaml", "missions: []\n")

	ac, _, err := LoadAll(dir)
	require.NoError(t, err)
	require.Len(t, ac.Actors, 3)
	assert.Equal(t, ActorDef{ID: "ghost", Name: "ghost", MaxHP: 0, MinDamage: 1, MaxDamage: 2}, ac.Actors[0])
	assert.Equal(t, ActorDef{ID: "pacifist", Name: "pacifist", MaxHP: 10, MinDamage: 0, MaxDamage: 0}, ac.Actors[1])
	assert.Equal(t, ActorDef{ID: "brute", Name: "brute", MaxHP: 10, MinDamage: 3, MaxDamage: 3}, ac.Actors[2])
}
