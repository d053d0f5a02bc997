package utils

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestAppDataDir(t *testing.T) {
	t.Run("windows APPDATA", func(t *testing.T) {
		dir := appDataDir("windows", env(map[string]string{"APPDATA": "C:/Users/u/AppData/Roaming"}))
		assert.Equal(t, filepath.Join("C:/Users/u/AppData/Roaming", "Fleeets Companion"), dir)
	})

	t.Run("windows fallback", func(t *testing.T) {
		dir := appDataDir("windows", env(map[string]string{"USERPROFILE": "C:/Users/u"}))
		assert.Equal(t, filepath.Join("C:/Users/u", "AppData", "Roaming", "Fleeets Companion"), dir)
	})

	t.Run("linux xdg", func(t *testing.T) {
		dir := appDataDir("linux", env(map[string]string{"XDG_DATA_HOME": "/data"}))
		assert.Equal(t, filepath.Join("/data", "fleeets-companion"), dir)
	})

	t.Run("linux default", func(t *testing.T) {
		dir := appDataDir("linux", env(nil))
		assert.True(t, strings.HasSuffix(dir, filepath.Join(".local", "share", "fleeets-companion")), dir)
	})

	t.Run("darwin", func(t *testing.T) {
		dir := appDataDir("darwin", env(nil))
		assert.True(t, strings.HasSuffix(dir, filepath.Join("Application Support", "Fleeets Companion")), dir)
	})
}

func TestEnsureAppDirs(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("APPDATA", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	assert.NoError(t, EnsureAppDirs())
	assert.DirExists(t, GetLogDir())
}
