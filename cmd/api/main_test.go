package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"nutriguide/internal/models"
	"nutriguide/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args against an isolated config
// directory and returns what it printed.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	profilesJSON = false
	bmiWeight, bmiHeight = 0, 0
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config-dir", t.TempDir()}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestBMICommand(t *testing.T) {
	out, err := runCLI(t, "bmi", "--weight", "70", "--height", "175")
	require.NoError(t, err)
	assert.Contains(t, out, "BMI:      22.9")
	assert.Contains(t, out, "Category: Normal weight")
	assert.Contains(t, out, "Water:    2.5 L/day")
}

func TestBMICommandRejectsZeroHeight(t *testing.T) {
	_, err := runCLI(t, "bmi", "--weight", "70", "--height", "0")
	assert.Error(t, err)
}

func TestBMICommandUsesCatalogOverrideFallback(t *testing.T) {
	t.Setenv("ADVICE_CATALOG_PATH", filepath.Join(t.TempDir(), "missing.yml"))
	out, err := runCLI(t, "bmi", "--weight", "50", "--height", "180")
	require.NoError(t, err)
	assert.Contains(t, out, "Category: Underweight")
}

func TestProfilesCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "profiles.db")
	t.Setenv("DB_PATH", dbPath)

	out, err := runCLI(t, "profiles")
	require.NoError(t, err)
	assert.Contains(t, out, "No profiles stored.")

	store, err := storage.Open(context.Background(), dbPath, nil)
	require.NoError(t, err)
	for _, p := range []models.Profile{
		{Name: "Jane", Age: 30, Gender: models.GenderFemale, HeightCM: 175, WeightKG: 70},
		{Name: "Bob", Age: 50, Gender: models.GenderMale, HeightCM: 170, WeightKG: 95},
	} {
		_, err := store.Save(context.Background(), p)
		require.NoError(t, err)
	}
	require.NoError(t, store.Close())

	out, err = runCLI(t, "profiles")
	require.NoError(t, err)
	assert.Contains(t, out, "Jane")
	assert.Contains(t, out, "Normal weight")
	assert.Contains(t, out, "Obese")

	out, err = runCLI(t, "profiles", "--json")
	require.NoError(t, err)
	var rows []profileRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Jane", rows[0].Name)
	assert.Equal(t, 22.9, rows[0].BMI)
	assert.Equal(t, "Bob", rows[1].Name)
	assert.Equal(t, 32.9, rows[1].BMI)
}

func TestInvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("RATE_LIMIT_PER_MINUTE: 0\n"), 0o600))

	profilesJSON = false
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--config-dir", dir, "bmi", "--weight", "70", "--height", "175"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RATE_LIMIT_PER_MINUTE")
}
