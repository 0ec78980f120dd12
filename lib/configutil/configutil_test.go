package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Database string `json:"database"`
	Cutoff   int    `json:"cutoff"`
}

func TestReadConfigMergesLocalOverride(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "npb.json5")
	require.NoError(t, os.WriteFile(base, []byte(`{database: "npb.db", cutoff: 2005}`), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "npb.local.json5"),
		[]byte(`{database: "/tmp/override.db"}`), 0o644))

	config, err := ReadConfig[testConfig](base)
	require.NoError(t, err)
	require.Equal(t, "/tmp/override.db", config.Database)
	require.Equal(t, 2005, config.Cutoff)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "npb.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
