package profilers

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestProfiles(t *testing.T) {
	dir := t.TempDir()
	cpuPath := filepath.Join(dir, "cpu.prof")
	memPath := filepath.Join(dir, "mem.prof")
	*flagCPUProfile, *flagMemProfile = cpuPath, memPath
	defer func() { *flagCPUProfile, *flagMemProfile = "", "" }()

	require.NoError(t, Setup(context.Background()))
	OnQuit()
	for _, path := range []string{cpuPath, memPath} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), "profile %s is empty", path)
	}

	*flagCPUProfile = filepath.Join(dir, "missing", "cpu.prof")
	assert.Error(t, Setup(context.Background()))
}
