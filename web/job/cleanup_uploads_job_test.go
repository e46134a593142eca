package job

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"extractor/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestCleanupUploadsJob(t *testing.T) {
	t.Setenv("EXTRACTOR_LOG_FOLDER", t.TempDir())
	logger.InitLogger(logging.ERROR)

	folder := t.TempDir()

	stale := filepath.Join(folder, "stale.zip")
	assert.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))
	oldTime := time.Now().Add(-10 * 24 * time.Hour)
	assert.NoError(t, os.Chtimes(stale, oldTime, oldTime))

	fresh := filepath.Join(folder, "fresh.zip")
	assert.NoError(t, os.WriteFile(fresh, []byte("new"), 0o644))

	NewCleanupUploadsJob(folder, 7).Run()

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(fresh)
	assert.NoError(t, err)
}

func TestCleanupUploadsJobMissingFolder(t *testing.T) {
	t.Setenv("EXTRACTOR_LOG_FOLDER", t.TempDir())
	logger.InitLogger(logging.ERROR)

	// a folder that never existed is not an error
	NewCleanupUploadsJob(filepath.Join(t.TempDir(), "nowhere"), 7).Run()
}
