package job

import (
	"os"
	"path/filepath"
	"time"

	"extractor/database"
	"extractor/database/model"
	"extractor/logger"
)

// CleanupUploadsJob removes uploaded archives older than the retention
// window, together with their upload records.
type CleanupUploadsJob struct {
	folder    string
	retention time.Duration
}

func NewCleanupUploadsJob(folder string, retentionDays int) *CleanupUploadsJob {
	return &CleanupUploadsJob{
		folder:    folder,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
	}
}

// Run implements the cron Job interface.
func (j *CleanupUploadsJob) Run() {
	cutoff := time.Now().Add(-j.retention)

	entries, err := os.ReadDir(j.folder)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warning("cleanup uploads job err:", err)
		}
		return
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			logger.Warning("cleanup uploads job err:", err)
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(j.folder, entry.Name())); err != nil {
			logger.Warning("cleanup uploads job err:", err)
			continue
		}
		if db := database.GetDB(); db != nil {
			if err := db.Where("stored_name = ?", entry.Name()).Delete(model.Upload{}).Error; err != nil {
				logger.Warning("cleanup uploads job err:", err)
			}
		}
		removed++
	}

	if removed > 0 {
		logger.Infof("cleanup uploads job removed %d stale archives", removed)
	}
}
