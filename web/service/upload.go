package service

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"extractor/database"
	"extractor/database/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadService stores uploaded archives on disk under a generated name and
// records them so the cleanup job and the profile page can find them.
type UploadService struct {
	settingService SettingService
}

// SaveArchive writes the uploaded file into the upload folder under a uuid
// name (preserving the extension) and records the upload.
func (s *UploadService) SaveArchive(c *gin.Context, userId int, file *multipart.FileHeader) (*model.Upload, error) {
	folder, err := s.settingService.GetUploadFolder()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(folder, 0o750); err != nil {
		return nil, err
	}

	storedName := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(folder, storedName)); err != nil {
		return nil, err
	}

	upload := &model.Upload{
		UserId:     userId,
		FileName:   filepath.Base(file.Filename),
		StoredName: storedName,
		Size:       file.Size,
	}
	db := database.GetDB()
	if err := db.Create(upload).Error; err != nil {
		// orphaned file will be collected by the cleanup job
		return nil, err
	}
	return upload, nil
}

func (s *UploadService) UploadsForUser(userId int) ([]*model.Upload, error) {
	db := database.GetDB()
	uploads := make([]*model.Upload, 0)
	err := db.Model(model.Upload{}).
		Where("user_id = ?", userId).
		Order("created_at desc").
		Find(&uploads).Error
	return uploads, err
}
