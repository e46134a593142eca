package service

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUploadServiceSaveArchive(t *testing.T) {
	setup()
	defer teardown()

	settingService := SettingService{}
	folder := t.TempDir()
	assert.NoError(t, settingService.setString("uploadFolder", folder))

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "survey.zip")
	assert.NoError(t, err)
	_, err = part.Write([]byte("archive-bytes"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/upload/", body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())

	file, err := c.FormFile("file")
	assert.NoError(t, err)

	service := UploadService{}
	upload, err := service.SaveArchive(c, 3, file)
	assert.NoError(t, err)

	// the record keeps the original name and size, the file lands under a
	// uuid name with the extension preserved
	assert.Equal(t, "survey.zip", upload.FileName)
	assert.EqualValues(t, len("archive-bytes"), upload.Size)
	assert.Equal(t, ".zip", filepath.Ext(upload.StoredName))
	_, err = uuid.Parse(strings.TrimSuffix(upload.StoredName, ".zip"))
	assert.NoError(t, err)

	stored, err := os.ReadFile(filepath.Join(folder, upload.StoredName))
	assert.NoError(t, err)
	assert.Equal(t, "archive-bytes", string(stored))

	uploads, err := service.UploadsForUser(3)
	assert.NoError(t, err)
	if assert.Len(t, uploads, 1) {
		assert.Equal(t, upload.StoredName, uploads[0].StoredName)
	}

	uploads, err = service.UploadsForUser(4)
	assert.NoError(t, err)
	assert.Empty(t, uploads)
}
