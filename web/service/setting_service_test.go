package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingServiceDefaults(t *testing.T) {
	setup()
	defer teardown()

	service := SettingService{}

	port, err := service.GetPort()
	assert.NoError(t, err)
	assert.Equal(t, 9090, port)

	basePath, err := service.GetBasePath()
	assert.NoError(t, err)
	assert.Equal(t, "/", basePath)

	twoFactor, err := service.GetTwoFactorEnable()
	assert.NoError(t, err)
	assert.False(t, twoFactor)
}

func TestSettingServiceSetAndGet(t *testing.T) {
	setup()
	defer teardown()

	service := SettingService{}

	assert.NoError(t, service.SetPort(8080))
	port, err := service.GetPort()
	assert.NoError(t, err)
	assert.Equal(t, 8080, port)

	assert.NoError(t, service.ResetSettings())
	port, err = service.GetPort()
	assert.NoError(t, err)
	assert.Equal(t, 9090, port)
}

func TestSettingServiceBasePathNormalized(t *testing.T) {
	setup()
	defer teardown()

	service := SettingService{}
	assert.NoError(t, service.setString("webBasePath", "panel"))

	basePath, err := service.GetBasePath()
	assert.NoError(t, err)
	assert.Equal(t, "/panel/", basePath)
}

func TestSettingServiceSecretPersisted(t *testing.T) {
	setup()
	defer teardown()

	service := SettingService{}

	first, err := service.GetSecret()
	assert.NoError(t, err)
	assert.Len(t, first, 32)

	second, err := service.GetSecret()
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	// the generated secret is written to the settings table
	setting, err := service.getSetting("secret")
	assert.NoError(t, err)
	assert.Equal(t, first, setting.Value)
}

func TestSettingServiceGetAllSetting(t *testing.T) {
	setup()
	defer teardown()

	service := SettingService{}
	assert.NoError(t, service.SetPort(7070))

	all, err := service.GetAllSetting()
	assert.NoError(t, err)
	assert.Equal(t, 7070, all.WebPort)
	assert.Equal(t, "/", all.WebBasePath)
	assert.Equal(t, "UTC", all.TimeLocation)

	assert.NoError(t, service.UpdateAllSetting(all))
	port, err := service.GetPort()
	assert.NoError(t, err)
	assert.Equal(t, 7070, port)
}
