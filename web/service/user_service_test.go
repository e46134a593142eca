package service

import (
	"os"
	"testing"

	"extractor/database"
	"extractor/database/model"
	"extractor/util/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/xlzd/gotp"
)

func setup() {
	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
	os.Remove("test.db-wal")
	os.Remove("test.db-shm")
}

func TestUserServiceRegister(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	count, err := service.CountUsers()
	assert.NoError(t, err)
	assert.EqualValues(t, 0, count)

	user, err := service.Register("Admin@Example.com", "secret", model.RoleAdmin)
	assert.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.Equal(t, model.RoleAdmin, user.Role)
	assert.NotEqual(t, "secret", user.Password)
	assert.True(t, crypto.CheckPasswordHash(user.Password, "secret"))

	count, err = service.CountUsers()
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// unique index rejects a second account with the same email
	_, err = service.Register("admin@example.com", "other", model.RoleAdmin)
	assert.Error(t, err)
}

func TestUserServiceRegisterEmptyFields(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	_, err := service.Register("", "secret", model.RoleAdmin)
	assert.Error(t, err)
	_, err = service.Register("admin@example.com", "", model.RoleAdmin)
	assert.Error(t, err)
}

func TestUserServiceEmailExists(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}
	_, err := service.Register("admin@example.com", "secret", model.RoleAdmin)
	assert.NoError(t, err)

	exists, err := service.EmailExists("admin@example.com")
	assert.NoError(t, err)
	assert.True(t, exists)

	// matching is case-insensitive but exact, never substring
	exists, err = service.EmailExists("ADMIN@example.COM")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = service.EmailExists("admin")
	assert.NoError(t, err)
	assert.False(t, exists)

	exists, err = service.EmailExists("other@example.com")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestUserServiceCheckUser(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}
	_, err := service.Register("admin@example.com", "secret", model.RoleAdmin)
	assert.NoError(t, err)

	user := service.CheckUser("admin@example.com", "secret", "")
	if assert.NotNil(t, user) {
		assert.Equal(t, "admin@example.com", user.Email)
	}

	assert.Nil(t, service.CheckUser("admin@example.com", "wrong", ""))
	assert.Nil(t, service.CheckUser("nobody@example.com", "secret", ""))

	assert.True(t, service.CheckCredentials("admin@example.com", "secret", ""))
	assert.False(t, service.CheckCredentials("admin@example.com", "wrong", ""))
}

func TestUserServiceCheckUserTwoFactor(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}
	settingService := SettingService{}

	_, err := service.Register("admin@example.com", "secret", model.RoleAdmin)
	assert.NoError(t, err)

	token := "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"
	assert.NoError(t, settingService.SetTwoFactorToken(token))
	assert.NoError(t, settingService.SetTwoFactorEnable(true))

	code := gotp.NewDefaultTOTP(token).Now()
	user := service.CheckUser("admin@example.com", "secret", code)
	if assert.NotNil(t, user) {
		assert.Equal(t, "admin@example.com", user.Email)
	}

	wrongCode := "000000"
	if wrongCode == code {
		wrongCode = "000001"
	}
	assert.Nil(t, service.CheckUser("admin@example.com", "secret", wrongCode))
	assert.Nil(t, service.CheckUser("admin@example.com", "secret", ""))

	// switching the factor back off drops the code requirement
	assert.NoError(t, settingService.SetTwoFactorEnable(false))
	assert.NotNil(t, service.CheckUser("admin@example.com", "secret", ""))
}

func TestUserServiceUpdateFirstUser(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	// creates an admin when the table is empty
	err := service.UpdateFirstUser("first@example.com", "secret")
	assert.NoError(t, err)
	user, err := service.GetFirstUser()
	assert.NoError(t, err)
	assert.Equal(t, "first@example.com", user.Email)
	assert.Equal(t, model.RoleAdmin, user.Role)

	// updates in place afterwards
	err = service.UpdateFirstUser("second@example.com", "changed")
	assert.NoError(t, err)
	count, _ := service.CountUsers()
	assert.EqualValues(t, 1, count)
	user, _ = service.GetFirstUser()
	assert.Equal(t, "second@example.com", user.Email)
	assert.True(t, crypto.CheckPasswordHash(user.Password, "changed"))
}
