package service

import (
	"errors"
	"strings"

	"extractor/database"
	"extractor/database/model"
	"extractor/logger"
	"extractor/util/crypto"

	"github.com/xlzd/gotp"
	"gorm.io/gorm"
)

// UserService owns the account store: registration, credential checks and
// the account-existence queries the navigation guards rely on.
type UserService struct {
	settingService SettingService
}

// CountUsers reports how many accounts exist. The setup flow stays
// reachable only while this is zero.
func (s *UserService) CountUsers() (int64, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(model.User{}).Count(&count).Error
	return count, err
}

// EmailExists reports whether an account with the given email exists.
// Matching is exact and case-insensitive.
func (s *UserService) EmailExists(email string) (bool, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(model.User{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Count(&count).Error
	return count > 0, err
}

// Register creates a credentialed account of the given role. The email is
// stored lowercased; uniqueness is enforced by the database index, so a
// concurrent duplicate surfaces here as an error rather than a crash.
func (s *UserService) Register(email, password, role string) (*model.User, error) {
	if email == "" {
		return nil, errors.New("email can not be empty")
	} else if password == "" {
		return nil, errors.New("password can not be empty")
	}

	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    strings.ToLower(email),
		Password: hashedPassword,
		Role:     role,
	}
	db := database.GetDB()
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser authenticates an email/password pair, plus the TOTP code when
// two-factor auth is enabled. Returns nil when authentication fails.
func (s *UserService) CheckUser(email, password, twoFactorCode string) *model.User {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(user).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil
	}

	twoFactorEnable, err := s.settingService.GetTwoFactorEnable()
	if err != nil {
		logger.Warning("check two factor err:", err)
		return nil
	}

	if twoFactorEnable {
		twoFactorToken, err := s.settingService.GetTwoFactorToken()
		if err != nil {
			logger.Warning("check two factor token err:", err)
			return nil
		}

		if gotp.NewDefaultTOTP(twoFactorToken).Now() != twoFactorCode {
			return nil
		}
	}

	return user
}

// CheckCredentials adapts CheckUser to the login form's clean step.
func (s *UserService) CheckCredentials(email, password, twoFactorCode string) bool {
	return s.CheckUser(email, password, twoFactorCode) != nil
}

func (s *UserService) GetUserByEmail(email string) (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	err := db.Model(model.User{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetFirstUser() (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	err := db.Model(model.User{}).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateFirstUser sets the credentials of the first account, creating it as
// an admin when none exists. Used by the CLI.
func (s *UserService) UpdateFirstUser(email, password string) error {
	if email == "" {
		return errors.New("email can not be empty")
	} else if password == "" {
		return errors.New("password can not be empty")
	}
	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	db := database.GetDB()
	user := &model.User{}
	ferr := db.Model(model.User{}).First(user).Error
	if database.IsNotFound(ferr) {
		user.Email = strings.ToLower(email)
		user.Password = hashedPassword
		user.Role = model.RoleAdmin
		return db.Model(model.User{}).Create(user).Error
	} else if ferr != nil {
		return ferr
	}
	user.Email = strings.ToLower(email)
	user.Password = hashedPassword
	return db.Save(user).Error
}
