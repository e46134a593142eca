// Package session wraps the cookie session store: the logged-in principal
// and the one-shot alert messages shown on the next rendered page.
package session

import (
	"encoding/gob"

	"extractor/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	loginUser = "LOGIN_USER"

	// alert keys are read-and-cleared by the next render
	AlertSuccess = "alert_success"
	AlertDanger  = "alert_danger"
)

func init() {
	gob.Register(model.User{})
}

func SetLoginUser(c *gin.Context, user *model.User) error {
	s := sessions.Default(c)
	s.Set(loginUser, user)
	return s.Save()
}

func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: maxAge,
	})
	return s.Save()
}

func GetLoginUser(c *gin.Context) *model.User {
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if user, ok := obj.(model.User); ok {
			return &user
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	if err := s.Save(); err != nil {
		return err
	}
	c.SetCookie("extractor", "", -1, "/", "", false, true)
	return nil
}

func SetAlertSuccess(c *gin.Context, msg string) error {
	s := sessions.Default(c)
	s.Set(AlertSuccess, msg)
	return s.Save()
}

func SetAlertDanger(c *gin.Context, msg string) error {
	s := sessions.Default(c)
	s.Set(AlertDanger, msg)
	return s.Save()
}

// TakeAlerts removes and returns the pending alerts, so each message is
// displayed exactly once.
func TakeAlerts(c *gin.Context) map[string]string {
	s := sessions.Default(c)
	alerts := make(map[string]string)
	changed := false
	for _, key := range []string{AlertSuccess, AlertDanger} {
		if obj := s.Get(key); obj != nil {
			if msg, ok := obj.(string); ok {
				alerts[key] = msg
			}
			s.Delete(key)
			changed = true
		}
	}
	if changed {
		_ = s.Save()
	}
	return alerts
}

// PeekAlerts returns the pending alerts without consuming them. The logout
// handler uses it to carry alerts across the session teardown.
func PeekAlerts(c *gin.Context) map[string]string {
	s := sessions.Default(c)
	alerts := make(map[string]string)
	for _, key := range []string{AlertSuccess, AlertDanger} {
		if obj := s.Get(key); obj != nil {
			if msg, ok := obj.(string); ok {
				alerts[key] = msg
			}
		}
	}
	return alerts
}

// RestoreAlerts reinserts alerts into the fresh session created after a
// teardown. The expiring options left behind by ClearSession are reset, or
// the restored cookie would be discarded immediately.
func RestoreAlerts(c *gin.Context, alerts map[string]string) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path: "/",
	})
	for key, msg := range alerts {
		s.Set(key, msg)
	}
	return s.Save()
}
