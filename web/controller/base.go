// Package controller provides the HTTP request handlers of the Extractor
// panel: the public account flows and the login-gated asset pages.
package controller

import (
	"net/http"

	"extractor/logger"
	"extractor/web/locale"
	"extractor/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides the authentication guard shared by all gated
// routes.
type BaseController struct{}

// checkLogin verifies the session principal and redirects anonymous
// visitors to the login page.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		if isAjax(c) {
			pureJsonMsg(c, http.StatusUnauthorized, false, I18nWeb(c, "pages.login.heading"))
		} else {
			c.Redirect(http.StatusFound, c.GetString("base_path")+"login/")
		}
		c.Abort()
	} else {
		c.Next()
	}
}

// I18nWeb retrieves an internationalized message based on the current locale.
func I18nWeb(c *gin.Context, name string, params ...string) string {
	anyfunc, funcExists := c.Get("I18n")
	if !funcExists {
		logger.Warning("I18n function not exists in gin context!")
		return ""
	}
	i18nFunc, _ := anyfunc.(func(i18nType locale.I18nType, key string, keyParams ...string) string)
	msg := i18nFunc(locale.Web, name, params...)
	return msg
}
