package controller

import (
	"net/http"

	"extractor/database/model"
	"extractor/logger"
	"extractor/web/form"
	"extractor/web/service"
	"extractor/web/session"

	"github.com/gin-gonic/gin"
)

// IndexController handles the public routes: the landing page and the
// setup, login, logout and register flows.
type IndexController struct {
	BaseController

	settingService service.SettingService
	userService    service.UserService
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.home)

	// guards apply to every method, so GET and POST share a handler
	g.GET("/setup/", a.setup)
	g.POST("/setup/", a.setup)
	g.GET("/login/", a.login)
	g.POST("/login/", a.login)
	g.GET("/logout/", a.logout)
	g.GET("/register/", a.register)
	g.POST("/register/", a.register)

	g.GET("/denied/", a.checkLogin, a.denied)
}

// home renders the landing page. No guard.
func (a *IndexController) home(c *gin.Context) {
	html(c, "index.html", I18nWeb(c, "pages.index.title"), nil)
}

// setup creates the primary admin account. Unreachable once any account
// exists.
func (a *IndexController) setup(c *gin.Context) {
	count, err := a.userService.CountUsers()
	if err != nil {
		jsonMsg(c, "count users", err)
		return
	}
	if count > 0 {
		session.SetAlertSuccess(c, "Setup has already been completed.")
		c.Redirect(http.StatusFound, c.GetString("base_path"))
		return
	}

	f := form.NewAccountRegisterForm(&a.userService)
	if c.Request.Method == http.MethodPost {
		c.Request.ParseForm()
		f.Bind(c.Request.PostForm)
		if f.IsValid() && a.createAccount(c, f, "Successfully setup Extractor's primary admin account.") {
			return
		}
	}
	htmlForm(c, "setup.html", I18nWeb(c, "pages.setup.title"), f, "Register", nil)
}

// login authenticates an existing account. Logged-in users are sent
// straight to the explore page.
func (a *IndexController) login(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusFound, c.GetString("base_path")+"explore/")
		return
	}

	f := form.NewLoginForm(&a.userService, &a.userService)
	if c.Request.Method == http.MethodPost {
		c.Request.ParseForm()
		f.Bind(c.Request.PostForm)
		if f.IsValid() {
			email := f.Cleaned("email")
			user := a.userService.CheckUser(email, f.Cleaned("password"), f.Cleaned("two_factor_code"))
			if user != nil {
				service.CountLoginSuccess()
				a.startSession(c, user)
				logger.Infof("%s logged in successfully, IP: %s", user.Email, getRemoteIp(c))
				session.SetAlertSuccess(c, "Successfully logged into Extractor.")
				c.Redirect(http.StatusFound, c.GetString("base_path")+"explore/")
				return
			}
			// credentials changed between the clean step and here
			f.MarkError("password", "Incorrect password")
		}
		service.CountLoginFailure()
		logger.Warningf("failed login for %q, IP: %s", f.Value("email"), getRemoteIp(c))
	}
	htmlForm(c, "login.html", I18nWeb(c, "pages.login.title"), f, "Login", nil)
}

// logout tears down the session. Pending alerts are carried into the fresh
// session, defaulting the success message when none was queued.
func (a *IndexController) logout(c *gin.Context) {
	saved := session.PeekAlerts(c)
	if _, ok := saved[session.AlertSuccess]; !ok {
		saved[session.AlertSuccess] = "You have successfully logged out."
	}

	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out successfully", user.Email)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("Unable to clear session:", err)
	}
	if err := session.RestoreAlerts(c, saved); err != nil {
		logger.Warning("Unable to restore alerts after logout:", err)
	}
	c.Redirect(http.StatusFound, c.GetString("base_path"))
}

// register creates an account once the primary admin exists. Logged-in
// users are sent to their profile, and registration stays disabled until
// setup has run.
func (a *IndexController) register(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusFound, c.GetString("base_path")+"profile/")
		return
	}
	count, err := a.userService.CountUsers()
	if err != nil {
		jsonMsg(c, "count users", err)
		return
	}
	if count == 0 {
		c.Redirect(http.StatusFound, c.GetString("base_path")+"setup/")
		return
	}

	f := form.NewAccountRegisterForm(&a.userService)
	if c.Request.Method == http.MethodPost {
		c.Request.ParseForm()
		f.Bind(c.Request.PostForm)
		if f.IsValid() && a.createAccount(c, f, "Successfully registered with Extractor.") {
			return
		}
	}
	htmlForm(c, "register.html", I18nWeb(c, "pages.register.title"), f, "Register", nil)
}

// denied renders the access-denied page for logged-in users.
func (a *IndexController) denied(c *gin.Context) {
	html(c, "denied.html", I18nWeb(c, "pages.denied.title"), nil)
}

// createAccount registers the account from a validated form, logs it in and
// redirects to the profile page. Returns false (with the error attached to
// the form) when the store rejects the email, e.g. a concurrent duplicate
// got past the availability validator.
func (a *IndexController) createAccount(c *gin.Context, f *form.AccountRegisterForm, successMsg string) bool {
	// registration currently grants the admin role, matching the setup flow
	user, err := a.userService.Register(f.Cleaned("email"), f.Cleaned("password_first"), model.RoleAdmin)
	if err != nil {
		logger.Warning("register account err:", err)
		f.MarkError("email", "This email is already registered")
		return false
	}
	service.CountRegistration()

	a.startSession(c, user)
	session.SetAlertSuccess(c, successMsg)
	c.Redirect(http.StatusFound, c.GetString("base_path")+"profile/")
	return true
}

// startSession establishes the authenticated session for user.
func (a *IndexController) startSession(c *gin.Context, user *model.User) {
	sessionMaxAge, err := a.settingService.GetSessionMaxAge()
	if err != nil {
		logger.Warning("Unable to get session's max age from DB")
	}
	if sessionMaxAge > 0 {
		session.SetMaxAge(c, sessionMaxAge*60)
	}
	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("Unable to save session:", err)
	}
}
