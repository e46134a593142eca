package controller

import (
	"errors"
	"net/http"

	"extractor/database/model"
	"extractor/logger"
	"extractor/util/json_util"
	"extractor/web/form"
	"extractor/web/service"
	"extractor/web/session"

	"github.com/gin-gonic/gin"
)

// ExploreController handles the login-gated asset pages: search, profile,
// uploads and manual asset entry.
type ExploreController struct {
	BaseController

	assetService  service.AssetService
	uploadService service.UploadService
	statusService service.StatusService
}

// NewExploreController creates a new ExploreController and initializes its routes.
func NewExploreController(g *gin.RouterGroup) *ExploreController {
	a := &ExploreController{}
	a.initRouter(g)
	return a
}

func (a *ExploreController) initRouter(g *gin.RouterGroup) {
	g = g.Group("", a.checkLogin)

	g.GET("/explore/", a.explore)
	g.POST("/explore/", a.explore)
	g.GET("/explore/export.json", a.export)
	g.GET("/profile/", a.profile)
	g.GET("/upload/", a.upload)
	g.POST("/upload/", a.upload)
	g.GET("/assets/new", a.newAsset)
	g.POST("/assets/new", a.newAsset)
}

// explore renders the query form and, on a valid submission, the assets it
// matched.
func (a *ExploreController) explore(c *gin.Context) {
	f := form.NewQueryForm()
	data := gin.H{}

	if c.Request.Method == http.MethodPost {
		c.Request.ParseForm()
		f.Bind(c.Request.PostForm)
		if f.IsValid() {
			user := session.GetLoginUser(c)
			query := &model.Query{UserId: user.Id}
			f.Assign(query)

			results, err := a.assetService.RunQuery(query)
			var fieldErr *service.FieldError
			switch {
			case errors.As(err, &fieldErr):
				f.MarkError(fieldErr.Field, fieldErr.Msg)
			case err != nil:
				jsonMsg(c, "run query", err)
				return
			default:
				if err := a.assetService.SaveQuery(query); err != nil {
					logger.Warning("save query err:", err)
				}
				data["results"] = results
				data["searched"] = true
			}
		}
	}
	htmlForm(c, "explore.html", I18nWeb(c, "pages.explore.title"), f, "Search", data)
}

// export streams every stored asset as JSON.
func (a *ExploreController) export(c *gin.Context) {
	assets, err := a.assetService.AllAssets()
	if err != nil {
		jsonMsg(c, "list assets", err)
		return
	}
	data, err := json_util.ToJSON(assets)
	if err != nil {
		jsonMsg(c, "encode assets", err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// profile shows the account, its recent queries and uploads, and a server
// status card. Admins also see the recent log entries.
func (a *ExploreController) profile(c *gin.Context) {
	user := session.GetLoginUser(c)

	queries, err := a.assetService.QueriesForUser(user.Id)
	if err != nil {
		logger.Warning("list queries err:", err)
	}
	uploads, err := a.uploadService.UploadsForUser(user.Id)
	if err != nil {
		logger.Warning("list uploads err:", err)
	}

	data := gin.H{
		"queries": queries,
		"uploads": uploads,
		"status":  a.statusService.GetStatus(),
	}
	if user.Role == model.RoleAdmin {
		data["logs"] = logger.GetLogs(20, "INFO")
	}
	html(c, "profile.html", I18nWeb(c, "pages.profile.title"), data)
}

// upload accepts an archive for extraction.
func (a *ExploreController) upload(c *gin.Context) {
	f := form.NewUploadForm()

	if c.Request.Method == http.MethodPost {
		file, err := c.FormFile("file")
		if err != nil {
			f.BindFile("")
		} else {
			f.BindFile(file.Filename)
		}
		if f.IsValid() {
			user := session.GetLoginUser(c)
			if _, err := a.uploadService.SaveArchive(c, user.Id, file); err != nil {
				logger.Warning("save archive err:", err)
				f.MarkError("file", "Unable to store this archive")
			} else {
				session.SetAlertSuccess(c, "Archive uploaded for extraction.")
				c.Redirect(http.StatusFound, c.GetString("base_path")+"profile/")
				return
			}
		}
	}
	htmlForm(c, "upload.html", I18nWeb(c, "pages.upload.title"), f, "Upload", gin.H{"multipart": true})
}

// newAsset records a manually entered asset.
func (a *ExploreController) newAsset(c *gin.Context) {
	f := form.NewAssetForm()

	if c.Request.Method == http.MethodPost {
		c.Request.ParseForm()
		f.Bind(c.Request.PostForm)
		if f.IsValid() {
			asset := &model.Asset{}
			f.Assign(asset)
			if err := a.assetService.SaveAsset(asset); err != nil {
				jsonMsg(c, "save asset", err)
				return
			}
			session.SetAlertSuccess(c, "Asset recorded.")
			c.Redirect(http.StatusFound, c.GetString("base_path")+"explore/")
			return
		}
	}
	htmlForm(c, "asset.html", I18nWeb(c, "pages.asset.title"), f, "Save", nil)
}
