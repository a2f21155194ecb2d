package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"blogly/models"
	"blogly/templates"
	"blogly/utils"

	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	sessionCookieName     = "blogly"
	sessionExpirationTime = 30 * 86400 // 30 days
)

// Setup installs the templates, the session store and all page routes on router
func Setup(router *gin.Engine, tx *gorm.DB, sessionKey string) error {
	tmpl, err := templates.Load()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(tmpl)

	store := gormsessions.NewStore(tx, true, []byte(sessionKey))
	store.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime, HttpOnly: true})
	router.Use(sessions.Sessions(sessionCookieName, store))
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // Individual end-points can override that

	r := &Router{Base: router, DB: tx}
	router.GET("/", Home)
	router.GET("/robots.txt", (&utils.CacheRouter{CacheTime: utils.CacheOneDay}).Handler(), DisallowRobots)
	// Users
	r.GET("/users", UserList)
	r.GET("/users/new", UserNewForm)
	r.POST("/users/new", UserCreate)
	r.GET("/users/:id", UserShow)
	r.GET("/users/:id/edit", UserEditForm)
	r.POST("/users/:id/edit", UserUpdate)
	r.POST("/users/:id/delete", UserDelete)
	// Posts
	r.GET("/users/:id/posts/new", PostNewForm)
	r.POST("/users/:id/posts/new", PostCreate)
	r.GET("/posts/:id", PostShow)
	r.GET("/posts/:id/edit", PostEditForm)
	r.POST("/posts/:id/edit", PostUpdate)
	r.POST("/posts/:id/delete", PostDelete)
	// Tags
	r.GET("/tags", TagList)
	r.GET("/tags/new", TagNewForm)
	r.POST("/tags/new", TagCreate)
	r.GET("/tags/:id", TagShow)
	r.GET("/tags/:id/edit", TagEditForm)
	r.POST("/tags/:id/edit", TagUpdate)
	r.POST("/tags/:id/delete", TagDelete)

	router.NoRoute(func(c *gin.Context) {
		renderStatus(c, http.StatusNotFound, "The requested URL was not found on the server.")
	})
	return nil
}

func Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/users")
}

func DisallowRobots(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nDisallow: /\n")
}

// render shows an HTML page, or the bare data for ?format=json
func render(c *gin.Context, status int, page string, data gin.H) {
	if c.Query("format") == "json" {
		c.JSON(status, data)
		return
	}
	data["flashes"] = LoadSession(c).TakeFlashes()
	c.HTML(status, page, data)
}

func renderStatus(c *gin.Context, status int, message string) {
	render(c, status, "error.tmpl", gin.H{
		"title":      http.StatusText(status),
		"status":     status,
		"statusText": http.StatusText(status),
		"message":    message,
	})
}

// abortWithError maps data access errors to a response. Validation and duplicate errors
// re-render form (when given) with the message on top.
func abortWithError(c *gin.Context, err error, form string, data gin.H) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		renderStatus(c, http.StatusNotFound, "The requested URL was not found on the server.")
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrDuplicate):
		status := http.StatusBadRequest
		if errors.Is(err, models.ErrDuplicate) {
			status = http.StatusConflict
		}
		if form == "" {
			renderStatus(c, status, err.Error())
			return
		}
		data["error"] = err.Error()
		render(c, status, form, data)
	default:
		log.Printf("Request %s failed: %v", utils.GetRequestID(c), err)
		renderStatus(c, http.StatusInternalServerError, "Something went wrong.")
	}
}

// paramID parses an id path parameter, anything that isn't a positive number can't exist
func paramID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%s %q: %w", name, c.Param(name), models.ErrNotFound)
	}
	return id, nil
}

// bindForm binds the posted form, turning binding failures into models.ErrValidation
func bindForm(c *gin.Context, obj any) error {
	err := c.ShouldBindWith(obj, binding.Form)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		return fmt.Errorf("%w: %s is required", models.ErrValidation, utils.Humanize(fieldErrors[0].Field()))
	}
	return fmt.Errorf("%w: invalid form data", models.ErrValidation)
}

// tagChoices returns all tags and the set of ids that should be pre-selected
func tagChoices(tx *gorm.DB, selectedIDs []uint64) (gin.H, error) {
	tags, err := models.ListTags(tx)
	if err != nil {
		return nil, err
	}
	selected := map[uint64]bool{}
	for _, id := range selectedIDs {
		selected[id] = true
	}
	return gin.H{"tags": tags, "selected": selected}, nil
}
