package handlers

import (
	"net/http"
	"strconv"

	"blogly/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserRequest struct {
	FirstName string `form:"first-name" binding:"required"`
	LastName  string `form:"last-name" binding:"required"`
	ImageURL  string `form:"image-url"`
}

func UserList(c *gin.Context, tx *gorm.DB) {
	users, err := models.ListUsers(tx)
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	render(c, http.StatusOK, "user_listing.tmpl", gin.H{"title": "Users", "users": users})
}

func UserNewForm(c *gin.Context, tx *gorm.DB) {
	render(c, http.StatusOK, "new_user_form.tmpl", gin.H{"title": "Create a user"})
}

func UserCreate(c *gin.Context, tx *gorm.DB) {
	r := UserRequest{}
	err := bindForm(c, &r)
	if err == nil {
		var user models.User
		if user, err = models.CreateUser(tx, r.FirstName, r.LastName, r.ImageURL); err == nil {
			LoadSession(c).Flash("User %s added.", user.FullName())
			c.Redirect(http.StatusFound, "/users")
			return
		}
	}
	abortWithError(c, err, "new_user_form.tmpl", gin.H{
		"title":     "Create a user",
		"firstName": r.FirstName,
		"lastName":  r.LastName,
		"imageURL":  r.ImageURL,
	})
}

func UserShow(c *gin.Context, tx *gorm.DB) {
	user, err := userFromPath(c, tx)
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	posts, err := models.PostsOfUser(tx, user.ID)
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	render(c, http.StatusOK, "user_detail.tmpl", gin.H{"title": user.FullName(), "user": user, "posts": posts})
}

func UserEditForm(c *gin.Context, tx *gorm.DB) {
	user, err := userFromPath(c, tx)
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	render(c, http.StatusOK, "edit_user_form.tmpl", gin.H{"title": "Edit a user", "user": user})
}

func UserUpdate(c *gin.Context, tx *gorm.DB) {
	user, err := userFromPath(c, tx)
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	id := user.ID
	r := UserRequest{}
	err = bindForm(c, &r)
	if err == nil {
		if user, err = models.UpdateUser(tx, id, r.FirstName, r.LastName, r.ImageURL); err == nil {
			LoadSession(c).Flash("User %s updated.", user.FullName())
			c.Redirect(http.StatusFound, "/users")
			return
		}
	}
	abortWithError(c, err, "edit_user_form.tmpl", gin.H{
		"title": "Edit a user",
		"user":  models.User{ID: id, FirstName: r.FirstName, LastName: r.LastName, ImageURL: r.ImageURL},
	})
}

// UserDelete removes the user along with all of their posts
func UserDelete(c *gin.Context, tx *gorm.DB) {
	id, err := paramID(c, "id")
	if err == nil {
		err = models.DeleteUser(tx, id)
	}
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	LoadSession(c).Flash("User deleted.")
	c.Redirect(http.StatusFound, "/users")
}

func userFromPath(c *gin.Context, tx *gorm.DB) (models.User, error) {
	id, err := paramID(c, "id")
	if err != nil {
		return models.User{}, err
	}
	return models.GetUser(tx, id)
}

func userURL(id uint64) string {
	return "/users/" + strconv.FormatUint(id, 10)
}
