package handlers

import (
	"net/http"
	"strconv"

	"blogly/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TagRequest struct {
	Name string `form:"tag-name" binding:"required"`
}

func TagList(c *gin.Context, tx *gorm.DB) {
	tags, err := models.ListTags(tx)
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	render(c, http.StatusOK, "tag_listing.tmpl", gin.H{"title": "Tags", "tags": tags})
}

func TagShow(c *gin.Context, tx *gorm.DB) {
	tag, err := tagFromPath(c, tx)
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	posts, err := models.PostsOfTag(tx, tag.ID)
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	render(c, http.StatusOK, "tag_detail.tmpl", gin.H{"title": tag.Name, "tag": tag, "posts": posts})
}

func TagNewForm(c *gin.Context, tx *gorm.DB) {
	render(c, http.StatusOK, "new_tag_form.tmpl", gin.H{"title": "Create a tag"})
}

// TagCreate answers 409 when the name is taken, see models.CreateTag
func TagCreate(c *gin.Context, tx *gorm.DB) {
	r := TagRequest{}
	err := bindForm(c, &r)
	if err == nil {
		if _, err = models.CreateTag(tx, r.Name); err == nil {
			LoadSession(c).Flash("Tag %s added.", r.Name)
			c.Redirect(http.StatusFound, "/tags")
			return
		}
	}
	abortWithError(c, err, "new_tag_form.tmpl", gin.H{"title": "Create a tag", "tagName": r.Name})
}

func TagEditForm(c *gin.Context, tx *gorm.DB) {
	tag, err := tagFromPath(c, tx)
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	render(c, http.StatusOK, "edit_tag_form.tmpl", gin.H{"title": "Edit a tag", "tag": tag, "tagName": tag.Name})
}

func TagUpdate(c *gin.Context, tx *gorm.DB) {
	tag, err := tagFromPath(c, tx)
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	id := tag.ID
	r := TagRequest{}
	if err = bindForm(c, &r); err == nil {
		if _, err = models.UpdateTag(tx, id, r.Name); err == nil {
			LoadSession(c).Flash("Tag %s updated.", r.Name)
			c.Redirect(http.StatusFound, tagURL(id))
			return
		}
	}
	abortWithError(c, err, "edit_tag_form.tmpl", gin.H{"title": "Edit a tag", "tag": models.Tag{ID: id}, "tagName": r.Name})
}

func TagDelete(c *gin.Context, tx *gorm.DB) {
	id, err := paramID(c, "id")
	if err == nil {
		err = models.DeleteTag(tx, id)
	}
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	LoadSession(c).Flash("Tag deleted.")
	c.Redirect(http.StatusFound, "/tags")
}

func tagFromPath(c *gin.Context, tx *gorm.DB) (models.Tag, error) {
	id, err := paramID(c, "id")
	if err != nil {
		return models.Tag{}, err
	}
	return models.GetTag(tx, id)
}

func tagURL(id uint64) string {
	return "/tags/" + strconv.FormatUint(id, 10)
}
