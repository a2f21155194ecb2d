package handlers

import (
	"net/http"
	"strconv"

	"blogly/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostRequest struct {
	Title     string   `form:"title" binding:"required"`
	Content   string   `form:"post-content" binding:"required"`
	TagIDs    []uint64 `form:"tag-name"`
	TagsShown bool     `form:"tags-shown"` // the form carried the tag checkboxes
}

func PostNewForm(c *gin.Context, tx *gorm.DB) {
	user, err := userFromPath(c, tx)
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	data, err := tagChoices(tx, nil)
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	data["title"] = "New post"
	data["user"] = user
	render(c, http.StatusOK, "new_post_form.tmpl", data)
}

// PostCreate adds a post for the user in the path, tagged with the checked tags
func PostCreate(c *gin.Context, tx *gorm.DB) {
	user, err := userFromPath(c, tx)
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	r := PostRequest{}
	if err = bindForm(c, &r); err == nil {
		if _, err = models.CreatePost(tx, user.ID, r.Title, r.Content, r.TagIDs); err == nil {
			LoadSession(c).Flash("Post %q added.", r.Title)
			c.Redirect(http.StatusFound, userURL(user.ID))
			return
		}
	}
	data, tagsErr := tagChoices(tx, r.TagIDs)
	if tagsErr != nil {
		abortWithError(c, tagsErr, "", nil)
		return
	}
	data["title"] = "New post"
	data["user"] = user
	data["postTitle"] = r.Title
	data["postContent"] = r.Content
	abortWithError(c, err, "new_post_form.tmpl", data)
}

func PostShow(c *gin.Context, tx *gorm.DB) {
	post, err := postFromPath(c, tx)
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	user, err := models.GetUser(tx, post.UserID)
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	tags, err := models.TagsOfPost(tx, post.ID)
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	render(c, http.StatusOK, "post_detail.tmpl", gin.H{"title": post.Title, "post": post, "user": user, "postTags": tags})
}

func PostEditForm(c *gin.Context, tx *gorm.DB) {
	post, err := postFromPath(c, tx)
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	tagIDs, err := models.PostTagIDs(tx, post.ID)
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	data, err := tagChoices(tx, tagIDs)
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	data["title"] = "Edit post"
	data["post"] = post
	render(c, http.StatusOK, "edit_post_form.tmpl", data)
}

// PostUpdate saves title and content. Tags are replaced by the checked set only
// when the form carried the tag checkboxes, otherwise they are left alone.
func PostUpdate(c *gin.Context, tx *gorm.DB) {
	post, err := postFromPath(c, tx)
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	id := post.ID
	r := PostRequest{}
	if err = bindForm(c, &r); err == nil {
		if r.TagsShown && r.TagIDs == nil {
			r.TagIDs = []uint64{} // nothing checked means no tags
		}
		if _, err = models.UpdatePost(tx, id, r.Title, r.Content, r.TagIDs); err == nil {
			LoadSession(c).Flash("Post %q updated.", r.Title)
			c.Redirect(http.StatusFound, postURL(id))
			return
		}
	}
	data, tagsErr := tagChoices(tx, r.TagIDs)
	if tagsErr != nil {
		abortWithError(c, tagsErr, "", nil)
		return
	}
	data["title"] = "Edit post"
	data["post"] = models.Post{ID: id, Title: r.Title, Content: r.Content}
	abortWithError(c, err, "edit_post_form.tmpl", data)
}

func PostDelete(c *gin.Context, tx *gorm.DB) {
	id, err := paramID(c, "id")
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	post, err := models.DeletePost(tx, id)
	if err != nil {
		abortWithError(c, err, "", nil)
		return
	}
	LoadSession(c).Flash("Post %q deleted.", post.Title)
	c.Redirect(http.StatusFound, userURL(post.UserID))
}

func postFromPath(c *gin.Context, tx *gorm.DB) (models.Post, error) {
	id, err := paramID(c, "id")
	if err != nil {
		return models.Post{}, err
	}
	return models.GetPost(tx, id)
}

func postURL(id uint64) string {
	return "/posts/" + strconv.FormatUint(id, 10)
}
