package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"blogly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagCreate(t *testing.T) {
	cl := newClient(t)
	w := cl.get("/tags/new")
	assert.Equal(t, http.StatusOK, w.Code)

	w = cl.post("/tags/new", url.Values{"tag-name": {"fun"}})
	w = cl.follow(w, "/tags")
	assert.Contains(t, w.Body.String(), "fun")
	assert.Contains(t, w.Body.String(), "Tag fun added.")

	w = cl.post("/tags/new", url.Values{"tag-name": {"fun"}})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
	assert.Contains(t, w.Body.String(), `value="fun"`)

	w = cl.post("/tags/new", url.Values{"tag-name": {""}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	tags, err := models.ListTags(cl.tx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestTagShowEditDelete(t *testing.T) {
	cl := newClient(t)
	u := cl.user("Oz", "Kong")
	fun := cl.tag("fun")
	cl.tag("taken")
	_, err := models.CreatePost(cl.tx, u.ID, "Joob", "Wants ham", []uint64{fun.ID})
	require.NoError(t, err)

	w := cl.get(tagURL(fun.ID))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Joob")

	w = cl.get(tagURL(fun.ID) + "/edit")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="fun"`)

	w = cl.post(tagURL(fun.ID)+"/edit", url.Values{"tag-name": {"taken"}})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = cl.post(tagURL(fun.ID)+"/edit", url.Values{"tag-name": {"funny"}})
	w = cl.follow(w, tagURL(fun.ID))
	assert.Contains(t, w.Body.String(), "<h1>funny</h1>")

	w = cl.post(tagURL(fun.ID)+"/delete", nil)
	w = cl.follow(w, "/tags")
	assert.NotContains(t, w.Body.String(), "funny")
	assert.Equal(t, http.StatusNotFound, cl.get(tagURL(fun.ID)).Code)

	posts, err := models.PostsOfUser(cl.tx, u.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	tags, err := models.TagsOfPost(cl.tx, posts[0].ID)
	require.NoError(t, err)
	assert.Empty(t, tags)
}
