package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"blogly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(values ...uint64) []string {
	result := []string{}
	for _, v := range values {
		result = append(result, strconv.FormatUint(v, 10))
	}
	return result
}

func TestPostCreate(t *testing.T) {
	cl := newClient(t)
	u := cl.user("Oz", "Kong")
	one := cl.tag("one")
	cl.tag("two")
	three := cl.tag("three")

	w := cl.get(userURL(u.ID) + "/posts/new")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Add Post for Oz Kong")
	assert.Contains(t, w.Body.String(), `name="tag-name"`)

	w = cl.post(userURL(u.ID)+"/posts/new", url.Values{
		"title":        {"hello"},
		"post-content": {"world"},
		"tag-name":     ids(one.ID, three.ID, three.ID),
	})
	w = cl.follow(w, userURL(u.ID))
	assert.Contains(t, w.Body.String(), "hello")

	posts, err := models.PostsOfUser(cl.tx, u.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	tags, err := models.TagsOfPost(cl.tx, posts[0].ID)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.ElementsMatch(t, []uint64{one.ID, three.ID}, []uint64{tags[0].ID, tags[1].ID})

	w = cl.get(postURL(posts[0].ID))
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "world")
	assert.Contains(t, body, "Oz Kong")
	assert.Contains(t, body, "one")
	assert.Contains(t, body, "three")
	assert.NotContains(t, body, ">two<")
}

func TestPostCreate_Invalid(t *testing.T) {
	cl := newClient(t)
	u := cl.user("Oz", "Kong")
	tag := cl.tag("fun")

	w := cl.post(userURL(u.ID)+"/posts/new", url.Values{"title": {"hello"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "content is required")
	assert.Contains(t, w.Body.String(), `value="hello"`)

	w = cl.post(userURL(u.ID)+"/posts/new", url.Values{"title": {"hello"}, "post-content": {"world"}, "tag-name": {"nope"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = cl.post(userURL(u.ID)+"/posts/new", url.Values{"title": {"hello"}, "post-content": {"world"}, "tag-name": ids(tag.ID, tag.ID+10)})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown tag")

	posts, err := models.PostsOfUser(cl.tx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostEdit(t *testing.T) {
	cl := newClient(t)
	u := cl.user("Oz", "Kong")
	a := cl.tag("alpha")
	b := cl.tag("beta")
	p, err := models.CreatePost(cl.tx, u.ID, "hello", "world", []uint64{a.ID})
	require.NoError(t, err)

	w := cl.get(postURL(p.ID) + "/edit")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Edit Post")
	assert.Contains(t, w.Body.String(), `value="`+strconv.FormatUint(a.ID, 10)+`" id="tag-`+strconv.FormatUint(a.ID, 10)+`" checked`)

	assert.Contains(t, w.Body.String(), `name="tags-shown"`)

	w = cl.post(postURL(p.ID)+"/edit", url.Values{"title": {"bye"}, "post-content": {"moon"}, "tags-shown": {"true"}, "tag-name": ids(b.ID)})
	w = cl.follow(w, postURL(p.ID))
	assert.Contains(t, w.Body.String(), "bye")
	assert.Contains(t, w.Body.String(), "moon")

	tagIDs, err := models.PostTagIDs(cl.tx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{b.ID}, tagIDs)

	// A form without the tag checkboxes keeps the current tags
	w = cl.post(postURL(p.ID)+"/edit", url.Values{"title": {"bye again"}, "post-content": {"moon"}})
	assert.Equal(t, http.StatusFound, w.Code)
	tagIDs, err = models.PostTagIDs(cl.tx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{b.ID}, tagIDs)

	// Unchecking everything removes all tags
	w = cl.post(postURL(p.ID)+"/edit", url.Values{"title": {"bye"}, "post-content": {"moon"}, "tags-shown": {"true"}})
	assert.Equal(t, http.StatusFound, w.Code)
	tagIDs, err = models.PostTagIDs(cl.tx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, tagIDs)

	w = cl.post(postURL(p.ID)+"/edit", url.Values{"title": {""}, "post-content": {"moon"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostDelete(t *testing.T) {
	cl := newClient(t)
	u := cl.user("Oz", "Kong")
	tag := cl.tag("fun")
	p, err := models.CreatePost(cl.tx, u.ID, "hello", "world", []uint64{tag.ID})
	require.NoError(t, err)

	w := cl.post(postURL(p.ID)+"/delete", nil)
	w = cl.follow(w, userURL(u.ID))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No posts yet.")

	assert.Equal(t, http.StatusNotFound, cl.get(postURL(p.ID)).Code)
	posts, err := models.PostsOfTag(cl.tx, tag.ID)
	require.NoError(t, err)
	assert.Empty(t, posts)
}
