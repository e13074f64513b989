package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postJSON struct {
	ID        string `json:"id"`
	AuthorID  string `json:"author_id"`
	Title     string `json:"title"`
	Likes     int    `json:"likes"`
	Liked     bool   `json:"liked"`
	CanDelete bool   `json:"can_delete"`
}

func listPosts(t *testing.T, s *testServer, token string) []postJSON {
	t.Helper()
	rec := s.do(http.MethodGet, "/api/community/posts", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Posts []postJSON `json:"posts"`
	}
	decode(t, rec, &out)
	return out.Posts
}

func TestCommunity_LikesAreIdempotent(t *testing.T) {
	s := newServer(t, nil)
	alice := s.register("alice@example.com")
	bob := s.register("bob@example.com")

	id := s.create("/api/community/posts", alice, map[string]string{"title": "Study group?", "content": "Anyone for calculus?"})

	for i := 0; i < 3; i++ {
		rec := s.do(http.MethodPost, "/api/community/posts/"+id+"/like", bob, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	posts := listPosts(t, s, bob)
	require.Len(t, posts, 1)
	assert.Equal(t, 1, posts[0].Likes)
	assert.True(t, posts[0].Liked)
	assert.False(t, posts[0].CanDelete)

	posts = listPosts(t, s, alice)
	assert.False(t, posts[0].Liked)
	assert.True(t, posts[0].CanDelete)

	rec := s.do(http.MethodDelete, "/api/community/posts/"+id+"/like", bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(http.MethodDelete, "/api/community/posts/"+id+"/like", bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	posts = listPosts(t, s, bob)
	assert.Equal(t, 0, posts[0].Likes)
	assert.False(t, posts[0].Liked)

	rec = s.do(http.MethodPost, "/api/community/posts/missing/like", bob, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCommunity_Comments(t *testing.T) {
	s := newServer(t, nil)
	alice := s.register("alice@example.com")
	bob := s.register("bob@example.com")

	postID := s.create("/api/community/posts", alice, map[string]string{"title": "Tips", "content": "Share yours"})
	first := s.create("/api/community/posts/"+postID+"/comments", bob, map[string]string{"content": "  Pomodoro  "})
	s.create("/api/community/posts/"+postID+"/comments", alice, map[string]string{"content": "Flashcards"})

	rec := s.do(http.MethodGet, "/api/community/posts/"+postID+"/comments", alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Comments []struct {
			ID        string `json:"id"`
			Content   string `json:"content"`
			CanDelete bool   `json:"can_delete"`
		} `json:"comments"`
	}
	decode(t, rec, &out)
	require.Len(t, out.Comments, 2)
	assert.Equal(t, first, out.Comments[0].ID)
	assert.Equal(t, "Pomodoro", out.Comments[0].Content)
	assert.False(t, out.Comments[0].CanDelete)
	assert.True(t, out.Comments[1].CanDelete)

	rec = s.do(http.MethodPost, "/api/community/posts/"+postID+"/comments", bob, map[string]string{"content": "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/community/posts/missing/comments", bob, map[string]string{"content": "hi"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodDelete, "/api/community/posts/"+postID+"/comments/"+first, alice, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodDelete, "/api/community/posts/"+postID+"/comments/"+first, bob, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCommunity_DeletePost(t *testing.T) {
	s := newServer(t, nil)
	alice := s.register("alice@example.com")
	bob := s.register("bob@example.com")

	id := s.create("/api/community/posts", alice, map[string]string{"title": "t", "content": "c"})
	require.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/community/posts/"+id+"/like", bob, nil).Code)

	rec := s.do(http.MethodDelete, "/api/community/posts/"+id, bob, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodDelete, "/api/community/posts/"+id, alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, listPosts(t, s, alice))

	rec = s.do(http.MethodDelete, "/api/community/posts/"+id, alice, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPost, "/api/community/posts", alice, map[string]string{"title": "only title"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
