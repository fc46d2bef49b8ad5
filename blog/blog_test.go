package blog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"sunnie/ai"
	"sunnie/models"
	"sunnie/store"
)

type stubGenerator struct {
	result *ai.MultiPlatformBlog
	err    error
	calls  int
}

func (s *stubGenerator) GenerateMultiPlatformBlog(ctx context.Context, req models.BlogContentRequest) (*ai.MultiPlatformBlog, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func fixedResult() *ai.MultiPlatformBlog {
	variant := ai.PlatformBlog{
		Title:    "T",
		Content:  "C",
		Excerpt:  "E",
		Keywords: []string{"k"},
		SeoScore: 95,
	}
	naver := variant
	naver.Tags = []string{"tag"}
	tistory := variant
	tistory.Categories = []string{"category"}
	return &ai.MultiPlatformBlog{Basic: variant, Naver: naver, Tistory: tistory}
}

func setupTestRouter(storage store.Storage, generator Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	module := NewBlogModule(storage, generator, zerolog.Nop())
	module.RegisterRoutes(router)
	return router
}

func jsonRequest(method, path string, body any) *http.Request {
	data, _ := json.Marshal(body)
	req, _ := http.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func createTestPost(s store.Storage, status string) models.BlogPost {
	return s.CreateBlogPost(models.InsertBlogPost{
		Title:       "Test Post",
		Content:     "## Heading\n\nSome **bold** text",
		Excerpt:     "Excerpt",
		SeoKeywords: []string{"keyword"},
		Status:      status,
	})
}

func TestListPublished_FiltersDrafts(t *testing.T) {
	s := store.NewMemStore()
	router := setupTestRouter(s, &stubGenerator{})

	createTestPost(s, "draft")
	createTestPost(s, "published")

	req, _ := http.NewRequest("GET", "/api/blog-posts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var posts []models.BlogPost
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	assert.Len(t, posts, 1)
	assert.Equal(t, "published", posts[0].Status)
}

func TestListAll_IncludesDrafts(t *testing.T) {
	s := store.NewMemStore()
	router := setupTestRouter(s, &stubGenerator{})

	createTestPost(s, "draft")
	createTestPost(s, "published")

	req, _ := http.NewRequest("GET", "/api/admin/blog-posts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var posts []models.BlogPost
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	assert.Len(t, posts, 2)
}

func TestGetPost_RendersMarkdown(t *testing.T) {
	s := store.NewMemStore()
	router := setupTestRouter(s, &stubGenerator{})
	post := createTestPost(s, "published")

	req, _ := http.NewRequest("GET", "/api/blog-posts/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var view map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, post.Title, view["title"])
	assert.Contains(t, view["contentHtml"], "<h2")
	assert.Contains(t, view["contentHtml"], "<strong>bold</strong>")
}

func TestGetPost_NotFound(t *testing.T) {
	router := setupTestRouter(store.NewMemStore(), &stubGenerator{})

	for _, path := range []string{"/api/blog-posts/42", "/api/blog-posts/abc"} {
		req, _ := http.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	}
}

func TestCreatePost(t *testing.T) {
	s := store.NewMemStore()
	router := setupTestRouter(s, &stubGenerator{})

	req := jsonRequest("POST", "/api/blog-posts", models.InsertBlogPost{
		Title:       "New Post",
		Content:     "Content",
		Excerpt:     "Excerpt",
		SeoKeywords: []string{"seo"},
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var post models.BlogPost
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.Equal(t, "New Post", post.Title)
	assert.Equal(t, "draft", post.Status)

	_, ok := s.GetBlogPost(post.ID)
	assert.True(t, ok)
}

func TestCreatePost_Invalid(t *testing.T) {
	router := setupTestRouter(store.NewMemStore(), &stubGenerator{})

	req := jsonRequest("POST", "/api/blog-posts", gin.H{"title": "only a title"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "잘못된 데이터입니다")
}

func TestUpdatePost(t *testing.T) {
	s := store.NewMemStore()
	router := setupTestRouter(s, &stubGenerator{})
	post := createTestPost(s, "draft")

	req := jsonRequest("PATCH", "/api/blog-posts/1", gin.H{"status": "published"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	updated, _ := s.GetBlogPost(post.ID)
	assert.Equal(t, "published", updated.Status)
	assert.False(t, updated.UpdatedAt.Before(post.UpdatedAt))
}

func TestUpdatePost_NotFound(t *testing.T) {
	router := setupTestRouter(store.NewMemStore(), &stubGenerator{})

	req := jsonRequest("PATCH", "/api/blog-posts/99", gin.H{"status": "published"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdatePost_InvalidStatus(t *testing.T) {
	s := store.NewMemStore()
	router := setupTestRouter(s, &stubGenerator{})
	createTestPost(s, "draft")

	req := jsonRequest("PATCH", "/api/blog-posts/1", gin.H{"status": "archived"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeletePost(t *testing.T) {
	s := store.NewMemStore()
	router := setupTestRouter(s, &stubGenerator{})
	createTestPost(s, "draft")

	req, _ := http.NewRequest("DELETE", "/api/blog-posts/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	// second delete finds nothing
	req, _ = http.NewRequest("DELETE", "/api/blog-posts/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateBlog_PersistsPublishedPost(t *testing.T) {
	s := store.NewMemStore()
	stub := &stubGenerator{result: fixedResult()}
	router := setupTestRouter(s, stub)

	outline := strings.Repeat("순한 클렌징과 보습 중심의 저자극 루틴 소개 ", 4)
	req := jsonRequest("POST", "/api/admin/generate-blog", models.BlogContentRequest{
		ContentOutline:    outline,
		BeforeAfterImages: []string{"img1.png"},
		ProductImages:     []string{"img2.png"},
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, stub.calls)

	var body map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "basic")
	assert.Contains(t, body, "naver")
	assert.Contains(t, body, "tistory")

	var basic struct {
		BlogPost models.BlogPost `json:"blogPost"`
		Title    string          `json:"title"`
	}
	assert.NoError(t, json.Unmarshal(body["basic"], &basic))
	assert.Equal(t, "T", basic.Title)

	saved, ok := s.GetBlogPost(basic.BlogPost.ID)
	assert.True(t, ok)
	assert.Equal(t, "published", saved.Status)
	assert.Equal(t, "basic", saved.Platform)
	assert.Equal(t, 95, saved.SeoScore)
	assert.Equal(t, []string{"img1.png", "img2.png"}, saved.CustomImages)
}

func TestGenerateBlog_ValidationError(t *testing.T) {
	stub := &stubGenerator{result: fixedResult()}
	router := setupTestRouter(store.NewMemStore(), stub)

	req := jsonRequest("POST", "/api/admin/generate-blog", models.BlogContentRequest{
		ContentOutline:    "too short",
		BeforeAfterImages: []string{"img1.png"},
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "errors")
	assert.Equal(t, 0, stub.calls)
}

func TestGenerateBlog_UpstreamFailure(t *testing.T) {
	s := store.NewMemStore()
	stub := &stubGenerator{err: errors.New("boom")}
	router := setupTestRouter(s, stub)

	outline := strings.Repeat("순한 클렌징과 보습 중심의 저자극 루틴 소개 ", 4)
	req := jsonRequest("POST", "/api/admin/generate-blog", models.BlogContentRequest{
		ContentOutline:    outline,
		BeforeAfterImages: []string{"img1.png"},
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, s.ListBlogPosts(nil))
}
