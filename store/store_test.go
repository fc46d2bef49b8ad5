package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sunnie/models"
)

func newEmptyStore() *MemStore {
	// NewMemStore seeds demo content; tests that count records start clean
	return &MemStore{
		users:              make(map[int]models.User),
		blogPosts:          make(map[int]models.BlogPost),
		skinAnalyses:       make(map[int]models.SkinAnalysis),
		services:           make(map[int]models.Service),
		portfolio:          make(map[int]models.Portfolio),
		nextUserID:         1,
		nextBlogPostID:     1,
		nextSkinAnalysisID: 1,
		nextServiceID:      1,
		nextPortfolioID:    1,
	}
}

func insertPost(status string) models.InsertBlogPost {
	return models.InsertBlogPost{
		Title:       "Test Post",
		Content:     "Test content",
		Excerpt:     "Test excerpt",
		SeoKeywords: []string{"keyword"},
		Status:      status,
	}
}

func TestCreateBlogPost_Defaults(t *testing.T) {
	s := newEmptyStore()

	post := s.CreateBlogPost(models.InsertBlogPost{
		Title:       "Defaults",
		Content:     "Content",
		Excerpt:     "Excerpt",
		SeoKeywords: nil,
	})

	assert.Equal(t, 1, post.ID)
	assert.Equal(t, "draft", post.Status)
	assert.Equal(t, "basic", post.Platform)
	assert.NotNil(t, post.SeoKeywords)
	assert.NotNil(t, post.CustomImages)
	assert.Equal(t, 0, post.Views)
	assert.Equal(t, 0, post.Likes)
	assert.Equal(t, 0, post.SeoScore)
	assert.Nil(t, post.ThumbnailURL)
	assert.False(t, post.UpdatedAt.Before(post.CreatedAt))
}

func TestCreateBlogPost_IDsAreMonotonic(t *testing.T) {
	s := newEmptyStore()

	first := s.CreateBlogPost(insertPost("draft"))
	second := s.CreateBlogPost(insertPost("draft"))
	s.DeleteBlogPost(second.ID)
	third := s.CreateBlogPost(insertPost("draft"))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 3, third.ID) // deleted ids are never reused
}

func TestListBlogPosts_Filtering(t *testing.T) {
	s := newEmptyStore()

	s.CreateBlogPost(insertPost("draft"))
	s.CreateBlogPost(insertPost("published"))
	s.CreateBlogPost(insertPost("published"))

	published := true
	drafts := false

	assert.Len(t, s.ListBlogPosts(&published), 2)
	assert.Len(t, s.ListBlogPosts(&drafts), 1)
	assert.Len(t, s.ListBlogPosts(nil), 3)

	for _, post := range s.ListBlogPosts(&published) {
		assert.Equal(t, "published", post.Status)
	}
	for _, post := range s.ListBlogPosts(&drafts) {
		assert.Equal(t, "draft", post.Status)
	}
}

func TestListBlogPosts_NewestFirst(t *testing.T) {
	s := newEmptyStore()

	for i := 0; i < 5; i++ {
		s.CreateBlogPost(insertPost("published"))
	}

	posts := s.ListBlogPosts(nil)
	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i-1].CreatedAt.Before(posts[i].CreatedAt))
	}
	assert.Equal(t, 5, posts[0].ID)
	assert.Equal(t, 1, posts[len(posts)-1].ID)
}

func TestUpdateBlogPost(t *testing.T) {
	s := newEmptyStore()
	post := s.CreateBlogPost(insertPost("draft"))

	title := "Updated Title"
	status := "published"
	updated, ok := s.UpdateBlogPost(post.ID, models.UpdateBlogPost{
		Title:  &title,
		Status: &status,
	})

	assert.True(t, ok)
	assert.Equal(t, "Updated Title", updated.Title)
	assert.Equal(t, "published", updated.Status)
	assert.Equal(t, post.Content, updated.Content)
	assert.Equal(t, post.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(post.UpdatedAt))
}

func TestUpdateBlogPost_EmptyPatchRefreshesUpdatedAt(t *testing.T) {
	s := newEmptyStore()
	post := s.CreateBlogPost(insertPost("draft"))

	time.Sleep(time.Millisecond)
	updated, ok := s.UpdateBlogPost(post.ID, models.UpdateBlogPost{})

	assert.True(t, ok)
	assert.True(t, updated.UpdatedAt.After(post.UpdatedAt))
}

func TestUpdateBlogPost_NotFound(t *testing.T) {
	s := newEmptyStore()

	_, ok := s.UpdateBlogPost(42, models.UpdateBlogPost{})
	assert.False(t, ok)
}

func TestDeleteBlogPost_Idempotent(t *testing.T) {
	s := newEmptyStore()
	post := s.CreateBlogPost(insertPost("draft"))

	assert.True(t, s.DeleteBlogPost(post.ID))
	assert.False(t, s.DeleteBlogPost(post.ID))
	assert.False(t, s.DeleteBlogPost(999))

	_, ok := s.GetBlogPost(post.ID)
	assert.False(t, ok)
}

func TestCreateUser_DefaultsRole(t *testing.T) {
	s := newEmptyStore()

	user := s.CreateUser(models.InsertUser{Username: "sunnie", Password: "secret"})
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "user", user.Role)

	admin := s.CreateUser(models.InsertUser{Username: "boss", Password: "secret", Role: "admin"})
	assert.Equal(t, "admin", admin.Role)

	found, ok := s.GetUserByUsername("sunnie")
	assert.True(t, ok)
	assert.Equal(t, user.ID, found.ID)

	_, ok = s.GetUserByUsername("nobody")
	assert.False(t, ok)
}

func TestCreateSkinAnalysis(t *testing.T) {
	s := newEmptyStore()

	analysis := s.CreateSkinAnalysis(models.InsertSkinAnalysis{
		ImageURL:      "data:image/jpeg;base64,abc",
		OverallScore:  80,
		MoistureLevel: 60,
		OilLevel:      50,
		TroubleLevel:  20,
	})

	assert.Equal(t, 1, analysis.ID)
	assert.NotNil(t, analysis.Recommendations)
	assert.False(t, analysis.CreatedAt.IsZero())

	second := s.CreateSkinAnalysis(models.InsertSkinAnalysis{ImageURL: "data:image/png;base64,def"})
	analyses := s.ListSkinAnalyses()
	assert.Len(t, analyses, 2)
	assert.Equal(t, second.ID, analyses[0].ID) // newest first

	found, ok := s.GetSkinAnalysis(analysis.ID)
	assert.True(t, ok)
	assert.Equal(t, analysis.ImageURL, found.ImageURL)
}

func TestListServices_ActiveOrdered(t *testing.T) {
	s := newEmptyStore()

	inactive := false
	s.CreateService(models.InsertService{Title: "B", Description: "d", Icon: "i", Order: 2})
	s.CreateService(models.InsertService{Title: "A", Description: "d", Icon: "i", Order: 1})
	s.CreateService(models.InsertService{Title: "Hidden", Description: "d", Icon: "i", IsActive: &inactive})

	services := s.ListServices()
	assert.Len(t, services, 2)
	assert.Equal(t, "A", services[0].Title)
	assert.Equal(t, "B", services[1].Title)
}

func TestUpdateService(t *testing.T) {
	s := newEmptyStore()
	service := s.CreateService(models.InsertService{Title: "Old", Description: "d", Icon: "i"})

	title := "New"
	inactive := false
	updated, ok := s.UpdateService(service.ID, models.UpdateService{Title: &title, IsActive: &inactive})

	assert.True(t, ok)
	assert.Equal(t, "New", updated.Title)
	assert.False(t, updated.IsActive)
	assert.Empty(t, s.ListServices())

	_, ok = s.UpdateService(99, models.UpdateService{})
	assert.False(t, ok)
}

func TestListPortfolio_ActiveNewestFirst(t *testing.T) {
	s := newEmptyStore()

	inactive := false
	s.CreatePortfolio(models.InsertPortfolio{Title: "First", Description: "d", Category: "c"})
	s.CreatePortfolio(models.InsertPortfolio{Title: "Second", Description: "d", Category: "c"})
	s.CreatePortfolio(models.InsertPortfolio{Title: "Hidden", Description: "d", Category: "c", IsActive: &inactive})

	items := s.ListPortfolio()
	assert.Len(t, items, 2)
	assert.Equal(t, "Second", items[0].Title)
	assert.Equal(t, "First", items[1].Title)
}

func TestNewMemStore_SeedsDemoContent(t *testing.T) {
	s := NewMemStore()

	services := s.ListServices()
	assert.Len(t, services, 3)
	assert.Equal(t, "AI 피부 진단", services[0].Title)

	assert.Len(t, s.ListPortfolio(), 2)
	assert.Empty(t, s.ListBlogPosts(nil))
}
