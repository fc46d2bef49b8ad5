package store

import (
	"sort"
	"sync"
	"time"

	"sunnie/models"
)

// MemStore keeps all five entity maps in memory with per-entity id counters.
// Gin serves requests on separate goroutines, so a lock guards the maps; each
// operation runs to completion before another can observe its writes.
type MemStore struct {
	mu sync.RWMutex

	users        map[int]models.User
	blogPosts    map[int]models.BlogPost
	skinAnalyses map[int]models.SkinAnalysis
	services     map[int]models.Service
	portfolio    map[int]models.Portfolio

	nextUserID         int
	nextBlogPostID     int
	nextSkinAnalysisID int
	nextServiceID      int
	nextPortfolioID    int
}

func NewMemStore() *MemStore {
	s := &MemStore{
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
	s.seedDemoData()
	return s
}

func (s *MemStore) GetUser(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	return user, ok
}

func (s *MemStore) GetUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			return user, true
		}
	}
	return models.User{}, false
}

func (s *MemStore) CreateUser(insert models.InsertUser) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	role := insert.Role
	if role == "" {
		role = "user"
	}

	user := models.User{
		ID:       s.nextUserID,
		Username: insert.Username,
		Password: insert.Password,
		Role:     role,
	}
	s.nextUserID++
	s.users[user.ID] = user
	return user
}

func (s *MemStore) ListBlogPosts(published *bool) []models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]models.BlogPost, 0, len(s.blogPosts))
	for _, post := range s.blogPosts {
		if published != nil {
			want := "draft"
			if *published {
				want = "published"
			}
			if post.Status != want {
				continue
			}
		}
		posts = append(posts, post)
	}

	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})
	return posts
}

func (s *MemStore) GetBlogPost(id int) (models.BlogPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	post, ok := s.blogPosts[id]
	return post, ok
}

func (s *MemStore) CreateBlogPost(insert models.InsertBlogPost) models.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	post := models.BlogPost{
		ID:           s.nextBlogPostID,
		Title:        insert.Title,
		Content:      insert.Content,
		Excerpt:      insert.Excerpt,
		SeoKeywords:  orEmpty(insert.SeoKeywords),
		ThumbnailURL: insert.ThumbnailURL,
		Platform:     orDefault(insert.Platform, "basic"),
		CustomImages: orEmpty(insert.CustomImages),
		Status:       orDefault(insert.Status, "draft"),
		Views:        insert.Views,
		Likes:        insert.Likes,
		SeoScore:     insert.SeoScore,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.nextBlogPostID++
	s.blogPosts[post.ID] = post
	return post
}

func (s *MemStore) UpdateBlogPost(id int, updates models.UpdateBlogPost) (models.BlogPost, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.blogPosts[id]
	if !ok {
		return models.BlogPost{}, false
	}

	if updates.Title != nil {
		post.Title = *updates.Title
	}
	if updates.Content != nil {
		post.Content = *updates.Content
	}
	if updates.Excerpt != nil {
		post.Excerpt = *updates.Excerpt
	}
	if updates.SeoKeywords != nil {
		post.SeoKeywords = orEmpty(*updates.SeoKeywords)
	}
	if updates.ThumbnailURL != nil {
		post.ThumbnailURL = updates.ThumbnailURL
	}
	if updates.Platform != nil {
		post.Platform = *updates.Platform
	}
	if updates.CustomImages != nil {
		post.CustomImages = orEmpty(*updates.CustomImages)
	}
	if updates.Status != nil {
		post.Status = *updates.Status
	}
	if updates.Views != nil {
		post.Views = *updates.Views
	}
	if updates.Likes != nil {
		post.Likes = *updates.Likes
	}
	if updates.SeoScore != nil {
		post.SeoScore = *updates.SeoScore
	}
	// updatedAt moves on every merge, even an empty one
	post.UpdatedAt = time.Now()

	s.blogPosts[id] = post
	return post, true
}

func (s *MemStore) DeleteBlogPost(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blogPosts[id]; !ok {
		return false
	}
	delete(s.blogPosts, id)
	return true
}

func (s *MemStore) CreateSkinAnalysis(insert models.InsertSkinAnalysis) models.SkinAnalysis {
	s.mu.Lock()
	defer s.mu.Unlock()

	analysis := models.SkinAnalysis{
		ID:              s.nextSkinAnalysisID,
		ImageURL:        insert.ImageURL,
		OverallScore:    insert.OverallScore,
		MoistureLevel:   insert.MoistureLevel,
		OilLevel:        insert.OilLevel,
		TroubleLevel:    insert.TroubleLevel,
		Recommendations: orEmpty(insert.Recommendations),
		CreatedAt:       time.Now(),
	}
	s.nextSkinAnalysisID++
	s.skinAnalyses[analysis.ID] = analysis
	return analysis
}

func (s *MemStore) ListSkinAnalyses() []models.SkinAnalysis {
	s.mu.RLock()
	defer s.mu.RUnlock()

	analyses := make([]models.SkinAnalysis, 0, len(s.skinAnalyses))
	for _, analysis := range s.skinAnalyses {
		analyses = append(analyses, analysis)
	}
	sort.Slice(analyses, func(i, j int) bool {
		if !analyses[i].CreatedAt.Equal(analyses[j].CreatedAt) {
			return analyses[i].CreatedAt.After(analyses[j].CreatedAt)
		}
		return analyses[i].ID > analyses[j].ID
	})
	return analyses
}

func (s *MemStore) GetSkinAnalysis(id int) (models.SkinAnalysis, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	analysis, ok := s.skinAnalyses[id]
	return analysis, ok
}

func (s *MemStore) ListServices() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	services := make([]models.Service, 0, len(s.services))
	for _, service := range s.services {
		if service.IsActive {
			services = append(services, service)
		}
	}
	sort.Slice(services, func(i, j int) bool {
		if services[i].Order != services[j].Order {
			return services[i].Order < services[j].Order
		}
		return services[i].ID < services[j].ID
	})
	return services
}

func (s *MemStore) CreateService(insert models.InsertService) models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	isActive := true
	if insert.IsActive != nil {
		isActive = *insert.IsActive
	}

	service := models.Service{
		ID:          s.nextServiceID,
		Title:       insert.Title,
		Description: insert.Description,
		Icon:        insert.Icon,
		Features:    orEmpty(insert.Features),
		IsActive:    isActive,
		Order:       insert.Order,
		CreatedAt:   time.Now(),
	}
	s.nextServiceID++
	s.services[service.ID] = service
	return service
}

func (s *MemStore) UpdateService(id int, updates models.UpdateService) (models.Service, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	service, ok := s.services[id]
	if !ok {
		return models.Service{}, false
	}

	if updates.Title != nil {
		service.Title = *updates.Title
	}
	if updates.Description != nil {
		service.Description = *updates.Description
	}
	if updates.Icon != nil {
		service.Icon = *updates.Icon
	}
	if updates.Features != nil {
		service.Features = orEmpty(*updates.Features)
	}
	if updates.IsActive != nil {
		service.IsActive = *updates.IsActive
	}
	if updates.Order != nil {
		service.Order = *updates.Order
	}

	s.services[id] = service
	return service, true
}

func (s *MemStore) ListPortfolio() []models.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Portfolio, 0, len(s.portfolio))
	for _, item := range s.portfolio {
		if item.IsActive {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	return items
}

func (s *MemStore) CreatePortfolio(insert models.InsertPortfolio) models.Portfolio {
	s.mu.Lock()
	defer s.mu.Unlock()

	isActive := true
	if insert.IsActive != nil {
		isActive = *insert.IsActive
	}

	item := models.Portfolio{
		ID:           s.nextPortfolioID,
		Title:        insert.Title,
		Description:  insert.Description,
		ImageURL:     insert.ImageURL,
		ProjectURL:   insert.ProjectURL,
		Technologies: orEmpty(insert.Technologies),
		Category:     insert.Category,
		IsActive:     isActive,
		CreatedAt:    time.Now(),
	}
	s.nextPortfolioID++
	s.portfolio[item.ID] = item
	return item
}

func (s *MemStore) UpdatePortfolio(id int, updates models.UpdatePortfolio) (models.Portfolio, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.portfolio[id]
	if !ok {
		return models.Portfolio{}, false
	}

	if updates.Title != nil {
		item.Title = *updates.Title
	}
	if updates.Description != nil {
		item.Description = *updates.Description
	}
	if updates.ImageURL != nil {
		item.ImageURL = updates.ImageURL
	}
	if updates.ProjectURL != nil {
		item.ProjectURL = updates.ProjectURL
	}
	if updates.Technologies != nil {
		item.Technologies = orEmpty(*updates.Technologies)
	}
	if updates.Category != nil {
		item.Category = *updates.Category
	}
	if updates.IsActive != nil {
		item.IsActive = *updates.IsActive
	}

	s.portfolio[id] = item
	return item, true
}

// orEmpty keeps list fields JSON-encodable as [] instead of null.
func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
