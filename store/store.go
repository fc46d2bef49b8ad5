// Package store holds every record the service knows about for the lifetime
// of the process. Absence is reported as a boolean, never as an error.
package store

import "sunnie/models"

// Storage carries the full record contract, including operations without an
// HTTP surface yet (users, single skin analysis lookup, service and portfolio
// updates); a later admin surface builds on the same interface.
type Storage interface {
	// User methods
	GetUser(id int) (models.User, bool)
	GetUserByUsername(username string) (models.User, bool)
	CreateUser(insert models.InsertUser) models.User

	// Blog post methods. ListBlogPosts filters by publication state when
	// published is non-nil: true keeps published posts, false keeps drafts.
	ListBlogPosts(published *bool) []models.BlogPost
	GetBlogPost(id int) (models.BlogPost, bool)
	CreateBlogPost(insert models.InsertBlogPost) models.BlogPost
	UpdateBlogPost(id int, updates models.UpdateBlogPost) (models.BlogPost, bool)
	DeleteBlogPost(id int) bool

	// Skin analysis methods
	CreateSkinAnalysis(insert models.InsertSkinAnalysis) models.SkinAnalysis
	ListSkinAnalyses() []models.SkinAnalysis
	GetSkinAnalysis(id int) (models.SkinAnalysis, bool)

	// Service methods
	ListServices() []models.Service
	CreateService(insert models.InsertService) models.Service
	UpdateService(id int, updates models.UpdateService) (models.Service, bool)

	// Portfolio methods
	ListPortfolio() []models.Portfolio
	CreatePortfolio(insert models.InsertPortfolio) models.Portfolio
	UpdatePortfolio(id int, updates models.UpdatePortfolio) (models.Portfolio, bool)
}
