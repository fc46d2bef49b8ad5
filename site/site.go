// Package site serves the public company content: services, portfolio and
// the blog stats shown on the admin dashboard.
package site

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sunnie/store"
)

type SiteModule struct {
	store store.Storage
}

func NewSiteModule(storage store.Storage) *SiteModule {
	return &SiteModule{store: storage}
}

func (s *SiteModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/services", s.listServices)
	router.GET("/api/portfolio", s.listPortfolio)
	router.GET("/api/stats", s.stats)
}

func (s *SiteModule) listServices(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListServices())
}

func (s *SiteModule) listPortfolio(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListPortfolio())
}

// stats aggregates over every post, drafts included: posts created in the
// current calendar month, and views/seoScore averages rounded to the nearest
// integer (zero when no posts exist).
func (s *SiteModule) stats(c *gin.Context) {
	posts := s.store.ListBlogPosts(nil)

	now := time.Now()
	monthlyPosts := 0
	totalViews := 0
	totalSeoScore := 0

	for _, post := range posts {
		if post.CreatedAt.Month() == now.Month() && post.CreatedAt.Year() == now.Year() {
			monthlyPosts++
		}
		totalViews += post.Views
		totalSeoScore += post.SeoScore
	}

	avgViews := 0
	avgSeoScore := 0
	if len(posts) > 0 {
		avgViews = int(math.Round(float64(totalViews) / float64(len(posts))))
		avgSeoScore = int(math.Round(float64(totalSeoScore) / float64(len(posts))))
	}

	c.JSON(http.StatusOK, gin.H{
		"totalPosts":   len(posts),
		"monthlyPosts": monthlyPosts,
		"avgViews":     avgViews,
		"avgSeoScore":  avgSeoScore,
	})
}
