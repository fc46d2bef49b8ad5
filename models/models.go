package models

import "time"

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`    // never exposed in API responses
	Role     string `json:"role"` // "admin" or "user"
}

type BlogPost struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Excerpt      string    `json:"excerpt"`
	SeoKeywords  []string  `json:"seoKeywords"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	Platform     string    `json:"platform"`     // basic, naver, tistory
	CustomImages []string  `json:"customImages"` // URLs or data URIs of uploaded images
	Status       string    `json:"status"`       // draft, published
	Views        int       `json:"views"`
	Likes        int       `json:"likes"`
	SeoScore     int       `json:"seoScore"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type SkinAnalysis struct {
	ID              int       `json:"id"`
	ImageURL        string    `json:"imageUrl"`
	OverallScore    int       `json:"overallScore"`
	MoistureLevel   int       `json:"moistureLevel"`
	OilLevel        int       `json:"oilLevel"`
	TroubleLevel    int       `json:"troubleLevel"`
	Recommendations []string  `json:"recommendations"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Service struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Features    []string  `json:"features"`
	IsActive    bool      `json:"isActive"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Portfolio struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     *string   `json:"imageUrl"`
	ProjectURL   *string   `json:"projectUrl"`
	Technologies []string  `json:"technologies"`
	Category     string    `json:"category"` // web-development, ai-solutions, marketing, etc.
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

type InsertUser struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user"`
}

type InsertBlogPost struct {
	Title        string   `json:"title" binding:"required"`
	Content      string   `json:"content" binding:"required"`
	Excerpt      string   `json:"excerpt" binding:"required"`
	SeoKeywords  []string `json:"seoKeywords" binding:"required"`
	ThumbnailURL *string  `json:"thumbnailUrl"`
	Platform     string   `json:"platform" binding:"omitempty,oneof=basic naver tistory"`
	CustomImages []string `json:"customImages"`
	Status       string   `json:"status" binding:"omitempty,oneof=draft published"`
	Views        int      `json:"views"`
	Likes        int      `json:"likes"`
	SeoScore     int      `json:"seoScore" binding:"omitempty,min=0,max=100"`
}

// UpdateBlogPost is a partial update: nil fields are left untouched.
type UpdateBlogPost struct {
	Title        *string   `json:"title"`
	Content      *string   `json:"content"`
	Excerpt      *string   `json:"excerpt"`
	SeoKeywords  *[]string `json:"seoKeywords"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	Platform     *string   `json:"platform" binding:"omitempty,oneof=basic naver tistory"`
	CustomImages *[]string `json:"customImages"`
	Status       *string   `json:"status" binding:"omitempty,oneof=draft published"`
	Views        *int      `json:"views"`
	Likes        *int      `json:"likes"`
	SeoScore     *int      `json:"seoScore" binding:"omitempty,min=0,max=100"`
}

type InsertSkinAnalysis struct {
	ImageURL        string   `json:"imageUrl" binding:"required"`
	OverallScore    int      `json:"overallScore"`
	MoistureLevel   int      `json:"moistureLevel"`
	OilLevel        int      `json:"oilLevel"`
	TroubleLevel    int      `json:"troubleLevel"`
	Recommendations []string `json:"recommendations"`
}

type InsertService struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Icon        string   `json:"icon" binding:"required"`
	Features    []string `json:"features"`
	IsActive    *bool    `json:"isActive"`
	Order       int      `json:"order"`
}

type UpdateService struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	Features    *[]string `json:"features"`
	IsActive    *bool     `json:"isActive"`
	Order       *int      `json:"order"`
}

type InsertPortfolio struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	ImageURL     *string  `json:"imageUrl"`
	ProjectURL   *string  `json:"projectUrl"`
	Technologies []string `json:"technologies"`
	Category     string   `json:"category" binding:"required"`
	IsActive     *bool    `json:"isActive"`
}

type UpdatePortfolio struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	ImageURL     *string   `json:"imageUrl"`
	ProjectURL   *string   `json:"projectUrl"`
	Technologies *[]string `json:"technologies"`
	Category     *string   `json:"category"`
	IsActive     *bool     `json:"isActive"`
}

// BlogContentRequest is the manual input the admin pastes into the blog generator.
type BlogContentRequest struct {
	ContentOutline    string   `json:"contentOutline" binding:"required,min=50"`
	BeforeAfterImages []string `json:"beforeAfterImages" binding:"required,min=1"`
	ProductImages     []string `json:"productImages"`
	OverviewImages    []string `json:"overviewImages"`
	TargetKeywords    []string `json:"targetKeywords"`
	SkinType          string   `json:"skinType" binding:"omitempty,oneof=dry oily combination sensitive normal"`
	TreatmentType     string   `json:"treatmentType" binding:"omitempty,oneof=acne aging pigmentation hydration pore sensitive"`
}
