package blog

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"sunnie/ai"
	"sunnie/models"
	"sunnie/store"
)

// Generator produces the three platform drafts from a content outline.
type Generator interface {
	GenerateMultiPlatformBlog(ctx context.Context, req models.BlogContentRequest) (*ai.MultiPlatformBlog, error)
}

type BlogModule struct {
	store     store.Storage
	generator Generator
	log       zerolog.Logger
}

// markdown renderer configured with Goldmark and useful extensions
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,     // tables, strikethrough, task lists, autolinks (GFM set)
		extension.Linkify, // linkify raw URLs
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithUnsafe(), // allow raw HTML passthrough in Markdown
	),
)

func NewBlogModule(storage store.Storage, generator Generator, log zerolog.Logger) *BlogModule {
	return &BlogModule{
		store:     storage,
		generator: generator,
		log:       log.With().Str("module", "blog").Logger(),
	}
}

func (b *BlogModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/blog-posts", b.listPublished)
	router.GET("/api/blog-posts/:id", b.getPost)
	router.POST("/api/blog-posts", b.createPost)
	router.PATCH("/api/blog-posts/:id", b.updatePost)
	router.DELETE("/api/blog-posts/:id", b.deletePost)

	adminGroup := router.Group("/api/admin")
	{
		adminGroup.GET("/blog-posts", b.listAll)
		adminGroup.POST("/upload-images", b.uploadImages)
		adminGroup.POST("/generate-blog", b.generateBlog)
	}
}

// Public API - published posts only
func (b *BlogModule) listPublished(c *gin.Context) {
	published := true
	c.JSON(http.StatusOK, b.store.ListBlogPosts(&published))
}

// Admin API - every post, drafts included
func (b *BlogModule) listAll(c *gin.Context) {
	c.JSON(http.StatusOK, b.store.ListBlogPosts(nil))
}

// postView adds the rendered body for the public detail page.
type postView struct {
	models.BlogPost
	ContentHTML string `json:"contentHtml"`
}

func (b *BlogModule) getPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "블로그 포스트를 찾을 수 없습니다."})
		return
	}

	post, ok := b.store.GetBlogPost(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "블로그 포스트를 찾을 수 없습니다."})
		return
	}

	c.JSON(http.StatusOK, postView{
		BlogPost:    post,
		ContentHTML: renderMarkdown(post.Content),
	})
}

func (b *BlogModule) createPost(c *gin.Context) {
	var insert models.InsertBlogPost
	if err := c.ShouldBindJSON(&insert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "잘못된 데이터입니다."})
		return
	}

	post := b.store.CreateBlogPost(insert)
	c.JSON(http.StatusCreated, post)
}

func (b *BlogModule) updatePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "블로그 포스트를 찾을 수 없습니다."})
		return
	}

	var updates models.UpdateBlogPost
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "잘못된 데이터입니다."})
		return
	}

	post, ok := b.store.UpdateBlogPost(id, updates)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "블로그 포스트를 찾을 수 없습니다."})
		return
	}

	c.JSON(http.StatusOK, post)
}

func (b *BlogModule) deletePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "블로그 포스트를 찾을 수 없습니다."})
		return
	}

	if !b.store.DeleteBlogPost(id) {
		c.JSON(http.StatusNotFound, gin.H{"message": "블로그 포스트를 찾을 수 없습니다."})
		return
	}

	c.Status(http.StatusNoContent)
}

// basicSection is the basic variant plus the post persisted from it.
type basicSection struct {
	BlogPost models.BlogPost `json:"blogPost"`
	ai.PlatformBlog
}

// Admin API - multi-platform blog generation with manual input
func (b *BlogModule) generateBlog(c *gin.Context) {
	var req models.BlogContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "입력 데이터가 올바르지 않습니다.",
			"errors":  fieldErrors(err),
		})
		return
	}

	result, err := b.generator.GenerateMultiPlatformBlog(c.Request.Context(), req)
	if err != nil {
		b.log.Error().Err(err).Msg("generate blog")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "블로그 생성에 실패했습니다. 입력 내용을 확인해주세요.",
		})
		return
	}

	// the basic variant is published to the homepage with every uploaded image
	images := make([]string, 0, len(req.BeforeAfterImages)+len(req.ProductImages)+len(req.OverviewImages))
	images = append(images, req.BeforeAfterImages...)
	images = append(images, req.ProductImages...)
	images = append(images, req.OverviewImages...)

	post := b.store.CreateBlogPost(models.InsertBlogPost{
		Title:        result.Basic.Title,
		Content:      result.Basic.Content,
		Excerpt:      result.Basic.Excerpt,
		SeoKeywords:  result.Basic.Keywords,
		CustomImages: images,
		Status:       "published",
		SeoScore:     result.Basic.SeoScore,
		Platform:     "basic",
	})

	c.JSON(http.StatusOK, gin.H{
		"basic":   basicSection{BlogPost: post, PlatformBlog: result.Basic},
		"naver":   result.Naver,
		"tistory": result.Tistory,
	})
}

func renderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		// keep the page alive on a broken body
		return content
	}
	return buf.String()
}

// fieldErrors itemizes binding failures per field when the validator
// produced them.
func fieldErrors(err error) []gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, gin.H{"field": fe.Field(), "rule": fe.Tag()})
		}
		return out
	}
	return []gin.H{{"message": err.Error()}}
}
