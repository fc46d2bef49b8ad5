// Package skincare exposes the AI skin analysis form: one photo in, four
// scores and a recommendation list out, every result kept as history.
package skincare

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"sunnie/ai"
	"sunnie/models"
	"sunnie/store"
)

const maxUploadSize = 10 << 20 // 10MB

// Analyzer scores a skin photo through the vision completion service.
type Analyzer interface {
	AnalyzeSkinImage(ctx context.Context, base64Image string) (*ai.SkinAnalysisResult, error)
}

type SkinModule struct {
	store    store.Storage
	analyzer Analyzer
	log      zerolog.Logger
}

func NewSkinModule(storage store.Storage, analyzer Analyzer, log zerolog.Logger) *SkinModule {
	return &SkinModule{
		store:    storage,
		analyzer: analyzer,
		log:      log.With().Str("module", "skincare").Logger(),
	}
}

func (s *SkinModule) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/analyze-skin", s.analyzeSkin)
	router.GET("/api/skin-analyses", s.listAnalyses)
}

func (s *SkinModule) analyzeSkin(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "이미지를 업로드해주세요."})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "이미지 파일만 업로드 가능합니다."})
		return
	}
	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "이미지 크기는 10MB 이하여야 합니다."})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "피부 분석에 실패했습니다. 다시 시도해주세요."})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "피부 분석에 실패했습니다. 다시 시도해주세요."})
		return
	}

	base64Image := base64.StdEncoding.EncodeToString(data)

	analysis, err := s.analyzer.AnalyzeSkinImage(c.Request.Context(), base64Image)
	if err != nil {
		s.log.Error().Err(err).Msg("analyze skin")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "피부 분석에 실패했습니다. 다시 시도해주세요."})
		return
	}

	saved := s.store.CreateSkinAnalysis(models.InsertSkinAnalysis{
		ImageURL:        "data:" + contentType + ";base64," + base64Image,
		OverallScore:    analysis.OverallScore,
		MoistureLevel:   analysis.MoistureLevel,
		OilLevel:        analysis.OilLevel,
		TroubleLevel:    analysis.TroubleLevel,
		Recommendations: analysis.Recommendations,
	})

	c.JSON(http.StatusOK, saved)
}

func (s *SkinModule) listAnalyses(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListSkinAnalyses())
}
