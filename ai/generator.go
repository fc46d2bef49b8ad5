// Package ai wraps the external completion service: it builds the prompts,
// fans the platform variants out concurrently and normalizes whatever comes
// back into fully populated results.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"sunnie/models"
)

var (
	// ErrGenerationFailed covers every total failure of the three-variant
	// generation: network, auth or an unawaitable response.
	ErrGenerationFailed = errors.New("블로그 생성 중 오류가 발생했습니다")
	// ErrAnalysisFailed covers a failed skin analysis request.
	ErrAnalysisFailed = errors.New("피부 분석 중 오류가 발생했습니다")
)

type PlatformBlog struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt"`
	Keywords   []string `json:"keywords"`
	Tags       []string `json:"tags,omitempty"`
	Categories []string `json:"categories,omitempty"`
	SeoScore   int      `json:"seoScore"`
}

type MultiPlatformBlog struct {
	Basic   PlatformBlog `json:"basic"`
	Naver   PlatformBlog `json:"naver"`
	Tistory PlatformBlog `json:"tistory"`
}

type SkinAnalysisResult struct {
	OverallScore    int      `json:"overallScore"`
	MoistureLevel   int      `json:"moistureLevel"`
	OilLevel        int      `json:"oilLevel"`
	TroubleLevel    int      `json:"troubleLevel"`
	Recommendations []string `json:"recommendations"`
}

type Generator struct {
	client *Client
	model  string
	log    zerolog.Logger
}

func NewGenerator(client *Client, model string, log zerolog.Logger) *Generator {
	if model == "" {
		model = "gpt-4o"
	}
	return &Generator{client: client, model: model, log: log}
}

// GenerateMultiPlatformBlog issues the three platform prompts concurrently and
// waits for all of them; the first failure cancels the rest and fails the
// whole operation. Each returned payload is merged field-by-field with the
// documented fallbacks, so the result is always fully populated.
func (g *Generator) GenerateMultiPlatformBlog(ctx context.Context, req models.BlogContentRequest) (*MultiPlatformBlog, error) {
	requests := []ChatCompletionRequest{
		{
			Model: g.model,
			Messages: []Message{
				{Role: "system", Content: basicSystemPrompt},
				{Role: "user", Content: basicPrompt(req)},
			},
			ResponseFormat: &ResponseFormat{Type: "json_object"},
			Temperature:    0.7,
			MaxTokens:      3000,
		},
		{
			Model: g.model,
			Messages: []Message{
				{Role: "system", Content: naverSystemPrompt},
				{Role: "user", Content: naverPrompt(req)},
			},
			ResponseFormat: &ResponseFormat{Type: "json_object"},
			Temperature:    0.7,
			MaxTokens:      3500,
		},
		{
			Model: g.model,
			Messages: []Message{
				{Role: "system", Content: tistorySystemPrompt},
				{Role: "user", Content: tistoryPrompt(req)},
			},
			ResponseFormat: &ResponseFormat{Type: "json_object"},
			Temperature:    0.7,
			MaxTokens:      4000,
		},
	}

	var payloads [3]string
	group, gctx := errgroup.WithContext(ctx)
	for i, request := range requests {
		group.Go(func() error {
			content, err := g.client.CreateCompletion(gctx, request)
			if err != nil {
				return err
			}
			payloads[i] = content
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		g.log.Error().Err(err).Msg("multi-platform blog generation failed")
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	return &MultiPlatformBlog{
		Basic:   normalizeBasic(decodeBlogPayload(payloads[0])),
		Naver:   normalizeNaver(decodeBlogPayload(payloads[1])),
		Tistory: normalizeTistory(decodeBlogPayload(payloads[2])),
	}, nil
}

// AnalyzeSkinImage sends one vision request with the photo embedded as a data
// URI and clamps every score into [1,100].
func (g *Generator) AnalyzeSkinImage(ctx context.Context, base64Image string) (*SkinAnalysisResult, error) {
	request := ChatCompletionRequest{
		Model: g.model,
		Messages: []Message{
			{
				Role: "user",
				Content: []ContentPart{
					{Type: "text", Text: skinAnalysisPrompt},
					{Type: "image_url", ImageURL: &ImageURL{
						URL: "data:image/jpeg;base64," + base64Image,
					}},
				},
			},
		},
		ResponseFormat: &ResponseFormat{Type: "json_object"},
		MaxTokens:      1000,
	}

	content, err := g.client.CreateCompletion(ctx, request)
	if err != nil {
		g.log.Error().Err(err).Msg("skin analysis failed")
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	var payload SkinAnalysisResult
	// 파싱 불가한 응답은 빈 객체 취급 (defaults below fill everything in)
	_ = json.Unmarshal([]byte(content), &payload)

	return &SkinAnalysisResult{
		OverallScore:    clampScore(payload.OverallScore, 75),
		MoistureLevel:   clampScore(payload.MoistureLevel, 60),
		OilLevel:        clampScore(payload.OilLevel, 50),
		TroubleLevel:    clampScore(payload.TroubleLevel, 30),
		Recommendations: fallbackList(payload.Recommendations, defaultRecommendations()),
	}, nil
}

type blogPayload struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt"`
	Keywords   []string `json:"keywords"`
	Tags       []string `json:"tags"`
	Categories []string `json:"categories"`
	SeoScore   int      `json:"seoScore"`
}

// decodeBlogPayload tolerates partial or malformed JSON: whatever does not
// parse is left at its zero value and replaced by the fallbacks.
func decodeBlogPayload(content string) blogPayload {
	var payload blogPayload
	_ = json.Unmarshal([]byte(content), &payload)
	return payload
}

func normalizeBasic(p blogPayload) PlatformBlog {
	return PlatformBlog{
		Title:    fallbackString(p.Title, "전문 피부 케어 가이드"),
		Content:  fallbackString(p.Content, "전문적인 피부 관리 방법을 소개합니다."),
		Excerpt:  fallbackString(p.Excerpt, "건강한 피부를 위한 전문가 조언"),
		Keywords: fallbackList(p.Keywords, []string{"피부관리", "뷰티", "스킨케어"}),
		SeoScore: fallbackScore(p.SeoScore, 80),
	}
}

func normalizeNaver(p blogPayload) PlatformBlog {
	return PlatformBlog{
		Title:    fallbackString(p.Title, "피부 고민 해결하는 전문가 케어 방법은?"),
		Content:  fallbackString(p.Content, "네이버 최적화 콘텐츠"),
		Excerpt:  fallbackString(p.Excerpt, "네이버 검색 최적화된 피부 케어 팁"),
		Keywords: fallbackList(p.Keywords, []string{"피부관리", "뷰티팁", "스킨케어루틴"}),
		Tags:     fallbackList(p.Tags, []string{"피부관리", "뷰티", "케어팁", "스킨케어"}),
		SeoScore: fallbackScore(p.SeoScore, 85),
	}
}

func normalizeTistory(p blogPayload) PlatformBlog {
	return PlatformBlog{
		Title:      fallbackString(p.Title, "과학적 근거 기반 피부 케어 완전 가이드"),
		Content:    fallbackString(p.Content, "티스토리 최적화 콘텐츠"),
		Excerpt:    fallbackString(p.Excerpt, "구글 SEO 최적화된 전문 피부 케어"),
		Keywords:   fallbackList(p.Keywords, []string{"skincare", "beauty", "피부관리"}),
		Categories: fallbackList(p.Categories, []string{"뷰티", "피부관리", "케어팁"}),
		SeoScore:   fallbackScore(p.SeoScore, 88),
	}
}

func defaultRecommendations() []string {
	return []string{
		"충분한 수분 공급을 위해 하이드레이팅 세럼 사용을 권장합니다.",
		"자외선 차단제를 매일 사용하여 피부를 보호하세요.",
		"순한 클렌징 제품으로 하루 2회 세안하시길 바랍니다.",
	}
}

func fallbackString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func fallbackList(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	return values
}

// fallbackScore substitutes the default for a missing value, then bounds the
// result to [0,100] before it can reach the store.
func fallbackScore(value, fallback int) int {
	if value == 0 {
		value = fallback
	}
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

// clampScore substitutes the default for a missing value, then bounds the
// result to [1,100].
func clampScore(value, fallback int) int {
	if value == 0 {
		value = fallback
	}
	if value < 1 {
		return 1
	}
	if value > 100 {
		return 100
	}
	return value
}
