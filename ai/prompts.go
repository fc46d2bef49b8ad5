package ai

import (
	"fmt"
	"strings"

	"sunnie/models"
)

const (
	basicSystemPrompt   = "전문 피부관리사이자 SEO 전문가입니다."
	naverSystemPrompt   = "네이버 블로그 SEO 전문가이자 피부관리사입니다. 네이버 알고리즘을 완벽히 이해하고 있습니다."
	tistorySystemPrompt = "티스토리 블로그 SEO 전문가이자 피부관리사입니다. 구글 SEO와 티스토리 최적화를 전문으로 합니다."
)

// basicPrompt asks for the homepage version: 1500-2000 characters,
// 5-7 SEO keywords.
func basicPrompt(req models.BlogContentRequest) string {
	skinType := req.SkinType
	if skinType == "" {
		skinType = "일반"
	}
	treatmentType := req.TreatmentType
	if treatmentType == "" {
		treatmentType = "종합관리"
	}
	keywords := strings.Join(req.TargetKeywords, ", ")
	if keywords == "" {
		keywords = "피부관리, 뷰티"
	}

	return fmt.Sprintf(`당신은 5년 경력의 전문 피부관리사 Sunnie입니다. 다음 정보를 바탕으로 홈페이지용 기본 블로그 글을 작성해주세요.

내용 개요: %s
피부 타입: %s
케어 유형: %s
타겟 키워드: %s

비포애프터 이미지 %d개, 제품 이미지 %d개가 포함될 예정입니다.

요구사항:
1. 제목: 간결하고 전문적 (25-40자)
2. 본문: 신뢰할 수 있는 전문 내용 (1500-2000자)
   - 과학적 근거 기반 설명
   - 실용적이고 따라하기 쉬운 팁
   - 주의사항과 부작용 안내
3. 요약: 핵심 포인트 (100자 이내)
4. 키워드: SEO 최적화 키워드 5-7개

JSON 형식으로 응답해주세요:
{
  "title": "제목",
  "content": "본문",
  "excerpt": "요약",
  "keywords": ["키워드1", "키워드2"],
  "seoScore": 80
}`, req.ContentOutline, skinType, treatmentType, keywords,
		len(req.BeforeAfterImages), len(req.ProductImages))
}

// naverPrompt asks for the Naver long-form version: 2000-2500 characters,
// FAQ section, 8-12 tags.
func naverPrompt(req models.BlogContentRequest) string {
	return fmt.Sprintf(`네이버 블로그 SEO에 최적화된 버전을 작성해주세요.

네이버 검색 알고리즘 특성:
- 긴 제목 선호 (40-60자), 질문형 제목 효과적
- 소제목과 번호 매기기 중요
- 이미지 설명과 alt 텍스트 활용
- 네이버 쇼핑, 지식iN 연결 고려
- 댓글과 공감 수가 랭킹에 영향
- 최신성과 업데이트 빈도 중요

기본 내용: %s

네이버 블로그 전용 요구사항:
1. 제목: 검색 친화적 질문형 (40-60자) 예: "민감성 피부도 안전하게? 이 제품 사용법 총정리"
2. 본문: 구조화된 콘텐츠 (2000-2500자)
   - 소제목 활용 (1. 2. 3. 형태)
   - 번호 매기기와 불릿 포인트 다수 사용
   - FAQ 섹션 포함
   - 관련 제품 언급과 쇼핑 연결
   - 이미지 위치 표시와 설명 포함
3. 태그: 네이버 검색 최적화 태그 8-12개
4. 키워드: 네이버 검색 트렌드 반영

JSON 형식으로 응답해주세요:
{
  "title": "제목",
  "content": "본문",
  "excerpt": "요약",
  "keywords": ["키워드"],
  "tags": ["태그1", "태그2"],
  "seoScore": 85
}`, req.ContentOutline)
}

// tistoryPrompt asks for the Tistory long-form version: 2500-3000 characters,
// table-of-contents structure, 3-5 categories.
func tistoryPrompt(req models.BlogContentRequest) string {
	return fmt.Sprintf(`티스토리 블로그 SEO에 최적화된 버전을 작성해주세요.

티스토리 특성:
- 구글 SEO 친화적 플랫폼
- 긴 형식 콘텐츠 선호 (2500자 이상)
- 카테고리 구조와 태그 시스템 중요
- 내부 링크 최적화 효과적
- 소셜 공유 최적화
- 메타 디스크립션과 구조화된 데이터 활용
- 영문 키워드 혼용 효과적

기본 내용: %s

티스토리 전용 요구사항:
1. 제목: 구글 SEO 최적화 (30-50자) 예: "과학적 근거 기반 민감성 피부 케어 완전 가이드"
2. 본문: 심화된 전문 콘텐츠 (2500-3000자)
   - 목차(TOC) 구조 포함
   - 상세한 단계별 가이드
   - 관련 연구 및 출처 인용
   - 추천 제품 리뷰와 비교
   - 내부 링크 전략 고려
3. 카테고리: 티스토리 카테고리 구조 3-5개
4. 메타 디스크립션: 구글 검색 최적화 (150자)

JSON 형식으로 응답해주세요:
{
  "title": "제목",
  "content": "본문",
  "excerpt": "메타디스크립션",
  "keywords": ["키워드"],
  "categories": ["카테고리1", "카테고리2"],
  "seoScore": 88
}`, req.ContentOutline)
}

// skinAnalysisPrompt asks the vision model for four 1-100 scores and
// 3-5 personalized recommendations.
const skinAnalysisPrompt = `당신은 전문 피부 분석 AI입니다. 업로드된 피부 이미지를 분석하여 다음 정보를 제공해주세요:

분석 항목:
1. 전체적인 피부 상태 점수 (1-100점)
2. 수분 레벨 (1-100점)
3. 유분/오일 레벨 (1-100점)
4. 트러블/문제 레벨 (1-100점, 높을수록 심각)
5. 개인맞춤 관리 추천사항 (3-5개)

JSON 형식으로 응답해주세요:
{
  "overallScore": 85,
  "moistureLevel": 70,
  "oilLevel": 40,
  "troubleLevel": 20,
  "recommendations": [
    "추천사항1",
    "추천사항2",
    "추천사항3"
  ]
}`
