package store

import "sunnie/models"

// seedDemoData fills the store with the services and portfolio entries the
// site shows before an operator has created anything.
func (s *MemStore) seedDemoData() {
	s.CreateService(models.InsertService{
		Title:       "AI 피부 진단",
		Description: "첨단 AI 기술을 활용한 정확한 피부 상태 분석과 맞춤형 케어 솔루션을 제공합니다.",
		Icon:        "Camera",
		Features:    []string{"실시간 피부 분석", "맞춤형 케어 추천", "피부 타입 진단", "개선 효과 추적"},
		Order:       1,
	})

	s.CreateService(models.InsertService{
		Title:       "1:1 전문 상담",
		Description: "5년 경력의 전문 피부관리사와의 개인별 맞춤 상담으로 최적의 케어 플랜을 제공합니다.",
		Icon:        "MessageCircle",
		Features:    []string{"개인별 맞춤 상담", "전문가 케어 플랜", "실시간 Q&A", "사후 관리 서비스"},
		Order:       2,
	})

	s.CreateService(models.InsertService{
		Title:       "제품 추천 서비스",
		Description: "개인의 피부 타입과 고민에 최적화된 검증된 제품들을 추천해드립니다.",
		Icon:        "Heart",
		Features:    []string{"피부 타입별 추천", "성분 분석", "가격대별 옵션", "리뷰 기반 선별"},
		Order:       3,
	})

	s.CreatePortfolio(models.InsertPortfolio{
		Title:        "민감성 피부 케어 성공 사례",
		Description:  "6개월간의 전문 케어를 통해 민감성 피부가 건강한 피부로 개선된 고객 사례",
		Technologies: []string{"전문 케어", "맞춤 제품", "피부 분석", "사후 관리"},
		Category:     "skincare-success",
	})

	s.CreatePortfolio(models.InsertPortfolio{
		Title:        "E-commerce 솔루션",
		Description:  "모바일 최적화된 온라인 쇼핑몰 플랫폼으로 높은 전환율을 달성",
		Technologies: []string{"Next.js", "PostgreSQL", "Stripe", "Tailwind"},
		Category:     "web-development",
	})
}
