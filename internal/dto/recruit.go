package dto

import "encoding/json"

// AnalyzeRecruitRequest PDF 채용 공고 분석 요청
type AnalyzeRecruitRequest struct {
	PDFBase64                    string `json:"pdfBase64" validate:"required"`
	CompanyImageURL              string `json:"companyImageUrl" validate:"required,url"`
	DirectInputApplicationMethod string `json:"directInputApplicationMethod" validate:"required,url"`
}

// RegisterRecruitResponse mirrors the recruiting API outcome.
type RegisterRecruitResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}
