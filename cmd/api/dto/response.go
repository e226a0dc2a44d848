package dto

// ErrorResponseDTO는 공통 에러 응답 형식을 통일하기 위한 DTO이다.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"invalid orderby"`
}

// HealthResponseDTO is returned by /health.
type HealthResponseDTO struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty"`
}
