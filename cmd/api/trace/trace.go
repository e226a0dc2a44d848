package trace

import (
	"context"

	"github.com/google/uuid"
)

// 컨텍스트에 저장되는 키 타입은 외부에서 직접 사용하지 못하게 unexported로 둔다.
type ctxKey string

const ctxKeyRequestID ctxKey = "request_id"

// GenerateID는 트레이싱에 사용할 랜덤 ID를 생성한다.
func GenerateID() string {
	return uuid.NewString()
}

// WithRequestID는 Request ID를 컨텍스트에 저장한 새 컨텍스트를 반환한다.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

// RequestIDFromContext는 컨텍스트에서 Request ID를 조회한다.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}
