package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"list-authors/models"
)

// 뷰어 정보는 앞단(호스트)이 인증을 마친 뒤 신뢰 가능한 헤더로 넘겨준다.
const (
	HeaderViewerID   = "X-Viewer-Id"
	HeaderViewerCaps = "X-Viewer-Caps"
)

// viewerFromRequest reads the viewer from the trusted headers. No headers
// mean an anonymous viewer.
func viewerFromRequest(c *gin.Context) (models.Viewer, error) {
	var v models.Viewer
	if raw := strings.TrimSpace(c.GetHeader(HeaderViewerID)); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 0 {
			return models.Viewer{}, fmt.Errorf("invalid %s header", HeaderViewerID)
		}
		v.ID = id
	}
	for _, capability := range strings.Split(c.GetHeader(HeaderViewerCaps), ",") {
		if strings.TrimSpace(capability) == models.CapReadPrivatePosts {
			v.CanReadPrivate = true
		}
	}
	return v, nil
}

// parseInclude accepts repeated and comma separated ids. The result is
// nil when the parameter is absent.
func parseInclude(values []string) ([]int64, error) {
	if len(values) == 0 {
		return nil, nil
	}
	ids := make([]int64, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid include id %q", part)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
