package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"list-authors/cmd/api/dto"
	"list-authors/config"
	"list-authors/db"
	"list-authors/metrics"
	"list-authors/models"
	"list-authors/repositories"
	"list-authors/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	handler http.Handler
	store   *repositories.Store
	editor  *services.EditorService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()
	conn, err := db.OpenSQL(ctx, config.StorageConfig{Driver: db.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx, conn, db.DriverSQLite))
	store := repositories.NewSQLStore(conn, db.DriverSQLite)
	t.Cleanup(func() { _ = store.Close(ctx) })

	site := config.Default().Site
	rec := metrics.New()
	authorList := services.NewAuthorListService(store, site, rec)
	editorSvc, err := services.NewEditorService(authorList, 8, rec)
	require.NoError(t, err)

	engine := New(Dependencies{
		AuthorList: authorList,
		Editor:     editorSvc,
		Metrics:    rec,
		Ping:       store.Ping,
	})
	return &testServer{handler: WithCORS(engine, []string{"https://editor.example.com"}), store: store, editor: editorSvc}
}

// seed stores A (5 published), B (1 private) and C (2 published).
func (s *testServer) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	posts := map[string][]string{
		"A": {models.PostStatusPublish, models.PostStatusPublish, models.PostStatusPublish, models.PostStatusPublish, models.PostStatusPublish},
		"B": {models.PostStatusPrivate},
		"C": {models.PostStatusPublish, models.PostStatusPublish},
	}
	for _, name := range []string{"A", "B", "C"} {
		a := &models.Author{Login: strings.ToLower(name), DisplayName: name}
		require.NoError(t, s.store.Authors.Upsert(ctx, a))
		for i, status := range posts[name] {
			require.NoError(t, s.store.Posts.Upsert(ctx, &models.Post{
				AuthorID: a.ID,
				Status:   status,
				Title:    fmt.Sprintf("%s %d", name, i),
				Link:     fmt.Sprintf("https://example.com/%s-%d", name, i),
			}))
		}
	}
}

func (s *testServer) do(t *testing.T, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func TestRenderHideEmpty(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	rec := s.do(t, http.MethodPost, "/blocks/list-authors/render", `{"attributes":{"hideEmpty":true}}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	body := rec.Body.String()
	assert.Contains(t, body, `class="wp-block-x3p0-list-authors__link">A</a><span class="wp-block-x3p0-list-authors__count">(5)</span>`)
	assert.Contains(t, body, `>C</a><span class="wp-block-x3p0-list-authors__count">(2)</span>`)
	assert.NotContains(t, body, ">B</a>")
}

func TestRenderViewerSeesPrivatePosts(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	headers := map[string]string{"X-Viewer-Id": "99", "X-Viewer-Caps": "edit_posts, read_private_posts"}
	rec := s.do(t, http.MethodPost, "/blocks/list-authors/render", `{"attributes":{"hideEmpty":true}}`, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `>B</a><span class="wp-block-x3p0-list-authors__count">(1)</span>`)

	rec = s.do(t, http.MethodPost, "/blocks/list-authors/render", "", map[string]string{"X-Viewer-Id": "abc"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRenderEmptyAndDefaults(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/blocks/list-authors/render", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/blocks/list-authors/render", `{"attributes":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var errResp dto.ErrorResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.NotEmpty(t, errResp.Error)
}

func TestRenderChunkedEmptyBodyUsesDefaults(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	req := httptest.NewRequest(http.MethodPost, "/blocks/list-authors/render", io.NopCloser(strings.NewReader("")))
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `class="wp-block-x3p0-list-authors"`)
	assert.Contains(t, rec.Body.String(), ">A</a>")
}

func TestListAuthors(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	rec := s.do(t, http.MethodGet, "/api/v1/authors?per_page=2&order=desc&orderby=name&context=edit", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var authors []dto.AuthorDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &authors))
	require.Len(t, authors, 2)
	assert.Equal(t, "C", authors[0].Name)
	assert.Equal(t, "http://localhost:8080/author/c/", authors[0].Link)
	assert.Equal(t, "http://localhost:8080/author/c/feed/", authors[0].FeedLink)

	rec = s.do(t, http.MethodGet, "/api/v1/authors?include=3&include=1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &authors))
	assert.Len(t, authors, 2)

	for _, q := range []string{"orderby=post_count", "order=sideways", "per_page=500", "include=x"} {
		rec = s.do(t, http.MethodGet, "/api/v1/authors?"+q, "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestEditorBootstrapAndPreview(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	rec := s.do(t, http.MethodGet, "/api/v1/editor/bootstrap", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var boot dto.BootstrapResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &boot))
	assert.Equal(t, "x3p0/list-authors", boot.Block.Name)
	assert.Equal(t, map[string]int{"1": 5, "3": 2}, boot.Localized.Count)

	body := `{"clientId":"block-1","attributes":{"hideEmpty":true,"showFeed":true},"count":{"1":5,"3":2}}`
	rec = s.do(t, http.MethodPost, "/api/v1/editor/preview", body, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var preview dto.PreviewResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &preview))
	require.Len(t, preview.Elements, 1)
	items := preview.Elements[0].Children[0].Children
	assert.Len(t, items, 2)
	assert.Contains(t, rec.Body.String(), "#author-feed-pseudo-link")

	rec = s.do(t, http.MethodPost, "/api/v1/editor/preview", `{"attributes":{}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEditorPreviewEmpty(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/editor/preview", `{"clientId":"block-2"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"elements":[]}`, rec.Body.String())
}

func TestEditorPreviewCountsFollowViewer(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	body := `{"clientId":"block-4","attributes":{"hideEmpty":true}}`
	itemCount := func(headers map[string]string) int {
		rec := s.do(t, http.MethodPost, "/api/v1/editor/preview", body, headers)
		require.Equal(t, http.StatusOK, rec.Code)
		var preview dto.PreviewResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &preview))
		require.Len(t, preview.Elements, 1)
		return len(preview.Elements[0].Children[0].Children)
	}

	assert.Equal(t, 2, itemCount(nil))
	assert.Equal(t, 3, itemCount(map[string]string{"X-Viewer-Id": "9", "X-Viewer-Caps": "read_private_posts"}))
	assert.Equal(t, 2, itemCount(nil))
	assert.Equal(t, 2, s.editor.Sessions())
}

func TestEditorForgetSession(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	rec := s.do(t, http.MethodPost, "/api/v1/editor/preview", `{"clientId":"block-3"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, s.editor.Sessions())

	rec = s.do(t, http.MethodDelete, "/api/v1/editor/preview/block-3", "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, s.editor.Sessions())
}

func TestAuthorFeed(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	rec := s.do(t, http.MethodGet, "/author/a/feed", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/rss+xml")
	assert.Contains(t, rec.Body.String(), "<title>List Authors » Posts by A</title>")

	rec = s.do(t, http.MethodGet, "/author/nobody/feed", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	s.do(t, http.MethodPost, "/blocks/list-authors/render", "", nil)
	rec = s.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `list_authors_renders_total{environment="server",outcome="empty"} 1`)
}

func TestHealthDegraded(t *testing.T) {
	engine := New(Dependencies{
		Metrics: metrics.New(),
		Ping:    func(context.Context) error { return errors.New("db down") },
	})
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "db down")
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/editor/preview", nil)
	req.Header.Set("Origin", "https://editor.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type,x-viewer-id")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, "https://editor.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
