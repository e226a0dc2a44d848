package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"list-authors/authorlist"
	"list-authors/cmd/api/dto"
	"list-authors/repositories"
	"list-authors/services"
)

func abortWithError(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.ErrorResponseDTO{Error: err.Error()})
}

// RenderHandler godoc
// @Summary      Render author list
// @Description  Server-side render of the list-authors block. An empty list renders as an empty body.
// @Tags         blocks
// @Accept       json
// @Produce      html
// @Param        X-Viewer-Id    header  int     false  "Viewer user id"
// @Param        X-Viewer-Caps  header  string  false  "Viewer capabilities (comma separated)"
// @Param        request        body    dto.RenderRequestDTO  true  "Block attributes and wrapper context"
// @Success      200  {string}  string
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blocks/list-authors/render [post]
func RenderHandler(svc *services.AuthorListService) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer, err := viewerFromRequest(c)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, err)
			return
		}
		// 바디가 없으면 모든 속성을 기본값으로 렌더링한다
		var req dto.RenderRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			abortWithError(c, http.StatusBadRequest, err)
			return
		}

		out, err := svc.Render(c.Request.Context(), services.RenderInput{
			Attributes: req.Attributes,
			Block:      req.Block.ToBlockContext(),
			Viewer:     viewer,
		})
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
	}
}

// ListAuthorsHandler godoc
// @Summary      List authors
// @Description  Author query used by the block editor
// @Tags         editor
// @Param        per_page  query  int       false  "Number of authors (1-100)"
// @Param        order     query  string    false  "asc or desc"
// @Param        orderby   query  string    false  "name, slug, email, id or registered_date"
// @Param        include   query  []string  false  "Author ids (repeatable or comma separated)"
// @Param        context   query  string    false  "Ignored"
// @Produce      json
// @Success      200  {array}   dto.AuthorDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/authors [get]
func ListAuthorsHandler(svc *services.AuthorListService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.AuthorsQueryDTO
		if err := c.ShouldBindQuery(&in); err != nil {
			abortWithError(c, http.StatusBadRequest, err)
			return
		}
		include, err := parseInclude(in.Include)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, err)
			return
		}

		q := authorlist.AuthorQuery{
			Number:  in.PerPage,
			Order:   in.Order,
			OrderBy: in.OrderBy,
			Include: include,
		}
		if q.Number == 0 {
			q.Number = authorlist.DefaultNumber
		}
		if q.Order == "" {
			q.Order = authorlist.OrderAsc
		}
		if q.OrderBy == "" {
			q.OrderBy = authorlist.OrderByName
		}

		records, err := svc.ListAuthors(c.Request.Context(), q)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, err)
			return
		}
		out := make([]dto.AuthorDTO, 0, len(records))
		for _, r := range records {
			out = append(out, dto.NewAuthorDTO(r))
		}
		c.JSON(http.StatusOK, out)
	}
}

// EditorBootstrapHandler godoc
// @Summary      Editor bootstrap
// @Description  Block metadata and the post counts the editor preview works from
// @Tags         editor
// @Param        X-Viewer-Id    header  int     false  "Viewer user id"
// @Param        X-Viewer-Caps  header  string  false  "Viewer capabilities (comma separated)"
// @Produce      json
// @Success      200  {object}  dto.BootstrapResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/editor/bootstrap [get]
func EditorBootstrapHandler(svc *services.AuthorListService) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer, err := viewerFromRequest(c)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, err)
			return
		}
		b, err := svc.Bootstrap(c.Request.Context(), viewer)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, err)
			return
		}
		c.JSON(http.StatusOK, dto.BootstrapResponseDTO{
			Block:     b.Block,
			Localized: dto.LocalizedDataDTO{Count: b.Counts.StringKeys()},
		})
	}
}

// EditorPreviewHandler godoc
// @Summary      Editor preview
// @Description  Element tree of the block preview for one block instance
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        X-Viewer-Id    header  int     false  "Viewer user id"
// @Param        X-Viewer-Caps  header  string  false  "Viewer capabilities (comma separated)"
// @Param        request        body    dto.PreviewRequestDTO  true  "Block instance and attributes"
// @Success      200  {object}  dto.PreviewResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/editor/preview [post]
func EditorPreviewHandler(svc *services.EditorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer, err := viewerFromRequest(c)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, err)
			return
		}
		var req dto.PreviewRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, err)
			return
		}

		elements, err := svc.Preview(c.Request.Context(), services.PreviewInput{
			ClientID:   req.ClientID,
			Attributes: req.Attributes,
			Counts:     req.Count,
			Block:      req.Block.ToBlockContext(),
			Viewer:     viewer,
		})
		switch {
		case errors.Is(err, context.Canceled):
			abortWithError(c, http.StatusConflict, errors.New("superseded by a newer preview"))
			return
		case err != nil:
			abortWithError(c, http.StatusInternalServerError, err)
			return
		}
		c.JSON(http.StatusOK, dto.PreviewResponseDTO{Elements: elements})
	}
}

// EditorForgetHandler godoc
// @Summary      Drop editor session
// @Description  Releases the cached preview state of a removed block instance
// @Tags         editor
// @Param        clientId  path  string  true  "Block instance id"
// @Success      204  "No Content"
// @Router       /api/v1/editor/preview/{clientId} [delete]
func EditorForgetHandler(svc *services.EditorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc.Forget(c.Param("clientId"))
		c.Status(http.StatusNoContent)
	}
}

// AuthorFeedHandler godoc
// @Summary      Author feed
// @Description  RSS 2.0 feed of the author's published posts
// @Tags         authors
// @Param        slug  path  string  true  "Author slug"
// @Produce      xml
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /author/{slug}/feed [get]
func AuthorFeedHandler(svc *services.AuthorListService) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := svc.AuthorFeed(c.Request.Context(), c.Param("slug"))
		if errors.Is(err, repositories.ErrAuthorNotFound) {
			abortWithError(c, http.StatusNotFound, err)
			return
		}
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, err)
			return
		}
		c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", body)
	}
}

// HealthHandler godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponseDTO
// @Failure      503  {object}  dto.HealthResponseDTO
// @Router       /health [get]
func HealthHandler(ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponseDTO{Status: "degraded", Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponseDTO{Status: "ok"})
	}
}
