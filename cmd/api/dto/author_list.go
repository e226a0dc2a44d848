package dto

import (
	"list-authors/authorlist"
	"list-authors/renderer"
)

// BlockContextDTO carries the wrapper attributes the host computed for
// the block instance.
type BlockContextDTO struct {
	ClassName string `json:"className" example:"is-style-plain"`
	Anchor    string `json:"anchor" example:"team"`
	Align     string `json:"align" example:"wide"`
	Style     string `json:"style" example:"margin-top:2rem"`
}

func (b BlockContextDTO) ToBlockContext() renderer.BlockContext {
	return renderer.BlockContext{
		ClassName: b.ClassName,
		Anchor:    b.Anchor,
		Align:     b.Align,
		Style:     b.Style,
	}
}

// RenderRequestDTO is the server render request. Missing attributes take
// their defaults.
type RenderRequestDTO struct {
	Attributes authorlist.Attributes `json:"attributes"`
	Block      BlockContextDTO       `json:"block"`
}

// AuthorsQueryDTO binds the editor author query. Unknown order/orderby
// values are rejected.
type AuthorsQueryDTO struct {
	PerPage int      `form:"per_page" binding:"omitempty,min=1,max=100"`
	Order   string   `form:"order" binding:"omitempty,sort_direction"`
	OrderBy string   `form:"orderby" binding:"omitempty,sort_field"`
	Include []string `form:"include"`
	Context string   `form:"context"`
}

// AuthorDTO is one author as the editor data layer exposes it.
type AuthorDTO struct {
	ID       int64  `json:"id" example:"1"`
	Name     string `json:"name" example:"Jane Doe"`
	Slug     string `json:"slug" example:"jane-doe"`
	Link     string `json:"link" example:"https://example.com/author/jane-doe/"`
	FeedLink string `json:"feed_link" example:"https://example.com/author/jane-doe/feed/"`
}

func NewAuthorDTO(r authorlist.AuthorRecord) AuthorDTO {
	return AuthorDTO{
		ID:       r.ID,
		Name:     r.DisplayName,
		Slug:     r.Slug,
		Link:     r.ProfileURL,
		FeedLink: r.FeedURL,
	}
}

// LocalizedDataDTO is the editor script's localized object.
type LocalizedDataDTO struct {
	Count map[string]int `json:"count"`
}

// BootstrapResponseDTO mounts the editor: block metadata plus the
// preloaded post counts under the localize key.
type BootstrapResponseDTO struct {
	Block     authorlist.BlockMetadata `json:"block"`
	Localized LocalizedDataDTO         `json:"x3p0ListAuthors"`
}

// PreviewRequestDTO asks for the preview of one block instance. Count is
// the preloaded map; it is computed when the session is new and Count is
// absent.
type PreviewRequestDTO struct {
	ClientID   string                `json:"clientId" binding:"required" example:"6f1c0a52-block"`
	Attributes authorlist.Attributes `json:"attributes"`
	Count      map[string]int        `json:"count"`
	Block      BlockContextDTO       `json:"block"`
}

type PreviewResponseDTO struct {
	Elements []renderer.Element `json:"elements"`
}
