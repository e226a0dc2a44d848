package renderer

import (
	"bytes"
	"html/template"
	"strings"

	"list-authors/authorlist"
)

// FeedLabel is the text of the per-author feed link.
const FeedLabel = "Feed"

// BlockContext is the block-instance information the host passes along with
// the attributes. It only shapes the wrapper element.
type BlockContext struct {
	ClassName string `json:"className,omitempty"`
	Anchor    string `json:"anchor,omitempty"`
	Align     string `json:"align,omitempty"`
	Style     string `json:"style,omitempty"`
}

// WrapperAttributes are the attributes of the outermost element.
type WrapperAttributes struct {
	Class string
	ID    string
	Style string
}

// Wrapper builds the standard wrapper attributes for the block.
func (b BlockContext) Wrapper() WrapperAttributes {
	classes := []string{authorlist.BlockClass}
	if a := strings.TrimSpace(b.Align); a != "" {
		classes = append(classes, "align"+a)
	}
	classes = append(classes, strings.Fields(b.ClassName)...)
	return WrapperAttributes{
		Class: strings.Join(classes, " "),
		ID:    strings.TrimSpace(b.Anchor),
		Style: strings.TrimSpace(b.Style),
	}
}

// wp_list_authors 스타일 출력 대신 테마에서 다루기 쉬운 마크업을 직접 만든다.
var listTemplate = template.Must(template.New("list").Parse(
	`<div class="{{.Wrapper.Class}}"{{with .Wrapper.ID}} id="{{.}}"{{end}}{{with .Wrapper.Style}} style="{{.}}"{{end}}>` +
		`<ul class="{{.Prefix}}__list">` +
		`{{range .Rows}}<li class="{{$.Prefix}}__item"><div class="{{$.Prefix}}__content">` +
		`<a href="{{.Profile}}" class="{{$.Prefix}}__link">{{.Name}}</a>` +
		`{{if $.ShowFeed}}<span class="{{$.Prefix}}__feed">(<a href="{{.Feed}}">{{$.FeedLabel}}</a>)</span>{{end}}` +
		`{{if .HasCount}}<span class="{{$.Prefix}}__count">({{.Count}})</span>{{end}}` +
		`</div></li>{{end}}` +
		`</ul></div>`,
))

type rowView struct {
	Name     string
	Profile  string
	Feed     string
	Count    int
	HasCount bool
}

type wrapperView struct {
	Class string
	ID    string
	// Style comes from the host's block supports and is trusted CSS.
	Style template.CSS
}

type listView struct {
	Wrapper   wrapperView
	Prefix    string
	FeedLabel string
	ShowFeed  bool
	Rows      []rowView
}

// RenderHTML renders rows as the block's front-end markup. No rows render
// as the empty string, never as an empty list.
func RenderHTML(rows []authorlist.DisplayRow, cfg authorlist.ListConfiguration, block BlockContext) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}

	w := block.Wrapper()
	view := listView{
		Wrapper:   wrapperView{Class: w.Class, ID: w.ID, Style: template.CSS(w.Style)},
		Prefix:    authorlist.BlockClass,
		FeedLabel: FeedLabel,
		ShowFeed:  cfg.ShowFeedLink,
		Rows:      make([]rowView, 0, len(rows)),
	}
	for _, r := range rows {
		v := rowView{Name: r.DisplayName, Profile: r.ProfileURL, Feed: r.FeedURL}
		if r.PostCount != nil {
			v.Count, v.HasCount = *r.PostCount, true
		}
		view.Rows = append(view.Rows, v)
	}

	var buf bytes.Buffer
	if err := listTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}
