package renderer

import (
	"strconv"

	"list-authors/authorlist"
)

// TextNode is the Tag of a bare text element.
const TextNode = "#text"

// FeedPseudoLink replaces real feed URLs in the editor so clicks go nowhere.
const FeedPseudoLink = "#author-feed-pseudo-link"

// Element is one node of the editor preview tree. Text is set only on
// text nodes and leaf elements; the editor escapes it when mounting.
type Element struct {
	Tag      string            `json:"tag"`
	Props    map[string]string `json:"props,omitempty"`
	Text     string            `json:"text,omitempty"`
	Children []Element         `json:"children,omitempty"`
}

func text(s string) Element { return Element{Tag: TextNode, Text: s} }

func classed(tag, class string, children ...Element) Element {
	return Element{Tag: tag, Props: map[string]string{"className": class}, Children: children}
}

// BuildPreview turns rows into the editor element tree. Links are marked
// so the editor swallows their clicks. No rows give an empty, non-nil
// slice.
func BuildPreview(rows []authorlist.DisplayRow, cfg authorlist.ListConfiguration, block BlockContext) []Element {
	if len(rows) == 0 {
		return []Element{}
	}
	prefix := authorlist.BlockClass

	items := make([]Element, 0, len(rows))
	for _, r := range rows {
		content := []Element{{
			Tag: "a",
			Props: map[string]string{
				"className":            prefix + "__link",
				"href":                 r.ProfileURL,
				"data-prevent-default": "true",
			},
			Text: r.DisplayName,
		}}
		if cfg.ShowFeedLink {
			content = append(content, classed("span", prefix+"__feed",
				text("("),
				Element{
					Tag:   "a",
					Props: map[string]string{"href": FeedPseudoLink, "data-prevent-default": "true"},
					Text:  FeedLabel,
				},
				text(")"),
			))
		}
		if r.PostCount != nil {
			content = append(content, Element{
				Tag:   "span",
				Props: map[string]string{"className": prefix + "__count"},
				Text:  "(" + strconv.Itoa(*r.PostCount) + ")",
			})
		}
		items = append(items, classed("li", prefix+"__item", classed("div", prefix+"__content", content...)))
	}

	w := block.Wrapper()
	wrapper := Element{Tag: "div", Props: map[string]string{"className": w.Class}}
	if w.ID != "" {
		wrapper.Props["id"] = w.ID
	}
	if w.Style != "" {
		wrapper.Props["style"] = w.Style
	}
	wrapper.Children = []Element{classed("ul", prefix+"__list", items...)}
	return []Element{wrapper}
}
