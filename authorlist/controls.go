package authorlist

// BlockName is the registered block type name.
const BlockName = "x3p0/list-authors"

// BlockClass is the root class of every element the block emits.
const BlockClass = "wp-block-x3p0-list-authors"

// LocalizeKey is the key the editor reads its preloaded counts from.
const LocalizeKey = "x3p0ListAuthors"

// Option is one choice of a select control.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Control describes one inspector control bound to an attribute.
type Control struct {
	Type      string   `json:"type"`
	Attribute string   `json:"attribute"`
	Label     string   `json:"label"`
	Min       int      `json:"min,omitempty"`
	Max       int      `json:"max,omitempty"`
	Initial   int      `json:"initialPosition,omitempty"`
	Reset     int      `json:"resetFallbackValue,omitempty"`
	Options   []Option `json:"options,omitempty"`
}

// Panel groups controls under one inspector panel.
type Panel struct {
	Title    string    `json:"title"`
	Controls []Control `json:"controls"`
}

// SortFieldOptions lists the sort fields offered in the editor.
func SortFieldOptions() []Option {
	return []Option{
		{Value: OrderByName, Label: "Name"},
		{Value: OrderBySlug, Label: "Slug"},
		{Value: OrderByEmail, Label: "Email"},
		{Value: OrderByID, Label: "ID"},
		{Value: OrderByRegisteredDate, Label: "Registered Date"},
	}
}

func SortDirectionOptions() []Option {
	return []Option{
		{Value: OrderAsc, Label: "Ascending"},
		{Value: OrderDesc, Label: "Descending"},
	}
}

// SettingsPanel is the "List settings" inspector panel.
func SettingsPanel() Panel {
	return Panel{
		Title: "List settings",
		Controls: []Control{
			{Type: "range", Attribute: "number", Label: "Number", Min: MinNumber, Max: MaxNumber, Initial: DefaultNumber, Reset: DefaultNumber},
			{Type: "select", Attribute: "orderby", Label: "Order By", Options: SortFieldOptions()},
			{Type: "select", Attribute: "order", Label: "Order", Options: SortDirectionOptions()},
			{Type: "toggle", Attribute: "hideEmpty", Label: "Hide authors without posts"},
			{Type: "toggle", Attribute: "showFeed", Label: "Show feed link"},
			{Type: "toggle", Attribute: "showPostCount", Label: "Show post count"},
		},
	}
}

// IsSortField reports whether v is one of the offered sort fields.
func IsSortField(v string) bool {
	return hasOption(SortFieldOptions(), v)
}

func IsSortDirection(v string) bool {
	return hasOption(SortDirectionOptions(), v)
}

func hasOption(options []Option, v string) bool {
	for _, o := range options {
		if o.Value == v {
			return true
		}
	}
	return false
}

// AttributeSchema describes one block attribute and its default.
type AttributeSchema struct {
	Type    string   `json:"type"`
	Default any      `json:"default"`
	Enum    []string `json:"enum,omitempty"`
}

// BlockMetadata is the registration data the editor needs to mount the
// block: its name, attribute defaults and inspector panels.
type BlockMetadata struct {
	Name       string                     `json:"name"`
	Title      string                     `json:"title"`
	Category   string                     `json:"category"`
	Attributes map[string]AttributeSchema `json:"attributes"`
	Panels     []Panel                    `json:"panels"`
}

func Metadata() BlockMetadata {
	d := DefaultConfiguration()
	fields := make([]string, 0, len(SortFieldOptions()))
	for _, o := range SortFieldOptions() {
		fields = append(fields, o.Value)
	}
	return BlockMetadata{
		Name:     BlockName,
		Title:    "List Authors",
		Category: "widgets",
		Attributes: map[string]AttributeSchema{
			"number":        {Type: "number", Default: d.Count},
			"orderby":       {Type: "string", Default: d.SortField, Enum: fields},
			"order":         {Type: "string", Default: d.SortDirection, Enum: []string{OrderAsc, OrderDesc}},
			"hideEmpty":     {Type: "boolean", Default: d.HideAuthorsWithoutPosts},
			"showFeed":      {Type: "boolean", Default: d.ShowFeedLink},
			"showPostCount": {Type: "boolean", Default: d.ShowPostCount},
		},
		Panels: []Panel{SettingsPanel()},
	}
}
