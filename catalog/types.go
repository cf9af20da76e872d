// Package catalog holds the normalized HTML knowledge collection: tags,
// attributes and events gathered from the built-in baseline and from user
// configuration, merged into one queryable in-memory catalog.
package catalog

// Kind discriminates the member shapes sharing the Attr struct.
type Kind string

const (
	KindAttribute Kind = "attribute"
	KindProperty  Kind = "property"
	KindEvent     Kind = "event"
)

// Attr is one attribute (or scripting-only property) declaration, either
// global or scoped to the tag named by FromTagName.
type Attr struct {
	Name        string    `json:"name"`
	Kind        Kind      `json:"kind"`
	Type        *TypeCell `json:"type"`
	BuiltIn     bool      `json:"builtIn"`
	Description string    `json:"description,omitempty"`
	FromTagName string    `json:"fromTagName,omitempty"`
}

// Event is one event declaration, global or scoped to FromTagName.
type Event struct {
	Name        string    `json:"name"`
	Kind        Kind      `json:"kind"`
	Type        *TypeCell `json:"type"`
	BuiltIn     bool      `json:"builtIn"`
	Description string    `json:"description,omitempty"`
	FromTagName string    `json:"fromTagName,omitempty"`
}

// Slot is a named content slot declared by a tag.
type Slot struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Tag is one element type. TagName is the unique key within a collection.
// Properties holds scripting-only members that are not markup attributes.
type Tag struct {
	TagName     string  `json:"tagName"`
	Attributes  []Attr  `json:"attributes"`
	Properties  []Attr  `json:"properties"`
	Events      []Event `json:"events"`
	Slots       []Slot  `json:"slots"`
	Description string  `json:"description,omitempty"`
	BuiltIn     bool    `json:"builtIn"`
}

// Collection is the aggregate root: global attributes and events plus the
// tag list. A collection is additive during one build and immutable once
// returned; configuration changes rebuild it from scratch.
type Collection struct {
	Tags   []Tag   `json:"tags"`
	Attrs  []Attr  `json:"attrs"`
	Events []Event `json:"events"`
}

// Append returns the list-wise concatenation of c and others, without
// merging. Overlapping keys are resolved by a later merge step, where
// later entries win.
func (c Collection) Append(others ...Collection) Collection {
	out := Collection{
		Tags:   append([]Tag(nil), c.Tags...),
		Attrs:  append([]Attr(nil), c.Attrs...),
		Events: append([]Event(nil), c.Events...),
	}
	for _, o := range others {
		out.Tags = append(out.Tags, o.Tags...)
		out.Attrs = append(out.Attrs, o.Attrs...)
		out.Events = append(out.Events, o.Events...)
	}
	return out
}
