package catalog

import (
	"testing"

	"htmldata/htmltype"
)

func attr(name string, builtIn bool, t htmltype.Type) Attr {
	return Attr{Name: name, Kind: KindAttribute, Type: StaticType(t), BuiltIn: builtIn}
}

func event(name string, builtIn bool) Event {
	return Event{Name: name, Kind: KindEvent, Type: StaticType(htmltype.AnyType()), BuiltIn: builtIn}
}

type mergeAttrsTestcase struct {
	name     string
	lists    [][]Attr
	outNames []string // expected names in order
	builtIn  []bool   // expected BuiltIn flags, same order
}

var mergeAttrsTests = []mergeAttrsTestcase{
	{
		"disjoint lists concatenate in order",
		[][]Attr{
			{attr("href", true, htmltype.StringType())},
			{attr("target", true, htmltype.StringType())},
		},
		[]string{"href", "target"},
		[]bool{true, true},
	},
	{
		"collision keeps one entry at first position",
		[][]Attr{
			{attr("href", true, htmltype.AnyType()), attr("rel", true, htmltype.StringType())},
			{attr("href", true, htmltype.StringType())},
		},
		[]string{"href", "rel"},
		[]bool{true, true},
	},
	{
		"builtIn is the AND of all contributors",
		[][]Attr{
			{attr("href", true, htmltype.StringType())},
			{attr("href", false, htmltype.StringType())},
		},
		[]string{"href"},
		[]bool{false},
	},
	{
		"a user name never turns built-in",
		[][]Attr{
			{attr("my-attr", false, htmltype.AnyType())},
			{attr("my-attr", true, htmltype.StringType())},
		},
		[]string{"my-attr"},
		[]bool{false},
	},
}

func TestMergeAttrs(t *testing.T) {
	for _, tt := range mergeAttrsTests {
		t.Run(tt.name, func(t *testing.T) {
			out := MergeAttrs(tt.lists...)
			if len(out) != len(tt.outNames) {
				t.Fatalf("expected %d attrs, got %d", len(tt.outNames), len(out))
			}
			for i, name := range tt.outNames {
				if out[i].Name != name {
					t.Errorf("attr %d: expected name %q, got %q", i, name, out[i].Name)
				}
				if out[i].BuiltIn != tt.builtIn[i] {
					t.Errorf("attr %q: expected builtIn=%v, got %v", name, tt.builtIn[i], out[i].BuiltIn)
				}
			}
		})
	}
}

func TestMergeAttrsLaterTypeWins(t *testing.T) {
	out := MergeAttrs(
		[]Attr{attr("target", true, htmltype.AnyType())},
		[]Attr{attr("target", true, htmltype.UnionType("_self", "_blank"))},
	)
	if len(out) != 1 {
		t.Fatalf("expected 1 attr, got %d", len(out))
	}
	if got := out[0].Type.Get(); !got.Equal(htmltype.UnionType("_self", "_blank")) {
		t.Errorf("expected the later union type, got %v", got)
	}
}

func TestMergeTagsUnionsMembers(t *testing.T) {
	a := Tag{
		TagName:     "video",
		Description: "a video",
		Attributes:  []Attr{attr("src", true, htmltype.StringType()), attr("loop", true, htmltype.BooleanType())},
		Events:      []Event{event("play", true)},
		Slots:       []Slot{{Name: "fallback"}},
	}
	b := Tag{
		TagName:    "video",
		Attributes: []Attr{attr("src", true, htmltype.StringType()), attr("poster", true, htmltype.StringType())},
		Events:     []Event{event("pause", true), event("play", true)},
		Slots:      []Slot{{Name: "fallback"}, {Name: "controls"}},
	}
	out := MergeTags([]Tag{a}, []Tag{b})
	if len(out) != 1 {
		t.Fatalf("expected 1 tag, got %d", len(out))
	}
	tag := out[0]
	if tag.Description != "a video" {
		t.Errorf("empty later description must not clobber, got %q", tag.Description)
	}
	wantAttrs := []string{"src", "loop", "poster"}
	if len(tag.Attributes) != len(wantAttrs) {
		t.Fatalf("expected attrs %v, got %d entries", wantAttrs, len(tag.Attributes))
	}
	for i, name := range wantAttrs {
		if tag.Attributes[i].Name != name {
			t.Errorf("attr %d: expected %q, got %q", i, name, tag.Attributes[i].Name)
		}
	}
	if len(tag.Events) != 2 {
		t.Errorf("expected 2 events after union, got %d", len(tag.Events))
	}
	if len(tag.Slots) != 2 {
		t.Errorf("expected 2 slots after union, got %d", len(tag.Slots))
	}
}

func TestMergeTagsLastNonEmptyDescriptionWins(t *testing.T) {
	out := MergeTags(
		[]Tag{{TagName: "div", Description: "old"}},
		[]Tag{{TagName: "div", Description: "new"}},
	)
	if out[0].Description != "new" {
		t.Errorf("expected later description to win, got %q", out[0].Description)
	}
}

func TestMergeCollectionsIsIdempotent(t *testing.T) {
	col := Collection{
		Tags:   []Tag{{TagName: "a", Attributes: []Attr{attr("href", true, htmltype.StringType())}}},
		Attrs:  []Attr{attr("id", true, htmltype.StringType())},
		Events: []Event{event("onclick", true)},
	}
	once := MergeCollections(col)
	twice := MergeCollections(col, col)
	if len(twice.Tags) != len(once.Tags) || len(twice.Attrs) != len(once.Attrs) || len(twice.Events) != len(once.Events) {
		t.Fatalf("merging a collection with itself changed its shape: %d/%d/%d vs %d/%d/%d",
			len(twice.Tags), len(twice.Attrs), len(twice.Events),
			len(once.Tags), len(once.Attrs), len(once.Events))
	}
	if !twice.Attrs[0].Type.Get().Equal(once.Attrs[0].Type.Get()) {
		t.Error("merge changed an attribute's type")
	}
}

func TestAppendDoesNotMerge(t *testing.T) {
	a := Collection{Tags: []Tag{{TagName: "div"}}}
	b := Collection{Tags: []Tag{{TagName: "div"}}}
	out := a.Append(b)
	if len(out.Tags) != 2 {
		t.Fatalf("append must concatenate, got %d tags", len(out.Tags))
	}
}
