package builder

import (
	"strings"

	"htmldata/catalog"
	"htmldata/htmltype"
	"htmldata/vscodedata"
)

// BuildBuiltin builds the canonical HTML5 baseline collection: the embedded
// spec document normalized, patched for gaps the generic data format cannot
// express, type back-filled from the resolver, and stamped built-in.
func BuildBuiltin(sink Sink) catalog.Collection {
	doc, err := vscodedata.Baseline()
	if err != nil {
		sink.Report("could not parse the built-in html data document", err)
		return catalog.Collection{}
	}
	col := vscodedata.NormalizeDocument(doc)
	for _, patch := range builtinPatches {
		patch(&col)
	}
	backfillTypes(&col)
	stampBuiltIn(&col)
	return col
}

// builtinPatches fill gaps in the baseline document. Each patch is
// independent of the others.
var builtinPatches = []func(*catalog.Collection){
	addSVGTag,
	addSlotTag,
	addTextareaValueProperty,
	addInputValueProperty,
	addAudioAttributes,
	addVideoAttributes,
	addBareEventNames,
}

// The baseline does not model svg structurally; recognizing the tag is
// enough.
func addSVGTag(col *catalog.Collection) {
	col.Tags = append(col.Tags, catalog.Tag{TagName: "svg"})
}

func addSlotTag(col *catalog.Collection) {
	col.Tags = append(col.Tags, catalog.Tag{
		TagName: "slot",
		Attributes: []catalog.Attr{
			{Name: "name", Kind: catalog.KindAttribute, Type: catalog.StaticType(htmltype.StringType()), FromTagName: "slot", BuiltIn: true},
			{Name: "onslotchange", Kind: catalog.KindAttribute, Type: catalog.StaticType(htmltype.StringType()), FromTagName: "slot", BuiltIn: true},
		},
		Events: []catalog.Event{
			{Name: "slotchange", Kind: catalog.KindEvent, Type: catalog.StaticType(htmltype.AnyType()), FromTagName: "slot", BuiltIn: true},
		},
		BuiltIn: true,
	})
	// any element may be assigned to a slot
	col.Attrs = append(col.Attrs, catalog.Attr{
		Name: "slot",
		Kind: catalog.KindAttribute,
		Type: catalog.StaticType(htmltype.StringType()),
	})
}

func addTextareaValueProperty(col *catalog.Collection) {
	addValueProperty(col, "textarea")
}

func addInputValueProperty(col *catalog.Collection) {
	addValueProperty(col, "input")
}

// addValueProperty declares the scripting-only value member; it is not a
// markup attribute and the data format cannot express it.
func addValueProperty(col *catalog.Collection, tagName string) {
	tag := findTag(col, tagName)
	if tag == nil {
		return
	}
	tag.Properties = append(tag.Properties, catalog.Attr{
		Name:        "value",
		Kind:        catalog.KindProperty,
		Type:        catalog.StaticType(htmltype.StringOrNullType()),
		FromTagName: tagName,
	})
}

func addAudioAttributes(col *catalog.Collection) {
	tag := findTag(col, "audio")
	if tag == nil {
		return
	}
	tag.Attributes = append(tag.Attributes,
		catalog.Attr{Name: "controlslist", Kind: catalog.KindAttribute, Type: catalog.StaticType(htmltype.StringType()), FromTagName: "audio"},
	)
}

func addVideoAttributes(col *catalog.Collection) {
	tag := findTag(col, "video")
	if tag == nil {
		return
	}
	tag.Attributes = append(tag.Attributes,
		catalog.Attr{Name: "controlslist", Kind: catalog.KindAttribute, Type: catalog.StaticType(htmltype.StringType()), FromTagName: "video"},
		catalog.Attr{Name: "playsinline", Kind: catalog.KindAttribute, Type: catalog.StaticType(htmltype.BooleanType()), FromTagName: "video"},
	)
}

// addBareEventNames registers a bare event for every onX handler name in
// the global event list, so both "onclick" and "click" are queryable.
func addBareEventNames(col *catalog.Collection) {
	for _, e := range col.Events {
		if len(e.Name) <= 2 || !strings.HasPrefix(e.Name, "on") {
			continue
		}
		bare := e
		bare.Name = strings.TrimPrefix(e.Name, "on")
		col.Events = append(col.Events, bare)
	}
}

// backfillTypes replaces the type cell of every attribute that is either
// still wildcard-typed or special-cased by the resolver. The two
// predicates are evaluated independently: a specific type from any other
// source is kept unless the resolver explicitly knows better.
func backfillTypes(col *catalog.Collection) {
	for i := range col.Attrs {
		backfillAttr(&col.Attrs[i])
	}
	for ti := range col.Tags {
		for i := range col.Tags[ti].Attributes {
			backfillAttr(&col.Tags[ti].Attributes[i])
		}
	}
}

func backfillAttr(a *catalog.Attr) {
	wildcard := a.Type.Get().IsAny()
	special := htmltype.HasSpecialCase(a.Name)
	if !wildcard && !special {
		return
	}
	name := a.Name
	a.Type = catalog.LazyType(func() htmltype.Type {
		return htmltype.Resolve(name)
	})
}

func stampBuiltIn(col *catalog.Collection) {
	for i := range col.Attrs {
		col.Attrs[i].BuiltIn = true
	}
	for i := range col.Events {
		col.Events[i].BuiltIn = true
	}
	for ti := range col.Tags {
		tag := &col.Tags[ti]
		tag.BuiltIn = true
		for i := range tag.Attributes {
			tag.Attributes[i].BuiltIn = true
		}
		for i := range tag.Properties {
			tag.Properties[i].BuiltIn = true
		}
		for i := range tag.Events {
			tag.Events[i].BuiltIn = true
		}
	}
}

func findTag(col *catalog.Collection, name string) *catalog.Tag {
	for i := range col.Tags {
		if col.Tags[i].TagName == name {
			return &col.Tags[i]
		}
	}
	return nil
}
