package vscodedata

import (
	"strings"

	"htmldata/catalog"
	"htmldata/htmltype"
)

// booleanValueSet is the format's marker for a valueless attribute.
const booleanValueSet = "v"

// Normalizer satisfies the builder's normalizer contract.
type Normalizer struct{}

func (Normalizer) Normalize(data []byte) (catalog.Collection, error) {
	doc, err := Parse(data)
	if err != nil {
		return catalog.Collection{}, err
	}
	return NormalizeDocument(doc), nil
}

// NormalizeDocument flattens a parsed document into catalog entities.
// Attributes named onX additionally produce an event entry under the same
// scope; the handler attribute itself is kept as a plain string. The
// BuiltIn flag is left unset here, the builders stamp provenance.
func NormalizeDocument(doc *Document) catalog.Collection {
	sets := make(map[string][]string, len(doc.ValueSets))
	for _, vs := range doc.ValueSets {
		names := make([]string, len(vs.Values))
		for i, v := range vs.Values {
			names[i] = v.Name
		}
		sets[vs.Name] = names
	}

	var col catalog.Collection
	for _, td := range doc.Tags {
		tag := catalog.Tag{
			TagName:     td.Name,
			Description: string(td.Description),
		}
		for _, ad := range td.Attributes {
			tag.Attributes = append(tag.Attributes, normalizeAttr(ad, td.Name, sets))
			if ev, ok := eventFor(ad, td.Name); ok {
				tag.Events = append(tag.Events, ev)
			}
		}
		col.Tags = append(col.Tags, tag)
	}
	for _, ad := range doc.GlobalAttributes {
		col.Attrs = append(col.Attrs, normalizeAttr(ad, "", sets))
		if ev, ok := eventFor(ad, ""); ok {
			col.Events = append(col.Events, ev)
		}
	}
	return col
}

func normalizeAttr(ad AttributeData, fromTag string, sets map[string][]string) catalog.Attr {
	return catalog.Attr{
		Name:        ad.Name,
		Kind:        catalog.KindAttribute,
		Type:        attrType(ad, sets),
		Description: string(ad.Description),
		FromTagName: fromTag,
	}
}

// attrType picks the attribute's type cell. Inline values win over a
// valueSet reference; set lookups stay lazy so documents may reference
// sets declared anywhere in the same document.
func attrType(ad AttributeData, sets map[string][]string) *catalog.TypeCell {
	if isEventHandler(ad.Name) {
		return catalog.StaticType(htmltype.StringType())
	}
	if len(ad.Values) > 0 {
		literals := make([]string, len(ad.Values))
		for i, v := range ad.Values {
			literals[i] = v.Name
		}
		return catalog.StaticType(htmltype.UnionType(literals...))
	}
	switch ad.ValueSet {
	case "":
		return catalog.StaticType(htmltype.AnyType())
	case booleanValueSet:
		return catalog.StaticType(htmltype.BooleanType())
	}
	name := ad.ValueSet
	return catalog.LazyType(func() htmltype.Type {
		literals, ok := sets[name]
		if !ok {
			return htmltype.AnyType()
		}
		return htmltype.UnionType(literals...)
	})
}

func eventFor(ad AttributeData, fromTag string) (catalog.Event, bool) {
	if !isEventHandler(ad.Name) {
		return catalog.Event{}, false
	}
	return catalog.Event{
		Name:        ad.Name,
		Kind:        catalog.KindEvent,
		Type:        catalog.StaticType(htmltype.AnyType()),
		Description: string(ad.Description),
		FromTagName: fromTag,
	}, true
}

func isEventHandler(name string) bool {
	return len(name) > 2 && strings.HasPrefix(name, "on") && !strings.Contains(name, "-")
}
