package catalog

// The merge engine is a keyed map-reduction applied in source order:
// one output entry per identity key, first-seen order preserved. Scalars
// are last-writer-wins, member lists are unioned by the same rule, and
// BuiltIn is the logical AND of all contributors, so a name re-declared
// by a user source never claims built-in provenance.
//
// Inputs are assumed well-formed: an entry without its identity key is a
// defect in the upstream normalizer and is not defended against here.

// MergeAttrs unions attribute lists by Name. On collision the later
// entry's Type, Description, Kind and FromTagName override the earlier.
func MergeAttrs(lists ...[]Attr) []Attr {
	index := make(map[string]int)
	var out []Attr
	for _, list := range lists {
		for _, a := range list {
			i, ok := index[a.Name]
			if !ok {
				index[a.Name] = len(out)
				out = append(out, a)
				continue
			}
			a.BuiltIn = out[i].BuiltIn && a.BuiltIn
			out[i] = a
		}
	}
	return out
}

// MergeEvents unions event lists by Name with the same collision rule as
// MergeAttrs.
func MergeEvents(lists ...[]Event) []Event {
	index := make(map[string]int)
	var out []Event
	for _, list := range lists {
		for _, e := range list {
			i, ok := index[e.Name]
			if !ok {
				index[e.Name] = len(out)
				out = append(out, e)
				continue
			}
			e.BuiltIn = out[i].BuiltIn && e.BuiltIn
			out[i] = e
		}
	}
	return out
}

func mergeSlots(lists ...[]Slot) []Slot {
	index := make(map[string]int)
	var out []Slot
	for _, list := range lists {
		for _, s := range list {
			i, ok := index[s.Name]
			if !ok {
				index[s.Name] = len(out)
				out = append(out, s)
				continue
			}
			out[i] = s
		}
	}
	return out
}

// MergeTags unions tag lists by TagName. A tag present in more than one
// input keeps the last non-empty Description, and its member lists are
// recursively unioned by name.
func MergeTags(lists ...[]Tag) []Tag {
	index := make(map[string]int)
	var out []Tag
	for _, list := range lists {
		for _, t := range list {
			i, ok := index[t.TagName]
			if !ok {
				index[t.TagName] = len(out)
				out = append(out, t)
				continue
			}
			cur := out[i]
			if t.Description != "" {
				cur.Description = t.Description
			}
			cur.Attributes = MergeAttrs(cur.Attributes, t.Attributes)
			cur.Properties = MergeAttrs(cur.Properties, t.Properties)
			cur.Events = MergeEvents(cur.Events, t.Events)
			cur.Slots = mergeSlots(cur.Slots, t.Slots)
			cur.BuiltIn = cur.BuiltIn && t.BuiltIn
			out[i] = cur
		}
	}
	return out
}

// MergeCollections folds collections left to right, list field by list
// field. Later collections win scalar collisions.
func MergeCollections(collections ...Collection) Collection {
	var out Collection
	for _, c := range collections {
		out = Collection{
			Tags:   MergeTags(out.Tags, c.Tags),
			Attrs:  MergeAttrs(out.Attrs, c.Attrs),
			Events: MergeEvents(out.Events, c.Events),
		}
	}
	return out
}
