package builder

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"htmldata/catalog"
	"htmldata/htmltype"
)

// BuildUser builds the collection described by the user configuration.
// Each custom data source is resolved, normalized and merged in declared
// order; a broken source is reported to the sink and skipped, never
// aborting the build. Synthesized entries for the flat global name lists
// are prepended so that explicit data-source entries with the same name
// win a later last-writer merge.
func BuildUser(cfg Config, n Normalizer, sink Sink) catalog.Collection {
	var col catalog.Collection
	for i, src := range cfg.Sources() {
		data, label, err := resolveSource(src)
		if err != nil {
			sink.Report(fmt.Sprintf("could not read custom html data source %d", i), err)
			continue
		}
		sink.Trace("resolved custom html data source %d (%s)", i, label)
		next, err := n.Normalize(data)
		if err != nil {
			sink.Report(fmt.Sprintf("could not parse custom html data source %d (%s)", i, label), err)
			continue
		}
		col = catalog.MergeCollections(col, next)
	}

	return catalog.Collection{
		Tags:   append(synthesizeTags(cfg.GlobalTags), col.Tags...),
		Attrs:  append(synthesizeAttrs(cfg.GlobalAttributes), col.Attrs...),
		Events: append(synthesizeEvents(cfg.GlobalEvents), col.Events...),
	}
}

// resolveSource turns one configured source into raw document text. A
// string naming an existing file is read from disk; any other string is
// taken as the document itself; inline structured data is re-encoded.
func resolveSource(src interface{}) ([]byte, string, error) {
	switch v := src.(type) {
	case string:
		if info, err := os.Stat(v); err == nil && !info.IsDir() {
			data, err := os.ReadFile(v)
			if err != nil {
				return nil, v, errors.Wrapf(err, "read html data file %q", v)
			}
			return data, "file " + v, nil
		}
		return []byte(v), "inline text", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "inline object", errors.Wrap(err, "encode inline html data")
		}
		return data, "inline object", nil
	}
}

// Synthesized globals are minimal entities: the user asserts the name
// exists but supplies no structural detail, so attributes and events get
// the wildcard type and tags get no members.

func synthesizeTags(names []string) []catalog.Tag {
	tags := make([]catalog.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, catalog.Tag{
			TagName:    name,
			Attributes: []catalog.Attr{},
			Properties: []catalog.Attr{},
			Events:     []catalog.Event{},
			Slots:      []catalog.Slot{},
		})
	}
	return tags
}

func synthesizeAttrs(names []string) []catalog.Attr {
	attrs := make([]catalog.Attr, 0, len(names))
	for _, name := range names {
		attrs = append(attrs, catalog.Attr{
			Name: name,
			Kind: catalog.KindAttribute,
			Type: catalog.StaticType(htmltype.AnyType()),
		})
	}
	return attrs
}

func synthesizeEvents(names []string) []catalog.Event {
	events := make([]catalog.Event, 0, len(names))
	for _, name := range names {
		events = append(events, catalog.Event{
			Name: name,
			Kind: catalog.KindEvent,
			Type: catalog.StaticType(htmltype.AnyType()),
		})
	}
	return events
}
