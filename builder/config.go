// Package builder constructs catalog collections from the built-in HTML5
// baseline and from user configuration.
package builder

import "htmldata/catalog"

// Config is the user-facing configuration surface. CustomHTMLData is one
// data source or an ordered sequence of them; each source is inline
// structured data, the path of a data file, or raw document text. The
// Global lists are flat names the user asserts exist without structural
// detail.
type Config struct {
	CustomHTMLData   interface{} `json:"customHtmlData" mapstructure:"customHtmlData"`
	GlobalTags       []string    `json:"globalHtmlTags" mapstructure:"globalHtmlTags"`
	GlobalAttributes []string    `json:"globalHtmlAttributes" mapstructure:"globalHtmlAttributes"`
	GlobalEvents     []string    `json:"globalHtmlEvents" mapstructure:"globalHtmlEvents"`
}

// Sources flattens CustomHTMLData into its ordered source list.
func (c Config) Sources() []interface{} {
	switch v := c.CustomHTMLData.(type) {
	case nil:
		return nil
	case []interface{}:
		return v
	case []string:
		out := make([]interface{}, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	default:
		return []interface{}{v}
	}
}

// Normalizer converts one declarative custom-data document, given as raw
// JSON text, into catalog entities.
type Normalizer interface {
	Normalize(data []byte) (catalog.Collection, error)
}
