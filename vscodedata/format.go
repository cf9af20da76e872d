// Package vscodedata reads the VS Code custom-HTML-data JSON format
// (https://github.com/microsoft/vscode-html-languageservice/blob/main/docs/customData.md)
// and normalizes it into catalog entities. The built-in HTML5 baseline
// document ships embedded in this package.
package vscodedata

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Document is one custom-data document.
type Document struct {
	Version          float64         `json:"version"`
	Tags             []TagData       `json:"tags"`
	GlobalAttributes []AttributeData `json:"globalAttributes"`
	ValueSets        []ValueSet      `json:"valueSets"`
}

type TagData struct {
	Name        string          `json:"name"`
	Description Markup          `json:"description"`
	Attributes  []AttributeData `json:"attributes"`
}

type AttributeData struct {
	Name        string      `json:"name"`
	Description Markup      `json:"description"`
	ValueSet    string      `json:"valueSet"`
	Values      []ValueData `json:"values"`
}

type ValueData struct {
	Name        string `json:"name"`
	Description Markup `json:"description"`
}

type ValueSet struct {
	Name   string      `json:"name"`
	Values []ValueData `json:"values"`
}

// Markup is a description field that the format allows to be either a bare
// string or a {"kind","value"} object.
type Markup string

func (m *Markup) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = Markup(s)
		return nil
	}
	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.Wrap(err, "description is neither string nor markup object")
	}
	*m = Markup(obj.Value)
	return nil
}

// Parse decodes a custom-data document. A document without a version field
// is rejected.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode html data document")
	}
	if doc.Version == 0 {
		return nil, errors.New("html data document is missing its version field")
	}
	return &doc, nil
}
