package vscodedata

import (
	_ "embed"
	"sync"
)

//go:embed html5.json
var baselineJSON []byte

var (
	baselineOnce sync.Once
	baselineDoc  *Document
	baselineErr  error
)

// Baseline returns the embedded HTML5 baseline document: the common element
// set with per-tag attributes, global attributes including ARIA, and the
// global event handler attributes. The document is parsed once.
func Baseline() (*Document, error) {
	baselineOnce.Do(func() {
		baselineDoc, baselineErr = Parse(baselineJSON)
	})
	return baselineDoc, baselineErr
}
