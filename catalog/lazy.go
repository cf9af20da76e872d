package catalog

import (
	"encoding/json"
	"sync"

	"htmldata/htmltype"
)

// TypeCell is a memoized type accessor. Resolution is deferred because it
// may be expensive or mutually recursive with spec loading; the resolve
// function runs at most once, and every Get returns the cached descriptor.
// Cells are shared by value across merge operations without recomputation.
type TypeCell struct {
	once    sync.Once
	resolve func() htmltype.Type
	val     htmltype.Type
}

// LazyType builds a cell that evaluates resolve on first Get.
func LazyType(resolve func() htmltype.Type) *TypeCell {
	return &TypeCell{resolve: resolve}
}

// StaticType builds an already-resolved cell.
func StaticType(t htmltype.Type) *TypeCell {
	return &TypeCell{val: t}
}

func (c *TypeCell) Get() htmltype.Type {
	if c == nil {
		return htmltype.AnyType()
	}
	c.once.Do(func() {
		if c.resolve != nil {
			c.val = c.resolve()
		}
	})
	return c.val
}

// MarshalJSON forces resolution; used by the inspection CLI.
func (c *TypeCell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Get())
}
