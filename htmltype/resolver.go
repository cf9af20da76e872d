package htmltype

import "strings"

// The resolver is the oracle consulted when a spec document leaves an
// attribute untyped. Both functions are pure in the attribute name.

// booleanAttrs are attributes whose presence alone carries the value.
var booleanAttrs = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"hidden":          true,
	"inert":           true,
	"ismap":           true,
	"itemscope":       true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"nomodule":        true,
	"novalidate":      true,
	"open":            true,
	"playsinline":     true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

var numberAttrs = map[string]bool{
	"cols":      true,
	"colspan":   true,
	"height":    true,
	"maxlength": true,
	"minlength": true,
	"rows":      true,
	"rowspan":   true,
	"size":      true,
	"span":      true,
	"start":     true,
	"tabindex":  true,
	"width":     true,
}

var enumAttrs = map[string][]string{
	"autocapitalize":  {"off", "none", "on", "sentences", "words", "characters"},
	"autocomplete":    {"on", "off"},
	"contenteditable": {"true", "false", "plaintext-only"},
	"crossorigin":     {"anonymous", "use-credentials"},
	"decoding":        {"sync", "async", "auto"},
	"dir":             {"ltr", "rtl", "auto"},
	"draggable":       {"true", "false"},
	"enterkeyhint":    {"enter", "done", "go", "next", "previous", "search", "send"},
	"loading":         {"eager", "lazy"},
	"method":          {"get", "post", "dialog"},
	"preload":         {"none", "metadata", "auto"},
	"spellcheck":      {"true", "false"},
	"target":          {"_self", "_blank", "_parent", "_top"},
	"translate":       {"yes", "no"},
	"wrap":            {"soft", "hard"},
}

// stringAttrs are special-cased names that stay plain strings but should not
// be left wildcard-typed when the source document omits value information.
var stringAttrs = map[string]bool{
	"accesskey":    true,
	"alt":          true,
	"class":        true,
	"controlslist": true,
	"href":         true,
	"id":           true,
	"is":           true,
	"lang":         true,
	"name":         true,
	"placeholder":  true,
	"rel":          true,
	"slot":         true,
	"src":          true,
	"srcset":       true,
	"style":        true,
	"title":        true,
	"value":        true,
}

// HasSpecialCase reports whether the resolver knows a precise type for name.
func HasSpecialCase(name string) bool {
	name = strings.ToLower(name)
	if booleanAttrs[name] || numberAttrs[name] || stringAttrs[name] {
		return true
	}
	_, ok := enumAttrs[name]
	return ok
}

// Resolve returns the type for name. Unknown names resolve to the wildcard.
// ARIA attributes and event handler attributes resolve to plain strings.
func Resolve(name string) Type {
	name = strings.ToLower(name)
	switch {
	case booleanAttrs[name]:
		return BooleanType()
	case numberAttrs[name]:
		return NumberType()
	case stringAttrs[name]:
		return StringType()
	}
	if literals, ok := enumAttrs[name]; ok {
		return UnionType(literals...)
	}
	if strings.HasPrefix(name, "aria-") || strings.HasPrefix(name, "data-") || strings.HasPrefix(name, "on") {
		return StringType()
	}
	return AnyType()
}
