package htmltype

import "encoding/json"

type Kind uint8

const (
	// Any is the wildcard type: the value is accepted unchecked.
	Any Kind = iota
	String
	Boolean
	Number
	// StringOrNull is used for scripting-only members such as input.value.
	StringOrNull
	// Union is a closed set of string literals, e.g. target="_self"|"_blank".
	Union
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	case StringOrNull:
		return "string | null"
	case Union:
		return "union"
	}
	return "any"
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Type describes the value space of an attribute, property or event.
// Literals is populated for Union kinds only.
type Type struct {
	Kind     Kind     `json:"kind"`
	Literals []string `json:"literals,omitempty"`
}

func AnyType() Type          { return Type{Kind: Any} }
func StringType() Type       { return Type{Kind: String} }
func BooleanType() Type      { return Type{Kind: Boolean} }
func NumberType() Type       { return Type{Kind: Number} }
func StringOrNullType() Type { return Type{Kind: StringOrNull} }

func UnionType(literals ...string) Type {
	return Type{Kind: Union, Literals: literals}
}

func (t Type) IsAny() bool { return t.Kind == Any }

func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind || len(t.Literals) != len(o.Literals) {
		return false
	}
	for i, l := range t.Literals {
		if o.Literals[i] != l {
			return false
		}
	}
	return true
}
