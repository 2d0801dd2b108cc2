package schema

// Kind identifies the scalar category of a field or list element.
type Kind uint8

const (
	KindInvalid Kind = iota

	KindString
	KindInt
	KindUint
	KindFloat
	KindBool
	KindTime
	KindDuration
	KindUUID
	KindBytes
	KindMap
	KindObject
)

var kindNames = map[Kind]string{
	KindInvalid:  "invalid",
	KindString:   "string",
	KindInt:      "int",
	KindUint:     "uint",
	KindFloat:    "float",
	KindBool:     "bool",
	KindTime:     "time",
	KindDuration: "duration",
	KindUUID:     "uuid",
	KindBytes:    "bytes",
	KindMap:      "map",
	KindObject:   "object",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// IsNumeric reports whether the kind holds a numeric value.
func (k Kind) IsNumeric() bool {
	switch k {
	case KindInt, KindUint, KindFloat:
		return true
	default:
		return false
	}
}

// IsInteger reports whether the kind holds an integral value.
func (k Kind) IsInteger() bool {
	return k == KindInt || k == KindUint
}
