package ast

// KirinType is the tag-erased runtime type ordinal. Its numbering is part of
// the bytecode's stable external contract: an Any value's tag register holds
// exactly one of these ordinals, and LoadConst/cast opcodes depend on the
// numbering not changing across versions.
type KirinType uint8

const (
	Void KirinType = iota
	Any
	Null
	String
	Int
	Float
	Bool
	Variable
)

var kirinTypeNames = map[KirinType]string{
	Void:     "void",
	Any:      "any",
	Null:     "null",
	String:   "string",
	Int:      "int",
	Float:    "float",
	Bool:     "bool",
	Variable: "variable",
}

func (k KirinType) String() string {
	if name, ok := kirinTypeNames[k]; ok {
		return name
	}
	return "unknown"
}

// FromU8 reconstructs a KirinType from a raw tag byte, as read out of a
// register holding an Any value. Ordinals outside the known range report ok=false.
func FromU8(value uint8) (KirinType, bool) {
	switch KirinType(value) {
	case Void, Any, Null, String, Int, Float, Bool, Variable:
		return KirinType(value), true
	default:
		return Void, false
	}
}
