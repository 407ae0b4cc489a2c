package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	UndefinedType
	NumberType
	StringType
	BoolType
	ObjectType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ObjectType:    "Object",
		ArrayType:     "Array",
		StringType:    "String",
		NumberType:    "Number",
		BoolType:      "Bool",
		NullType:      "Null",
		UndefinedType: "Undefined",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":      NullType,
		"Undefined": UndefinedType,
		"Bool":      BoolType,
		"Number":    NumberType,
		"String":    StringType,
		"Array":     ArrayType,
		"Object":    ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		UndefinedType,
		NumberType,
		StringType,
		BoolType,
		ObjectType,
		ArrayType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

func (t Type) IsContainer() bool {
	return !t.IsLeaf()
}
