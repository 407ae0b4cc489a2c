package ir

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/goccy/go-yaml"
)

// FromAny converts a Go value into a Node. Maps with string keys become
// object nodes with keys in sorted order; yaml.MapSlice keeps its own
// order; slices become arrays. A *Node passes through untouched.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case Node:
		return &x, nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromInt(int64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case yaml.MapSlice:
		res := Object()
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprintf("%v", item.Key)
			}
			val, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			res.SetField(key, val)
		}
		return res, nil
	case map[string]any:
		res := Object()
		for _, key := range slices.Sorted(maps.Keys(x)) {
			val, err := FromAny(x[key])
			if err != nil {
				return nil, err
			}
			res.SetField(key, val)
		}
		return res, nil
	case map[string]*Node:
		res := Object()
		for _, key := range slices.Sorted(maps.Keys(x)) {
			res.SetField(key, x[key].Clone())
		}
		return res, nil
	case []any:
		res := Array()
		for i, e := range x {
			val, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.SetIndex(i, val)
		}
		return res, nil
	case []*Node:
		res := Array()
		for i, e := range x {
			res.SetIndex(i, e.Clone())
		}
		return res, nil
	}
	return fromReflect(v)
}

// FromKeyVals builds an object node from alternating key/value arguments,
// keeping the argument order.
func FromKeyVals(kvs ...any) (*Node, error) {
	if len(kvs)%2 != 0 {
		return nil, fmt.Errorf("odd key/value count %d", len(kvs))
	}
	res := Object()
	for i := 0; i < len(kvs); i += 2 {
		key, ok := kvs[i].(string)
		if !ok {
			return nil, fmt.Errorf("key %v is %T, not string", kvs[i], kvs[i])
		}
		val, err := FromAny(kvs[i+1])
		if err != nil {
			return nil, err
		}
		res.SetField(key, val)
	}
	return res, nil
}

func fromReflect(v any) (*Node, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		res := Array()
		for i := 0; i < rv.Len(); i++ {
			val, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			res.SetIndex(i, val)
		}
		return res, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("cannot convert map with %s keys", rv.Type().Key())
		}
		keys := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			keys = append(keys, iter.Key().String())
		}
		slices.Sort(keys)
		res := Object()
		for _, key := range keys {
			val, err := FromAny(rv.MapIndex(reflect.ValueOf(key)).Interface())
			if err != nil {
				return nil, err
			}
			res.SetField(key, val)
		}
		return res, nil
	case reflect.Pointer:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	}
	return nil, fmt.Errorf("cannot convert %T", v)
}

// ToAny exports a node back to plain Go values. Objects come out as
// yaml.MapSlice so key order survives; Undefined exports as nil.
func ToAny(y *Node) any {
	switch y.Type {
	case NullType, UndefinedType:
		return nil
	case BoolType:
		return y.Bool
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return int64(0)
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, yv := range y.Values {
			res[i] = ToAny(yv)
		}
		return res
	case ObjectType:
		res := make(yaml.MapSlice, len(y.Fields))
		for i := range y.Fields {
			res[i] = yaml.MapItem{Key: y.Fields[i], Value: ToAny(y.Values[i])}
		}
		return res
	default:
		panic("type")
	}
}

// ToMap exports an object node as a field map, sharing values with the
// node. Non-objects yield nil.
func ToMap(y *Node) map[string]*Node {
	if y.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(y.Fields))
	for i := range y.Fields {
		res[y.Fields[i]] = y.Values[i]
	}
	return res
}
