package debugui

import (
	"fmt"
	"reflect"
	"sync"
)

// FieldInfo describes one exported field. IsStruct marks nested structs
// that are flattened rather than printed.
type FieldInfo struct {
	Name     string
	Index    int
	IsStruct bool
}

// FieldRow is one flattened field of an inspected value. Nested struct
// fields are joined with a dot.
type FieldRow struct {
	Name  string
	Value string
}

// ReflectionCache memoizes the exported fields of struct types.
type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

// NewReflectionCache returns an empty cache. It is safe for concurrent use.
func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

// GetFields returns the exported fields of t, or nil if t is not a struct.
func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			fields = append(fields, FieldInfo{
				Name:     field.Name,
				Index:    i,
				IsStruct: field.Type.Kind() == reflect.Struct && !implementsStringer(field.Type),
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

// Rows flattens the exported fields of v. Values implementing fmt.Stringer
// are printed with String.
func (rc *ReflectionCache) Rows(v any) []FieldRow {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	return rc.appendRows(nil, "", val)
}

func (rc *ReflectionCache) appendRows(rows []FieldRow, prefix string, val reflect.Value) []FieldRow {
	for _, field := range rc.GetFields(val.Type()) {
		fieldVal := val.Field(field.Index)
		name := prefix + field.Name
		if field.IsStruct {
			rows = rc.appendRows(rows, name+".", fieldVal)
			continue
		}
		rows = append(rows, FieldRow{Name: name, Value: fmt.Sprint(fieldVal.Interface())})
	}
	return rows
}

var stringerType = reflect.TypeFor[fmt.Stringer]()

func implementsStringer(t reflect.Type) bool {
	return t.Implements(stringerType) || reflect.PointerTo(t).Implements(stringerType)
}

var globalReflectionCache = NewReflectionCache()
