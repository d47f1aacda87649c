package claims

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is an ordered JSON object. A token payload is an Object.
//
// Setting an existing key replaces its value in place, so a key keeps the
// position of its first occurrence. The zero Object is empty and ready to use.
type Object struct {
	pairs *orderedmap.OrderedMap[string, Value]
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{pairs: orderedmap.New[string, Value]()}
}

// Parse decodes data as a JSON object. The text must be valid UTF-8.
func Parse(data []byte) (*Object, error) {
	if !utf8.Valid(data) || !json.Valid(data) {
		return nil, ErrInvalidJSON
	}
	obj := &Object{}
	if err := json.Unmarshal(data, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (o *Object) init() {
	if o.pairs == nil {
		o.pairs = orderedmap.New[string, Value]()
	}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil || o.pairs == nil {
		return 0
	}
	return o.pairs.Len()
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil || o.pairs == nil {
		return Value{}, false
	}
	return o.pairs.Get(key)
}

// Set stores v under key and returns o for chaining.
func (o *Object) Set(key string, v Value) *Object {
	o.init()
	o.pairs.Set(key, v)
	return o
}

// Keys returns the keys in order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	o.Range(func(key string, _ Value) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Range calls fn for each pair in order until fn returns false.
func (o *Object) Range(fn func(key string, v Value) bool) {
	if o == nil || o.pairs == nil {
		return
	}
	for pair := o.pairs.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Map converts o into a plain map, as accepted by APIs built on
// map[string]any.
func (o *Object) Map() map[string]any {
	out := make(map[string]any, o.Len())
	o.Range(func(key string, v Value) bool {
		out[key] = v.Interface()
		return true
	})
	return out
}

// Equal reports whether o and other hold the same keys with equal values,
// ignoring order.
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	equal := true
	o.Range(func(key string, v Value) bool {
		ov, ok := other.Get(key)
		equal = ok && v.Equal(ov)
		return equal
	})
	return equal
}

// Indent renders o as JSON with one line per member, each level indented by
// indent.
func (o *Object) Indent(prefix, indent string) ([]byte, error) {
	raw, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, prefix, indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// MarshalJSON renders o as compact JSON in key order, without HTML escaping.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := o.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Object) encode(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	var err error
	first := true
	o.Range(func(key string, v Value) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err = encodeString(buf, key); err != nil {
			return false
		}
		buf.WriteByte(':')
		if err = v.encode(buf); err != nil {
			err = fmt.Errorf("key %q: %w", key, err)
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSON replaces the contents of o with the decoded JSON object.
// Any other top-level JSON value yields ErrNotObject.
func (o *Object) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return ErrNotObject
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}
	pairs := orderedmap.New[string, Value]()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: object key %v", ErrInvalidJSON, tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var v Value
		if err := v.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		pairs.Set(key, v)
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	o.pairs = pairs
	return nil
}
