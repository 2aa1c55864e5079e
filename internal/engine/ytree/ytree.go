// Package ytree provides safe traversal of schema-less JSON trees.
//
// YouTube page data is a deeply nested forest of "renderer" objects whose
// shape changes without notice. Node wraps a decoded any-typed value and lets
// extractors probe arbitrary paths without type assertions or panics: a
// missing key, an out-of-range index, or a type mismatch at any depth simply
// yields an absent Node, and every accessor on an absent Node returns a zero
// value.
package ytree

import (
	"bytes"
	"encoding/json"
)

// Node is a cursor into a decoded JSON tree. The zero Node is absent.
type Node struct {
	val   any
	valid bool
}

// Parse decodes raw JSON into a Node. Numbers decode as json.Number so large
// integer counts survive untruncated.
func Parse(data []byte) (Node, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return Node{}, err
	}
	return Node{val: v, valid: true}, nil
}

// From wraps an already-decoded value (map[string]any / []any / scalar).
// From(nil) is absent.
func From(v any) Node {
	if v == nil {
		return Node{}
	}
	return Node{val: v, valid: true}
}

// Exists reports whether the node holds any value, including JSON null.
func (n Node) Exists() bool { return n.valid }

// Value returns the underlying decoded value, or nil when absent.
func (n Node) Value() any {
	if !n.valid {
		return nil
	}
	return n.val
}

// Get walks a path of string keys and int indexes. Any miss along the way
// returns an absent Node.
func (n Node) Get(path ...any) Node {
	cur := n
	for _, step := range path {
		switch s := step.(type) {
		case string:
			cur = cur.Key(s)
		case int:
			cur = cur.Index(s)
		default:
			return Node{}
		}
		if !cur.valid {
			return Node{}
		}
	}
	return cur
}

// Key descends into an object field.
func (n Node) Key(key string) Node {
	if !n.valid {
		return Node{}
	}
	obj, ok := n.val.(map[string]any)
	if !ok {
		return Node{}
	}
	v, ok := obj[key]
	if !ok {
		return Node{}
	}
	return Node{val: v, valid: true}
}

// Index descends into an array element.
func (n Node) Index(i int) Node {
	if !n.valid {
		return Node{}
	}
	arr, ok := n.val.([]any)
	if !ok || i < 0 || i >= len(arr) {
		return Node{}
	}
	return Node{val: arr[i], valid: true}
}

// Has reports whether the object node carries the given key.
func (n Node) Has(key string) bool { return n.Key(key).valid }

// Str returns the node's string value, or "" when absent or not a string.
func (n Node) Str() string {
	if !n.valid {
		return ""
	}
	s, _ := n.val.(string)
	return s
}

// Int returns the node's integer value and whether one was present.
// Accepts json.Number and float64 (for trees built from Go literals).
func (n Node) Int() (int64, bool) {
	if !n.valid {
		return 0, false
	}
	switch v := n.val.(type) {
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			f, ferr := v.Float64()
			if ferr != nil {
				return 0, false
			}
			return int64(f), true
		}
		return i, true
	case float64:
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}

// Bool returns the node's boolean value, or false when absent or mistyped.
func (n Node) Bool() bool {
	if !n.valid {
		return false
	}
	b, _ := n.val.(bool)
	return b
}

// Arr returns the node's elements, or nil when it is not an array.
func (n Node) Arr() []Node {
	if !n.valid {
		return nil
	}
	arr, ok := n.val.([]any)
	if !ok {
		return nil
	}
	out := make([]Node, len(arr))
	for i, v := range arr {
		out[i] = Node{val: v, valid: true}
	}
	return out
}

// Len returns the array length, or 0 for anything else.
func (n Node) Len() int {
	if !n.valid {
		return 0
	}
	arr, ok := n.val.([]any)
	if !ok {
		return 0
	}
	return len(arr)
}

// IsObject reports whether the node is a JSON object.
func (n Node) IsObject() bool {
	if !n.valid {
		return false
	}
	_, ok := n.val.(map[string]any)
	return ok
}
