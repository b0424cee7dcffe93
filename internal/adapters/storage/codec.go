package storage

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Storage errors
var (
	// ErrCorruptData means a stored value failed to decode. Callers fall
	// back to a default collection and self-heal; it never crashes the app.
	ErrCorruptData = errors.New("stored data is corrupt")
	// ErrWriteFailed means the substrate rejected a write. The in-memory
	// state observed by callers is unchanged.
	ErrWriteFailed = errors.New("substrate write failed")
)

// Codec converts values to and from the substrate's string
// representation. Decode(Encode(v)) must reproduce v for every
// representable value; any compression is invisible above this layer.
type Codec interface {
	Encode(v any) (string, error)
	Decode(data string, v any) error
}

// JSONCodec stores plain JSON.
type JSONCodec struct{}

// Encode marshals v to JSON.
func (JSONCodec) Encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode unmarshals JSON into v.
// POST: returns ErrCorruptData (wrapped) on malformed input
func (JSONCodec) Decode(data string, v any) error {
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return nil
}

// shortKeys maps frequent JSON object keys to short stored forms. The
// underscore prefix keeps short names disjoint from real field names,
// so the rename is bijective and the round trip lossless.
var shortKeys = map[string]string{
	"id":          "_i",
	"name":        "_n",
	"firstName":   "_f",
	"lastName":    "_l",
	"email":       "_e",
	"phone":       "_t",
	"season":      "_s",
	"createdAt":   "_c",
	"description": "_d",
	"memberId":    "_mi",
	"activityId":  "_ai",
	"memberIds":   "_ms",
	"activityIds": "_as",
	"startDate":   "_sd",
	"endDate":     "_ed",
}

var longKeys = invert(shortKeys)

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// CompactCodec stores JSON with frequent object keys shortened. Purely
// a storage-size optimization; the decoded shape is identical to
// JSONCodec's.
type CompactCodec struct{}

// Encode marshals v to JSON with shortened object keys.
func (CompactCodec) Encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	var tree any
	if err := json.Unmarshal(b, &tree); err != nil {
		return "", err
	}
	out, err := json.Marshal(renameKeys(tree, shortKeys))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Decode restores shortened keys and unmarshals into v.
// POST: returns ErrCorruptData (wrapped) on malformed input
func (CompactCodec) Decode(data string, v any) error {
	var tree any
	if err := json.Unmarshal([]byte(data), &tree); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	b, err := json.Marshal(renameKeys(tree, longKeys))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return nil
}

// renameKeys rewrites object keys through the mapping, recursing into
// nested objects and arrays. Unmapped keys pass through unchanged.
func renameKeys(tree any, mapping map[string]string) any {
	switch node := tree.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for key, value := range node {
			if short, ok := mapping[key]; ok {
				key = short
			}
			out[key] = renameKeys(value, mapping)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, value := range node {
			out[i] = renameKeys(value, mapping)
		}
		return out
	default:
		return node
	}
}
