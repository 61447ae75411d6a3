package txnorm

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

// ErrNotAnObject is returned by ParseRaw when the payload is valid JSON but not an object.
var ErrNotAnObject = errors.New("raw transaction is not a JSON object")

// Raw is a loosely-typed transaction record exactly as the RPC provider sent it.
//
// No field is guaranteed to be present or well-typed, so every read goes
// through the get-or-default accessors below. Numbers decoded by ParseRaw
// and ParseBatch are kept as json.Number to avoid losing lamport precision.
type Raw map[string]any

// ParseRaw decodes a single JSON object into a Raw record.
func ParseRaw(data []byte) (Raw, error) {
	v, err := decode(data)
	if err != nil {
		return nil, err
	}

	obj, ok := asObject(v)
	if !ok {
		return nil, ErrNotAnObject
	}

	return obj, nil
}

// ParseBatch decodes the `result` member of a JSON-RPC response into a batch
// of Raw records.
//
// An absent, null, undecodable or non-list result is an empty batch. List
// entries that are not objects are kept as empty records so the normalizer
// rejects them instead of them vanishing silently here.
func ParseBatch(result json.RawMessage) []Raw {
	batch := make([]Raw, 0)
	if len(result) == 0 {
		return batch
	}

	v, err := decode(result)
	if err != nil {
		return batch
	}

	items, ok := v.([]any)
	if !ok {
		return batch
	}

	for _, item := range items {
		obj, ok := asObject(item)
		if !ok {
			obj = Raw{}
		}
		batch = append(batch, obj)
	}

	return batch
}

func decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func asObject(v any) (Raw, bool) {
	switch obj := v.(type) {
	case Raw:
		return obj, obj != nil
	case map[string]any:
		return Raw(obj), obj != nil
	default:
		return nil, false
	}
}

// Lookup walks path through nested objects (string steps) and lists (int
// steps). It reports false as soon as a step is missing or the value at that
// point has the wrong shape. A present JSON null is returned as (nil, true).
func (r Raw) Lookup(path ...any) (any, bool) {
	var cur any = r
	for _, step := range path {
		switch key := step.(type) {
		case string:
			obj, ok := asObject(cur)
			if !ok {
				return nil, false
			}
			next, ok := obj[key]
			if !ok {
				return nil, false
			}
			cur = next
		case int:
			list, ok := cur.([]any)
			if !ok || key < 0 || key >= len(list) {
				return nil, false
			}
			cur = list[key]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Has reports whether path leads to a present, non-null value.
func (r Raw) Has(path ...any) bool {
	v, ok := r.Lookup(path...)
	return ok && v != nil
}

// String returns the string at path.
func (r Raw) String(path ...any) (string, bool) {
	v, ok := r.Lookup(path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Int64 returns the integer at path. json.Number, floats without a
// fractional part, Go integer kinds and numeric strings are accepted.
func (r Raw) Int64(path ...any) (int64, bool) {
	v, ok := r.Lookup(path...)
	if !ok {
		return 0, false
	}
	return toInt64(v)
}

// Uint64 is Int64 restricted to non-negative values.
func (r Raw) Uint64(path ...any) (uint64, bool) {
	n, ok := r.Int64(path...)
	if !ok || n < 0 {
		return 0, false
	}
	return uint64(n), true
}

// Float64 returns the number at path.
func (r Raw) Float64(path ...any) (float64, bool) {
	v, ok := r.Lookup(path...)
	if !ok {
		return 0, false
	}
	return toFloat64(v)
}

// List returns the list at path.
func (r Raw) List(path ...any) ([]any, bool) {
	v, ok := r.Lookup(path...)
	if !ok {
		return nil, false
	}
	list, ok := v.([]any)
	return list, ok
}

// Object returns the nested object at path.
func (r Raw) Object(path ...any) (Raw, bool) {
	v, ok := r.Lookup(path...)
	if !ok {
		return nil, false
	}
	return asObject(v)
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	case float64:
		return floatToInt64(n)
	case float32:
		return floatToInt64(float64(n))
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uintToInt64(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uintToInt64(n)
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

func uintToInt64(n uint64) (int64, bool) {
	if n > math.MaxInt64 {
		return 0, false
	}
	return int64(n), true
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		if i, ok := toInt64(v); ok {
			return float64(i), true
		}
		return 0, false
	}
}

// accountKey returns the i-th entry of transaction.message.accountKeys.
// Entries are plain strings, or objects with a `pubkey` member in the
// jsonParsed encoding. Anything else reads as "".
func accountKey(raw Raw, i int) string {
	if key, ok := raw.String("transaction", "message", "accountKeys", i); ok {
		return key
	}
	if key, ok := raw.String("transaction", "message", "accountKeys", i, "pubkey"); ok {
		return key
	}
	return ""
}
