package jsonprobe

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Package jsonprobe walks loosely-typed decoded JSON (map[string]any trees)
// and bails out with a zero value the first time a path deviates from the
// expected shape. Upstream payloads are partially populated, so every lookup
// here is total: no panics, no errors, just (value, ok).

// Value follows keys through nested objects and returns the value at the end
// of the path. It returns (nil, false) the moment a segment is missing or the
// current node is not an object.
func Value(doc any, keys ...string) (any, bool) {
	current := doc
	for _, key := range keys {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		next, ok := obj[key]
		if !ok || next == nil {
			return nil, false
		}
		current = next
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

// Map returns the object at the path, or (nil, false) when the path deviates.
func Map(doc any, keys ...string) (map[string]any, bool) {
	raw, ok := Value(doc, keys...)
	if !ok {
		return nil, false
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, false
	}
	return obj, true
}

// Slice returns the array at the path, or (nil, false) when the path deviates.
func Slice(doc any, keys ...string) ([]any, bool) {
	raw, ok := Value(doc, keys...)
	if !ok {
		return nil, false
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	return items, true
}

func String(doc any, keys ...string) (string, bool) {
	raw, ok := Value(doc, keys...)
	if !ok {
		return "", false
	}
	value, ok := raw.(string)
	if !ok {
		return "", false
	}
	return value, true
}

// StringOr is String with a fallback, trimmed.
func StringOr(doc any, fallback string, keys ...string) string {
	value, ok := String(doc, keys...)
	if !ok {
		return fallback
	}
	return strings.TrimSpace(value)
}

func Bool(doc any, keys ...string) (bool, bool) {
	raw, ok := Value(doc, keys...)
	if !ok {
		return false, false
	}
	value, ok := raw.(bool)
	if !ok {
		return false, false
	}
	return value, true
}

// Int coerces the value at the path to int64. Decoded JSON numbers arrive as
// float64, but upstream also ships numeric strings and json.Number, so all
// three are accepted.
func Int(doc any, keys ...string) (int64, bool) {
	raw, ok := Value(doc, keys...)
	if !ok {
		return 0, false
	}
	return coerceInt(raw)
}

// Float coerces the value at the path to float64.
func Float(doc any, keys ...string) (float64, bool) {
	raw, ok := Value(doc, keys...)
	if !ok {
		return 0, false
	}
	return coerceFloat(raw)
}

// IntAny returns the first key in src that coerces to a non-zero integer.
// Used for provider payloads that spell the same aggregate several ways.
func IntAny(src map[string]any, keys ...string) (int64, bool) {
	for _, key := range keys {
		if value, ok := Int(src, key); ok {
			return value, true
		}
	}
	return 0, false
}

// FloatAny is IntAny for floats.
func FloatAny(src map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		if value, ok := Float(src, key); ok {
			return value, true
		}
	}
	return 0, false
}

func coerceInt(raw any) (int64, bool) {
	switch typed := raw.(type) {
	case float64:
		return int64(typed), true
	case float32:
		return int64(typed), true
	case int:
		return int64(typed), true
	case int64:
		return typed, true
	case json.Number:
		v, err := typed.Int64()
		if err != nil {
			f, ferr := typed.Float64()
			if ferr != nil {
				return 0, false
			}
			return int64(f), true
		}
		return v, true
	case string:
		v, err := strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

func coerceFloat(raw any) (float64, bool) {
	switch typed := raw.(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case json.Number:
		v, err := typed.Float64()
		if err != nil {
			return 0, false
		}
		return v, true
	case string:
		v, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}
