// Package jsoncodec is the small-footprint, pluggable JSON reader/writer
// façade spec §9 calls for ("the source uses an embedded JSON library; the
// spec treats it as a pluggable reader/writer with two operations: parse and
// serialize"). It wraps json-iterator/go (grounded on ghjramos-aistore and
// AKJUS-bsc-erigon, both of which take json-iterator as a direct dependency)
// so the rest of the engine never imports encoding/json directly, and a
// future swap to a leaner embedded parser only touches this file.
package jsoncodec

import (
	jsoniter "github.com/json-iterator/go"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal serializes v.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// MarshalIndent serializes v with indentation, used for the verbose CLI
// rendering path (spec §4.1 to_json(dst, verbose)).
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}

// Unmarshal parses src into v.
func Unmarshal(src []byte, v any) error {
	return api.Unmarshal(src, v)
}

// RawMessage is a deferred-decode JSON value, re-exported so callers don't
// need to import encoding/json or json-iterator directly.
type RawMessage = jsoniter.RawMessage

// Object is a loosely typed JSON object view, used when decoding Point
// "val" payloads whose shape depends on the concrete Point kind (spec §4.1).
type Object = map[string]any
