package point

import (
	"encoding/binary"
	"math"

	"github.com/foxtail/fxt/internal/bits"
)

// Numeric is the set of Go types a Scalar[T] or Array[T] Point may hold.
// Concrete Points are always instantiated with a plain builtin type (e.g.
// Scalar[int32], Scalar[bool]) so the any(v).(T) round-trips in
// encode/decodeScalar below always succeed.
type Numeric interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValueKind selects how a Scalar/Array element is rendered to and parsed
// from JSON (spec §4.1: bools serialize as JSON booleans, integers as hex
// strings, floats as JSON numbers).
type ValueKind uint8

const (
	KindBool ValueKind = iota
	KindInt
	KindFloat
)

func kindOf[T Numeric]() ValueKind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return KindBool
	case float32, float64:
		return KindFloat
	default:
		return KindInt
	}
}

func scalarWidth[T Numeric]() int {
	var zero T
	switch any(zero).(type) {
	case bool, int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	case int64, uint64, float64:
		return 8
	default:
		panic("point: unsupported scalar type")
	}
}

// encodeScalar writes v as little-endian raw bytes.
func encodeScalar[T Numeric](v T) []byte {
	switch x := any(v).(type) {
	case bool:
		return []byte{boolByte(x)}
	case int8:
		return []byte{byte(x)}
	case uint8:
		return []byte{x}
	case int16:
		b := make([]byte, 2)
		binary.LittleEndian.PutUint16(b, uint16(x))
		return b
	case uint16:
		b := make([]byte, 2)
		binary.LittleEndian.PutUint16(b, x)
		return b
	case int32:
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, uint32(x))
		return b
	case uint32:
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, x)
		return b
	case int64:
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, uint64(x))
		return b
	case uint64:
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, x)
		return b
	case float32:
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, math.Float32bits(x))
		return b
	case float64:
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, math.Float64bits(x))
		return b
	default:
		panic("point: unsupported scalar type")
	}
}

func decodeScalar[T Numeric](b []byte) T {
	var zero T
	switch any(zero).(type) {
	case bool:
		return any(b[0] != 0).(T)
	case int8:
		return any(int8(b[0])).(T)
	case uint8:
		return any(b[0]).(T)
	case int16:
		return any(int16(binary.LittleEndian.Uint16(b))).(T)
	case uint16:
		return any(binary.LittleEndian.Uint16(b)).(T)
	case int32:
		return any(int32(binary.LittleEndian.Uint32(b))).(T)
	case uint32:
		return any(binary.LittleEndian.Uint32(b)).(T)
	case int64:
		return any(int64(binary.LittleEndian.Uint64(b))).(T)
	case uint64:
		return any(binary.LittleEndian.Uint64(b)).(T)
	case float32:
		return any(math.Float32frombits(binary.LittleEndian.Uint32(b))).(T)
	case float64:
		return any(math.Float64frombits(binary.LittleEndian.Uint64(b))).(T)
	default:
		panic("point: unsupported scalar type")
	}
}

// scalarToUint64 reinterprets v's raw little-endian bytes as an unsigned
// integer of the same width, used to render the hex-string wire form of
// integer Points regardless of signedness.
func scalarToUint64[T Numeric](v T) uint64 {
	b := encodeScalar(v)
	var out uint64
	for i := len(b) - 1; i >= 0; i-- {
		out = out<<8 | uint64(b[i])
	}
	return out
}

// uint64ToScalar is the inverse of scalarToUint64, used when parsing a hex
// or decimal string back into T.
func uint64ToScalar[T Numeric](u uint64) T {
	width := scalarWidth[T]()
	b := make([]byte, width)
	for i := 0; i < width; i++ {
		b[i] = byte(u >> (8 * i))
	}
	return decodeScalar[T](b)
}

// ToFloat64 widens v to a float64, used by affine-scaler Components that
// need a common numeric type to compute across mismatched input/output
// widths.
func ToFloat64[T Numeric](v T) float64 {
	switch x := any(v).(type) {
	case bool:
		if x {
			return 1
		}
		return 0
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case float32:
		return float64(x)
	case float64:
		return x
	default:
		panic("point: unsupported scalar type")
	}
}

func clampFloat(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// FromFloat64Clamped narrows f to T, clamping to T's representable range
// for integer kinds rather than overflowing (spec §4.4: "overflow is
// clamped to the output type's range, an explicit choice, not undefined
// behavior").
func FromFloat64Clamped[T Numeric](f float64) T {
	var zero T
	switch any(zero).(type) {
	case bool:
		return any(f != 0).(T)
	case int8:
		return any(int8(clampFloat(f, -128, 127))).(T)
	case int16:
		return any(int16(clampFloat(f, -32768, 32767))).(T)
	case int32:
		return any(int32(clampFloat(f, -2147483648, 2147483647))).(T)
	case int64:
		// float64(MaxInt64) rounds up to 2^63, which int64 cannot hold.
		if f >= 9223372036854775807 {
			return any(int64(math.MaxInt64)).(T)
		}
		return any(int64(clampFloat(f, -9223372036854775808, 9223372036854775807))).(T)
	case uint8:
		return any(uint8(clampFloat(f, 0, 255))).(T)
	case uint16:
		return any(uint16(clampFloat(f, 0, 65535))).(T)
	case uint32:
		return any(uint32(clampFloat(f, 0, 4294967295))).(T)
	case uint64:
		// float64(MaxUint64) rounds up to 2^64, which uint64 cannot hold.
		if f >= 18446744073709551615 {
			return any(uint64(math.MaxUint64)).(T)
		}
		return any(uint64(clampFloat(f, 0, 18446744073709551615))).(T)
	case float32:
		return any(float32(f)).(T)
	case float64:
		return any(f).(T)
	default:
		panic("point: unsupported scalar type")
	}
}

// FromRawUint64 reinterprets the low bytes of u as a T, the same width
// conversion used by the hex Point codec. It lets Component kinds outside
// this package (e.g. the byte/word mux) assemble a raw bit pattern into a
// Scalar[T] value without depending on this package's unexported codec.
func FromRawUint64[T Numeric](u uint64) T {
	return uint64ToScalar[T](u)
}

// ToRawUint64 is the inverse of FromRawUint64.
func ToRawUint64[T Numeric](v T) uint64 {
	return scalarToUint64(v)
}

// scalarToJSON renders v per its ValueKind.
func scalarToJSON[T Numeric](v T, kind ValueKind) any {
	switch kind {
	case KindBool:
		return any(v)
	case KindFloat:
		switch x := any(v).(type) {
		case float32:
			return float64(x)
		case float64:
			return x
		}
		return nil
	default: // KindInt
		return bits.HexString(scalarToUint64(v))
	}
}

// scalarFromJSON parses a decoded JSON value (bool, float64, or string) back
// into T per kind.
func scalarFromJSON[T Numeric](raw any, kind ValueKind) (T, error) {
	var zero T
	switch kind {
	case KindBool:
		bv, ok := raw.(bool)
		if !ok {
			return zero, errJSONShape
		}
		return any(bv).(T), nil
	case KindFloat:
		f, ok := raw.(float64)
		if !ok {
			return zero, errJSONShape
		}
		switch any(zero).(type) {
		case float32:
			return any(float32(f)).(T), nil
		default:
			return any(f).(T), nil
		}
	default: // KindInt
		s, ok := raw.(string)
		if !ok {
			return zero, errJSONShape
		}
		u, err := bits.ParseHexOrDec(s)
		if err != nil {
			return zero, err
		}
		return uint64ToScalar[T](u), nil
	}
}
