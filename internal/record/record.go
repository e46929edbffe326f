// Package record implements a declarative framework for fixed-layout binary
// records. A record type is described by an ordered field schema rather than
// a type hierarchy: each field carries a primitive wire type, a repetition
// count, and an optional decode/encode function pair translating between raw
// primitive values and semantic values.
package record

import (
	"encoding/binary"
	"fmt"
)

// FieldType is the primitive wire type of a schema field.
type FieldType int

const (
	// Uint8 is a single unsigned byte.
	Uint8 FieldType = iota
	// Uint16 is a 2-byte unsigned integer in the schema's byte order.
	Uint16
	// Uint32 is a 4-byte unsigned integer in the schema's byte order.
	Uint32
	// Uint64 is an 8-byte unsigned integer in the schema's byte order.
	Uint64
	// Bytes is a run of Count raw bytes, passed to the field's decode
	// function as a []byte.
	Bytes
)

func (t FieldType) size() int {
	switch t {
	case Uint16:
		return 2
	case Uint32:
		return 4
	case Uint64:
		return 8
	default:
		return 1
	}
}

// Field describes one member of a record layout.
//
// Decode translates the raw primitive value(s) into a semantic value and
// Encode must be its exact inverse; when either is nil the raw value is used
// as-is. For Count > 1 the raw value is a slice of the primitive type, except
// for Bytes fields which always pass a []byte of Count bytes.
type Field struct {
	Key     string
	Type    FieldType
	Count   int // repetition count, 0 means 1
	Default any
	Decode  func(raw any) (any, error)
	Encode  func(v any) (any, error)
}

func (f Field) count() int {
	if f.Count <= 0 {
		return 1
	}
	return f.Count
}

func (f Field) size() int {
	return f.Type.size() * f.count()
}

// Schema is an ordered list of fields sharing a single byte order. A
// schema's wire size is fixed: the sum over fields of primitive size times
// repetition count.
type Schema struct {
	Order  binary.ByteOrder
	Fields []Field
}

// Record is a decoded record instance, keyed by field key.
type Record map[string]any

// FormatError reports a structural failure while decoding or encoding a
// record: a buffer of the wrong size, or a field whose decode/encode
// function rejected its value. Key and Raw identify the offending field
// where one is known.
type FormatError struct {
	Key string
	Raw any
	Msg string
	Err error
}

func (e *FormatError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("record: field %q: %s (raw value %v)", e.Key, e.Msg, e.Raw)
	}
	return "record: " + e.Msg
}

func (e *FormatError) Unwrap() error { return e.Err }

// Size returns the fixed on-disk byte size of records of this schema.
func (s *Schema) Size() int {
	n := 0
	for _, f := range s.Fields {
		n += f.size()
	}
	return n
}

// Keys returns the field keys in declaration order.
func (s *Schema) Keys() []string {
	keys := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		keys[i] = f.Key
	}
	return keys
}

// Defaults returns a record populated with every field's default value.
func (s *Schema) Defaults() Record {
	rec := make(Record, len(s.Fields))
	for _, f := range s.Fields {
		rec[f.Key] = f.Default
	}
	return rec
}

// Decode unpacks buf into a record. The buffer length must equal Size()
// exactly. Raw primitives are unpacked in declaration order and each field's
// decode function is applied to its raw value; a decode failure is reported
// as a FormatError carrying the field key and the raw value.
func (s *Schema) Decode(buf []byte) (Record, error) {
	if len(buf) != s.Size() {
		return nil, &FormatError{Msg: fmt.Sprintf("buffer length %d does not match record size %d", len(buf), s.Size())}
	}

	rec := make(Record, len(s.Fields))
	off := 0
	for _, f := range s.Fields {
		raw := s.unpack(f, buf[off:off+f.size()])
		off += f.size()

		if f.Decode == nil {
			rec[f.Key] = raw
			continue
		}
		v, err := f.Decode(raw)
		if err != nil {
			return nil, &FormatError{Key: f.Key, Raw: raw, Msg: err.Error(), Err: err}
		}
		rec[f.Key] = v
	}
	return rec, nil
}

// Encode packs rec into a buffer of exactly Size() bytes, applying each
// field's encode function and repacking the raw primitives in declaration
// order. Given values produced by Decode, the output reproduces the original
// buffer bit for bit.
func (s *Schema) Encode(rec Record) ([]byte, error) {
	buf := make([]byte, s.Size())
	off := 0
	for _, f := range s.Fields {
		v, ok := rec[f.Key]
		if !ok {
			return nil, &FormatError{Key: f.Key, Msg: "missing value"}
		}

		raw := v
		if f.Encode != nil {
			var err error
			raw, err = f.Encode(v)
			if err != nil {
				return nil, &FormatError{Key: f.Key, Raw: v, Msg: err.Error(), Err: err}
			}
		}

		if err := s.pack(f, raw, buf[off:off+f.size()]); err != nil {
			return nil, err
		}
		off += f.size()
	}
	return buf, nil
}

// unpack reads one field's raw value from buf, which is exactly f.size()
// bytes. Scalar fields yield a single primitive, repeated fields a slice.
func (s *Schema) unpack(f Field, buf []byte) any {
	if f.Type == Bytes {
		raw := make([]byte, len(buf))
		copy(raw, buf)
		return raw
	}

	n := f.count()
	w := f.Type.size()
	if n == 1 {
		return s.scalar(f.Type, buf)
	}
	switch f.Type {
	case Uint8:
		raw := make([]uint8, n)
		copy(raw, buf)
		return raw
	case Uint16:
		raw := make([]uint16, n)
		for i := range raw {
			raw[i] = s.Order.Uint16(buf[i*w:])
		}
		return raw
	case Uint32:
		raw := make([]uint32, n)
		for i := range raw {
			raw[i] = s.Order.Uint32(buf[i*w:])
		}
		return raw
	default:
		raw := make([]uint64, n)
		for i := range raw {
			raw[i] = s.Order.Uint64(buf[i*w:])
		}
		return raw
	}
}

func (s *Schema) scalar(t FieldType, buf []byte) any {
	switch t {
	case Uint8:
		return buf[0]
	case Uint16:
		return s.Order.Uint16(buf)
	case Uint32:
		return s.Order.Uint32(buf)
	default:
		return s.Order.Uint64(buf)
	}
}

// pack writes one field's raw value into buf, which is exactly f.size()
// bytes. The raw value must have the type unpack produces for this field.
func (s *Schema) pack(f Field, raw any, buf []byte) error {
	mismatch := func() error {
		return &FormatError{Key: f.Key, Raw: raw, Msg: fmt.Sprintf("raw value has type %T, not the field's primitive type", raw)}
	}

	if f.Type == Bytes {
		b, ok := raw.([]byte)
		if !ok || len(b) != f.count() {
			return mismatch()
		}
		copy(buf, b)
		return nil
	}

	n := f.count()
	w := f.Type.size()
	if n == 1 {
		return s.packScalar(f, raw, buf, mismatch)
	}
	switch f.Type {
	case Uint8:
		vs, ok := raw.([]uint8)
		if !ok || len(vs) != n {
			return mismatch()
		}
		copy(buf, vs)
	case Uint16:
		vs, ok := raw.([]uint16)
		if !ok || len(vs) != n {
			return mismatch()
		}
		for i, v := range vs {
			s.Order.PutUint16(buf[i*w:], v)
		}
	case Uint32:
		vs, ok := raw.([]uint32)
		if !ok || len(vs) != n {
			return mismatch()
		}
		for i, v := range vs {
			s.Order.PutUint32(buf[i*w:], v)
		}
	default:
		vs, ok := raw.([]uint64)
		if !ok || len(vs) != n {
			return mismatch()
		}
		for i, v := range vs {
			s.Order.PutUint64(buf[i*w:], v)
		}
	}
	return nil
}

func (s *Schema) packScalar(f Field, raw any, buf []byte, mismatch func() error) error {
	switch f.Type {
	case Uint8:
		v, ok := raw.(uint8)
		if !ok {
			return mismatch()
		}
		buf[0] = v
	case Uint16:
		v, ok := raw.(uint16)
		if !ok {
			return mismatch()
		}
		s.Order.PutUint16(buf, v)
	case Uint32:
		v, ok := raw.(uint32)
		if !ok {
			return mismatch()
		}
		s.Order.PutUint32(buf, v)
	default:
		v, ok := raw.(uint64)
		if !ok {
			return mismatch()
		}
		s.Order.PutUint64(buf, v)
	}
	return nil
}
