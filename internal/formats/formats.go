// Package formats holds the concrete BIG variants this tool understands.
// Each variant is a declarative layout handed to the big package; the field
// decode/encode pairs are the only per-format logic.
package formats

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/kharak/bigarc/internal/big"
	"github.com/kharak/bigarc/internal/record"
)

// Wire constants of the v1 layout.
const (
	magic   = "BIGF"
	version = 1
	nameLen = 128
)

// headerSchema is the fixed 12-byte archive header: magic, format version,
// member count.
func headerSchema() *record.Schema {
	return &record.Schema{
		Order: binary.LittleEndian,
		Fields: []record.Field{
			{
				Key:     "magic",
				Type:    record.Bytes,
				Count:   len(magic),
				Default: magic,
				Decode: func(raw any) (any, error) {
					s := string(raw.([]byte))
					if s != magic {
						return nil, fmt.Errorf("bad magic %q, want %q", s, magic)
					}
					return s, nil
				},
				Encode: func(v any) (any, error) {
					s, ok := v.(string)
					if !ok || len(s) != len(magic) {
						return nil, fmt.Errorf("magic must be a %d-byte string", len(magic))
					}
					return []byte(s), nil
				},
			},
			{Key: "version", Type: record.Uint32, Default: uint32(version)},
			{Key: "count", Type: record.Uint32, Default: uint32(0)},
		},
	}
}

// indexSchema is one 144-byte member-table entry: NUL-padded name, payload
// offset, stored size, real (decompressed) size, and mtime as a Unix
// timestamp.
func indexSchema() *record.Schema {
	return &record.Schema{
		Order: binary.LittleEndian,
		Fields: []record.Field{
			{
				Key:     "name",
				Type:    record.Bytes,
				Count:   nameLen,
				Default: "",
				Decode: func(raw any) (any, error) {
					b := raw.([]byte)
					for i, c := range b {
						if c == 0 {
							return string(b[:i]), nil
						}
					}
					return string(b), nil
				},
				Encode: func(v any) (any, error) {
					s, ok := v.(string)
					if !ok {
						return nil, fmt.Errorf("name must be a string, not %T", v)
					}
					if len(s) > nameLen {
						return nil, fmt.Errorf("name %q exceeds %d bytes", s, nameLen)
					}
					b := make([]byte, nameLen)
					copy(b, s)
					return b, nil
				},
			},
			{Key: "offset", Type: record.Uint32, Default: int64(0), Decode: asInt64, Encode: asUint32},
			{Key: "stored_size", Type: record.Uint32, Default: int64(0), Decode: asInt64, Encode: asUint32},
			{Key: "real_size", Type: record.Uint32, Default: int64(0), Decode: asInt64, Encode: asUint32},
			{
				Key:     "mtime",
				Type:    record.Uint32,
				Default: time.Unix(0, 0).UTC(),
				Decode: func(raw any) (any, error) {
					return time.Unix(int64(raw.(uint32)), 0).UTC(), nil
				},
				Encode: func(v any) (any, error) {
					t, ok := v.(time.Time)
					if !ok {
						return nil, fmt.Errorf("mtime must be a time.Time, not %T", v)
					}
					return asUint32(t.Unix())
				},
			},
		},
	}
}

func asInt64(raw any) (any, error) {
	return int64(raw.(uint32)), nil
}

func asUint32(v any) (any, error) {
	n, ok := v.(int64)
	if !ok {
		return nil, fmt.Errorf("value must be an int64, not %T", v)
	}
	if n < 0 || n > math.MaxUint32 {
		return nil, fmt.Errorf("value %d does not fit in 32 bits", n)
	}
	return uint32(n), nil
}

func layout() *big.Layout {
	return &big.Layout{
		Parts: []big.Part{
			{Key: "header", Section: headerSchema()},
			{Key: "index", Sequence: &record.Sequence{
				Child: indexSchema(),
				Count: func(loaded map[string]any) (int, error) {
					header, ok := loaded["header"].(record.Record)
					if !ok {
						return 0, fmt.Errorf("header not loaded before index")
					}
					return int(header["count"].(uint32)), nil
				},
			}},
		},
	}
}

func memberFromRecord(rec record.Record) (*big.Member, error) {
	return &big.Member{
		Name:       rec["name"].(string),
		Offset:     rec["offset"].(int64),
		StoredSize: rec["stored_size"].(int64),
		RealSize:   rec["real_size"].(int64),
		ModTime:    rec["mtime"].(time.Time),
	}, nil
}

func recordFromMember(m *big.Member) (record.Record, error) {
	if m.RealSize < m.StoredSize {
		return nil, fmt.Errorf("member %q: real size %d below stored size %d", m.Name, m.RealSize, m.StoredSize)
	}
	return record.Record{
		"name":        m.Name,
		"offset":      m.Offset,
		"stored_size": m.StoredSize,
		"real_size":   m.RealSize,
		"mtime":       m.ModTime,
	}, nil
}

func prepareHeader(data map[string]any, memberCount int) error {
	header, ok := data["header"].(record.Record)
	if !ok {
		return fmt.Errorf("layout has no header section")
	}
	if memberCount > math.MaxUint32 {
		return fmt.Errorf("member count %d does not fit in 32 bits", memberCount)
	}
	header["count"] = uint32(memberCount)
	return nil
}

// Classic is the plaintext v1 variant.
func Classic() *big.Format {
	return &big.Format{
		Name:          "classic",
		Layout:        layout(),
		IndexKey:      "index",
		Member:        memberFromRecord,
		IndexRecord:   recordFromMember,
		PrepareHeader: prepareHeader,
		Decompressor:  big.ZstdDecompressor{},
	}
}

// Encrypted is the v1 variant wrapped in the Gearbox encryption layer: the
// same layout read through the decrypting path, keyed by the trailer's local
// key and the compiled-in master key.
func Encrypted() *big.Format {
	f := Classic()
	f.Name = "encrypted"
	f.MasterKey = masterKey
	return f
}

// ByName resolves a format name from configuration.
func ByName(name string) (*big.Format, error) {
	switch name {
	case "classic":
		return Classic(), nil
	case "encrypted":
		return Encrypted(), nil
	default:
		return nil, fmt.Errorf("unknown archive format: %s", name)
	}
}
