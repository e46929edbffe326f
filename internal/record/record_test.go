package record_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/kharak/bigarc/internal/record"
)

// pointSchema is a small mixed-type schema used across the tests:
// a 1-byte tag, two repeated uint32 coordinates, and a 4-byte label with a
// decode/encode pair translating to and from a trimmed string.
func pointSchema() *record.Schema {
	return &record.Schema{
		Order: binary.LittleEndian,
		Fields: []record.Field{
			{Key: "tag", Type: record.Uint8, Default: uint8(7)},
			{Key: "coords", Type: record.Uint32, Count: 2, Default: []uint32{0, 0}},
			{
				Key:     "label",
				Type:    record.Bytes,
				Count:   4,
				Default: "none",
				Decode: func(raw any) (any, error) {
					return strings.TrimRight(string(raw.([]byte)), "\x00"), nil
				},
				Encode: func(v any) (any, error) {
					s, ok := v.(string)
					if !ok || len(s) > 4 {
						return nil, fmt.Errorf("label must be a string of at most 4 bytes")
					}
					b := make([]byte, 4)
					copy(b, s)
					return b, nil
				},
			},
		},
	}
}

func TestSchema_Size(t *testing.T) {
	s := pointSchema()
	if got := s.Size(); got != 13 {
		t.Errorf("Size() = %d, want 13", got)
	}
}

func TestSchema_Decode(t *testing.T) {
	buf := []byte{
		0x2A,                   // tag
		0x01, 0x00, 0x00, 0x00, // coords[0]
		0x02, 0x00, 0x00, 0x00, // coords[1]
		'h', 'i', 0x00, 0x00, // label
	}

	rec, err := pointSchema().Decode(buf)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	want := record.Record{
		"tag":    uint8(0x2A),
		"coords": []uint32{1, 2},
		"label":  "hi",
	}
	if !reflect.DeepEqual(rec, want) {
		t.Errorf("Decode() = %+v, want %+v", rec, want)
	}
}

func TestSchema_Decode_SizeMismatch(t *testing.T) {
	s := pointSchema()
	for _, n := range []int{0, 12, 14} {
		if _, err := s.Decode(make([]byte, n)); err == nil {
			t.Errorf("Decode() of %d bytes succeeded, want size error", n)
		} else {
			var fe *record.FormatError
			if !errors.As(err, &fe) {
				t.Errorf("Decode() of %d bytes: error %v is not a FormatError", n, err)
			}
		}
	}
}

func TestSchema_Decode_FieldFailureCarriesKeyAndRaw(t *testing.T) {
	s := &record.Schema{
		Order: binary.LittleEndian,
		Fields: []record.Field{
			{
				Key:  "flag",
				Type: record.Uint8,
				Decode: func(raw any) (any, error) {
					return nil, fmt.Errorf("value %d is not a valid flag", raw)
				},
			},
		},
	}

	_, err := s.Decode([]byte{0x9C})
	if err == nil {
		t.Fatal("Decode() succeeded, want field decode error")
	}
	var fe *record.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("error %v is not a FormatError", err)
	}
	if fe.Key != "flag" {
		t.Errorf("FormatError.Key = %q, want %q", fe.Key, "flag")
	}
	if fe.Raw != uint8(0x9C) {
		t.Errorf("FormatError.Raw = %v, want 0x9C", fe.Raw)
	}
}

func TestSchema_RoundTrip(t *testing.T) {
	s := pointSchema()

	recs := []record.Record{
		s.Defaults(),
		{"tag": uint8(0), "coords": []uint32{0xFFFFFFFF, 12345}, "label": "abcd"},
		{"tag": uint8(255), "coords": []uint32{1, 0}, "label": ""},
	}
	for i, rec := range recs {
		buf, err := s.Encode(rec)
		if err != nil {
			t.Fatalf("record %d: Encode() failed: %v", i, err)
		}
		back, err := s.Decode(buf)
		if err != nil {
			t.Fatalf("record %d: Decode() failed: %v", i, err)
		}
		if !reflect.DeepEqual(back, rec) {
			t.Errorf("record %d: decode(encode(rec)) = %+v, want %+v", i, back, rec)
		}
	}
}

func TestSchema_RoundTrip_Buffer(t *testing.T) {
	s := pointSchema()
	buf := []byte{0x01, 0xDE, 0xAD, 0xBE, 0xEF, 0x04, 0x03, 0x02, 0x01, 'x', 0x00, 0x00, 0x00}

	rec, err := s.Decode(buf)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	back, err := s.Encode(rec)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	if !bytes.Equal(back, buf) {
		t.Errorf("encode(decode(buf)) = % X, want % X", back, buf)
	}
}

func TestSchema_Encode_MissingField(t *testing.T) {
	s := pointSchema()
	_, err := s.Encode(record.Record{"tag": uint8(1)})
	if err == nil {
		t.Fatal("Encode() succeeded with missing fields, want error")
	}
}

func TestSchema_Encode_WrongRawType(t *testing.T) {
	s := &record.Schema{
		Order:  binary.BigEndian,
		Fields: []record.Field{{Key: "n", Type: record.Uint16}},
	}
	_, err := s.Encode(record.Record{"n": "not a number"})
	if err == nil {
		t.Fatal("Encode() succeeded with a mistyped value, want error")
	}
}

func TestSequence_Decode(t *testing.T) {
	child := &record.Schema{
		Order:  binary.LittleEndian,
		Fields: []record.Field{{Key: "v", Type: record.Uint16}},
	}

	tests := []struct {
		name    string
		seq     *record.Sequence
		input   []byte
		loaded  map[string]any
		want    []uint16
		wantErr error
	}{
		{
			name: "count from context",
			seq: &record.Sequence{Child: child, Count: func(loaded map[string]any) (int, error) {
				return loaded["n"].(int), nil
			}},
			input:  []byte{0x01, 0x00, 0x02, 0x00, 0x03, 0x00},
			loaded: map[string]any{"n": 3},
			want:   []uint16{1, 2, 3},
		},
		{
			name: "zero count reads nothing",
			seq: &record.Sequence{Child: child, Count: func(map[string]any) (int, error) {
				return 0, nil
			}},
			input: nil,
			want:  []uint16{},
		},
		{
			name:    "missing count hook",
			seq:     &record.Sequence{Child: child},
			wantErr: record.ErrNoCountFunc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := tt.seq.Decode(bytes.NewReader(tt.input), tt.loaded)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Decode() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() failed: %v", err)
			}
			got := make([]uint16, len(recs))
			for i, rec := range recs {
				got[i] = rec["v"].(uint16)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSequence_Decode_ShortInput(t *testing.T) {
	seq := &record.Sequence{
		Child: &record.Schema{
			Order:  binary.LittleEndian,
			Fields: []record.Field{{Key: "v", Type: record.Uint32}},
		},
		Count: func(map[string]any) (int, error) { return 2, nil },
	}

	_, err := seq.Decode(bytes.NewReader([]byte{0x01, 0x00, 0x00, 0x00, 0x02}), nil)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Decode() error = %v, want %v", err, io.ErrUnexpectedEOF)
	}
}

func TestSequence_Encode(t *testing.T) {
	child := &record.Schema{
		Order:  binary.BigEndian,
		Fields: []record.Field{{Key: "v", Type: record.Uint16}},
	}
	seq := &record.Sequence{Child: child}

	var buf bytes.Buffer
	err := seq.Encode(&buf, []record.Record{{"v": uint16(0x0102)}, {"v": uint16(0x0304)}})
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	want := []byte{0x01, 0x02, 0x03, 0x04}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("Encode() wrote % X, want % X", buf.Bytes(), want)
	}
}
