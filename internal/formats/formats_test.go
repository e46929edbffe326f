package formats_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/kharak/bigarc/internal/big"
	"github.com/kharak/bigarc/internal/formats"
	"github.com/kharak/bigarc/internal/record"
)

// layoutSchemas digs the header and index schemas back out of a format.
func layoutSchemas(t *testing.T, f *big.Format) (header *record.Schema, index *record.Schema) {
	t.Helper()
	for _, p := range f.Layout.Parts {
		switch p.Key {
		case "header":
			header = p.Section
		case "index":
			index = p.Sequence.Child
		}
	}
	if header == nil || index == nil {
		t.Fatal("layout is missing the header or index part")
	}
	return header, index
}

func TestSchemas_Sizes(t *testing.T) {
	header, index := layoutSchemas(t, formats.Classic())
	if got := header.Size(); got != 12 {
		t.Errorf("header size = %d, want 12", got)
	}
	if got := index.Size(); got != 144 {
		t.Errorf("index entry size = %d, want 144", got)
	}
}

func TestSchemas_RoundTrip(t *testing.T) {
	header, index := layoutSchemas(t, formats.Classic())

	tests := []struct {
		name   string
		schema *record.Schema
		rec    record.Record
	}{
		{"header defaults", header, header.Defaults()},
		{"header populated", header, record.Record{
			"magic":   "BIGF",
			"version": uint32(1),
			"count":   uint32(42),
		}},
		{"index defaults", index, index.Defaults()},
		{"index populated", index, record.Record{
			"name":        "data/ships/mothership.lua",
			"offset":      int64(300),
			"stored_size": int64(1000),
			"real_size":   int64(4000),
			"mtime":       time.Unix(1234567890, 0).UTC(),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := tt.schema.Encode(tt.rec)
			if err != nil {
				t.Fatalf("Encode() failed: %v", err)
			}
			back, err := tt.schema.Decode(buf)
			if err != nil {
				t.Fatalf("Decode() failed: %v", err)
			}
			if !reflect.DeepEqual(back, tt.rec) {
				t.Errorf("decode(encode(rec)) = %+v, want %+v", back, tt.rec)
			}
		})
	}
}

func TestHeaderSchema_RejectsBadMagic(t *testing.T) {
	header, _ := layoutSchemas(t, formats.Classic())

	buf, err := header.Encode(header.Defaults())
	if err != nil {
		t.Fatal(err)
	}
	copy(buf, "WRNG")

	if _, err := header.Decode(buf); err == nil {
		t.Error("Decode() accepted a wrong magic, want error")
	}
}

func TestIndexSchema_RejectsOversizedValues(t *testing.T) {
	_, index := layoutSchemas(t, formats.Classic())

	tests := []struct {
		name string
		rec  record.Record
	}{
		{"name too long", record.Record{
			"name":        string(make([]byte, 129)),
			"offset":      int64(0),
			"stored_size": int64(0),
			"real_size":   int64(0),
			"mtime":       time.Unix(0, 0).UTC(),
		}},
		{"offset past 32 bits", record.Record{
			"name":        "x",
			"offset":      int64(1) << 33,
			"stored_size": int64(0),
			"real_size":   int64(0),
			"mtime":       time.Unix(0, 0).UTC(),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := index.Encode(tt.rec); err == nil {
				t.Error("Encode() succeeded, want error")
			}
		})
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"classic", "encrypted"} {
		f, err := formats.ByName(name)
		if err != nil {
			t.Errorf("ByName(%q) failed: %v", name, err)
			continue
		}
		if f.Name != name {
			t.Errorf("ByName(%q).Name = %q", name, f.Name)
		}
	}

	if _, err := formats.ByName("tar"); err == nil {
		t.Error("ByName(tar) succeeded, want error")
	}
}

func TestEncrypted_CarriesMasterKey(t *testing.T) {
	f := formats.Encrypted()
	if !f.Encrypted() {
		t.Fatal("Encrypted() format does not report as encrypted")
	}
	if len(f.MasterKey) != 1024 {
		t.Errorf("master key is %d bytes, want 1024", len(f.MasterKey))
	}
	if formats.Classic().Encrypted() {
		t.Error("Classic() format reports as encrypted")
	}
}
