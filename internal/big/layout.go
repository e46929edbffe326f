package big

import (
	"fmt"
	"io"

	"github.com/kharak/bigarc/internal/record"
)

// Part is one ordered element of a format's on-disk layout: either a single
// fixed-size section or a variable-length sequence. Exactly one of Section
// and Sequence is set.
type Part struct {
	Key      string
	Section  *record.Schema
	Sequence *record.Sequence
}

// Layout is the record-framework description of a format's header and index
// region. Parts are read and written in declaration order; sequences may
// derive their length from any part loaded before them.
type Layout struct {
	Parts []Part
}

// Load reads every part from r in order. Sections decode to record.Record,
// sequences to []record.Record, keyed by part key.
func (l *Layout) Load(r io.Reader) (map[string]any, error) {
	loaded := make(map[string]any, len(l.Parts))
	for _, p := range l.Parts {
		if p.Section != nil {
			buf := make([]byte, p.Section.Size())
			if _, err := io.ReadFull(r, buf); err != nil {
				return nil, fmt.Errorf("reading section %q: %w", p.Key, err)
			}
			rec, err := p.Section.Decode(buf)
			if err != nil {
				return nil, fmt.Errorf("decoding section %q: %w", p.Key, err)
			}
			loaded[p.Key] = rec
			continue
		}

		recs, err := p.Sequence.Decode(r, loaded)
		if err != nil {
			return nil, fmt.Errorf("decoding sequence %q: %w", p.Key, err)
		}
		loaded[p.Key] = recs
	}
	return loaded, nil
}

// Save writes every part to w in declaration order.
func (l *Layout) Save(w io.Writer, data map[string]any) error {
	for _, p := range l.Parts {
		if p.Section != nil {
			rec, ok := data[p.Key].(record.Record)
			if !ok {
				return fmt.Errorf("section %q: no record to save", p.Key)
			}
			buf, err := p.Section.Encode(rec)
			if err != nil {
				return fmt.Errorf("encoding section %q: %w", p.Key, err)
			}
			if _, err := w.Write(buf); err != nil {
				return fmt.Errorf("writing section %q: %w", p.Key, err)
			}
			continue
		}

		recs, ok := data[p.Key].([]record.Record)
		if !ok {
			return fmt.Errorf("sequence %q: no records to save", p.Key)
		}
		if err := p.Sequence.Encode(w, recs); err != nil {
			return fmt.Errorf("encoding sequence %q: %w", p.Key, err)
		}
	}
	return nil
}

// Size returns the byte size of the layout for the record counts currently
// held in data. Member payload bytes start at this offset in a freshly saved
// container.
func (l *Layout) Size(data map[string]any) int64 {
	var n int64
	for _, p := range l.Parts {
		if p.Section != nil {
			n += int64(p.Section.Size())
			continue
		}
		if recs, ok := data[p.Key].([]record.Record); ok {
			n += int64(p.Sequence.Child.Size()) * int64(len(recs))
		}
	}
	return n
}
