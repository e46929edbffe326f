package record

import (
	"errors"
	"fmt"
	"io"
)

// ErrNoCountFunc is returned when a sequence is decoded without a count
// hook. Concrete formats must supply one; the framework cannot know how many
// children follow.
var ErrNoCountFunc = errors.New("record: sequence has no count hook")

// CountFunc derives a sequence's element count from context decoded earlier
// in the same file, keyed by layout part. The typical implementation reads a
// count field out of an already decoded header record.
type CountFunc func(loaded map[string]any) (int, error)

// Sequence describes a variable-length run of records of one child schema.
// Its length is not statically known; it is computed at load time by the
// Count hook.
type Sequence struct {
	Child *Schema
	Count CountFunc
}

// Decode reads and decodes exactly N child records from r, where N is
// supplied by the Count hook evaluated against the already loaded context.
func (q *Sequence) Decode(r io.Reader, loaded map[string]any) ([]Record, error) {
	if q.Count == nil {
		return nil, ErrNoCountFunc
	}
	n, err := q.Count(loaded)
	if err != nil {
		return nil, fmt.Errorf("record: sequence count hook: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("record: sequence count hook returned %d", n)
	}

	// A malformed count must fail on read, not on allocation.
	capHint := n
	if capHint > 4096 {
		capHint = 4096
	}
	recs := make([]Record, 0, capHint)
	buf := make([]byte, q.Child.Size())
	for i := 0; i < n; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("record: reading sequence element %d of %d: %w", i, n, err)
		}
		rec, err := q.Child.Decode(buf)
		if err != nil {
			return nil, fmt.Errorf("record: decoding sequence element %d of %d: %w", i, n, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// Encode writes each child record to w in list order.
func (q *Sequence) Encode(w io.Writer, recs []Record) error {
	for i, rec := range recs {
		buf, err := q.Child.Encode(rec)
		if err != nil {
			return fmt.Errorf("record: encoding sequence element %d: %w", i, err)
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("record: writing sequence element %d: %w", i, err)
		}
	}
	return nil
}
