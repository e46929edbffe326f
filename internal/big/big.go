// Package big models the BIG game-archive container: a record-framework
// described header and member index followed by concatenated member payload
// bytes. Concrete formats supply the layout, the index-record conversion,
// and (for encrypted variants) the master key; this package supplies
// loading, lookup, extraction, insertion, and saving.
package big

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/kharak/bigarc/internal/record"
)

// ErrMemberNotFound is returned by Member when no member has the requested
// name.
var ErrMemberNotFound = errors.New("member not found")

// Member is one logical file stored inside an archive. Members loaded from
// an existing container locate their data by byte offset; members added from
// the local filesystem carry the source path instead. A member is compressed
// iff its real (decompressed) size exceeds its stored size.
type Member struct {
	Name       string
	ModTime    time.Time
	StoredSize int64
	RealSize   int64
	Offset     int64

	path string // source path for filesystem-backed members
}

// Compressed reports whether the member's payload is stored compressed.
func (m *Member) Compressed() bool { return m.RealSize > m.StoredSize }

// External reports whether the member is sourced from the local filesystem
// rather than an existing container.
func (m *Member) External() bool { return m.path != "" }

// NewExternalMember describes a file on the local filesystem as an archive
// member. The archive-relative name is required; it is never derived from
// the path.
func NewExternalMember(path, name string) (*Member, error) {
	if name == "" {
		return nil, errors.New("external member needs an archive-relative name")
	}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("describing %s: %w", path, err)
	}
	return &Member{
		Name:       name,
		ModTime:    fi.ModTime(),
		StoredSize: fi.Size(),
		RealSize:   fi.Size(),
		path:       path,
	}, nil
}

// Format describes one concrete BIG variant. The layout names the header and
// index parts; IndexKey selects the layout sequence whose records are the
// member index.
type Format struct {
	Name     string
	Layout   *Layout
	IndexKey string

	// Member converts one decoded index record into member metadata.
	Member func(rec record.Record) (*Member, error)
	// IndexRecord is the inverse of Member, used when saving.
	IndexRecord func(m *Member) (record.Record, error)
	// PrepareHeader updates header fields (the member count, typically)
	// before a save.
	PrepareHeader func(data map[string]any, memberCount int) error

	// MasterKey marks the encrypted variant; nil means plaintext.
	MasterKey []byte
	// Decompressor inflates compressed member payloads on extraction.
	Decompressor Decompressor
}

// Encrypted reports whether archives of this format carry the encryption
// trailer.
func (f *Format) Encrypted() bool { return f.MasterKey != nil }

// Archive is an open BIG container: an ordered list of members, kept sorted
// by name after any mutation. An Archive is not safe for concurrent use;
// open independent archives for parallelism.
type Archive struct {
	format  *Format
	file    *os.File
	src     io.ReaderAt // decrypting or raw view over the container
	size    int64       // usable data size; trailer excluded for encrypted archives
	data    map[string]any
	members []*Member
	logger  *slog.Logger
}

// Open opens the container at path and loads its header, index, and member
// list. For encrypted formats the trailer is located and the cipher
// constructed before any record is decoded.
func Open(path string, format *Format, logger *slog.Logger) (*Archive, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	a := &Archive{
		format: format,
		file:   file,
		logger: logger.With("archive", path, "format", format.Name),
	}
	if err := a.load(); err != nil {
		file.Close()
		return nil, err
	}
	return a, nil
}

// New returns an empty archive of the given format, ready for Add/AddAll and
// a Save.
func New(format *Format, logger *slog.Logger) *Archive {
	return &Archive{
		format: format,
		logger: logger.With("format", format.Name),
	}
}

// Close releases the underlying file handle.
func (a *Archive) Close() error {
	if a.file == nil {
		return nil
	}
	file := a.file
	a.file = nil
	a.src = nil
	return file.Close()
}

func (a *Archive) load() error {
	fi, err := a.file.Stat()
	if err != nil {
		return fmt.Errorf("stat archive: %w", err)
	}
	a.src = a.file
	a.size = fi.Size()

	if a.format.Encrypted() {
		crypt, dataSize, err := loadEncryption(a.file, fi.Size(), a.format.MasterKey, a.logger)
		if err != nil {
			return err
		}
		a.src = &cryptReader{ra: a.file, crypt: crypt, limit: dataSize}
		a.size = dataSize
	}

	data, err := a.format.Layout.Load(io.NewSectionReader(a.src, 0, a.size))
	if err != nil {
		return err
	}
	a.data = data

	recs, ok := data[a.format.IndexKey].([]record.Record)
	if !ok {
		return fmt.Errorf("layout part %q is not the member index", a.format.IndexKey)
	}
	members := make([]*Member, 0, len(recs))
	for i, rec := range recs {
		m, err := a.format.Member(rec)
		if err != nil {
			return fmt.Errorf("index entry %d: %w", i, err)
		}
		members = append(members, m)
	}
	a.members = members
	a.sortMembers()

	a.logger.Debug("loaded archive", "members", len(a.members), "data_size", a.size)
	return nil
}

// Members returns the member list in current sort order.
func (a *Archive) Members() []*Member { return a.members }

// Filenames returns the member names in current sort order.
func (a *Archive) Filenames() []string {
	names := make([]string, len(a.members))
	for i, m := range a.members {
		names[i] = m.Name
	}
	return names
}

// Member returns the first member with exactly the given name.
func (a *Archive) Member(name string) (*Member, error) {
	for _, m := range a.members {
		if m.Name == name {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrMemberNotFound)
}

// memberReader opens a bounded view of the member's bytes: a section of the
// container for loaded members, the source file for external ones.
func (a *Archive) memberReader(m *Member) (io.Reader, func() error, error) {
	if m.External() {
		f, err := os.Open(m.path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening member source: %w", err)
		}
		return f, f.Close, nil
	}
	if a.src == nil {
		return nil, nil, errors.New("member has no backing container")
	}
	return io.NewSectionReader(a.src, m.Offset, m.StoredSize), func() error { return nil }, nil
}

// ExtractFile writes the member's content to w, decompressing through the
// format's collaborator iff decompress is requested and the member is
// stored compressed.
func (a *Archive) ExtractFile(m *Member, w io.Writer, decompress bool) error {
	r, closeFn, err := a.memberReader(m)
	if err != nil {
		return err
	}
	defer closeFn()

	if decompress && m.Compressed() {
		if a.format.Decompressor == nil {
			return fmt.Errorf("member %q is compressed but format %q has no decompressor", m.Name, a.format.Name)
		}
		a.logger.Debug("extracting compressed member", "name", m.Name, "stored", m.StoredSize, "real", m.RealSize)
		return a.format.Decompressor.DecompressStream(w, r)
	}

	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("extracting member %q: %w", m.Name, err)
	}
	return nil
}

// Extract writes the member under destDir, creating directories as needed
// and restoring the member's recorded modification time.
func (a *Archive) Extract(m *Member, destDir string, decompress bool) error {
	full := filepath.Join(destDir, filepath.FromSlash(m.Name))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("creating directories for %q: %w", m.Name, err)
	}

	out, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("creating %s: %w", full, err)
	}
	if err := a.ExtractFile(m, out, decompress); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", full, err)
	}

	if err := os.Chtimes(full, m.ModTime, m.ModTime); err != nil {
		return fmt.Errorf("restoring mtime of %s: %w", full, err)
	}
	a.logger.Info("extracted member", "name", m.Name, "dest", full)
	return nil
}

// ExtractAll extracts the given members, or every member when members is
// nil. Extraction aborts on the first failure; files already extracted stay
// on disk.
func (a *Archive) ExtractAll(members []*Member, destDir string, decompress bool) error {
	if members == nil {
		members = a.members
	}
	for _, m := range members {
		if err := a.Extract(m, destDir, decompress); err != nil {
			return err
		}
	}
	return nil
}

// Add appends a member to the in-memory list. Sorting can be deferred for
// bulk insertion; every other mutation path re-sorts immediately.
func (a *Archive) Add(m *Member, sortAfter bool) {
	a.logger.Debug("adding member", "name", m.Name, "size", m.RealSize)
	a.members = append(a.members, m)
	if sortAfter {
		a.sortMembers()
	}
}

// AddAll walks the directory tree rooted at root depth-first and adds every
// file not matched by the exclusion predicate. Archive-relative names are
// the walked path with the root prefix stripped, in slash form. The member
// list is sorted once at the end.
func (a *Archive) AddAll(root string, exclude func(path string) bool) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if exclude != nil && exclude(path) {
			a.logger.Debug("excluding file", "path", path)
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		m, err := NewExternalMember(path, filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		a.Add(m, false)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", root, err)
	}
	a.sortMembers()
	return nil
}

// Save writes the archive to path: header and index first, then each
// member's payload at the offset recorded for it. The on-disk index order is
// the name-sorted member order. Saving encrypted variants is not supported.
func (a *Archive) Save(path string) error {
	if a.format.Encrypted() {
		return fmt.Errorf("format %q: saving encrypted archives is not supported", a.format.Name)
	}
	if a.format.IndexRecord == nil || a.format.PrepareHeader == nil {
		return fmt.Errorf("format %q does not support saving", a.format.Name)
	}
	a.sortMembers()

	data := a.data
	if data == nil {
		data = make(map[string]any, len(a.format.Layout.Parts))
		for _, p := range a.format.Layout.Parts {
			if p.Section != nil {
				data[p.Key] = p.Section.Defaults()
			} else {
				data[p.Key] = []record.Record(nil)
			}
		}
	}

	// Payload bytes start right after the layout; the index length must be
	// fixed before the layout size is known.
	// Index records carry the new payload offsets; the members themselves
	// keep their old ones so their bytes can still be read out of the
	// source container below.
	recs := make([]record.Record, len(a.members))
	data[a.format.IndexKey] = recs
	offset := a.format.Layout.Size(data)
	for i, m := range a.members {
		entry := *m
		entry.Offset = offset
		offset += m.StoredSize
		rec, err := a.format.IndexRecord(&entry)
		if err != nil {
			return fmt.Errorf("index entry for %q: %w", m.Name, err)
		}
		recs[i] = rec
	}
	if err := a.format.PrepareHeader(data, len(a.members)); err != nil {
		return fmt.Errorf("preparing header: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}
	defer out.Close()

	if err := a.format.Layout.Save(out, data); err != nil {
		return err
	}
	for _, m := range a.members {
		r, closeFn, err := a.memberReader(m)
		if err != nil {
			return err
		}
		_, err = io.Copy(out, r)
		closeFn()
		if err != nil {
			return fmt.Errorf("writing member %q: %w", m.Name, err)
		}
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}
	a.logger.Info("saved archive", "path", path, "members", len(a.members))
	return nil
}

// CheckFormat reports whether the file at path parses as the given format:
// the encryption trailer (for encrypted variants) and the first layout part
// must both load cleanly.
func CheckFormat(path string, format *Format, logger *slog.Logger) bool {
	a, err := Open(path, format, logger)
	if err != nil {
		return false
	}
	a.Close()
	return true
}

func (a *Archive) sortMembers() {
	sort.Slice(a.members, func(i, j int) bool { return a.members[i].Name < a.members[j].Name })
}
