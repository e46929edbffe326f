package big

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/kharak/bigarc/internal/gbxcrypt"
)

// ErrEncryptionFormat is returned when the trailing key block does not match
// the wire contract: a backptr leaving no room for the marker and length
// fields, a marker that is not the fixed constant, or an oversized key.
var ErrEncryptionFormat = errors.New("invalid encryption trailer")

const (
	// keyMarker is the fixed constant opening the trailing key block.
	keyMarker = 0x00000000
	// maxKeySize is the largest local key length the trailer may declare.
	maxKeySize = 1024
)

// loadEncryption locates and parses the trailing metadata block of an
// encrypted container and constructs the cipher. The trailer, relative to
// EOF, is: a 4-byte backptr at EOF-4; the marker, key length, and local key
// at EOF-backptr. That position is the encrypted region size and becomes the
// archive's usable data size.
//
// All trailer integers are little-endian. Any deviation is rejected; no
// cipher is constructed for a malformed trailer.
func loadEncryption(r io.ReaderAt, size int64, masterKey []byte, logger *slog.Logger) (*gbxcrypt.Crypt, int64, error) {
	var buf [6]byte

	if size < 4 {
		return nil, 0, fmt.Errorf("%w: file of %d bytes cannot hold a trailer", ErrEncryptionFormat, size)
	}
	if _, err := r.ReadAt(buf[:4], size-4); err != nil {
		return nil, 0, fmt.Errorf("reading trailer backptr: %w", err)
	}
	backptr := binary.LittleEndian.Uint32(buf[:4])
	logger.Debug("read trailer backptr", "backptr", backptr)

	// The backptr must leave room for the marker and key length fields
	// between the region it points at and the backptr itself.
	if int64(backptr) >= size-4-6 {
		return nil, 0, fmt.Errorf("%w: backptr %d leaves no room for the key block", ErrEncryptionFormat, backptr)
	}
	dataSize := size - int64(backptr)

	if _, err := r.ReadAt(buf[:4], dataSize); err != nil {
		return nil, 0, fmt.Errorf("reading trailer marker: %w", err)
	}
	if marker := binary.LittleEndian.Uint32(buf[:4]); marker != keyMarker {
		return nil, 0, fmt.Errorf("%w: marker 0x%08X, want 0x%08X", ErrEncryptionFormat, marker, uint32(keyMarker))
	}

	if _, err := r.ReadAt(buf[4:6], dataSize+4); err != nil {
		return nil, 0, fmt.Errorf("reading trailer key length: %w", err)
	}
	keyLen := binary.LittleEndian.Uint16(buf[4:6])
	if keyLen > maxKeySize {
		return nil, 0, fmt.Errorf("%w: key length %d exceeds %d", ErrEncryptionFormat, keyLen, maxKeySize)
	}

	localKey := make([]byte, keyLen)
	if _, err := r.ReadAt(localKey, dataSize+6); err != nil {
		return nil, 0, fmt.Errorf("reading local key: %w", err)
	}

	crypt, err := gbxcrypt.New(uint32(dataSize), localKey, masterKey)
	if err != nil {
		return nil, 0, err
	}
	logger.Debug("loaded encryption trailer", "data_size", dataSize, "key_len", keyLen)
	return crypt, dataSize, nil
}

// cryptReader is a position-aware decrypting view over the raw container.
// Reads below limit are routed through the cipher keyed by absolute file
// offset; reads at or past it pass through unmodified. A read spanning the
// boundary is clamped to the encrypted prefix.
type cryptReader struct {
	ra    io.ReaderAt
	crypt *gbxcrypt.Crypt
	limit int64
}

func (r *cryptReader) ReadAt(p []byte, off int64) (int, error) {
	if off >= r.limit {
		return r.ra.ReadAt(p, off)
	}

	clamped := false
	if off+int64(len(p)) > r.limit {
		p = p[:r.limit-off]
		clamped = true
	}
	n, err := r.ra.ReadAt(p, off)
	copy(p[:n], r.crypt.Decrypt(p[:n], off))
	if err == nil && clamped {
		err = io.EOF
	}
	return n, err
}
