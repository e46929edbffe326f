package big

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Decompressor is the pluggable decompression collaborator. It is invoked
// only when extracting a member whose stored size is smaller than its real
// size; which algorithm applies is a property of the concrete format.
type Decompressor interface {
	DecompressStream(dst io.Writer, src io.Reader) error
}

// ZstdDecompressor decompresses zstd-framed member payloads.
type ZstdDecompressor struct{}

// DecompressStream inflates src into dst.
func (ZstdDecompressor) DecompressStream(dst io.Writer, src io.Reader) error {
	dec, err := zstd.NewReader(src)
	if err != nil {
		return fmt.Errorf("opening zstd stream: %w", err)
	}
	defer dec.Close()

	if _, err := dec.WriteTo(dst); err != nil {
		return fmt.Errorf("decompressing zstd stream: %w", err)
	}
	return nil
}
