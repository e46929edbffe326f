package big

import (
	"bytes"
	"io"
	"testing"

	"github.com/kharak/bigarc/internal/gbxcrypt"
)

func testCipher(t *testing.T, dataSize uint32) *gbxcrypt.Crypt {
	t.Helper()
	local := make([]byte, 16)
	global := make([]byte, 1024)
	for i := range local {
		local[i] = byte(i + 1)
	}
	for i := range global {
		global[i] = byte(i * 13)
	}
	crypt, err := gbxcrypt.New(dataSize, local, global)
	if err != nil {
		t.Fatalf("building cipher: %v", err)
	}
	return crypt
}

// The decrypting view must route reads below the encrypted-region boundary
// through the cipher, pass reads at or past it through unmodified, and clamp
// a read spanning the boundary to the encrypted prefix.
func TestCryptReader_Boundary(t *testing.T) {
	const limit = 256
	crypt := testCipher(t, limit)

	plain := make([]byte, limit)
	for i := range plain {
		plain[i] = byte(i)
	}
	trailer := []byte("trailer bytes, never encrypted")
	raw := append(crypt.Encrypt(plain, 0), trailer...)

	r := &cryptReader{ra: bytes.NewReader(raw), crypt: crypt, limit: limit}

	// Fully inside the encrypted region, at several offsets.
	for _, off := range []int64{0, 1, 100, limit - 10} {
		buf := make([]byte, 10)
		if _, err := r.ReadAt(buf, off); err != nil {
			t.Fatalf("ReadAt(%d) failed: %v", off, err)
		}
		if !bytes.Equal(buf, plain[off:off+10]) {
			t.Errorf("ReadAt(%d) = % X, want % X", off, buf, plain[off:off+10])
		}
	}

	// At and past the boundary: pass-through.
	buf := make([]byte, len(trailer))
	if _, err := r.ReadAt(buf, limit); err != nil && err != io.EOF {
		t.Fatalf("ReadAt(limit) failed: %v", err)
	}
	if !bytes.Equal(buf, trailer) {
		t.Errorf("ReadAt(limit) = %q, want %q", buf, trailer)
	}

	// Spanning the boundary: only the encrypted prefix is serviced.
	buf = make([]byte, 20)
	n, err := r.ReadAt(buf, limit-10)
	if n != 10 {
		t.Errorf("spanning ReadAt returned %d bytes, want 10", n)
	}
	if err != io.EOF {
		t.Errorf("spanning ReadAt error = %v, want io.EOF", err)
	}
	if !bytes.Equal(buf[:10], plain[limit-10:]) {
		t.Error("spanning ReadAt prefix was not decrypted")
	}
}
