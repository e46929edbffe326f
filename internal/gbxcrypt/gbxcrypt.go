// Package gbxcrypt implements the byte-stream cipher protecting some BIG
// archive variants.
//
// The cipher derives a combined key from a per-archive local key, a fixed
// master key, and the byte length of the encrypted region, then uses the
// combined key as a repeating keystream: the keystream byte at absolute
// offset p is combinedKey[p mod len(localKey)]. Encryption adds the
// keystream byte mod 256, decryption subtracts it. This is a weak,
// length-periodic cipher; it is reproduced exactly for format compatibility,
// not strengthened.
package gbxcrypt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
)

const (
	// DefaultChunkSize is the chunk size used by the streaming variants.
	DefaultChunkSize = 4096

	// tableWords is the number of 4-byte words the master key must supply:
	// it is indexed as a 256-entry substitution table by a single byte.
	tableWords = 256
)

// Crypt holds the derived key material for one archive. The combined key is
// computed once at construction and is a pure function of the data size and
// the two input keys.
type Crypt struct {
	dataSize  uint32
	key       []byte // combined key, same length as the local key
	chunkSize int
}

// New derives the combined key for an encrypted region of dataSize bytes.
// The local key length must be a positive multiple of 4; the global (master)
// key must supply at least 256 little-endian words.
func New(dataSize uint32, localKey, globalKey []byte) (*Crypt, error) {
	if len(localKey) == 0 || len(localKey)%4 != 0 {
		return nil, fmt.Errorf("gbxcrypt: local key length %d is not a positive multiple of 4", len(localKey))
	}
	if len(globalKey) < tableWords*4 {
		return nil, fmt.Errorf("gbxcrypt: global key supplies %d words, need %d", len(globalKey)/4, tableWords)
	}
	return &Crypt{
		dataSize:  dataSize,
		key:       combineKeys(dataSize, localKey, globalKey),
		chunkSize: DefaultChunkSize,
	}, nil
}

// DataSize returns the byte length of the region this cipher was derived for.
func (c *Crypt) DataSize() uint32 { return c.dataSize }

// Key returns a copy of the derived combined key.
func (c *Crypt) Key() []byte {
	key := make([]byte, len(c.key))
	copy(key, c.key)
	return key
}

// Encrypt returns data encrypted as if it sat at the given absolute offset:
// each output byte is the input byte plus the keystream byte, mod 256.
func (c *Crypt) Encrypt(data []byte, offset int64) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b + c.keyAt(offset+int64(i))
	}
	return out
}

// Decrypt is the exact inverse of Encrypt at the same offset.
func (c *Crypt) Decrypt(data []byte, offset int64) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b - c.keyAt(offset+int64(i))
	}
	return out
}

// EncryptStream encrypts src into dst chunk by chunk, tracking the running
// absolute offset so the result is identical to a single Encrypt call
// regardless of chunk size. It returns the number of bytes processed.
func (c *Crypt) EncryptStream(dst io.Writer, src io.Reader, offset int64) (int64, error) {
	return c.stream(dst, src, offset, c.Encrypt)
}

// DecryptStream is the streaming variant of Decrypt.
func (c *Crypt) DecryptStream(dst io.Writer, src io.Reader, offset int64) (int64, error) {
	return c.stream(dst, src, offset, c.Decrypt)
}

func (c *Crypt) stream(dst io.Writer, src io.Reader, offset int64, apply func([]byte, int64) []byte) (int64, error) {
	buf := make([]byte, c.chunkSize)
	var total int64
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(apply(buf[:n], offset+total)); werr != nil {
				return total, werr
			}
			total += int64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

func (c *Crypt) keyAt(p int64) byte {
	return c.key[int(p%int64(len(c.key)))]
}

// combineKeys runs the substitution-network key schedule. Both keys are
// consumed as 4-byte little-endian words; the global key acts as a 256-entry
// substitution table indexed by a single byte. Mixing dataSize into every
// round means two archives of different sizes never share a keystream, even
// with identical keys.
func combineKeys(dataSize uint32, localKey, globalKey []byte) []byte {
	local := make([]uint32, len(localKey)/4)
	for i := range local {
		local[i] = binary.LittleEndian.Uint32(localKey[i*4:])
	}
	table := make([]uint32, tableWords)
	for i := range table {
		table[i] = binary.LittleEndian.Uint32(globalKey[i*4:])
	}

	combined := make([]byte, len(localKey))
	for i := 0; i < len(combined); i += 4 {
		c := local[i/4]
		for b := 0; b < 4; b++ {
			v := bits.RotateLeft32(c+dataSize, 8)
			for j := 0; j < 4; j++ {
				c = table[byte(c)^byte(v>>(8*j))] ^ (c >> 8)
			}
			combined[i+b] = byte(c)
		}
	}
	return combined
}
