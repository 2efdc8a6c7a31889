// Package shacal2 implements the SHACAL-2 block cipher.
//
// SHACAL-2 is the SHA-256 compression function run without the final feed-forward:
// the 256-bit block is the hash state and the key, zero-padded to 512 bits, is the
// message block. It satisfies crypto/cipher.Block, so the standard modes from
// crypto/cipher can drive it.
package shacal2

import (
	"crypto/cipher"
	"encoding/binary"
	"math/bits"
	"strconv"
)

const (
	// BlockSize is the SHACAL-2 block size in bytes.
	BlockSize = 32
	// MinKeySize is the shortest accepted key in bytes.
	MinKeySize = 16
	// MaxKeySize is the longest accepted key in bytes.
	MaxKeySize = 64

	rounds = 64
)

// KeySizeError is returned for keys outside [MinKeySize, MaxKeySize].
type KeySizeError int

func (k KeySizeError) Error() string {
	return "shacal2: invalid key size " + strconv.Itoa(int(k))
}

//nolint:gochecknoglobals
var roundConstants = [rounds]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

type shacal2Cipher struct {
	// schedule holds W[t]+K[t] for every round.
	schedule [rounds]uint32
}

// NewCipher creates and returns a new cipher.Block.
// The key must be between 16 and 64 bytes; shorter keys are padded with zeros to 64 bytes.
func NewCipher(key []byte) (cipher.Block, error) {
	if len(key) < MinKeySize || len(key) > MaxKeySize {
		return nil, KeySizeError(len(key))
	}

	var padded [MaxKeySize]byte

	copy(padded[:], key)

	var w [rounds]uint32

	for t := range 16 {
		w[t] = binary.BigEndian.Uint32(padded[4*t:])
	}

	for t := 16; t < rounds; t++ {
		w[t] = sigma1(w[t-2]) + w[t-7] + sigma0(w[t-15]) + w[t-16]
	}

	c := &shacal2Cipher{}

	for t := range rounds {
		c.schedule[t] = w[t] + roundConstants[t]
	}

	return c, nil
}

func (c *shacal2Cipher) BlockSize() int { return BlockSize }

func (c *shacal2Cipher) Encrypt(dst, src []byte) {
	checkBlock(dst, src)

	a, b, cc, d, e, f, g, h := load(src)

	for t := range rounds {
		t1 := h + bigSigma1(e) + ch(e, f, g) + c.schedule[t]
		t2 := bigSigma0(a) + maj(a, b, cc)

		h, g, f, e, d, cc, b, a = g, f, e, d+t1, cc, b, a, t1+t2
	}

	store(dst, a, b, cc, d, e, f, g, h)
}

func (c *shacal2Cipher) Decrypt(dst, src []byte) {
	checkBlock(dst, src)

	a, b, cc, d, e, f, g, h := load(src)

	for t := rounds - 1; t >= 0; t-- {
		t2 := bigSigma0(b) + maj(b, cc, d)
		t1 := a - t2
		prevD := e - t1
		prevH := t1 - bigSigma1(f) - ch(f, g, h) - c.schedule[t]

		a, b, cc, d, e, f, g, h = b, cc, d, prevD, f, g, h, prevH
	}

	store(dst, a, b, cc, d, e, f, g, h)
}

func checkBlock(dst, src []byte) {
	if len(src) < BlockSize {
		panic("shacal2: input not full block")
	}

	if len(dst) < BlockSize {
		panic("shacal2: output not full block")
	}
}

func load(src []byte) (a, b, c, d, e, f, g, h uint32) {
	return binary.BigEndian.Uint32(src[0:]),
		binary.BigEndian.Uint32(src[4:]),
		binary.BigEndian.Uint32(src[8:]),
		binary.BigEndian.Uint32(src[12:]),
		binary.BigEndian.Uint32(src[16:]),
		binary.BigEndian.Uint32(src[20:]),
		binary.BigEndian.Uint32(src[24:]),
		binary.BigEndian.Uint32(src[28:])
}

func store(dst []byte, a, b, c, d, e, f, g, h uint32) {
	binary.BigEndian.PutUint32(dst[0:], a)
	binary.BigEndian.PutUint32(dst[4:], b)
	binary.BigEndian.PutUint32(dst[8:], c)
	binary.BigEndian.PutUint32(dst[12:], d)
	binary.BigEndian.PutUint32(dst[16:], e)
	binary.BigEndian.PutUint32(dst[20:], f)
	binary.BigEndian.PutUint32(dst[24:], g)
	binary.BigEndian.PutUint32(dst[28:], h)
}

func ch(x, y, z uint32) uint32  { return (x & y) ^ (^x & z) }
func maj(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }

func bigSigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

func bigSigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

func sigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)
}

func sigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ (x >> 10)
}
