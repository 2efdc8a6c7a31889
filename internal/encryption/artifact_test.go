package encryption_test

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/shacbc/internal/encryption"
)

type sizeCase struct {
	Plaintext   int    `yaml:"plaintext"`
	Artifact    int    `yaml:"artifact"`
	Description string `yaml:"description,omitempty"`
}

type malformedCase struct {
	Size        int    `yaml:"size"`
	Error       string `yaml:"error"`
	Description string `yaml:"description,omitempty"`
}

type golden struct {
	Sizes     []sizeCase      `yaml:"sizes"`
	Malformed []malformedCase `yaml:"malformed"`
}

//nolint:gochecknoglobals
var errorsByName = map[string]error{
	"truncated":        encryption.ErrTruncatedFile,
	"empty-ciphertext": encryption.ErrEmptyCiphertext,
	"block-size":       encryption.ErrInvalidBlockSize,
}

func loadGolden(t *testing.T) golden {
	t.Helper()

	data, err := os.ReadFile("testdata/artifacts.yml")
	require.NoError(t, err)

	var g golden
	require.NoError(t, yaml.Unmarshal(data, &g))
	require.NotEmpty(t, g.Sizes)
	require.NotEmpty(t, g.Malformed)

	return g
}

func name(desc string, fallback int) string {
	if desc != "" {
		return desc
	}

	return fmt.Sprintf("size_%d", fallback)
}

func TestSealSizes(t *testing.T) {
	t.Parallel()

	for _, tc := range loadGolden(t).Sizes {
		t.Run(name(tc.Description, tc.Plaintext), func(t *testing.T) {
			t.Parallel()

			plaintext := randomBytes(t, tc.Plaintext)

			artifact, err := encryption.Seal(plaintext, []byte("pw123"), nil)
			require.NoError(t, err)
			assert.Len(t, artifact, tc.Artifact)
			assert.Zero(t, (len(artifact)-encryption.HeaderSize)%encryption.BlockSize)

			opened, err := encryption.Open(artifact, []byte("pw123"))
			require.NoError(t, err)
			assert.Equal(t, plaintext, opened)
		})
	}
}

func TestOpenMalformed(t *testing.T) {
	t.Parallel()

	for _, tc := range loadGolden(t).Malformed {
		t.Run(name(tc.Description, tc.Size), func(t *testing.T) {
			t.Parallel()

			want, ok := errorsByName[tc.Error]
			require.True(t, ok, "unknown error %q", tc.Error)

			_, err := encryption.Open(make([]byte, tc.Size), []byte("pw123"))
			require.ErrorIs(t, err, want)
		})
	}
}

func TestSealHelloScenario(t *testing.T) {
	t.Parallel()

	artifact, err := encryption.Seal([]byte("hello"), []byte("pw123"), nil)
	require.NoError(t, err)
	require.Len(t, artifact, encryption.HeaderSize+encryption.BlockSize)

	plaintext, err := encryption.Open(artifact, []byte("pw123"))
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), plaintext)

	wrong, err := encryption.Open(artifact, []byte("wrong"))
	if err == nil {
		// Unauthenticated CBC: a wrong key yields valid padding about once in 256 tries.
		assert.NotEqual(t, []byte("hello"), wrong)
	} else {
		require.ErrorIs(t, err, encryption.ErrInvalidPadding)
	}
}

func TestSealLargeRoundTrip(t *testing.T) {
	t.Parallel()

	plaintext := randomBytes(t, 1<<20+13)

	artifact, err := encryption.Seal(plaintext, []byte("correct horse"), nil)
	require.NoError(t, err)

	opened, err := encryption.Open(artifact, []byte("correct horse"))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(plaintext, opened))
}

func TestSealUnique(t *testing.T) {
	t.Parallel()

	plaintext := []byte("same plaintext, same password")
	password := []byte("pw123")

	first, err := encryption.Seal(plaintext, password, nil)
	require.NoError(t, err)

	second, err := encryption.Seal(plaintext, password, nil)
	require.NoError(t, err)

	assert.NotEqual(t, first[:encryption.SaltSize], second[:encryption.SaltSize], "salt reused")
	assert.NotEqual(t, first[encryption.SaltSize:encryption.HeaderSize],
		second[encryption.SaltSize:encryption.HeaderSize], "IV reused")
	assert.NotEqual(t, first[encryption.HeaderSize:], second[encryption.HeaderSize:])
}

func TestSealUsesInjectedRandom(t *testing.T) {
	t.Parallel()

	seed := bytes.Repeat([]byte{0x5A}, encryption.HeaderSize)

	first, err := encryption.Seal([]byte("hello"), []byte("pw123"), bytes.NewReader(seed))
	require.NoError(t, err)

	second, err := encryption.Seal([]byte("hello"), []byte("pw123"), bytes.NewReader(seed))
	require.NoError(t, err)

	assert.Equal(t, seed, first[:encryption.HeaderSize])
	assert.Equal(t, first, second)

	var header encryption.Header
	require.NoError(t, header.UnmarshalBinary(first[:encryption.HeaderSize]))
	assert.Equal(t, seed[:encryption.SaltSize], header.Salt[:])
	assert.Equal(t, seed[encryption.SaltSize:], header.IV[:])
}

func TestSealShortRandom(t *testing.T) {
	t.Parallel()

	_, err := encryption.Seal([]byte("hello"), []byte("pw123"), bytes.NewReader(make([]byte, encryption.SaltSize)))
	require.Error(t, err)
}

func TestEmptyPassword(t *testing.T) {
	t.Parallel()

	_, err := encryption.Seal([]byte("hello"), nil, nil)
	require.ErrorIs(t, err, encryption.ErrEmptyPassword)

	_, err = encryption.Open(make([]byte, 80), []byte{})
	require.ErrorIs(t, err, encryption.ErrEmptyPassword)
}

func TestHeaderMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	var header encryption.Header
	copy(header.Salt[:], randomBytes(t, encryption.SaltSize))
	copy(header.IV[:], randomBytes(t, encryption.IVSize))

	encoded, err := header.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, encoded, encryption.HeaderSize)

	var decoded encryption.Header
	require.NoError(t, decoded.UnmarshalBinary(encoded))
	assert.Equal(t, header, decoded)

	require.ErrorIs(t, decoded.UnmarshalBinary(encoded[:10]), encryption.ErrTruncatedFile)

	err = decoded.UnmarshalBinary(append(encoded, make([]byte, 12)...))
	require.EqualError(t, err, "header is 60 bytes, want 48")
	assert.NotErrorIs(t, err, encryption.ErrTruncatedFile)
}
