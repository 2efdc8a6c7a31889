package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/shacbc/internal/commands"
	"github.com/idelchi/shacbc/internal/config"
)

func execute(t *testing.T, args ...string) (*config.Config, string, error) {
	t.Helper()

	cfg := &config.Config{}
	root := commands.NewRootCommand(cfg, "test")

	var out bytes.Buffer

	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()

	return cfg, out.String(), err
}

func TestEncryptDecrypt(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(plain, []byte("hello"), 0o600))

	sealed := filepath.Join(dir, "sealed.bin")

	cfg, _, err := execute(t, "encrypt", "-q", "-p", "pw123", "-o", sealed, plain)
	require.NoError(t, err)
	assert.False(t, cfg.Decrypt)
	assert.Equal(t, []string{plain}, cfg.Files)

	info, err := os.Stat(sealed)
	require.NoError(t, err)
	assert.Equal(t, int64(80), info.Size())

	restored := filepath.Join(dir, "restored.txt")

	cfg, _, err = execute(t, "dec", "-q", "-p", "pw123", "-o", restored, sealed)
	require.NoError(t, err)
	assert.True(t, cfg.Decrypt)

	data, err := os.ReadFile(restored)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
}

func TestPasswordFromEnvironment(t *testing.T) {
	t.Setenv("SHACBC_PASSWORD", "from-env")
	t.Setenv("SHACBC_ENCRYPT_EXT", ".sealed")

	dir := t.TempDir()
	plain := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(plain, []byte("data"), 0o600))

	cfg, _, err := execute(t, "encrypt", "-q", plain)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Password.String)
	assert.Equal(t, ".sealed", cfg.Suffixes.Encrypt)
	assert.FileExists(t, plain+".sealed")
}

func TestValidationErrors(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")

	for _, path := range []string{a, b} {
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	}

	tests := map[string][]string{
		"no files":              {"encrypt", "-p", "pw"},
		"output with two files": {"encrypt", "-p", "pw", "-o", filepath.Join(dir, "out"), a, b},
		"password and file":     {"encrypt", "-p", "pw", "-f", a, a},
		"zero workers":          {"decrypt", "-p", "pw", "-j", "0", a},
		"empty encrypt suffix":  {"encrypt", "-p", "pw", "--encrypt-ext", "", a},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := execute(t, args...)
			require.Error(t, err)
		})
	}
}

func TestOutputWithMultipleFiles(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, "encrypt", "-p", "pw", "-o", filepath.Join(dir, "out"), "a", "b")
	require.ErrorIs(t, err, config.ErrOutputWithMultipleFiles)
}

func TestPasswordSourcesAreExclusive(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	require.NoError(t, os.WriteFile(a, []byte("x"), 0o600))

	_, _, err := execute(t, "encrypt", "-p", "pw", "-f", a, a)
	require.ErrorContains(t, err, "mutually exclusive")
}

func TestDeleteWithOutputOverInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(in, []byte("plaintext"), 0o600))

	_, _, err := execute(t, "encrypt", "-q", "-d", "-p", "pw", "-o", in, in)
	require.ErrorIs(t, err, config.ErrDeleteOverwritesInput)

	data, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, []byte("plaintext"), data)
}

func TestHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abc.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o600))

	_, out, err := execute(t, "hash", path)
	require.NoError(t, err)
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d  "+path+"\n", out)
}
