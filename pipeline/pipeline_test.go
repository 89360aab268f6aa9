package pipeline

import (
	"bytes"
	"cryptonyan"
	"cryptonyan/sym/feistel"
	"cryptonyan/sym/shuffler"
	"os"
	"path/filepath"
	"testing"

	"github.com/btcsuite/btclog/v2"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var (
	testKey       = cryptonyan.Key("jorlng82n5y9hr62")
	testFirstKey  = cryptonyan.Permutation{4, 2, 1, 5, 3}
	testSecondKey = cryptonyan.Permutation{2, 5, 3, 4, 1}
)

func newTestPipeline(t require.TestingT) *Pipeline {
	block, err := feistel.NewFeistel(testKey)
	require.NoError(t, err)

	transposition, err := shuffler.NewShuffler(testFirstKey, testSecondKey)
	require.NoError(t, err)

	return New(block, transposition)
}

func TestPipelineRoundTrip(t *testing.T) {
	p := newTestPipeline(t)

	testCases := []string{
		"",
		"ABCDE",
		"attack at dawn",
		"Привет, мир!",
		"a longer message that spans more than a single block of sixteen bytes",
	}
	for _, text := range testCases {
		ciphertext := p.Encrypt(text)
		require.Zero(t, len(ciphertext)%feistel.BlockSize)

		plaintext, err := p.Decrypt(ciphertext)
		require.NoError(t, err)
		require.Equal(t, text, plaintext)
	}
}

func TestPipelineMatchesCiphers(t *testing.T) {
	p := newTestPipeline(t)

	// "ABCDE" shuffles to "DCEAB" before the block cipher runs
	block, err := feistel.NewFeistel(testKey)
	require.NoError(t, err)
	expected := block.NewEncryptor().Encrypt(cryptonyan.Plaintext("DCEAB"))

	require.Equal(t, expected, p.Encrypt("ABCDE"))
}

func TestPipelineDecryptErrors(t *testing.T) {
	p := newTestPipeline(t)

	_, err := p.Decrypt(make(cryptonyan.Ciphertext, feistel.BlockSize+1))
	require.ErrorIs(t, err, feistel.ErrInvalidCiphertextLength)

	// six characters do not fill a whole number of rows of five
	block, err := feistel.NewFeistel(testKey)
	require.NoError(t, err)
	ciphertext := block.NewEncryptor().Encrypt(cryptonyan.Plaintext("abcdef"))

	_, err = p.Decrypt(ciphertext)
	require.ErrorIs(t, err, shuffler.ErrKeyLengthMismatch)
}

func TestPipelineProperties(t *testing.T) {
	p := newTestPipeline(t)

	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringOfN(
			rapid.RuneFrom([]rune("abcdefghijklmnopqrstuvwxyz .,ЖλΩ")),
			0, 128, -1,
		).Draw(t, "text")

		plaintext, err := p.Decrypt(p.Encrypt(text))
		require.NoError(t, err)
		require.Equal(t, text, plaintext)
	})
}

func TestPipelineFiles(t *testing.T) {
	var logBuf bytes.Buffer
	UseLogger(btclog.NewSLogger(btclog.NewDefaultHandler(&logBuf)))
	t.Cleanup(DisableLog)

	p := newTestPipeline(t)
	dir := t.TempDir()

	example := filepath.Join(dir, "example")
	encrypted := filepath.Join(dir, "encrypt")
	decrypted := filepath.Join(dir, "decrypt")

	text := "The quick brown fox jumps over the lazy dog"
	require.NoError(t, os.WriteFile(example, []byte(text), 0644))

	require.NoError(t, p.EncryptFile(example, encrypted))
	raw, err := os.ReadFile(encrypted)
	require.NoError(t, err)
	require.Equal(t, []byte(p.Encrypt(text)), raw)

	require.NoError(t, p.DecryptFile(encrypted, decrypted))
	result, err := os.ReadFile(decrypted)
	require.NoError(t, err)
	require.Equal(t, text, string(result))

	require.Contains(t, logBuf.String(), "Encrypted")
	require.Contains(t, logBuf.String(), "Decrypted")

	err = p.EncryptFile(filepath.Join(dir, "missing"), encrypted)
	require.ErrorIs(t, err, os.ErrNotExist)
}
