package shuffler

import (
	"strings"
	"testing"
)

func BenchmarkShuffler(b *testing.B) {
	for _, tc := range TestVector {
		benchmarkShuffler(&tc, b)
	}
}

func benchmarkShuffler(tc *TestContext, b *testing.B) {
	if testing.Short() {
		b.Skip("skipping benchmark in short mode.")
	}

	shufflerCipher, err := NewShuffler(tc.FirstKey, tc.SecondKey)
	if err != nil {
		b.Fatal(err)
	}
	encryptor := shufflerCipher.NewEncryptor()
	newCiphertext := encryptor.Encrypt(tc.Plaintext)

	// repeat the plaintext so the grids have some height
	plaintext := strings.Repeat(tc.Plaintext, 64)

	b.Run("SHUFFLER/NewShuffler/"+tc.Name, func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := NewShuffler(tc.FirstKey, tc.SecondKey); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run(testString("SHUFFLER/Encrypt/"+tc.Name, shufflerCipher.Params()), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			newCiphertext = encryptor.Encrypt(plaintext)
		}
	})

	b.Run("SHUFFLER/Decrypt/"+tc.Name, func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := encryptor.Decrypt(newCiphertext); err != nil {
				b.Fatal(err)
			}
		}
	})
}
