package feistel

import "testing"

func BenchmarkFeistel(b *testing.B) {
	for _, tc := range TestVector {
		benchmarkFeistel(&tc, b)
	}
}

func benchmarkFeistel(tc *TestContext, b *testing.B) {
	if testing.Short() {
		b.Skip("skipping benchmark in short mode.")
	}

	feistelCipher, err := NewFeistel(tc.Key)
	if err != nil {
		b.Fatal(err)
	}
	encryptor := feistelCipher.NewEncryptor()
	newCiphertext := encryptor.Encrypt(tc.Plaintext)

	b.Run(testString("FEISTEL/NewFeistel/"+tc.Name, feistelCipher.Params()), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := NewFeistel(tc.Key); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("FEISTEL/NewEncryptor/"+tc.Name, func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			encryptor = feistelCipher.NewEncryptor()
		}
	})

	b.Run("FEISTEL/Encrypt/"+tc.Name, func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			newCiphertext = encryptor.Encrypt(tc.Plaintext)
		}
	})

	b.Run("FEISTEL/Decrypt/"+tc.Name, func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := encryptor.Decrypt(newCiphertext); err != nil {
				b.Fatal(err)
			}
		}
	})
}
