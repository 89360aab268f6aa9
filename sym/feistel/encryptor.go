package feistel

import (
	"cryptonyan"
	"fmt"
)

type Encryptor interface {
	Encrypt(plaintext cryptonyan.Plaintext) cryptonyan.Ciphertext
	Decrypt(ciphertext cryptonyan.Ciphertext) (cryptonyan.Plaintext, error)
	DecryptBlocks(ciphertext cryptonyan.Ciphertext) (cryptonyan.Plaintext, error)
}

type encryptor struct {
	fei feistel
}

// Encrypt plaintext of any length, the ciphertext is zero padded up to a
// multiple of BlockSize
func (enc encryptor) Encrypt(plaintext cryptonyan.Plaintext) cryptonyan.Ciphertext {
	logger := cryptonyan.NewLogger(cryptonyan.DEBUG)
	blocks := separateToBlocks(plaintext)
	logger.PrintFormatted("Number of Block: %d", len(blocks))

	for i := range blocks {
		blocks[i] = enc.fei.encryptBlock(blocks[i])
	}

	ciphertext := cryptonyan.Ciphertext(restoreSeparatedArray(blocks, false))
	logger.PrintSummarizedBytes("ciphertext", ciphertext, len(ciphertext))
	return ciphertext
}

// Decrypt ciphertext, the trailing zero bytes of the last block are trimmed
func (enc encryptor) Decrypt(ciphertext cryptonyan.Ciphertext) (cryptonyan.Plaintext, error) {
	return enc.decrypt(ciphertext, true)
}

// DecryptBlocks decrypts ciphertext and keeps every byte of the last block
func (enc encryptor) DecryptBlocks(ciphertext cryptonyan.Ciphertext) (cryptonyan.Plaintext, error) {
	return enc.decrypt(ciphertext, false)
}

func (enc encryptor) decrypt(ciphertext cryptonyan.Ciphertext, trim bool) (cryptonyan.Plaintext, error) {
	logger := cryptonyan.NewLogger(cryptonyan.DEBUG)
	if len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidCiphertextLength, len(ciphertext))
	}

	blocks := separateToBlocks(ciphertext)
	logger.PrintFormatted("Number of Block: %d", len(blocks))

	for i := range blocks {
		blocks[i] = enc.fei.decryptBlock(blocks[i])
	}

	return restoreSeparatedArray(blocks, trim), nil
}
