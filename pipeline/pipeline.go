// Package pipeline chains the transposition cipher and the block cipher the
// way the file driver uses them: shuffle then Feistel-encrypt, Feistel-decrypt
// then unshuffle.
package pipeline

import (
	"cryptonyan"
	"cryptonyan/sym/feistel"
	"cryptonyan/sym/shuffler"
	"fmt"
	"os"
)

// Pipeline is safe for concurrent use, both ciphers are read only once
// constructed.
type Pipeline struct {
	block         feistel.Encryptor
	transposition shuffler.Encryptor
}

// New returns a pipeline over the given ciphers.
func New(block feistel.Feistel, transposition shuffler.Shuffler) *Pipeline {
	return &Pipeline{
		block:         block.NewEncryptor(),
		transposition: transposition.NewEncryptor(),
	}
}

// Encrypt shuffles the text then encrypts its UTF-8 bytes.
func (p *Pipeline) Encrypt(text string) cryptonyan.Ciphertext {
	shuffled := p.transposition.Encrypt(text)
	ciphertext := p.block.Encrypt(cryptonyan.Plaintext(shuffled))

	log.Debugf("Encrypted %d bytes of text into %d bytes", len(text),
		len(ciphertext))

	return ciphertext
}

// Decrypt reverses Encrypt.
func (p *Pipeline) Decrypt(ciphertext cryptonyan.Ciphertext) (string, error) {
	plaintext, err := p.block.Decrypt(ciphertext)
	if err != nil {
		return "", fmt.Errorf("block decrypt: %w", err)
	}

	text, err := p.transposition.Decrypt(string(plaintext))
	if err != nil {
		return "", fmt.Errorf("unshuffle: %w", err)
	}

	log.Debugf("Decrypted %d bytes into %d bytes of text", len(ciphertext),
		len(text))

	return text, nil
}

// EncryptFile encrypts the content of in and writes the raw ciphertext to out.
func (p *Pipeline) EncryptFile(in, out string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("unable to read %s: %w", in, err)
	}

	if err := os.WriteFile(out, p.Encrypt(string(data)), 0644); err != nil {
		return fmt.Errorf("unable to write %s: %w", out, err)
	}

	log.Infof("Encrypted %s to %s", in, out)

	return nil
}

// DecryptFile decrypts the raw ciphertext in and writes the text to out.
func (p *Pipeline) DecryptFile(in, out string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("unable to read %s: %w", in, err)
	}

	text, err := p.Decrypt(data)
	if err != nil {
		return fmt.Errorf("unable to decrypt %s: %w", in, err)
	}

	if err := os.WriteFile(out, []byte(text), 0644); err != nil {
		return fmt.Errorf("unable to write %s: %w", out, err)
	}

	log.Infof("Decrypted %s to %s", in, out)

	return nil
}
