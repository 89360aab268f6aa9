package feistel

import (
	"cryptonyan"

	"golang.org/x/crypto/sha3"
)

// DeriveKey squeezes a KeySize secret out of SHAKE128 absorbed with the passphrase
func DeriveKey(passphrase []byte) cryptonyan.Key {
	shake := sha3.NewShake128()
	if _, err := shake.Write(passphrase); err != nil {
		panic("Failed to init SHAKE128!")
	}

	key := make(cryptonyan.Key, KeySize)
	if _, err := shake.Read(key); err != nil {
		panic("SHAKE128 squeeze failed")
	}
	return key
}
