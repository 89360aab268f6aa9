package shuffler

import (
	"cryptonyan"
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

const (
	firstKeyLabel  byte = 1
	secondKeyLabel byte = 2
)

// DeriveKeys derives both permutation keys of size n from a seed
func DeriveKeys(seed []byte, n int) (firstKey, secondKey cryptonyan.Permutation) {
	return DerivePermutation(seed, firstKeyLabel, n), DerivePermutation(seed, secondKeyLabel, n)
}

// DerivePermutation derives a permutation of 1..n from SHAKE128(seed || label)
// with a Fisher-Yates shuffle
func DerivePermutation(seed []byte, label byte, n int) cryptonyan.Permutation {
	shake := sha3.NewShake128()
	if _, err := shake.Write(append(append([]byte{}, seed...), label)); err != nil {
		panic("Failed to init SHAKE128!")
	}

	perm := make(cryptonyan.Permutation, n)
	for i := range perm {
		perm[i] = i + 1
	}
	for i := n - 1; i > 0; i-- {
		j := uniform(shake, uint64(i))
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// uniform returns a value in [0, bound] by rejection sampling over the
// smallest all-ones mask covering bound
func uniform(shake sha3.ShakeHash, bound uint64) uint64 {
	mask := uint64(0)
	for b := bound; b > 0; b >>= 1 {
		mask = mask<<1 | 1
	}

	var randomByte [8]byte
	for {
		if _, err := shake.Read(randomByte[:]); err != nil {
			panic("SHAKE128 squeeze failed")
		}

		value := binary.BigEndian.Uint64(randomByte[:]) & mask
		if value <= bound {
			return value
		}
	}
}
