package cryptonyan

type Key []byte
type Block []byte
type Plaintext []byte
type Ciphertext []byte
type Permutation []int
type Grid [][]rune
