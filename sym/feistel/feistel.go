package feistel

import (
	"cryptonyan"
	"errors"
	"fmt"
)

var (
	// ErrInvalidKeyLength is returned when the secret key is not exactly
	// KeySize bytes long.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidCiphertextLength is returned when the ciphertext length is
	// not a multiple of BlockSize.
	ErrInvalidCiphertextLength = errors.New("ciphertext length is not a multiple of block size")
)

type flow [FlowSize]byte

type block [FlowCount]flow

// RoundKey is the key consumed by a single round
type RoundKey [FlowSize]byte

type Feistel interface {
	NewEncryptor() Encryptor
	KeySchedule() [Rounds]RoundKey
	Params() Parameter
}

type feistel struct {
	params    Parameter
	roundKeys [Rounds]RoundKey
}

// NewFeistel return a new instance of the feistel cipher keyed by a 16 bytes secret
func NewFeistel(secretKey cryptonyan.Key) (Feistel, error) {
	if len(secretKey) != KeySize {
		return nil, fmt.Errorf("%w: key size should be equal to block size (%d bytes), got %d",
			ErrInvalidKeyLength, KeySize, len(secretKey))
	}

	fei := &feistel{
		params: DefaultParams,
	}
	fei.generateKeys(secretKey)
	return fei, nil
}

func (fei *feistel) NewEncryptor() Encryptor {
	return &encryptor{fei: *fei}
}

func (fei *feistel) Params() Parameter {
	return fei.params
}

// KeySchedule returns a copy of the round keys
func (fei *feistel) KeySchedule() [Rounds]RoundKey {
	return fei.roundKeys
}

// generateKeys derives 16 round keys of 32 bits from the 128 bits key.
// Keys 0..3 are slices of the secret, keys 4..7, 8..11 and 12..15 are
// cyclic right shifts of keys 0..3 by one, two and three bytes.
func (fei *feistel) generateKeys(secretKey cryptonyan.Key) {
	for i := 0; i < FlowCount; i++ {
		base := cryptonyan.Block(secretKey[i*FlowSize : (i+1)*FlowSize])
		for shift := 0; shift < Rounds/FlowCount; shift++ {
			copy(fei.roundKeys[shift*FlowCount+i][:], cryptonyan.RotateRight(base, shift))
		}
	}
}

// round executes one feistel round: the first flow, mixed with the round
// key, is xor-ed into the other three flows, then the flows rotate left
func round(b block, key RoundKey) block {
	f1, f2, f3, f4 := b[0], b[1], b[2], b[3]
	for i := 0; i < FlowSize; i++ {
		tmp := f1[i] ^ key[i]
		f2[i] ^= tmp
		f3[i] ^= tmp
		f4[i] ^= tmp
	}
	return block{f2, f3, f4, f1}
}

// reversedRound undoes round for the same key
func reversedRound(b block, key RoundKey) block {
	f1, f2, f3, f4 := b[0], b[1], b[2], b[3]
	for i := 0; i < FlowSize; i++ {
		tmp := f4[i] ^ key[i]
		f1[i] ^= tmp
		f2[i] ^= tmp
		f3[i] ^= tmp
	}
	return block{f4, f1, f2, f3}
}

func (fei *feistel) encryptBlock(b block) block {
	for r := 0; r < Rounds; r++ {
		b = round(b, fei.roundKeys[r])
	}
	return b
}

func (fei *feistel) decryptBlock(b block) block {
	for r := Rounds - 1; r >= 0; r-- {
		b = reversedRound(b, fei.roundKeys[r])
	}
	return b
}

// separateToBlocks splits data into blocks of four flows. Positions past
// the end of data stay zero.
func separateToBlocks(data []byte) []block {
	blocks := make([]block, cryptonyan.CeilDiv(len(data), BlockSize))
	padded := cryptonyan.ResizeSlice(data, len(blocks)*BlockSize)
	for i := range blocks {
		for j := 0; j < FlowCount; j++ {
			offset := i*BlockSize + j*FlowSize
			copy(blocks[i][j][:], padded[offset:offset+FlowSize])
		}
	}
	return blocks
}

// restoreSeparatedArray flattens blocks back to bytes. With trim set, the
// trailing zero bytes of the final block are dropped.
func restoreSeparatedArray(blocks []block, trim bool) []byte {
	result := make([]byte, 0, len(blocks)*BlockSize)
	for i := range blocks {
		for j := range blocks[i] {
			result = append(result, blocks[i][j][:]...)
		}
	}
	if !trim || len(blocks) == 0 {
		return result
	}

	lastBlockStart := (len(blocks) - 1) * BlockSize
	end := len(result)
	for end > lastBlockStart && result[end-1] == 0 {
		end--
	}
	return result[:end]
}
