package feistel

import (
	"cryptonyan"
	"encoding/hex"
)

type TestContext struct {
	Name          string
	Key           cryptonyan.Key
	Plaintext     cryptonyan.Plaintext
	ExpCipherText cryptonyan.Ciphertext
	// ExpPlaintext is what Decrypt returns, after the zero padding trim
	ExpPlaintext cryptonyan.Plaintext
}

// defaultKey is the default key of the command line driver
const defaultKey = "jorlng82n5y9hr62"

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	cryptonyan.HandleError(err)
	return b
}

// expKeySchedule is the round key schedule of defaultKey
var expKeySchedule = []string{
	"6a6f726c", "6e673832", "6e357939", "68723632",
	"6c6a6f72", "326e6738", "396e3579", "32687236",
	"726c6a6f", "38326e67", "79396e35", "36326872",
	"6f726c6a", "6738326e", "3579396e", "72363268",
}

// Test Vectors
var TestVector = []TestContext{
	{
		Name:          "ZeroBlock",
		Key:           cryptonyan.Key(defaultKey),
		Plaintext:     make(cryptonyan.Plaintext, BlockSize),
		ExpCipherText: mustHex("60212e6c7c3c25662e327a78001a5d42"),
		ExpPlaintext:  cryptonyan.Plaintext{},
	},
	{
		Name:          "ShortBlock",
		Key:           cryptonyan.Key(defaultKey),
		Plaintext:     cryptonyan.Plaintext("hello, feistel"),
		ExpCipherText: mustHex("6768626671303a7e233b1614687f312e"),
		ExpPlaintext:  cryptonyan.Plaintext("hello, feistel"),
	},
	{
		Name:      "TwoBlocks",
		Key:       cryptonyan.Key(defaultKey),
		Plaintext: cryptonyan.Plaintext("0123456789abcdefXYZ"),
		ExpCipherText: mustHex("64252a68743476377d672d2d302b6f71" +
			"3878746c24657f66766b207858430742"),
		ExpPlaintext: cryptonyan.Plaintext("0123456789abcdefXYZ"),
	},
	{
		Name:          "Empty",
		Key:           cryptonyan.Key(defaultKey),
		Plaintext:     cryptonyan.Plaintext{},
		ExpCipherText: cryptonyan.Ciphertext{},
		ExpPlaintext:  cryptonyan.Plaintext{},
	},
}
