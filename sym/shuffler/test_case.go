package shuffler

import "cryptonyan"

type TestContext struct {
	Name          string
	FirstKey      cryptonyan.Permutation
	SecondKey     cryptonyan.Permutation
	Plaintext     string
	ExpCipherText string
}

// default keys of the command line driver
var (
	defaultFirstKey  = cryptonyan.Permutation{4, 2, 1, 5, 3}
	defaultSecondKey = cryptonyan.Permutation{2, 5, 3, 4, 1}
)

// Test Vectors
var TestVector = []TestContext{
	{
		Name:          "SingleRow",
		FirstKey:      defaultFirstKey,
		SecondKey:     defaultSecondKey,
		Plaintext:     "ABCDE",
		ExpCipherText: "DCEAB",
	},
	{
		Name:          "TwoRows",
		FirstKey:      defaultFirstKey,
		SecondKey:     defaultSecondKey,
		Plaintext:     "HELLOWORLD",
		ExpCipherText: "WLLELRODOH",
	},
	{
		Name:          "Padded",
		FirstKey:      defaultFirstKey,
		SecondKey:     defaultSecondKey,
		Plaintext:     "attack at dawn",
		ExpCipherText: "|dnttc  ktwaaaa",
	},
	{
		Name:          "Multibyte",
		FirstKey:      defaultFirstKey,
		SecondKey:     defaultSecondKey,
		Plaintext:     "Привет, мир!",
		ExpCipherText: "|р|ире,итм|!Пв ",
	},
	{
		Name:          "Empty",
		FirstKey:      defaultFirstKey,
		SecondKey:     defaultSecondKey,
		Plaintext:     "",
		ExpCipherText: "",
	},
}
