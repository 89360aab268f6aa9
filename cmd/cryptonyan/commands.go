package main

import (
	"cryptonyan"
	"cryptonyan/pipeline"
	"cryptonyan/sym/feistel"
	"cryptonyan/sym/shuffler"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"
)

var encryptCommand = cli.Command{
	Name:      "encrypt",
	Usage:     "Shuffle and encrypt one or more text files.",
	ArgsUsage: "FILE...",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "out_suffix",
			Value: ".enc",
			Usage: "suffix appended to each input path to name the output",
		},
	},
	Action: func(ctx *cli.Context) error {
		return processFiles(ctx, func(p *pipeline.Pipeline) fileOp {
			return p.EncryptFile
		})
	},
}

var decryptCommand = cli.Command{
	Name:      "decrypt",
	Usage:     "Decrypt and unshuffle one or more encrypted files.",
	ArgsUsage: "FILE...",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "out_suffix",
			Value: ".dec",
			Usage: "suffix appended to each input path to name the output",
		},
	},
	Action: func(ctx *cli.Context) error {
		return processFiles(ctx, func(p *pipeline.Pipeline) fileOp {
			return p.DecryptFile
		})
	},
}

var keygenCommand = cli.Command{
	Name:  "keygen",
	Usage: "Derive a pair of permutation keys from a seed.",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "seed",
			Usage: "the seed the permutations are derived from",
		},
		cli.IntFlag{
			Name:  "size",
			Value: 5,
			Usage: "the permutation size N",
		},
	},
	Action: func(ctx *cli.Context) error {
		seed := ctx.String("seed")
		if seed == "" {
			return fmt.Errorf("--seed is required")
		}
		size := ctx.Int("size")
		if size < 1 {
			return fmt.Errorf("--size must be positive, got %d", size)
		}

		firstKey, secondKey := shuffler.DeriveKeys([]byte(seed), size)
		fmt.Fprintf(ctx.App.Writer, "--first=%s --second=%s\n",
			cryptonyan.PermutationToString(firstKey),
			cryptonyan.PermutationToString(secondKey))

		return nil
	},
}

var scheduleCommand = cli.Command{
	Name:  "schedule",
	Usage: "Print the round keys derived from the Feistel key.",
	Action: func(ctx *cli.Context) error {
		block, err := newFeistel(ctx)
		if err != nil {
			return err
		}

		params := block.Params()
		fmt.Fprintf(ctx.App.Writer, "block=%d flows=%d flow_size=%d rounds=%d\n",
			params.GetBlockSize(), params.GetFlowCount(),
			params.GetFlowSize(), params.GetRounds())
		for i, key := range block.KeySchedule() {
			fmt.Fprintf(ctx.App.Writer, "round %2d: %s\n", i,
				cryptonyan.BytesToHex(key[:]))
		}

		return nil
	},
}

type fileOp func(in, out string) error

// processFiles runs the operation over every file argument concurrently.
func processFiles(ctx *cli.Context,
	op func(p *pipeline.Pipeline) fileOp) error {

	files := uniqueFiles(ctx.Args())
	if len(files) == 0 {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}

	p, err := newPipeline(ctx)
	if err != nil {
		return err
	}
	run := op(p)
	suffix := ctx.String("out_suffix")

	var g errgroup.Group
	for _, file := range files {
		file := file
		g.Go(func() error {
			return run(file, file+suffix)
		})
	}

	return g.Wait()
}

// uniqueFiles drops repeated paths so no two goroutines write the same output.
func uniqueFiles(files []string) []string {
	seen := make(map[string]struct{}, len(files))
	unique := make([]string, 0, len(files))
	for _, file := range files {
		if _, ok := seen[file]; ok {
			continue
		}
		seen[file] = struct{}{}
		unique = append(unique, file)
	}

	return unique
}

func newPipeline(ctx *cli.Context) (*pipeline.Pipeline, error) {
	block, err := newFeistel(ctx)
	if err != nil {
		return nil, err
	}

	transposition, err := newShuffler(ctx)
	if err != nil {
		return nil, err
	}

	return pipeline.New(block, transposition), nil
}

func newFeistel(ctx *cli.Context) (feistel.Feistel, error) {
	key := cryptonyan.Key(ctx.GlobalString("key"))
	if passphrase := ctx.GlobalString("passphrase"); passphrase != "" {
		key = feistel.DeriveKey([]byte(passphrase))
	}

	return feistel.NewFeistel(key)
}

func newShuffler(ctx *cli.Context) (shuffler.Shuffler, error) {
	firstKey, err := parsePermutation(ctx.GlobalString("first"))
	if err != nil {
		return nil, fmt.Errorf("invalid --first: %w", err)
	}

	secondKey, err := parsePermutation(ctx.GlobalString("second"))
	if err != nil {
		return nil, fmt.Errorf("invalid --second: %w", err)
	}

	return shuffler.NewShuffler(firstKey, secondKey)
}

// parsePermutation parses a comma separated list of integers.
func parsePermutation(s string) (cryptonyan.Permutation, error) {
	fields := strings.Split(s, ",")
	perm := make(cryptonyan.Permutation, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		perm = append(perm, v)
	}

	return perm, nil
}
