// Command spvfilterctl is a small demonstration CLI exercising the bloom
// and merkletree packages end to end: build a bloom filter and check
// membership, or encode a partial Merkle tree proof against a synthetic
// block and decode it straight back. It is not a protocol surface — just an
// executable stand-in for the round-trip properties spec.md §8 describes.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"

	"github.com/scala-cash/scashspv/bloom"
	"github.com/scala-cash/scashspv/build"
	"github.com/scala-cash/scashspv/merkletree"
	"github.com/scala-cash/scashspv/spvfilter"
)

// rootOptions holds the flags available before a subcommand, mirroring the
// debuglevel flag the daemon exposes.
type rootOptions struct {
	DebugLevel string `short:"d" long:"debuglevel" default:"info" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <global-level>,<subsystem>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
}

// cliSubLoggers implements build.LeveledSubLogger over the demo CLI's fixed
// set of subsystem loggers so --debuglevel can drive them through
// build.ParseAndSetDebugLevels, the same entry point the daemon uses.
type cliSubLoggers struct {
	loggers build.SubLoggers
}

func (c *cliSubLoggers) SubLoggers() build.SubLoggers {
	return c.loggers
}

func (c *cliSubLoggers) SupportedSubsystems() []string {
	ids := make([]string, 0, len(c.loggers))
	for id := range c.loggers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (c *cliSubLoggers) SetLogLevel(subsystemID string, logLevel string) {
	logger, ok := c.loggers[subsystemID]
	if !ok {
		return
	}
	level, _ := btclog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

func (c *cliSubLoggers) SetLogLevels(logLevel string) {
	for id := range c.loggers {
		c.SetLogLevel(id, logLevel)
	}
}

type filterCommand struct {
	Elements uint32   `long:"elements" description:"expected number of elements" default:"100"`
	FPRate   float64  `long:"fprate" description:"target false positive rate" default:"0.001"`
	Tweak    uint32   `long:"tweak" description:"filter tweak"`
	Flags    string   `long:"flags" description:"update policy: none, all, p2pubkey" default:"none" choice:"none" choice:"all" choice:"p2pubkey"`
	Insert   []string `long:"insert" description:"hex-encoded byte string to insert (repeatable)"`
	Contains []string `long:"contains" description:"hex-encoded byte string to test for membership (repeatable)"`
}

func (c *filterCommand) Execute(_ []string) error {
	var flag bloom.UpdateFlag
	switch c.Flags {
	case "all":
		flag = bloom.UpdateAll
	case "p2pubkey":
		flag = bloom.UpdateP2PubkeyOnly
	default:
		flag = bloom.UpdateNone
	}

	f, err := bloom.NewFilter(c.Elements, c.Tweak, c.FPRate, flag)
	if err != nil {
		return err
	}

	for _, h := range c.Insert {
		data, err := hex.DecodeString(h)
		if err != nil {
			return err
		}
		f.Insert(data)
	}

	raw, err := f.Serialize()
	if err != nil {
		return err
	}
	fmt.Printf("filter: size=%d hash_funcs=%d tweak=%d flags=%s\n",
		f.Size(), f.HashFuncs(), f.Tweak(), f.Flags())
	fmt.Printf("serialized: %x\n", raw)

	for _, h := range c.Contains {
		data, err := hex.DecodeString(h)
		if err != nil {
			return err
		}
		fmt.Printf("contains(%s) = %v\n", h, f.Contains(data))
	}

	return nil
}

type proofCommand struct {
	TxIDs   []string `long:"txid" description:"hex txid in the synthetic block, in order (repeatable)" required:"true"`
	Matched []string `long:"matched" description:"index into --txid that should be treated as matched (repeatable)"`
}

func (c *proofCommand) Execute(_ []string) error {
	txids := make([]chainhash.Hash, len(c.TxIDs))
	for i, s := range c.TxIDs {
		h, err := chainhash.NewHashFromStr(s)
		if err != nil {
			return fmt.Errorf("invalid txid %q: %w", s, err)
		}
		txids[i] = *h
	}

	matched := make([]bool, len(txids))
	for _, s := range c.Matched {
		idx, err := strconv.Atoi(s)
		if err != nil || idx < 0 || idx >= len(matched) {
			return fmt.Errorf("invalid match index %q", s)
		}
		matched[idx] = true
	}

	proof, err := merkletree.Encode(txids, matched)
	if err != nil {
		return err
	}

	bits := make([]string, len(proof.Bits))
	for i, b := range proof.Bits {
		if b {
			bits[i] = "1"
		} else {
			bits[i] = "0"
		}
	}
	fmt.Printf("encoded: %d hashes, bits=%s\n", len(proof.Hashes), strings.Join(bits, ""))

	recon, err := proof.Decode()
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	fmt.Printf("recovered root: %s\n", recon.Root)
	for i, m := range recon.Matches {
		fmt.Printf("match[%d]: index=%d txid=%s\n", i, recon.MatchIndexes[i], m)
	}

	return nil
}

func main() {
	backend := btclog.NewBackend(os.Stdout)
	genSubLogger := func(subsystem string) btclog.Logger {
		logger := backend.Logger(subsystem)
		logger.SetLevel(btclog.LevelInfo)
		return logger
	}

	bloomLogger := build.NewSubLogger(bloom.Subsystem, genSubLogger)
	merkletreeLogger := build.NewSubLogger(merkletree.Subsystem, genSubLogger)
	spvfilterLogger := build.NewSubLogger(spvfilter.Subsystem, genSubLogger)
	bloom.UseLogger(bloomLogger)
	merkletree.UseLogger(merkletreeLogger)
	spvfilter.UseLogger(spvfilterLogger)

	subLoggers := &cliSubLoggers{
		loggers: build.SubLoggers{
			bloom.Subsystem:      bloomLogger,
			merkletree.Subsystem: merkletreeLogger,
			spvfilter.Subsystem:  spvfilterLogger,
		},
	}

	var opts rootOptions
	pre := flags.NewParser(&opts, flags.IgnoreUnknown)
	_, _ = pre.ParseArgs(os.Args[1:])

	if opts.DebugLevel == "show" {
		fmt.Println("Supported subsystems", subLoggers.SupportedSubsystems())
		os.Exit(0)
	}
	if err := build.ParseAndSetDebugLevels(opts.DebugLevel, subLoggers); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.AddCommand(
		"filter", "Build and query a bloom filter",
		"Build a bloom filter, insert byte strings, and test membership.",
		&filterCommand{},
	); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if _, err := parser.AddCommand(
		"proof", "Encode and decode a partial Merkle tree proof",
		"Encode a partial Merkle tree proof against a synthetic block of txids, then decode it back.",
		&proofCommand{},
	); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
