package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	fasthex "github.com/tmthrgd/go-hex"

	"narrowway-go/benchmark"
	"narrowway-go/config"
	"narrowway-go/field"
	"narrowway-go/kat"
	"narrowway-go/narrowway"
	"narrowway-go/rand"
)

const (
	defaultKatCount = 10

	// defaultKatSeed is the seed of the committed known answer files.
	defaultKatSeed = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f202122232425262728292a2b2c2d2e2f"
)

func addCipherFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagVariant, "v", "", "cipher variant: 256, 384 or 512 (default from config)")
	cmd.Flags().String(flagField, "", "GF(2^8) engine: table or direct (default from config)")
}

func (a *app) variant(cmd *cobra.Command) (narrowway.Variant, error) {
	s, _ := cmd.Flags().GetString(flagVariant)
	if s == "" {
		return a.cfg.Variant(), nil
	}
	v, err := narrowway.ParseVariant(s)
	if err != nil {
		return 0, fmt.Errorf("invalid argument %q for --%s: %w", s, flagVariant, err)
	}
	return v, nil
}

func (a *app) field(cmd *cobra.Command) (field.Arithmetic, error) {
	s, _ := cmd.Flags().GetString(flagField)
	if s == "" {
		s = a.cfg.Cipher.Field
	}
	switch strings.ToLower(s) {
	case config.FieldTable:
		return field.Tables(), nil
	case config.FieldDirect:
		return field.Direct{}, nil
	default:
		return nil, fmt.Errorf("invalid argument %q for --%s", s, flagField)
	}
}

func decodeHex(name, s string) ([]byte, error) {
	b, err := fasthex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid argument for %s: %w", name, err)
	}
	return b, nil
}

// blockCommand builds encrypt and decrypt, which differ only in direction.
func (a *app) blockCommand(use, short string, decrypt bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " BLOCK",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.variant(cmd)
			if err != nil {
				return err
			}
			f, err := a.field(cmd)
			if err != nil {
				return err
			}
			keyHex, _ := cmd.Flags().GetString(flagKey)
			key, err := decodeHex("--"+flagKey, keyHex)
			if err != nil {
				return err
			}
			in, err := decodeHex("BLOCK", args[0])
			if err != nil {
				return err
			}

			c, err := narrowway.NewWithField(v, key, f)
			if err != nil {
				return err
			}
			if len(in) != c.BlockSize() {
				return fmt.Errorf("invalid argument: %v blocks are %d bytes, got %d", v, c.BlockSize(), len(in))
			}

			out := make([]byte, c.BlockSize())
			if decrypt {
				c.Decrypt(out, in)
			} else {
				c.Encrypt(out, in)
			}
			a.log.Debug("%s: %v block with %T", use, v, f)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), fasthex.EncodeToString(out))
			return err
		},
	}
	addCipherFlags(cmd)
	cmd.Flags().StringP(flagKey, "k", "", "key as hex, one block long")
	_ = cmd.MarkFlagRequired(flagKey)
	return cmd
}

func (a *app) newEncryptCommand() *cobra.Command {
	return a.blockCommand("encrypt", "Encrypt one hex encoded block", false)
}

func (a *app) newDecryptCommand() *cobra.Command {
	return a.blockCommand("decrypt", "Decrypt one hex encoded block", true)
}

func (a *app) newKeygenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Print a random hex encoded key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.variant(cmd)
			if err != nil {
				return err
			}
			p, err := narrowway.ParamsFor(v)
			if err != nil {
				return err
			}
			key, err := rand.SampleRandomBytes(p.BlockSize)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), fasthex.EncodeToString(key))
			return err
		},
	}
	cmd.Flags().StringP(flagVariant, "v", "", "cipher variant: 256, 384 or 512 (default from config)")
	return cmd
}

func (a *app) newKatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kat",
		Short: "Write a known answer test file",
		Long:  "Write a known answer test file whose keys and plaintexts are drawn from SHAKE256 over the seed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.variant(cmd)
			if err != nil {
				return err
			}
			seedHex, _ := cmd.Flags().GetString("seed")
			seed, err := decodeHex("--seed", seedHex)
			if err != nil {
				return err
			}
			count, _ := cmd.Flags().GetInt("count")
			if count < 0 {
				return fmt.Errorf("invalid argument %d for --count", count)
			}

			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				return kat.Generate(cmd.OutOrStdout(), v, seed, count)
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := kat.Generate(f, v, seed, count); err != nil {
				f.Close()
				return err
			}
			a.log.Notice("Wrote %d %v known answers to %s", count, v, out)
			return f.Close()
		},
	}
	cmd.Flags().StringP(flagVariant, "v", "", "cipher variant: 256, 384 or 512 (default from config)")
	cmd.Flags().String("seed", defaultKatSeed, "seed as hex")
	cmd.Flags().Int("count", defaultKatCount, "number of entries")
	cmd.Flags().StringP("out", "o", "", "output file (default stdout)")
	return cmd
}

func (a *app) newVerifyKatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-kat FILE...",
		Short: "Check known answer test files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				f, err := kat.ParseFile(name)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				if err := f.Verify(); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				a.log.Notice("%s: %d %v entries verified", name, len(f.Entries), f.Variant)
				fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", name)
			}
			return nil
		},
	}
}

func (a *app) newBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark a variant and write JSON results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.variant(cmd)
			if err != nil {
				return err
			}
			f, err := a.field(cmd)
			if err != nil {
				return err
			}

			bCfg := *a.cfg.Benchmark
			flags := cmd.Flags()
			if flags.Changed("samples") {
				bCfg.Samples, _ = flags.GetInt("samples")
			}
			if flags.Changed("workers") {
				bCfg.Workers, _ = flags.GetInt("workers")
			}
			if flags.Changed("blocks") {
				bCfg.Blocks, _ = flags.GetInt("blocks")
			}
			if flags.Changed("out") {
				bCfg.ResultsDir, _ = flags.GetString("out")
			}
			if bCfg.Samples < 0 || bCfg.Workers < 0 || bCfg.Blocks < 0 {
				return fmt.Errorf("invalid argument: counts must not be negative")
			}

			results, err := benchmark.Run(benchmark.Options{
				Variant: v,
				Field:   f,
				Samples: bCfg.Samples,
				Workers: bCfg.Workers,
				Blocks:  bCfg.Blocks,
			}, a.backend.GetLogger("benchmark"))
			if err != nil {
				return err
			}

			name, err := benchmark.Write(results, bCfg.ResultsDir)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), name)
			return err
		},
	}
	addCipherFlags(cmd)
	cmd.Flags().Int("samples", 0, "timed runs per operation (default from config)")
	cmd.Flags().Int("workers", 0, "goroutines in the throughput run (default from config)")
	cmd.Flags().Int("blocks", 0, "blocks encrypted in the throughput run (default from config)")
	cmd.Flags().StringP("out", "o", "", "results directory (default from config)")
	return cmd
}
