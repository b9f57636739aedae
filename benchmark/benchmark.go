// Package benchmark times NarrowWay key expansion and block operations and
// records the samples as JSON.
package benchmark

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
	"gopkg.in/op/go-logging.v1"

	"narrowway-go/field"
	"narrowway-go/narrowway"
	"narrowway-go/rand"
)

const fileName = "results.json"

// Options controls a benchmark run.
type Options struct {
	Variant narrowway.Variant
	Field   field.Arithmetic

	// Samples is the number of timed runs per operation.
	Samples int

	// Workers and Blocks shape the throughput run: Workers goroutines share
	// one cipher and encrypt Blocks blocks between them.
	Workers int
	Blocks  int
}

// Results holds per-sample durations in nanoseconds and the throughput run.
type Results struct {
	Variant    string  `json:"variant"`
	Field      string  `json:"field"`
	New        []int64 `json:"new"`
	Encrypt    []int64 `json:"encrypt"`
	Decrypt    []int64 `json:"decrypt"`
	Workers    int     `json:"workers"`
	Blocks     int     `json:"blocks"`
	Throughput float64 `json:"throughput_mib_s"`
}

// Run benchmarks the variant in opts.
func Run(opts Options, log *logging.Logger) (*Results, error) {
	p, err := narrowway.ParamsFor(opts.Variant)
	if err != nil {
		return nil, err
	}
	if opts.Field == nil {
		opts.Field = field.Tables()
	}
	n := opts.Samples

	// Inputs come from a fixed stream so runs are comparable.
	stream := rand.NewStream([]byte("narrowway benchmark"), []byte(opts.Variant.String()))
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = stream.Next(p.BlockSize)
	}
	block := stream.Next(p.BlockSize)
	sharedKey := stream.Next(p.BlockSize)

	results := &Results{
		Variant: opts.Variant.String(),
		Field:   fieldName(opts.Field),
		Workers: opts.Workers,
		Blocks:  opts.Blocks,
	}

	log.Info("Benchmarking %v key expansion, %d samples", opts.Variant, n)
	ciphers := make([]*narrowway.Cipher, n)
	results.New = make([]int64, n)
	for i := 0; i < n; i++ {
		before := time.Now()
		ciphers[i], err = narrowway.NewWithField(opts.Variant, keys[i], opts.Field)
		duration := time.Since(before)
		if err != nil {
			return nil, err
		}
		results.New[i] = duration.Nanoseconds()
	}

	log.Info("Benchmarking %v encryption", opts.Variant)
	out := make([]byte, p.BlockSize)
	results.Encrypt = make([]int64, n)
	for i := 0; i < n; i++ {
		before := time.Now()
		ciphers[i].Encrypt(out, block)
		duration := time.Since(before)
		results.Encrypt[i] = duration.Nanoseconds()
	}

	log.Info("Benchmarking %v decryption", opts.Variant)
	results.Decrypt = make([]int64, n)
	for i := 0; i < n; i++ {
		before := time.Now()
		ciphers[i].Decrypt(out, block)
		duration := time.Since(before)
		results.Decrypt[i] = duration.Nanoseconds()
	}

	if opts.Workers > 0 && opts.Blocks > 0 {
		c, err := narrowway.NewWithField(opts.Variant, sharedKey, opts.Field)
		if err != nil {
			return nil, err
		}
		elapsed, _, err := throughput(c, opts.Workers, opts.Blocks, block)
		if err != nil {
			return nil, err
		}
		mib := float64(opts.Blocks*p.BlockSize) / (1 << 20)
		results.Throughput = mib / elapsed.Seconds()
		log.Notice("%v: %.2f MiB/s over %d workers", opts.Variant, results.Throughput, opts.Workers)
	}

	return results, nil
}

// throughput encrypts blocks blocks in total with c, shared between workers
// goroutines, each checking that its blocks decrypt back. It returns the
// elapsed time and the number of blocks encrypted.
func throughput(c *narrowway.Cipher, workers, blocks int, block []byte) (time.Duration, int64, error) {
	if workers > blocks {
		workers = blocks
	}

	var (
		counter atomic.Int64
		total   atomic.Int64
		eg      errgroup.Group
	)
	before := time.Now()
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			buf := make([]byte, len(block))
			copy(buf, block)

			done := 0
			for counter.Add(1) <= int64(blocks) {
				c.Encrypt(buf, buf)
				done++
			}
			total.Add(int64(done))
			for ; done > 0; done-- {
				c.Decrypt(buf, buf)
			}
			if !bytes.Equal(buf, block) {
				return errors.New("benchmark: decryption did not restore the block")
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, 0, err
	}
	return time.Since(before), total.Load(), nil
}

// Write stores results as indented JSON in directory and returns the path.
func Write(results *Results, directory string) (string, error) {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return "", err
	}

	resultsJson, err := json.MarshalIndent(results, "", " ")
	if err != nil {
		return "", err
	}

	name := filepath.Join(directory, fmt.Sprintf("%s-%s-%s-%s",
		results.Variant, results.Field, time.Now().Format("2006-01-02-15-04-05"), fileName))
	if err := os.WriteFile(name, resultsJson, 0644); err != nil {
		return "", err
	}
	return name, nil
}

func fieldName(a field.Arithmetic) string {
	switch a.(type) {
	case *field.Table:
		return "table"
	case field.Direct:
		return "direct"
	default:
		return fmt.Sprintf("%T", a)
	}
}
