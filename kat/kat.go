// Package kat reads, writes and checks NarrowWay known answer test files.
//
// A file starts with a header naming the variant and the seed its entries
// were drawn from, followed by blank line separated entries:
//
//	# NarrowWay-256
//	# seed = 000102...
//
//	count = 0
//	key = ...
//	pt = ...
//	ct = ...
//
// Keys and plaintexts are read in that order from the SHAKE256 stream of the
// seed, one block each per entry.
package kat

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	fasthex "github.com/tmthrgd/go-hex"

	"narrowway-go/narrowway"
	"narrowway-go/rand"
)

// ErrMismatch is wrapped by Verify when a ciphertext does not match.
var ErrMismatch = errors.New("kat: ciphertext mismatch")

// Entry is one known answer.
type Entry struct {
	Count      int
	Key        []byte
	Plaintext  []byte
	Ciphertext []byte
}

// File is a parsed known answer test file.
type File struct {
	Variant narrowway.Variant
	Seed    []byte
	Entries []Entry
}

// FileName returns the conventional file name for variant v.
func FileName(v narrowway.Variant) string {
	return fmt.Sprintf("NarrowWay%d.rsp", int(v))
}

// Derive computes count entries for variant v from seed.
func Derive(v narrowway.Variant, seed []byte, count int) (*File, error) {
	p, err := narrowway.ParamsFor(v)
	if err != nil {
		return nil, err
	}

	f := &File{
		Variant: v,
		Seed:    seed,
		Entries: make([]Entry, count),
	}

	stream := rand.NewStream(seed)
	for i := range f.Entries {
		e := &f.Entries[i]
		e.Count = i
		e.Key = stream.Next(p.BlockSize)
		e.Plaintext = stream.Next(p.BlockSize)

		c, err := narrowway.New(v, e.Key)
		if err != nil {
			return nil, err
		}
		e.Ciphertext = make([]byte, p.BlockSize)
		c.Encrypt(e.Ciphertext, e.Plaintext)
	}

	return f, nil
}

// Generate writes count entries for variant v derived from seed to w.
func Generate(w io.Writer, v narrowway.Variant, seed []byte, count int) error {
	f, err := Derive(v, seed, count)
	if err != nil {
		return err
	}
	_, err = f.WriteTo(w)
	return err
}

// WriteTo writes f in the known answer test format.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %v\n", f.Variant)
	fmt.Fprintf(&buf, "# seed = %s\n", fasthex.EncodeToString(f.Seed))
	for _, e := range f.Entries {
		fmt.Fprintf(&buf, "\ncount = %d\n", e.Count)
		fmt.Fprintf(&buf, "key = %s\n", fasthex.EncodeToString(e.Key))
		fmt.Fprintf(&buf, "pt = %s\n", fasthex.EncodeToString(e.Plaintext))
		fmt.Fprintf(&buf, "ct = %s\n", fasthex.EncodeToString(e.Ciphertext))
	}

	return buf.WriteTo(w)
}

// ParseFile parses the known answer test file at name.
func ParseFile(name string) (*File, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads a known answer test file from r.
func Parse(r io.Reader) (*File, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	line := 0

	next := func() (string, bool) {
		for scanner.Scan() {
			line++
			if text := strings.TrimSpace(scanner.Text()); text != "" {
				return text, true
			}
		}
		return "", false
	}

	header, ok := next()
	if !ok {
		return nil, errors.New("kat: empty file")
	}
	v, err := narrowway.ParseVariant(strings.TrimPrefix(header, "#"))
	if err != nil {
		return nil, fmt.Errorf("kat: line %d: bad header: %w", line, err)
	}
	f := &File{Variant: v}

	text, ok := next()
	if ok && strings.HasPrefix(text, "#") {
		if f.Seed, err = splitAndDecodeBytes(strings.TrimPrefix(text, "#"), "seed"); err != nil {
			return nil, fmt.Errorf("kat: line %d: %w", line, err)
		}
		text, ok = next()
	}

	for ok {
		var e Entry

		if e.Count, err = splitAndDecodeInt(text, "count"); err != nil {
			return nil, fmt.Errorf("kat: line %d: %w", line, err)
		}
		for _, field := range []struct {
			name string
			dst  *[]byte
		}{
			{"key", &e.Key},
			{"pt", &e.Plaintext},
			{"ct", &e.Ciphertext},
		} {
			if text, ok = next(); !ok {
				return nil, fmt.Errorf("kat: entry %d: missing %s", e.Count, field.name)
			}
			if *field.dst, err = splitAndDecodeBytes(text, field.name); err != nil {
				return nil, fmt.Errorf("kat: line %d: %w", line, err)
			}
		}

		f.Entries = append(f.Entries, e)
		text, ok = next()
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return f, nil
}

// Verify checks every entry against variant v and returns the first failure.
func Verify(entries []Entry, v narrowway.Variant) error {
	for _, e := range entries {
		c, err := narrowway.New(v, e.Key)
		if err != nil {
			return fmt.Errorf("kat: entry %d: %w", e.Count, err)
		}
		if len(e.Plaintext) != c.BlockSize() || len(e.Ciphertext) != c.BlockSize() {
			return fmt.Errorf("kat: entry %d: blocks must be %d bytes", e.Count, c.BlockSize())
		}

		out := make([]byte, c.BlockSize())
		c.Encrypt(out, e.Plaintext)
		if !bytes.Equal(out, e.Ciphertext) {
			return fmt.Errorf("%w: entry %d: got %s", ErrMismatch, e.Count, fasthex.EncodeToString(out))
		}

		c.Decrypt(out, e.Ciphertext)
		if !bytes.Equal(out, e.Plaintext) {
			return fmt.Errorf("%w: entry %d: decryption does not restore plaintext", ErrMismatch, e.Count)
		}
	}
	return nil
}

// Verify checks every entry of f.
func (f *File) Verify() error {
	return Verify(f.Entries, f.Variant)
}

func splitAndDecodeInt(input, name string) (int, error) {
	value, err := splitValue(input, name)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(value)
}

func splitAndDecodeBytes(input, name string) ([]byte, error) {
	value, err := splitValue(input, name)
	if err != nil {
		return nil, err
	}
	return fasthex.DecodeString(value)
}

func splitValue(input, name string) (string, error) {
	k, v, ok := strings.Cut(input, "=")
	if !ok || strings.TrimSpace(k) != name {
		return "", fmt.Errorf("expected %s, got %q", name, input)
	}
	return strings.TrimSpace(v), nil
}
