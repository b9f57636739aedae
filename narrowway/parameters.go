package narrowway

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Variant selects a NarrowWay block size in bits.
type Variant int

const (
	Variant256 Variant = 256
	Variant384 Variant = 384
	Variant512 Variant = 512
)

// Variants lists every supported variant, smallest block first.
var Variants = []Variant{Variant256, Variant384, Variant512}

// ErrUnknownVariant is returned for a block size NarrowWay does not define.
var ErrUnknownVariant = errors.New("narrowway: unknown variant")

const (
	rowBytes = 8
	maxRows  = 8
)

// Params holds the shape of a variant: the block is Rows rows of 8 bytes and
// is encrypted in Rounds rounds.
type Params struct {
	Variant   Variant
	BlockSize int
	Rows      int
	Rounds    int
}

// ParamsFor returns the parameters of v.
func ParamsFor(v Variant) (Params, error) {
	switch v {
	case Variant256:
		return initParams(v, 16), nil
	case Variant384:
		return initParams(v, 18), nil
	case Variant512:
		return initParams(v, 20), nil
	default:
		return Params{}, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
}

func initParams(v Variant, rounds int) Params {
	blockSize := int(v) / 8
	return Params{
		Variant:   v,
		BlockSize: blockSize,
		Rows:      blockSize / rowBytes,
		Rounds:    rounds,
	}
}

// VariantForKeySize returns the variant whose key is n bytes long.
func VariantForKeySize(n int) (Variant, error) {
	switch n {
	case 32:
		return Variant256, nil
	case 48:
		return Variant384, nil
	case 64:
		return Variant512, nil
	default:
		return 0, KeySizeError(n)
	}
}

// ParseVariant accepts "256", "narrowway-256" and the like.
func ParseVariant(s string) (Variant, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "narrowway-")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
	if _, err := ParamsFor(Variant(n)); err != nil {
		return 0, err
	}
	return Variant(n), nil
}

func (v Variant) String() string {
	return "NarrowWay-" + strconv.Itoa(int(v))
}

// KeySizeError is returned when a key does not match the variant's block size.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "narrowway: invalid key size " + strconv.Itoa(int(k))
}
