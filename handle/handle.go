// Package handle hands out opaque integer handles to NarrowWay cipher
// instances, so callers across a foreign function boundary never hold a Go
// pointer.
package handle

import (
	"errors"
	"sync"

	"narrowway-go/narrowway"
)

// Handle identifies a cipher owned by a Registry. Zero is never issued.
type Handle uint64

var (
	// ErrInvalidHandle is returned for a handle that was never issued or has
	// already been freed.
	ErrInvalidHandle = errors.New("handle: invalid handle")

	// ErrVariantMismatch is returned when a handle is used through an entry
	// point of a different block width than the cipher it names.
	ErrVariantMismatch = errors.New("handle: variant mismatch")

	// ErrBufferSize is returned when a buffer is shorter than one block.
	ErrBufferSize = errors.New("handle: buffer shorter than block")
)

// Registry owns cipher instances on behalf of handle holders.
type Registry struct {
	sync.RWMutex

	next    Handle
	ciphers map[Handle]*narrowway.Cipher
}

// Default is the process wide registry.
var Default = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ciphers: make(map[Handle]*narrowway.Cipher),
	}
}

// New expands key for variant v and returns a handle to the new instance.
func (r *Registry) New(v narrowway.Variant, key []byte) (Handle, error) {
	c, err := narrowway.New(v, key)
	if err != nil {
		return 0, err
	}

	r.Lock()
	defer r.Unlock()

	r.next++
	h := r.next
	r.ciphers[h] = c
	return h, nil
}

// Lookup returns the cipher behind h, checking that it is of variant v.
func (r *Registry) Lookup(h Handle, v narrowway.Variant) (*narrowway.Cipher, error) {
	r.RLock()
	c, ok := r.ciphers[h]
	r.RUnlock()

	if !ok {
		return nil, ErrInvalidHandle
	}
	if c.Variant() != v {
		return nil, ErrVariantMismatch
	}
	return c, nil
}

// Encrypt encrypts one block of src into dst with the cipher behind h.
func (r *Registry) Encrypt(h Handle, v narrowway.Variant, dst, src []byte) error {
	c, err := r.lookupBlocks(h, v, dst, src)
	if err != nil {
		return err
	}
	c.Encrypt(dst, src)
	return nil
}

// Decrypt decrypts one block of src into dst with the cipher behind h.
func (r *Registry) Decrypt(h Handle, v narrowway.Variant, dst, src []byte) error {
	c, err := r.lookupBlocks(h, v, dst, src)
	if err != nil {
		return err
	}
	c.Decrypt(dst, src)
	return nil
}

func (r *Registry) lookupBlocks(h Handle, v narrowway.Variant, dst, src []byte) (*narrowway.Cipher, error) {
	c, err := r.Lookup(h, v)
	if err != nil {
		return nil, err
	}
	if len(src) < c.BlockSize() || len(dst) < c.BlockSize() {
		return nil, ErrBufferSize
	}
	return c, nil
}

// Free releases the cipher behind h. Freeing twice reports ErrInvalidHandle.
func (r *Registry) Free(h Handle, v narrowway.Variant) error {
	r.Lock()
	defer r.Unlock()

	c, ok := r.ciphers[h]
	if !ok {
		return ErrInvalidHandle
	}
	if c.Variant() != v {
		return ErrVariantMismatch
	}
	delete(r.ciphers, h)
	return nil
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.ciphers)
}
