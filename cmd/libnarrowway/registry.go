package main

import (
	"narrowway-go/handle"
	"narrowway-go/narrowway"
)

func newCipher(v narrowway.Variant, key []byte) uint64 {
	h, err := handle.Default.New(v, key)
	if err != nil {
		return 0
	}
	return uint64(h)
}

func encrypt(h uint64, v narrowway.Variant, dst, src []byte) int {
	return status(handle.Default.Encrypt(handle.Handle(h), v, dst, src))
}

func decrypt(h uint64, v narrowway.Variant, dst, src []byte) int {
	return status(handle.Default.Decrypt(handle.Handle(h), v, dst, src))
}

func free(h uint64, v narrowway.Variant) int {
	return status(handle.Default.Free(handle.Handle(h), v))
}

func status(err error) int {
	if err != nil {
		return -1
	}
	return 0
}
