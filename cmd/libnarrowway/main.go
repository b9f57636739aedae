// Command libnarrowway builds the NarrowWay C library:
//
//	go build -buildmode=c-shared -o libnarrowway.so ./cmd/libnarrowway
//
// Every variant gets four entry points. new_cipher_<V> returns an opaque
// handle, or 0 if the key could not be expanded; the others take that handle
// and return 0 on success or -1 when the handle is unknown, freed, or of
// another variant. Key and block buffers must hold one full block.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	"narrowway-go/narrowway"
)

func main() {}

func block(p *C.uint8_t, v narrowway.Variant) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), int(v)/8)
}

//export new_cipher_256
func new_cipher_256(key *C.uint8_t) C.uintptr_t {
	return C.uintptr_t(newCipher(narrowway.Variant256, block(key, narrowway.Variant256)))
}

//export encrypt_256
func encrypt_256(h C.uintptr_t, in, out *C.uint8_t) C.int {
	return C.int(encrypt(uint64(h), narrowway.Variant256, block(out, narrowway.Variant256), block(in, narrowway.Variant256)))
}

//export decrypt_256
func decrypt_256(h C.uintptr_t, in, out *C.uint8_t) C.int {
	return C.int(decrypt(uint64(h), narrowway.Variant256, block(out, narrowway.Variant256), block(in, narrowway.Variant256)))
}

//export free_cipher_256
func free_cipher_256(h C.uintptr_t) C.int {
	return C.int(free(uint64(h), narrowway.Variant256))
}

//export new_cipher_384
func new_cipher_384(key *C.uint8_t) C.uintptr_t {
	return C.uintptr_t(newCipher(narrowway.Variant384, block(key, narrowway.Variant384)))
}

//export encrypt_384
func encrypt_384(h C.uintptr_t, in, out *C.uint8_t) C.int {
	return C.int(encrypt(uint64(h), narrowway.Variant384, block(out, narrowway.Variant384), block(in, narrowway.Variant384)))
}

//export decrypt_384
func decrypt_384(h C.uintptr_t, in, out *C.uint8_t) C.int {
	return C.int(decrypt(uint64(h), narrowway.Variant384, block(out, narrowway.Variant384), block(in, narrowway.Variant384)))
}

//export free_cipher_384
func free_cipher_384(h C.uintptr_t) C.int {
	return C.int(free(uint64(h), narrowway.Variant384))
}

//export new_cipher_512
func new_cipher_512(key *C.uint8_t) C.uintptr_t {
	return C.uintptr_t(newCipher(narrowway.Variant512, block(key, narrowway.Variant512)))
}

//export encrypt_512
func encrypt_512(h C.uintptr_t, in, out *C.uint8_t) C.int {
	return C.int(encrypt(uint64(h), narrowway.Variant512, block(out, narrowway.Variant512), block(in, narrowway.Variant512)))
}

//export decrypt_512
func decrypt_512(h C.uintptr_t, in, out *C.uint8_t) C.int {
	return C.int(decrypt(uint64(h), narrowway.Variant512, block(out, narrowway.Variant512), block(in, narrowway.Variant512)))
}

//export free_cipher_512
func free_cipher_512(h C.uintptr_t) C.int {
	return C.int(free(uint64(h), narrowway.Variant512))
}
