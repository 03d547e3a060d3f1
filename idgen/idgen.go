/*
Package idgen produces identifiers for document entities.

Identifiers have to be unique within one document only. The default strategy
therefore is a short random base-36 string; UUIDs are available for clients
which mix elements of several documents.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package idgen

import (
	"crypto/rand"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces unique string identifiers.
type Generator func() string

// DefaultLength is the length of identifiers produced by Default.
const DefaultLength = 9

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NanoID returns a Generator that produces random base-36 IDs of the given length.
func NanoID(length int) Generator {
	if length <= 0 {
		length = DefaultLength
	}
	return func() string {
		buf := make([]byte, length)
		if _, err := rand.Read(buf); err != nil {
			panic("idgen: crypto/rand failed: " + err.Error())
		}
		for i := range buf {
			buf[i] = alphabet[int(buf[i])%len(alphabet)]
		}
		return string(buf)
	}
}

// UUID returns a Generator that produces random (version 4) UUID strings.
func UUID() Generator {
	return func() string {
		return uuid.NewString()
	}
}

// Prefixed wraps a Generator and prepends a fixed prefix to every ID.
func Prefixed(prefix string, gen Generator) Generator {
	return func() string {
		return prefix + gen()
	}
}

// Sequence returns a Generator producing prefix1, prefix2, … It is
// deterministic and therefore suited for tests and reproducible scripts.
func Sequence(prefix string) Generator {
	var n atomic.Uint64
	return func() string {
		return prefix + strconv.FormatUint(n.Add(1), 10)
	}
}

// Default is the generator used if clients do not provide one.
var Default Generator = NanoID(DefaultLength)

// New produces an ID using the Default generator.
func New() string {
	return Default()
}
