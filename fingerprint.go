package bptree

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/valyala/bytebufferpool"
)

// fingerprint folds an xxhash checksum over the ascending key/value
// stream, giving tests a cheap way to compare a tree's contents
// against a reference model without walking both structures pair by
// pair. It is not part of the public surface and carries no ordering
// guarantees beyond "same contents, same fingerprint".
func (t *Tree[K, V]) fingerprint() uint64 {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	var acc uint64
	it := t.Items()
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		buf.Reset()
		_, _ = fmt.Fprintf(buf, "%v\x00%v", k, v)
		acc = acc*1099511628211 ^ xxhash.Sum64(buf.Bytes())
	}
	return acc
}
