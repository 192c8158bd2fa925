package bptree

import (
	"fmt"
	"io"

	"github.com/valyala/bytebufferpool"
)

// Dump writes a line-oriented, human-readable rendering of every leaf
// in key order to w, using a pooled buffer and flushing every few
// leaves the way a snapshot export batches writes to its sink. Output
// is never read back by this package; this is a diagnostic aid, not
// persistence.
func (t *Tree[K, V]) Dump(w io.Writer) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	id := t.leftmostLeaf()
	pending := 0
	for id != nullNode {
		leaf := t.leaves.get(id)
		_, _ = fmt.Fprintf(buf, "leaf %d (n=%d):\n", id, len(leaf.keys))
		for i := range leaf.keys {
			_, _ = fmt.Fprintf(buf, "  %v -> %v\n", leaf.keys[i], leaf.values[i])
		}
		pending++
		id = leaf.next
		if pending < 8 {
			continue
		}
		if err := flushDumpBuffer(w, buf); err != nil {
			return err
		}
		pending = 0
	}
	if buf.Len() > 0 {
		return flushDumpBuffer(w, buf)
	}
	return nil
}

func flushDumpBuffer(w io.Writer, buf *bytebufferpool.ByteBuffer) error {
	p := buf.Bytes()
	n := 0
	for n < len(p) {
		nn, err := w.Write(p[n:])
		if err != nil {
			return err
		}
		n += nn
	}
	buf.Reset()
	return nil
}

// String renders the same output as Dump into a string, for %v and
// test-failure output.
func (t *Tree[K, V]) String() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	_ = t.Dump(buf)
	return buf.String()
}
