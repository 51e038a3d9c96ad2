package omap

import (
	"bufio"
	"io"

	"github.com/npillmayer/omap/btree"
)

// WriteTo writes m in persisted form to w. It implements io.WriterTo.
func (m *Map[K, V]) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := m.tree.Encode(cw)
	return cw.n, err
}

// ReadFrom replaces the contents of m with a map in persisted form read from r.
// It implements io.ReaderFrom. The comparison function of m is kept, node
// sizes are taken from the input. If reading fails, m is left unchanged.
func (m *Map[K, V]) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	tree, err := btree.Decode[K, V](cr, m.tree.Config())
	if err != nil {
		return cr.n, err
	}
	m.tree = tree
	tracer().Debugf("omap: read %d entries in %d bytes", tree.Len(), cr.n)
	return cr.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// countingReader counts the bytes consumed from r. It is an io.ByteScanner,
// which keeps the msgpack decoder from buffering ahead of the end of a map.
type countingReader struct {
	r       io.Reader
	n       int64
	last    byte
	hasLast bool // last may be unread
	pending bool // last has been unread and is delivered next
}

func (cr *countingReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if cr.pending {
		p[0], cr.pending = cr.last, false
		cr.n++
		return 1, nil
	}
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	if n > 0 {
		cr.last, cr.hasLast = p[n-1], true
	}
	return n, err
}

func (cr *countingReader) ReadByte() (byte, error) {
	if bs, ok := cr.r.(io.ByteScanner); ok && !cr.pending {
		b, err := bs.ReadByte()
		if err == nil {
			cr.n++
			cr.last, cr.hasLast = b, true
		}
		return b, err
	}
	var b [1]byte
	if _, err := io.ReadFull(cr, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (cr *countingReader) UnreadByte() error {
	if !cr.hasLast || cr.pending {
		return bufio.ErrInvalidUnreadByte
	}
	if bs, ok := cr.r.(io.ByteScanner); ok {
		if err := bs.UnreadByte(); err != nil {
			return err
		}
	} else {
		cr.pending = true
	}
	cr.n--
	return nil
}
