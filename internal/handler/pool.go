package handler

import (
	"bytes"
	"sync"
)

const (
	// initialBufferSize fits a typical preferences response without growing
	initialBufferSize = 512
	// maxPooledBufferSize keeps one oversized profile response from pinning memory
	maxPooledBufferSize = 64 << 10
)

var jsonBuffers = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return jsonBuffers.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	jsonBuffers.Put(buf)
}
