package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds scratch buffers for snapshot encoding.
var BufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 64*1024))
	},
}
