package utils

import (
	"github.com/valyala/bytebufferpool"
)

// prompt assembly and project context building churn through medium-sized
// buffers per request; bytebufferpool handles size classing for us.
var promptPool bytebufferpool.Pool

// GetBuffer retrieves a pooled buffer.
func GetBuffer() *bytebufferpool.ByteBuffer {
	return promptPool.Get()
}

// PutBuffer returns a buffer to the pool.
func PutBuffer(buf *bytebufferpool.ByteBuffer) {
	promptPool.Put(buf)
}
