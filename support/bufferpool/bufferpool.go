// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package bufferpool pools scratch buffers whose contents do not outlive a
// single operation.
package bufferpool

import (
	"bytes"
	"sync"
)

// Pool maintains a pool of buffers. It offers a new buffer when one is
// unavailable. The zero value is ready to use.
type Pool struct {
	// MaxRetainedSize, if >0, is the largest buffer capacity that will be
	// returned to the pool. Larger buffers are dropped on Release so that a
	// single large payload does not pin memory.
	MaxRetainedSize int

	base sync.Pool
}

// Get returns an empty buffer, allocating one if one is not available.
//
// The caller should return the buffer to the pool by calling its Release
// method when done with it.
func (bp *Pool) Get() *Buffer {
	b, ok := bp.base.Get().(*Buffer)
	if !ok {
		b = &Buffer{}
	}
	b.Reset()
	b.pool = bp
	return b
}

func (bp *Pool) releaseNode(b *Buffer) {
	if bp.MaxRetainedSize > 0 && b.Cap() > bp.MaxRetainedSize {
		return
	}
	bp.base.Put(b)
}

// Buffer is a bytes.Buffer that can be released into a Pool for reuse.
//
// Failure to release Buffer will not cause a memory leak, but will prevent the
// reuse of the Buffer. Data obtained from Bytes must not be used after
// Release.
type Buffer struct {
	bytes.Buffer

	pool *Pool
}

// Release returns the buffer to its buffer pool.
//
// A Buffer must only be released once.
func (b *Buffer) Release() {
	var pool *Pool
	pool, b.pool = b.pool, nil
	if pool == nil {
		panic("buffer released twice")
	}
	pool.releaseNode(b)
}
