// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package tuple

const initialBufferCap = 64

// Buffer is an append-only growable byte buffer used to assemble a packed
// tuple. The zero value is ready to use.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	buf []byte
}

// NewBuffer returns a Buffer pre-sized for roughly n bytes of output.
func NewBuffer(n int) *Buffer {
	if n < initialBufferCap {
		n = initialBufferCap
	}
	return &Buffer{buf: make([]byte, 0, n)}
}

// AppendByte appends a single byte to the buffer.
func (b *Buffer) AppendByte(c byte) {
	b.buf = append(b.buf, c)
}

// AppendBytes appends a copy of p to the buffer.
func (b *Buffer) AppendBytes(p []byte) {
	b.buf = append(b.buf, p...)
}

// Reserve advances the buffer length by n and returns a slice of exactly n
// bytes for the caller to fill in place. The returned slice aliases the
// buffer's backing array and is only valid until the next call to an Append*
// or Reserve method, which may reallocate the backing array.
func (b *Buffer) Reserve(n int) []byte {
	off := len(b.buf)
	b.grow(n)
	return b.buf[off : off+n]
}

// grow extends the buffer by n bytes (zero-filled) and returns the full
// buffer, doubling capacity on overflow the way ion.Buffer.grow does.
func (b *Buffer) grow(n int) []byte {
	off := len(b.buf)
	if cap(b.buf)-off >= n {
		b.buf = b.buf[:off+n]
		for i := off; i < off+n; i++ {
			b.buf[i] = 0
		}
	} else {
		want := off + n
		if want < 2*cap(b.buf) {
			want = 2 * cap(b.buf)
		}
		if want < initialBufferCap {
			want = initialBufferCap
		}
		nb := make([]byte, off+n, want)
		copy(nb, b.buf)
		b.buf = nb
	}
	return b.buf
}

// Len returns the number of bytes currently held in the buffer.
func (b *Buffer) Len() int { return len(b.buf) }

// Bytes returns the current contents of the buffer. The returned slice
// aliases the buffer's backing array; callers that need an independent copy
// should use Finish.
func (b *Buffer) Bytes() []byte { return b.buf }

// Finish returns an exact-length copy of the buffer's contents, handing
// ownership of a fresh slice to the caller.
func (b *Buffer) Finish() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}

// Reset empties the buffer without releasing its backing array.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}
