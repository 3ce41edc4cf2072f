package entity

import (
	"encoding"
	"encoding/binary"
	"fmt"

	errs "github.com/amirhossein-jamali/digichron/internal/domain/error"
)

// FaceRecordSize is the fixed on-disk size of every face state record.
// Fields are added by claiming reserved bytes, never by growing the record:
// a binary reading an older record then sees a matching size and zeroed new
// fields. Growing past this size discards every stored record for that face.
const FaceRecordSize = 128

// Record is a fixed-size state blob that can be persisted under a key
type Record interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	RecordSize() int
}

var byteOrder = binary.LittleEndian

// recordWriter lays out fixed-width fields into a zeroed buffer
type recordWriter struct {
	buf []byte
	off int
}

func newRecordWriter(size int) *recordWriter {
	return &recordWriter{buf: make([]byte, size)}
}

func (w *recordWriter) u8(v uint8) {
	w.buf[w.off] = v
	w.off++
}

func (w *recordWriter) boolean(v bool) {
	if v {
		w.u8(1)
		return
	}
	w.u8(0)
}

func (w *recordWriter) skip(n int) {
	w.off += n
}

func (w *recordWriter) i32(v int32) {
	byteOrder.PutUint32(w.buf[w.off:], uint32(v))
	w.off += 4
}

func (w *recordWriter) i64(v int64) {
	byteOrder.PutUint64(w.buf[w.off:], uint64(v))
	w.off += 8
}

// interval takes 10 bytes: int64 seconds then uint16 milliseconds
func (w *recordWriter) interval(v TimeInterval) {
	w.i64(v.Seconds)
	byteOrder.PutUint16(w.buf[w.off:], v.Milliseconds)
	w.off += 2
}

func (w *recordWriter) bytes() []byte {
	return w.buf
}

// recordReader mirrors recordWriter
type recordReader struct {
	buf []byte
	off int
}

func newRecordReader(data []byte, size int) (*recordReader, error) {
	if len(data) != size {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrRecordSizeMismatch, len(data), size)
	}
	return &recordReader{buf: data}, nil
}

func (r *recordReader) u8() uint8 {
	v := r.buf[r.off]
	r.off++
	return v
}

func (r *recordReader) boolean() bool {
	return r.u8() != 0
}

func (r *recordReader) skip(n int) {
	r.off += n
}

func (r *recordReader) i32() int32 {
	v := int32(byteOrder.Uint32(r.buf[r.off:]))
	r.off += 4
	return v
}

func (r *recordReader) i64() int64 {
	v := int64(byteOrder.Uint64(r.buf[r.off:]))
	r.off += 8
	return v
}

func (r *recordReader) interval() (TimeInterval, error) {
	sec := r.i64()
	ms := byteOrder.Uint16(r.buf[r.off:])
	r.off += 2
	if ms >= msPerSecond {
		return TimeInterval{}, fmt.Errorf("%w: milliseconds %d", errs.ErrInvalidRecord, ms)
	}
	return TimeInterval{Seconds: sec, Milliseconds: ms}, nil
}
