package entity

import (
	"fmt"

	errs "github.com/amirhossein-jamali/digichron/internal/domain/error"
)

const (
	// SelectionKey is the persistence key reserved for ActiveSelection
	SelectionKey uint32 = 0
	// SelectionRecordSize is the on-disk size of ActiveSelection
	SelectionRecordSize = 8
)

// ActiveSelection records which face is showing and whether the display is inverted.
//
// Layout (little endian, 8 bytes):
//
//	0   activeFaceIndex int32
//	4   displayInverted int32 (0 or 1)
type ActiveSelection struct {
	ActiveFaceIndex int32
	DisplayInverted bool
}

// RecordSize implements Record
func (a *ActiveSelection) RecordSize() int {
	return SelectionRecordSize
}

// MarshalBinary implements encoding.BinaryMarshaler
func (a *ActiveSelection) MarshalBinary() ([]byte, error) {
	w := newRecordWriter(SelectionRecordSize)
	w.i32(a.ActiveFaceIndex)
	if a.DisplayInverted {
		w.i32(1)
	} else {
		w.i32(0)
	}
	return w.bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler
func (a *ActiveSelection) UnmarshalBinary(data []byte) error {
	r, err := newRecordReader(data, SelectionRecordSize)
	if err != nil {
		return err
	}
	index := r.i32()
	if index < 0 {
		return fmt.Errorf("%w: face index %d", errs.ErrInvalidRecord, index)
	}
	inverted := r.i32() != 0

	a.ActiveFaceIndex = index
	a.DisplayInverted = inverted
	return nil
}
