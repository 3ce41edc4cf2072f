package entity

import (
	"fmt"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/digichron/internal/domain/error"
)

// MaxFaceNameLength is the number of visible characters a face title can hold
const MaxFaceNameLength = 7

// FaceInfo identifies a face: the title it shows and the key its state lives under
type FaceInfo struct {
	Name string
	Key  uint32
}

// NewFaceInfo validates a face name and persistence key
func NewFaceInfo(name string, key uint32) (FaceInfo, error) {
	if n := utf8.RuneCountInString(name); n == 0 || n > MaxFaceNameLength {
		return FaceInfo{}, fmt.Errorf("%w: %q", errs.ErrInvalidFaceName, name)
	}
	if key == SelectionKey {
		return FaceInfo{}, fmt.Errorf("%w: face %q uses key %d", errs.ErrReservedFaceKey, name, key)
	}
	return FaceInfo{Name: name, Key: key}, nil
}
