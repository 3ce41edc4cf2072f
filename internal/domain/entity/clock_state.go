package entity

// ClockState is the persisted clock face record.
//
// Layout (little endian, 128 bytes):
//
//	0   showWeekday       uint8
//	1   reserved          3 bytes
//	4   suppressCounter   int32
//	8   reserved          120 bytes
type ClockState struct {
	ShowWeekdayInsteadOfDate bool
	// DaySuppressCounter holds back the date title for a short grace window
	// after load; -1 means the title is already showing the day field.
	DaySuppressCounter int32
}

// RecordSize implements Record
func (s *ClockState) RecordSize() int {
	return FaceRecordSize
}

// MarshalBinary implements encoding.BinaryMarshaler
func (s *ClockState) MarshalBinary() ([]byte, error) {
	w := newRecordWriter(FaceRecordSize)
	w.boolean(s.ShowWeekdayInsteadOfDate)
	w.skip(3)
	w.i32(s.DaySuppressCounter)
	return w.bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler
func (s *ClockState) UnmarshalBinary(data []byte) error {
	r, err := newRecordReader(data, FaceRecordSize)
	if err != nil {
		return err
	}
	weekday := r.boolean()
	r.skip(3)
	counter := r.i32()

	s.ShowWeekdayInsteadOfDate = weekday
	s.DaySuppressCounter = counter
	return nil
}
