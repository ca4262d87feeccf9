package models

// Segment é a linha de negócio de uma categoria de serviço.
type Segment string

const (
	SegmentClinic Segment = "clinic"
	SegmentHotel  Segment = "hotel"
	SegmentSpa    Segment = "spa"
)

func AllSegments() []Segment {
	return []Segment{SegmentClinic, SegmentHotel, SegmentSpa}
}

func (s Segment) Valid() bool {
	switch s {
	case SegmentClinic, SegmentHotel, SegmentSpa:
		return true
	}
	return false
}
