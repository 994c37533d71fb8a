package decision

// Segment is the credit tier derived from the last four digits of a personal code.
type Segment int

const (
	SegmentDebtor Segment = iota
	Segment1
	Segment2
	Segment3
)

// Lower bounds of each tier on the 0-9999 scale.
const (
	segment1Floor = 2500
	segment2Floor = 5000
	segment3Floor = 7500
)

func (s Segment) String() string {
	switch s {
	case SegmentDebtor:
		return "debtor"
	case Segment1:
		return "segment_1"
	case Segment2:
		return "segment_2"
	case Segment3:
		return "segment_3"
	default:
		return "unknown"
	}
}

// SegmentOf derives the credit segment from the last four characters of code.
func SegmentOf(code string) (Segment, error) {
	if len(code) < 4 {
		return SegmentDebtor, ErrInvalidPersonalCode
	}
	n := 0
	for _, c := range code[len(code)-4:] {
		if c < '0' || c > '9' {
			return SegmentDebtor, ErrInvalidPersonalCode
		}
		n = n*10 + int(c-'0')
	}

	switch {
	case n < segment1Floor:
		return SegmentDebtor, nil
	case n < segment2Floor:
		return Segment1, nil
	case n < segment3Floor:
		return Segment2, nil
	default:
		return Segment3, nil
	}
}
