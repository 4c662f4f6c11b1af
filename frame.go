package bowling

import "strconv"

// FrameKind classifies a completed frame.
type FrameKind int

const (
	Normal FrameKind = iota
	Spare
	Strike
)

func (self FrameKind) String() string {
	switch self {
	case Normal:
		return "normal"
	case Spare:
		return "spare"
	case Strike:
		return "strike"
	default:
		return "FrameKind(" + strconv.Itoa(int(self)) + ")"
	}
}

// frame holds the rolls of one of the ten regular frames. A zero count
// means the roll hasn't happened yet.
type frame struct {
	pins  [2]int
	count int
}

func newFrame(first int) frame {
	return frame{pins: [2]int{first}, count: 1}
}

func (self frame) complete() bool {
	return self.count == 2 || self.pins[0] == pinCount
}

func (self frame) kind() FrameKind {
	if self.pins[0] == pinCount {
		return Strike
	}
	if self.count == 2 && self.pins[0]+self.pins[1] == pinCount {
		return Spare
	}
	return Normal
}

func (self frame) rolls() []int {
	return self.pins[:self.count]
}

func (self frame) String() string {
	return "(" + formatRoll(self.pins[0], self.count > 0) + "," +
		formatRoll(self.pins[1], self.count > 1) + ") "
}

func formatRoll(pins int, rolled bool) string {
	if !rolled {
		return "nil"
	}
	return strconv.Itoa(pins)
}
