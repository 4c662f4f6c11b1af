// Package bowling keeps score for a single game of ten-pin bowling.
//
// http://en.wikipedia.org/wiki/Ten-pin_bowling#Scoring
//
// Feed each roll to Roll as it happens; once the tenth frame (and any
// extra rolls it earned) is in, Score returns the final total.
package bowling

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	pinCount   = 10
	frameCount = 10
)

// Game accumulates rolls into frames and scores them when the game is over.
// Create one with NewGame. A Game is not safe for concurrent use.
type Game struct {
	frames []frame
	extras []int // bonus rolls after a spare or strike in the tenth frame

	logger *slog.Logger
}

func NewGame(options ...Option) *Game {
	game := &Game{
		frames: make([]frame, 0, frameCount),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(game)
	}
	return game
}

// Roll records the number of pins knocked down by the next ball. A rejected
// roll leaves the game exactly as it was.
func (self *Game) Roll(pins int) error {
	if self.finished() {
		self.logger.Debug("roll rejected", "pins", pins, "reason", ErrAlreadyFinished)
		return ErrAlreadyFinished
	}
	if err := self.roll(pins); err != nil {
		self.logger.Debug("roll rejected", "pins", pins, "frame", len(self.frames), "reason", err)
		return err
	}
	if self.finished() {
		self.logger.Debug("game finished", "frames", len(self.frames))
	}
	return nil
}

func (self *Game) roll(pins int) error {
	if pins < 0 {
		return fmt.Errorf("%w: negative pin count %d", ErrTooManyPinsKnocked, pins)
	}
	if pins > pinCount {
		return fmt.Errorf("%w: %d is more than a full rack", ErrTooManyPinsKnocked, pins)
	}

	if latest := self.latest(); latest != nil && !latest.complete() {
		return self.rollSecond(latest, pins)
	}
	if self.framesComplete() {
		return self.rollExtra(pins)
	}

	self.frames = append(self.frames, newFrame(pins))
	if pins == pinCount {
		self.frameCompleted()
	}
	return nil
}

func (self *Game) rollSecond(latest *frame, pins int) error {
	if total := latest.pins[0] + pins; total > pinCount {
		return fmt.Errorf("%w: frame %d would hold %d pins",
			ErrTooManyPinsKnocked, len(self.frames), total)
	}
	latest.pins[1] = pins
	latest.count = 2
	self.frameCompleted()
	return nil
}

// rollExtra records a bonus roll. After a strike as the first extra roll the
// pins are reset, so only the per-roll limit applies to the second.
func (self *Game) rollExtra(pins int) error {
	if len(self.extras) == 1 && self.extras[0] != pinCount {
		if total := self.extras[0] + pins; total > pinCount {
			return fmt.Errorf("%w: extra rolls would hold %d pins", ErrTooManyPinsKnocked, total)
		}
	}
	self.extras = append(self.extras, pins)
	return nil
}

func (self *Game) frameCompleted() {
	latest := self.latest()
	self.logger.Debug("frame completed", "frame", len(self.frames), "kind", latest.kind())
}

func (self *Game) latest() *frame {
	if len(self.frames) == 0 {
		return nil
	}
	return &self.frames[len(self.frames)-1]
}

func (self *Game) framesComplete() bool {
	return len(self.frames) == frameCount && self.latest().complete()
}

func (self *Game) finished() bool {
	return self.framesComplete() && len(self.extras) >= self.extrasEarned()
}

// extrasEarned reports how many extra rolls the tenth frame is owed.
func (self *Game) extrasEarned() int {
	switch self.latest().kind() {
	case Strike:
		return 2
	case Spare:
		return 1
	default:
		return 0
	}
}

// Score returns the total for a finished game, or ErrNotFinished.
func (self *Game) Score() (int, error) {
	if !self.finished() {
		return 0, ErrNotFinished
	}

	rolls, multipliers := self.weigh()
	score := 0
	for i, pins := range rolls {
		score += pins * multipliers[i]
	}

	// Extra rolls only ever count as bonus for the tenth frame (and the ninth,
	// when both were strikes), so their own single weight is taken back off.
	tail := multipliers[len(multipliers)-2:]
	for i, pins := range self.extras {
		score += pins * (tail[i] - 1)
	}
	return score, nil
}

// weigh flattens the frames into rolls alongside the weight each roll carries.
// multipliers always runs two slots past rolls: those slots belong to
// whatever is rolled next.
func (self *Game) weigh() (rolls, multipliers []int) {
	rolls = make([]int, 0, frameCount*2)
	multipliers = []int{1, 1}
	for _, f := range self.frames {
		rolls = append(rolls, f.rolls()...)
		switch f.kind() {
		case Spare:
			multipliers = append(multipliers, 2, 1)
		case Strike:
			multipliers[len(multipliers)-1]++
			multipliers = append(multipliers, 2)
		default:
			multipliers = append(multipliers, 1, 1)
		}
	}
	return rolls, multipliers
}

// String renders each frame as (first,second) followed, once the game is
// finished, by the extra rolls. Rolls that never happened show as nil:
//
//	[(10,nil) (3,7) ... (nil,nil)]
func (self *Game) String() string {
	builder := new(strings.Builder)
	builder.WriteString("[")
	for _, f := range self.frames {
		builder.WriteString(f.String())
	}
	if self.finished() {
		builder.WriteString("(" + self.formatExtra(0) + "," + self.formatExtra(1) + ")")
	}
	builder.WriteString("]")
	return builder.String()
}

func (self *Game) formatExtra(i int) string {
	if i >= len(self.extras) {
		return formatRoll(0, false)
	}
	return formatRoll(self.extras[i], true)
}
