package bowling

import "errors"

var (
	// ErrNotFinished is returned by Score until every frame and any
	// earned extra rolls have been rolled. Keep rolling.
	ErrNotFinished = errors.New("game not finished")

	// ErrAlreadyFinished is returned by Roll once the game is over.
	ErrAlreadyFinished = errors.New("game already finished")

	// ErrTooManyPinsKnocked is returned by Roll when the pin count can't
	// stand on the lane: more than ten in a frame (or extra-roll pair), or
	// a count outside 0..10. The rejected roll is not recorded.
	ErrTooManyPinsKnocked = errors.New("too many pins knocked")
)
