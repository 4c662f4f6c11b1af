package bowling

import "log/slog"

// Option configures a Game at construction.
type Option func(*Game)

// WithLogger sends the game's debug records (rejected rolls, completed
// frames, game over) to logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(game *Game) {
		if logger != nil {
			game.logger = logger
		}
	}
}
