package tally

import "go.uber.org/zap"

// Verbosity is the threshold that gates trace output. Every event carries a
// level and is emitted when Verbosity >= level.
type Verbosity int

const (
	LevelQuiet Verbosity = iota
	LevelFileIO
	LevelMinVote
	LevelShowVotes
	LevelVoteTransfers
	LevelDropMinVotes
)

func (v Verbosity) Enabled(level Verbosity) bool {
	return v >= level
}

// Options is threaded through the loader, the tally and the election.
type Options struct {
	Verbosity Verbosity
	Logger    *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Trace writes msg at info level when the verbosity reaches level.
func (o Options) Trace(level Verbosity, msg string, fields ...zap.Field) {
	if !o.Verbosity.Enabled(level) {
		return
	}
	o.logger().Info(msg, fields...)
}
