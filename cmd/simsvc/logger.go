package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"adhop/internal/combat"
)

// logLevel maps the verbosity flags onto a zap level: -debug shows every
// combat event, -v shows outcomes, otherwise only warnings and errors.
func logLevel(verbose, debug bool) zapcore.Level {
	switch {
	case debug:
		return zap.DebugLevel
	case verbose:
		return zap.InfoLevel
	}
	return zap.WarnLevel
}

func newLogger(verbose, debug bool) (*zap.Logger, error) {
	config := zap.Config{
		Level:       zap.NewAtomicLevelAt(logLevel(verbose, debug)),
		Development: false,
		Encoding:    "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "level",
			NameKey:        "logger",
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return config.Build()
}

// eventLogger writes each combat event as a debug entry.
func eventLogger(logger *zap.Logger) func(combat.Event) {
	return func(ev combat.Event) {
		logger.Debug(ev.Type, zap.Int("turn", ev.Turn), zap.Any("payload", ev.Payload))
	}
}

func logOutcome(logger *zap.Logger, out combat.Outcome) {
	logger.Info("encounter resolved",
		zap.String("mission", out.Title),
		zap.String("mission_id", out.MissionID),
		zap.Stringer("result", out.Result),
		zap.String("first", out.First),
		zap.Int("turns", out.Turns),
		zap.Int("player_hp", out.Player.HP),
		zap.Int("enemy_hp", out.Enemy.HP))
}

func logSummary(logger *zap.Logger, sum combat.Summary) {
	logger.Info("batch finished",
		zap.String("mission", sum.Mission),
		zap.Int64("seed", sum.Seed),
		zap.Int("runs", sum.Runs),
		zap.Int("wins", sum.Stats.Wins),
		zap.Int("losses", sum.Stats.Losses),
		zap.Int("retreats", sum.Stats.Retreats),
		zap.Float64("win_rate", sum.WinRate),
		zap.Float64("loss_rate", sum.LossRate),
		zap.Float64("retreat_rate", sum.RetreatRate),
		zap.Float64("avg_turns", sum.AvgTurns))
}
