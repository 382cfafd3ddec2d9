package config

import (
	"errors"
	"fmt"
)

// log levels, mirrors zapcore.Level
const (
	DEBUG_LEVEL = -1
	INFO_LEVEL  = 0
	WARN_LEVEL  = 1
	ERROR_LEVEL = 2
)

var ErrEmptyTimeFormat = errors.New("log time format must not be empty")

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > ERROR_LEVEL {
		return fmt.Errorf("invalid log level %d, must be between %d and %d", c.Level, DEBUG_LEVEL, ERROR_LEVEL)
	}
	if c.TimeFormat == "" {
		return ErrEmptyTimeFormat
	}
	return nil
}
