package game

import (
	"io"
	"log"
)

var logger = log.Default()

// SetLogger redirects session lifecycle logging. nil discards it.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}
