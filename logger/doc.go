// Package logger provides structured logging for rangekit on top of zerolog.
//
// The library itself never logs; logging enters through the observe
// decorators, which take a *Logger. Nop returns a logger that discards
// everything, which is the right default for library users.
//
//	log := logger.New(os.Stderr, &logger.Config{Level: "debug", Format: "console"})
//	log.Debug("traversal started", logger.Fields(logger.FieldTraversalID, id))
package logger
