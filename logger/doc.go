// Package logger provides structured logging for the github2 packages
// using zerolog.
//
// Library code logs through a *Logger handed to it at construction time and
// defaults to Nop, so embedding the client never writes to the terminal
// unless the caller asks for it.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.New(&cfg, "github2").WithComponent("command")
//	log.Debug("dispatch", logger.Fields("domain", "user", "path", "show"))
package logger
