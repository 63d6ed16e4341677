// Package logging wires github.com/sirupsen/logrus the way the teacher's
// engine.go and auth/audit.go construct and use a package logger, rather
// than plumbing a logger instance through every constructor in this small
// core (spec.md's logging is explicitly ambient, not a named component).
package logging

import "github.com/sirupsen/logrus"

// Log is the package-level logger every driver statement boundary writes
// to. Callers needing a differently configured logger can construct their
// own logrus.Logger directly; Log is a convenience default.
var Log = logrus.New()

// Init configures Log's level; called once at process start by whatever
// out-of-scope CLI bootstraps the engine.
func Init(level logrus.Level) {
	Log.SetLevel(level)
}
