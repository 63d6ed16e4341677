// Package config holds the engine's in-process configuration. The CLI that
// would parse -e/-f/-i into one of these is out of scope (spec.md §6.1);
// this is the trimmed-down equivalent of the teacher's sqle.Config struct
// in engine.go, keeping only an optimizer level and the explain switch.
package config

import "github.com/andb/andb/internal/physical"

// Config controls one driver's statement processing.
type Config struct {
	// OptimizerLevel names one of the declared optimizer levels (spec.md
	// §4.5). The driver does not read it; Optimize lowers every plan the
	// same way.
	OptimizerLevel physical.OptLevel
	// Explain, when true, makes the driver render the EXPLAIN text (spec.md
	// §6.2) into Result.Explain; the driver itself prints nothing.
	Explain bool
}

// Default returns the zero-value configuration: O0, explain disabled.
func Default() Config {
	return Config{OptimizerLevel: physical.O0}
}
