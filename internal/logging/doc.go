// Package logging builds the slog loggers livepair uses.
//
// Two output formats exist: a compact console handler for interactive runs
// and a JSON handler for scripting. Components receive loggers tagged with
// a component attribute; everything funnels through the handlers here so
// test runs can swap in a no-op logger.
package logging
