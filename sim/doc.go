// Package sim implements a discrete-event simulation of an M/M/c queueing
// facility: one shared FIFO wait line feeding c identical servers.
//
// The package is built from five pieces. Scheduler executes actions in
// virtual-time order with lazy cancellation. ExpSource draws exponentially
// distributed inter-arrival and service durations from independent,
// deterministically seeded streams. QueueingSystem owns the wait line and the
// server pool and reacts to arrival and completion events. Metrics
// accumulates waiting times and busy/idle totals for one run. Runner drives
// one independent simulation per candidate server count and applies the
// recommendation rule over the collected results.
//
// Everything is single-threaded: all state belongs to one run's
// QueueingSystem and is mutated only from actions executed by that run's
// Scheduler. Two runs with the same configuration and seed produce
// bit-identical results.
package sim
