// Package report is the reporting sink shared by every carve algorithm: a
// mutable bag of named integer counters and string labels that an algorithm
// fills in during a run and the caller inspects, prints or logs afterwards.
//
// A Report carries a RunID (random UUID) so that reports from several runs can
// be told apart once exported. JSON export uses goccy/go-json; Log emits one
// zerolog event with every counter and label.
//
// Reports are not goroutine-safe, like the algorithms that fill them.
package report

import (
	"sort"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Well-known counter names.
const (
	Cells              = "cells"
	Passages           = "passages"
	MaxQueueLength     = "maximum queue length"
	ComponentsFound    = "components found"
	ComponentsFinished = "components finished"
	Unvisited          = "unvisited"
	Walls              = "walls"
	Territories        = "territories"
	Rounds             = "rounds"
	Floodgates         = "floodgates"
	Steps              = "steps"
	Collisions         = "collisions"
	Restarts           = "restarts"
)

// Well-known label names.
const (
	LabelAlgorithm = "algorithm"
	LabelQueue     = "queue"
	LabelStatus    = "status"
)

// Report is a bag of named counters and labels for one run. The zero value
// is usable but carries a nil RunID; New assigns a fresh one.
type Report struct {
	runID    uuid.UUID
	counters map[string]int
	labels   map[string]string
}

// New returns an empty report tagged with algorithm and a fresh RunID.
func New(algorithm string) *Report {
	r := &Report{
		runID:    uuid.New(),
		counters: make(map[string]int),
		labels:   make(map[string]string),
	}
	if algorithm != "" {
		r.labels[LabelAlgorithm] = algorithm
	}

	return r
}

// RunID identifies this report.
func (r *Report) RunID() uuid.UUID { return r.runID }

// Algorithm returns the algorithm label, if set.
func (r *Report) Algorithm() string { return r.labels[LabelAlgorithm] }

// Inc adds one to name.
func (r *Report) Inc(name string) {
	r.lazyInit()
	r.counters[name]++
}

// Add adds delta to name.
func (r *Report) Add(name string, delta int) {
	r.lazyInit()
	r.counters[name] += delta
}

// Set overwrites name.
func (r *Report) Set(name string, v int) {
	r.lazyInit()
	r.counters[name] = v
}

// Max raises name to v if v is larger (or name is unset).
func (r *Report) Max(name string, v int) {
	r.lazyInit()
	if cur, ok := r.counters[name]; !ok || v > cur {
		r.counters[name] = v
	}
}

func (r *Report) lazyInit() {
	if r.counters == nil {
		r.counters = make(map[string]int)
	}
	if r.labels == nil {
		r.labels = make(map[string]string)
	}
}

// Counter returns the value of name; unset counters read as zero.
func (r *Report) Counter(name string) int { return r.counters[name] }

// Has reports whether counter name was ever written.
func (r *Report) Has(name string) bool {
	_, ok := r.counters[name]
	return ok
}

// SetLabel stores a string label.
func (r *Report) SetLabel(name, value string) {
	r.lazyInit()
	r.labels[name] = value
}

// Label returns a label; unset labels read as "".
func (r *Report) Label(name string) string { return r.labels[name] }

// Counters returns a copy of every counter.
func (r *Report) Counters() map[string]int {
	out := make(map[string]int, len(r.counters))
	for k, v := range r.counters {
		out[k] = v
	}

	return out
}

// Labels returns a copy of every label.
func (r *Report) Labels() map[string]string {
	out := make(map[string]string, len(r.labels))
	for k, v := range r.labels {
		out[k] = v
	}

	return out
}

// Names returns the counter names in ascending order.
func (r *Report) Names() []string {
	names := make([]string, 0, len(r.counters))
	for k := range r.counters {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

type wire struct {
	RunID    uuid.UUID         `json:"run_id"`
	Counters map[string]int    `json:"counters"`
	Labels   map[string]string `json:"labels,omitempty"`
}

// MarshalJSON encodes the report as {"run_id", "counters", "labels"}.
func (r *Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(wire{RunID: r.runID, Counters: r.counters, Labels: r.labels})
}

// UnmarshalJSON restores a report produced by MarshalJSON.
func (r *Report) UnmarshalJSON(data []byte) error {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.runID = w.RunID
	r.counters = w.Counters
	if r.counters == nil {
		r.counters = make(map[string]int)
	}
	r.labels = w.Labels
	if r.labels == nil {
		r.labels = make(map[string]string)
	}

	return nil
}

// Log writes one info-level summary event.
func (r *Report) Log(logger zerolog.Logger) {
	counters := zerolog.Dict()
	for _, name := range r.Names() {
		counters = counters.Int(name, r.counters[name])
	}
	labels := zerolog.Dict()
	for k, v := range r.labels {
		labels = labels.Str(k, v)
	}
	logger.Info().
		Str("run_id", r.runID.String()).
		Dict("counters", counters).
		Dict("labels", labels).
		Msg("run report")
}
