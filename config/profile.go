package config

import (
	"math/rand"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"

	"github.com/katalvlaran/carve/circuit"
	"github.com/katalvlaran/carve/core"
	"github.com/katalvlaran/carve/growth"
	"github.com/katalvlaran/carve/queue"
	"github.com/katalvlaran/carve/rng"
)

// Sentinel errors for profiles. Decode and validation failures wrap one of
// these; queue failures keep the queue package sentinels.
var (
	ErrInvalidProfile   = errors.New("config: invalid profile")
	ErrUnknownCollision = errors.New("config: unknown collision policy")
	ErrUnknownKeyMode   = errors.New("config: unknown key mode")
	ErrProfileNotFound  = errors.New("config: profile not found")
)

// DefaultKind is the queue discipline of a profile that names none.
const DefaultKind = queue.KindLIFO

// Profile describes one run.
type Profile struct {
	Name               string     `yaml:"name" json:"name"`
	Seed               int64      `yaml:"seed,omitempty" json:"seed,omitempty"`
	Queue              queue.Spec `yaml:"queue" json:"queue"`
	Arity              int        `yaml:"arity,omitempty" json:"arity,omitempty"`
	Shuffle            bool       `yaml:"shuffle,omitempty" json:"shuffle,omitempty"`
	AdmitAll           bool       `yaml:"admit_all,omitempty" json:"admit_all,omitempty"`
	StopWhenAllVisited bool       `yaml:"stop_when_all_visited,omitempty" json:"stop_when_all_visited,omitempty"`
	Collision          string     `yaml:"collision,omitempty" json:"collision,omitempty"`
	Key                string     `yaml:"key,omitempty" json:"key,omitempty"`
}

// Set is a named collection of profiles.
type Set struct {
	Profiles []Profile `yaml:"profiles" json:"profiles"`
}

// Load reads and parses a single profile from path.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}

	return Parse(data)
}

// Parse decodes and validates one profile.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.UnmarshalWithOptions(data, &p, yaml.Strict()); err != nil {
		return nil, errors.Wrapf(ErrInvalidProfile, "decode: %v", err)
	}
	p.applyDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// LoadSet reads and parses a profile set from path.
func LoadSet(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}

	return ParseSet(data)
}

// ParseSet decodes a profile set and validates every member. Names must be
// unique and non-empty.
func ParseSet(data []byte) (*Set, error) {
	var s Set
	if err := yaml.UnmarshalWithOptions(data, &s, yaml.Strict()); err != nil {
		return nil, errors.Wrapf(ErrInvalidProfile, "decode: %v", err)
	}
	seen := make(map[string]bool, len(s.Profiles))
	for i := range s.Profiles {
		p := &s.Profiles[i]
		p.applyDefaults()
		if p.Name == "" {
			return nil, errors.Wrapf(ErrInvalidProfile, "profile %d has no name", i)
		}
		if seen[p.Name] {
			return nil, errors.Wrapf(ErrInvalidProfile, "duplicate profile %q", p.Name)
		}
		seen[p.Name] = true
		if err := p.Validate(); err != nil {
			return nil, errors.Wrapf(err, "profile %q", p.Name)
		}
	}

	return &s, nil
}

// Lookup returns the profile called name.
func (s *Set) Lookup(name string) (*Profile, error) {
	for i := range s.Profiles {
		if s.Profiles[i].Name == name {
			return &s.Profiles[i], nil
		}
	}

	return nil, errors.Wrapf(ErrProfileNotFound, "%q", name)
}

// Marshal encodes p as YAML.
func (p *Profile) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(err, "config: encode")
	}

	return out, nil
}

func (p *Profile) applyDefaults() {
	if strings.TrimSpace(p.Queue.Kind) == "" {
		p.Queue.Kind = DefaultKind
	}
}

// Validate checks every field without building anything.
func (p *Profile) Validate() error {
	if err := p.Queue.Validate(); err != nil {
		return errors.Wrap(err, "config: queue")
	}
	if p.Arity < 0 {
		return errors.Wrapf(ErrInvalidProfile, "negative arity %d", p.Arity)
	}
	if _, err := p.CollisionPolicy(); err != nil {
		return err
	}
	if _, err := p.KeyMode(); err != nil {
		return err
	}

	return nil
}

// Rand returns a fresh stream seeded from Seed (0 = default seed).
func (p *Profile) Rand() *rand.Rand { return rng.New(p.Seed) }

// CollisionPolicy parses Collision; empty means Close.
func (p *Profile) CollisionPolicy() (growth.CollisionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(p.Collision)) {
	case "", "close":
		return growth.Close, nil
	case "restart":
		return growth.Restart, nil
	default:
		return 0, errors.Wrapf(ErrUnknownCollision, "%q", p.Collision)
	}
}

// KeyMode parses Key; empty means vertex.
func (p *Profile) KeyMode() (circuit.KeyMode, error) {
	switch strings.ToLower(strings.TrimSpace(p.Key)) {
	case "", "vertex":
		return circuit.KeyVertex, nil
	case "edge":
		return circuit.KeyEdge, nil
	case "vertex-edge", "vertex_edge", "both":
		return circuit.KeyVertexEdge, nil
	default:
		return 0, errors.Wrapf(ErrUnknownKeyMode, "%q", p.Key)
	}
}

// NodeQueue builds the profile's queue over node handles with random
// priorities drawn from r.
func (p *Profile) NodeQueue(r *rand.Rand) (queue.Queue[core.NodeID], error) {
	return queue.FromSpec[core.NodeID](p.Queue, nil, r)
}

// GrowthOptions maps the profile onto growth options drawing from r.
func (p *Profile) GrowthOptions(r *rand.Rand) ([]growth.Option, error) {
	policy, err := p.CollisionPolicy()
	if err != nil {
		return nil, err
	}
	opts := []growth.Option{
		growth.WithArity(p.Arity),
		growth.WithShuffle(p.Shuffle),
		growth.WithCollision(policy),
		growth.WithRand(r),
	}
	if p.AdmitAll {
		opts = append(opts, growth.WithAdmitAll())
	}
	if p.StopWhenAllVisited {
		opts = append(opts, growth.WithStopWhenAllVisited())
	}

	return opts, nil
}

// NewEngine builds a growth engine over g. extra options are applied last.
func (p *Profile) NewEngine(g core.View, extra ...growth.Option) (*growth.Engine, error) {
	r := p.Rand()
	q, err := p.NodeQueue(r)
	if err != nil {
		return nil, err
	}
	opts, err := p.GrowthOptions(r)
	if err != nil {
		return nil, err
	}

	return growth.New(g, q, append(opts, extra...)...)
}

// NewTournament builds a multi-task growth run over g from seeds; every task
// gets a fresh queue of the profile's discipline.
func (p *Profile) NewTournament(g core.View, seeds []core.NodeID, extra ...growth.Option) (*growth.Tournament, error) {
	r := p.Rand()
	if _, err := p.NodeQueue(r); err != nil {
		return nil, err
	}
	opts, err := p.GrowthOptions(r)
	if err != nil {
		return nil, err
	}
	newQueue := func() queue.Queue[core.NodeID] {
		q, _ := p.NodeQueue(r)
		return q
	}

	return growth.NewTournament(g, seeds, newQueue, nil, append(opts, extra...)...)
}

// NewLocator builds a circuit locator over g. A priority profile keys its
// priorities by Key and memoizes them when Queue.Cache is set.
func (p *Profile) NewLocator(g core.View, extra ...circuit.Option) (*circuit.Locator, error) {
	r := p.Rand()
	kind, err := p.Queue.Normalize()
	if err != nil {
		return nil, err
	}
	opts := append([]circuit.Option{
		circuit.WithShuffle(p.Shuffle),
		circuit.WithRand(r),
		circuit.WithCache(p.Queue.Cache),
	}, extra...)

	if kind == queue.KindPriority {
		mode, err := p.KeyMode()
		if err != nil {
			return nil, err
		}
		tie, err := queue.ParseTiePolicy(p.Queue.Tie)
		if err != nil {
			return nil, err
		}
		return circuit.NewPriority(g, nil, mode, tie, opts...)
	}
	q, err := p.NodeQueue(r)
	if err != nil {
		return nil, err
	}

	return circuit.New(g, q, opts...)
}
