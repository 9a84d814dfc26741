package watershed

import (
	"github.com/tidwall/btree"

	"github.com/katalvlaran/carve/core"
)

// gate holds the candidates of one territory pair.
type gate struct {
	list []Floodgate
	seen map[Floodgate]struct{}
}

// gateStore indexes gates by the packed pair (lo<<32 | hi), so a scan visits
// pairs in (lo, hi) order.
type gateStore struct {
	m *btree.Map[uint64, *gate]
}

func newGateStore() gateStore {
	return gateStore{m: btree.NewMap[uint64, *gate](0)}
}

func pairKey(a, b int) uint64 {
	if a > b {
		a, b = b, a
	}

	return uint64(uint32(a))<<32 | uint64(uint32(b))
}

func unpack(key uint64) (lo, hi int) {
	return int(key >> 32), int(uint32(key))
}

// add records the adjacency u∈tu, v∈tv. It reports whether the pair is new.
func (s gateStore) add(tu int, u core.NodeID, tv int, v core.NodeID) bool {
	if tu > tv {
		tu, tv, u, v = tv, tu, v, u
	}
	key := pairKey(tu, tv)
	g, ok := s.m.Get(key)
	if !ok {
		g = &gate{seen: make(map[Floodgate]struct{})}
		s.m.Set(key, g)
	}
	fg := Floodgate{From: u, To: v}
	if _, dup := g.seen[fg]; dup {
		return false
	}
	g.seen[fg] = struct{}{}
	g.list = append(g.list, fg)

	return true
}

func (s gateStore) get(a, b int) []Floodgate {
	g, ok := s.m.Get(pairKey(a, b))
	if !ok {
		return nil
	}

	return g.list
}

// each visits every touching pair in ascending order.
func (s gateStore) each(fn func(lo, hi int, list []Floodgate) bool) {
	s.m.Scan(func(key uint64, g *gate) bool {
		lo, hi := unpack(key)
		return fn(lo, hi, g.list)
	})
}

func (s gateStore) pairs() int { return s.m.Len() }
