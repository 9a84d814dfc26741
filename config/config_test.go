package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/carve/builder"
	"github.com/katalvlaran/carve/circuit"
	"github.com/katalvlaran/carve/config"
	"github.com/katalvlaran/carve/core"
	"github.com/katalvlaran/carve/growth"
	"github.com/katalvlaran/carve/queue"
)

const prim = `
name: prim
seed: 42
queue:
  kind: heap
  tie: antistable
  cache: true
shuffle: true
collision: restart
key: vertex-edge
`

func grid(t *testing.T, rows, cols int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Grid(rows, cols))
	require.NoError(t, err)

	return g
}

func TestParse(t *testing.T) {
	p, err := config.Parse([]byte(prim))
	require.NoError(t, err)

	assert.Equal(t, "prim", p.Name)
	assert.Equal(t, int64(42), p.Seed)
	assert.Equal(t, queue.Spec{Kind: "heap", Tie: "antistable", Cache: true}, p.Queue)
	assert.True(t, p.Shuffle)

	policy, err := p.CollisionPolicy()
	require.NoError(t, err)
	assert.Equal(t, growth.Restart, policy)

	mode, err := p.KeyMode()
	require.NoError(t, err)
	assert.Equal(t, circuit.KeyVertexEdge, mode)
}

func TestParse_Defaults(t *testing.T) {
	p, err := config.Parse([]byte("name: bare\n"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultKind, p.Queue.Kind)

	policy, err := p.CollisionPolicy()
	require.NoError(t, err)
	assert.Equal(t, growth.Close, policy)

	mode, err := p.KeyMode()
	require.NoError(t, err)
	assert.Equal(t, circuit.KeyVertex, mode)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{"unknown-field", "name: x\ncolour: red\n", config.ErrInvalidProfile},
		{"bad-yaml", "name: [x\n", config.ErrInvalidProfile},
		{"negative-arity", "name: x\narity: -2\n", config.ErrInvalidProfile},
		{"bad-kind", "name: x\nqueue:\n  kind: deque\n", queue.ErrUnknownDiscipline},
		{"bad-tie", "name: x\nqueue:\n  kind: priority\n  tie: sideways\n", queue.ErrUnknownTiePolicy},
		{"bad-collision", "name: x\ncollision: explode\n", config.ErrUnknownCollision},
		{"bad-key", "name: x\nkey: colour\n", config.ErrUnknownKeyMode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	p, err := config.Parse([]byte(prim))
	require.NoError(t, err)
	out, err := p.Marshal()
	require.NoError(t, err)

	back, err := config.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, p, back)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(prim), 0o600))

	p, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prim", p.Name)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseSet(t *testing.T) {
	doc := `
profiles:
  - name: dfs
    queue: {kind: stack}
  - name: bfs
    queue: {kind: queue}
    arity: 2
`
	s, err := config.ParseSet([]byte(doc))
	require.NoError(t, err)
	require.Len(t, s.Profiles, 2)

	p, err := s.Lookup("bfs")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Arity)

	_, err = s.Lookup("prim")
	assert.ErrorIs(t, err, config.ErrProfileNotFound)

	_, err = config.ParseSet([]byte("profiles:\n  - name: a\n  - name: a\n"))
	assert.ErrorIs(t, err, config.ErrInvalidProfile)

	_, err = config.ParseSet([]byte("profiles:\n  - queue: {kind: lifo}\n"))
	assert.ErrorIs(t, err, config.ErrInvalidProfile)

	_, err = config.ParseSet([]byte("profiles:\n  - name: a\n    collision: never\n"))
	assert.ErrorIs(t, err, config.ErrUnknownCollision)
}

func TestProfile_NewEngine(t *testing.T) {
	for _, kind := range []string{"fifo", "lifo", "priority"} {
		t.Run(kind, func(t *testing.T) {
			p := &config.Profile{Name: kind, Seed: 3, Queue: queue.Spec{Kind: kind}, Shuffle: true}
			require.NoError(t, p.Validate())

			g := grid(t, 5, 5)
			maze := g.CloneEmpty()
			e, err := p.NewEngine(g, growth.WithCarveInto(maze))
			require.NoError(t, err)
			require.NoError(t, e.Run(context.Background()))
			assert.Equal(t, 24, maze.EdgeCount())
			assert.Equal(t, 1, core.ComponentCount(maze))
		})
	}
}

func TestProfile_NewTournament(t *testing.T) {
	p, err := config.Parse([]byte(prim))
	require.NoError(t, err)

	g := grid(t, 6, 6)
	maze := g.CloneEmpty()
	tr, err := p.NewTournament(g, []core.NodeID{0, 35}, growth.WithCarveInto(maze))
	require.NoError(t, err)
	require.NoError(t, tr.Run(context.Background()))
	assert.Equal(t, 35, maze.EdgeCount())
	assert.Equal(t, 1, core.ComponentCount(maze))
}

func TestProfile_NewLocator(t *testing.T) {
	for _, doc := range []string{prim, "name: dfs\nqueue: {kind: dfs}\n", "name: bfs\nqueue: {kind: bfs}\nshuffle: true\n"} {
		p, err := config.Parse([]byte(doc))
		require.NoError(t, err)
		t.Run(p.Name, func(t *testing.T) {
			l, err := p.NewLocator(grid(t, 3, 3))
			require.NoError(t, err)
			res, err := l.Find()
			require.NoError(t, err)
			assert.NotNil(t, res)
		})
	}
}
