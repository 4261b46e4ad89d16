package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestBot_Go/internal/catalog"
	"github.com/osse101/QuestBot_Go/internal/domain"
)

func newNavigator(t *testing.T) *Navigator {
	t.Helper()
	world, err := catalog.DefaultWorld()
	require.NoError(t, err)
	c, err := catalog.New(world)
	require.NoError(t, err)
	return NewNavigator(c)
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		from     int
		to       int
		inCombat bool
		wantErr  error
	}{
		{"village to forest", 2, 1, 2, false, nil},
		{"back to village", 1, 2, 1, false, nil},
		{"unknown target", 10, 1, 99, false, domain.ErrLocationNotFound},
		{"level gate", 3, 3, 5, false, domain.ErrInsufficientLevel},
		{"level gate beats adjacency", 1, 1, 6, false, domain.ErrInsufficientLevel},
		{"not adjacent", 10, 1, 6, false, domain.ErrNotConnected},
		{"in combat", 10, 1, 2, true, domain.ErrAlreadyInCombat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newNavigator(t)
			p := domain.NewPlayer(1, "hero")
			p.Level = tt.level
			p.LocationID = tt.from
			if tt.inCombat {
				p.StartCombat(domain.Monster{Name: "Волк", Health: 1})
			}

			dest, err := n.Move(p, tt.to)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, p.LocationID, "location must not change on failure")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, p.LocationID)
			assert.Equal(t, tt.to, dest.ID)
		})
	}
}

func TestMoveLevelGateAlwaysFails(t *testing.T) {
	n := newNavigator(t)
	p := domain.NewPlayer(1, "hero")
	p.Level = 3
	p.LocationID = 3

	for i := 0; i < 10; i++ {
		_, err := n.Move(p, 5)
		require.ErrorIs(t, err, domain.ErrInsufficientLevel)
		require.Equal(t, 3, p.LocationID)
	}
}

func TestConnections(t *testing.T) {
	n := newNavigator(t)

	locs, err := n.Connections(1)
	require.NoError(t, err)
	require.Len(t, locs, 2)
	assert.Equal(t, "Темный лес", locs[0].Name)
	assert.Equal(t, "Горный перевал", locs[1].Name)

	_, err = n.Connections(42)
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}
