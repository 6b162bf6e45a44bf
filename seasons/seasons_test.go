package seasons_test

import (
	"testing"

	"github.com/katalvlaran/maintsched/ids"
	"github.com/katalvlaran/maintsched/seasons"
	"github.com/stretchr/testify/require"
)

func TestSetTestClear(t *testing.T) {
	s := seasons.New(4)
	require.False(t, s.Test(ids.SID(1)))
	s.Set(ids.SID(1))
	require.True(t, s.Test(ids.SID(1)))
	s.Clear(ids.SID(1))
	require.False(t, s.Test(ids.SID(1)))
}

func TestIntersectsAndDisjoint(t *testing.T) {
	a := seasons.New(4)
	b := seasons.New(4)
	require.True(t, a.IsDisjoint(b))
	require.False(t, a.Intersects(b))

	a.Set(ids.SID(2))
	b.Set(ids.SID(3))
	require.True(t, a.IsDisjoint(b))

	b.Set(ids.SID(2))
	require.True(t, a.Intersects(b))
	require.False(t, a.IsDisjoint(b))
}

func TestOnesIteratesSetBitsInOrder(t *testing.T) {
	s := seasons.New(8)
	s.Set(ids.SID(5))
	s.Set(ids.SID(1))
	s.Set(ids.SID(3))

	var got []ids.SID
	s.Ones(func(sid ids.SID) { got = append(got, sid) })
	require.Equal(t, []ids.SID{1, 3, 5}, got)
}

func TestSetAll(t *testing.T) {
	s := seasons.New(3)
	s.SetAll()
	for i := 0; i < 3; i++ {
		require.True(t, s.Test(ids.SID(i)))
	}
}

func TestClone(t *testing.T) {
	a := seasons.New(4)
	a.Set(ids.SID(1))
	b := a.Clone()
	b.Set(ids.SID(2))
	require.False(t, a.Test(ids.SID(2)), "clone must be independent")
	require.True(t, b.Test(ids.SID(1)))
}
