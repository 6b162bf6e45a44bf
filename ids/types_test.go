package ids_test

import (
	"testing"

	"github.com/katalvlaran/maintsched/ids"
	"github.com/stretchr/testify/require"
)

func TestDayArithmetic(t *testing.T) {
	require.Equal(t, ids.Day(5), ids.Day(2).Add(ids.Day(3)))
	require.Equal(t, ids.Day(0), ids.Day(0).Add(ids.Day(0)))
	require.Equal(t, ids.Day(2), ids.Day(5).Sub(ids.Day(3)))
	require.Equal(t, ids.Day(0), ids.Day(1).Sub(ids.Day(3)), "Day.Sub saturates at zero")
}

func TestHandleInt(t *testing.T) {
	require.Equal(t, 7, ids.Day(7).Int())
	require.Equal(t, 3, ids.IID(3).Int())
	require.Equal(t, 4, ids.RID(4).Int())
	require.Equal(t, 2, ids.SID(2).Int())
	require.Equal(t, 1, ids.PID(1).Int())
}
