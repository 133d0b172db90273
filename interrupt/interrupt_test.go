package interrupt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nostrid.lol/context"
)

func TestRequestRunsHandlersInReverse(t *testing.T) {
	var order []int
	AddHandler(func() { order = append(order, 1) })
	AddHandler(func() { order = append(order, 2) })
	c, cancel := Context(context.Bg())
	defer cancel()
	require.False(t, Requested())
	Request()
	Request()
	<-HandlersDone
	require.True(t, Requested())
	require.Equal(t, []int{2, 1}, order)
	require.ErrorIs(t, c.Err(), context.Canceled)
}
