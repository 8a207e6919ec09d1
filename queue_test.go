package lexgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteQueueFIFO(t *testing.T) {
	q := NewByteQueue([]byte("abc"))
	require.EqualValues(t, 3, q.Len())

	b, ok := q.PopFront()
	require.True(t, ok)
	require.EqualValues(t, 'a', b)

	b, ok = q.PopFront()
	require.True(t, ok)
	require.EqualValues(t, 'b', b)

	require.EqualValues(t, "c", string(q.Bytes()))

	b, ok = q.PopFront()
	require.True(t, ok)
	require.EqualValues(t, 'c', b)
	require.True(t, q.Empty())

	_, ok = q.PopFront()
	require.False(t, ok)
}

func TestByteQueuePushFront(t *testing.T) {
	q := NewByteQueue([]byte("cd"))

	q.PopFront()
	q.PushFront('x')
	require.EqualValues(t, "xd", string(q.Bytes()))

	// pushback beyond the original front grows the queue
	q.PushFront('y')
	q.PushFront('z')
	require.EqualValues(t, "zyxd", string(q.Bytes()))
	require.EqualValues(t, 4, q.Len())
}

func TestByteQueueCopiesInput(t *testing.T) {
	input := []byte("ab")
	q := NewByteQueue(input)
	input[0] = 'z'
	require.EqualValues(t, "ab", string(q.Bytes()))
}
