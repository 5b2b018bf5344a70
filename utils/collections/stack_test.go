package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	type Mock struct {
		A string
		B int
	}
	s := NewStack[*Mock]()
	s.Push(&Mock{
		A: "aa",
		B: 22,
	})
	s.Push(&Mock{
		A: "bb",
		B: 55,
	})
	require.Equal(t, 2, s.Size())
	top, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, &Mock{
		A: "bb",
		B: 55,
	}, top)
	require.Equal(t, 1, s.Size())
	peek, err := s.Peek()
	require.NoError(t, err)
	require.Equal(t, &Mock{
		A: "aa",
		B: 22,
	}, peek)
	require.Equal(t, 1, s.Size())
	top, err = s.Pop()
	require.NoError(t, err)
	require.Equal(t, &Mock{
		A: "aa",
		B: 22,
	}, top)
	require.Equal(t, 0, s.Size())
	require.Equal(t, true, s.IsEmpty())
	_, err = s.Pop()
	require.ErrorIs(t, err, ErrEmptyContainer)
	_, err = s.Peek()
	require.ErrorIs(t, err, ErrEmptyContainer)
}

func TestStackIterationOrder(t *testing.T) {
	s := NewStack[int]()
	for i := 1; i <= 5; i++ {
		s.Push(i)
	}
	var got []int
	for v := range s.All() {
		got = append(got, v)
	}
	require.Equal(t, []int{5, 4, 3, 2, 1}, got)
	require.Equal(t, got, s.Entries())
	require.Equal(t, 5, s.Size())
	require.Equal(t, "[5 4 3 2 1]", s.(*stack[int]).String())
}

func TestStackDrain(t *testing.T) {
	for _, n := range []int{0, 1, 2, 100} {
		s := NewStack[int]()
		for i := 0; i < n; i++ {
			s.Push(i)
			require.Equal(t, i+1, s.Size())
		}
		for i := n - 1; i >= 0; i-- {
			require.Equal(t, i+1, len(s.Entries()))
			v, err := s.Pop()
			require.NoError(t, err)
			require.Equal(t, i, v)
		}
		require.Equal(t, true, s.IsEmpty())
		require.Equal(t, 0, s.Size())
		_, err := s.Pop()
		require.ErrorIs(t, err, ErrEmptyContainer)
	}
}

func TestStackEmptyIsStable(t *testing.T) {
	s := NewStack[string]()
	for i := 0; i < 3; i++ {
		require.Equal(t, true, s.IsEmpty())
		require.Equal(t, 0, s.Size())
	}
	it := s.Iterator()
	require.Equal(t, false, it.HasNext())
	_, err := it.Next()
	require.ErrorIs(t, err, ErrIterationExhausted)
}
