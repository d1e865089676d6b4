package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdered_InsertionOrder(t *testing.T) {
	s := New[string, int]()
	assert.True(t, s.Put("b", 1))
	assert.True(t, s.Put("a", 2))
	assert.True(t, s.Put("c", 3))
	assert.False(t, s.Put("a", 20), "replacing should not reinsert")

	assert.Equal(t, []string{"b", "a", "c"}, s.Keys())
	assert.Equal(t, []int{1, 20, 3}, s.Values())
	assert.Equal(t, 3, s.Len())
}

func TestOrdered_GetDelete(t *testing.T) {
	s := New[string, string]()
	s.Put("1", "one")

	v, err := s.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "one", v)

	_, err = s.Get("2")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Delete("1"))
	assert.False(t, s.Has("1"))
	assert.ErrorIs(t, s.Delete("1"), ErrNotFound)
	assert.Empty(t, s.Keys())
}

func TestOrdered_DeleteKeepsOrder(t *testing.T) {
	s := New[int, int]()
	for i := 0; i < 5; i++ {
		s.Put(i, i*i)
	}
	require.NoError(t, s.Delete(2))
	assert.Equal(t, []int{0, 1, 3, 4}, s.Keys())
	s.Put(2, 4)
	assert.Equal(t, []int{0, 1, 3, 4, 2}, s.Keys())
}

func TestOrdered_FilterUpdate(t *testing.T) {
	s := New[int, int]()
	for i := 1; i <= 6; i++ {
		s.Put(i, i)
	}
	even := s.Filter(func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, even)

	require.NoError(t, s.Update(3, func(v int) int { return v * 10 }))
	v, _ := s.Get(3)
	assert.Equal(t, 30, v)
	assert.ErrorIs(t, s.Update(99, func(v int) int { return v }), ErrNotFound)
}

func TestOrdered_Concurrent(t *testing.T) {
	s := New[string, int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Put(fmt.Sprintf("k%d", i), i)
			_ = s.Values()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len())
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}

	got, total := Page(items, 1, 5)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	assert.Equal(t, 2, total)

	got, _ = Page(items, 2, 5)
	assert.Equal(t, []int{6, 7, 8}, got)

	got, _ = Page(items, 9, 5)
	assert.Equal(t, []int{6, 7, 8}, got, "page past the end is clamped")

	got, _ = Page(items, 0, 5)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got, "page before the start is clamped")

	got, total = Page([]int{}, 1, 5)
	assert.Empty(t, got)
	assert.Equal(t, 0, total)
}
