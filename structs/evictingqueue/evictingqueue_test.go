package evictingqueue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleAdd(t *testing.T) {
	queue := New[string](3)

	assert.Equal(t, 0, queue.Len())

	queue.Add("One")
	queue.Add("Two")
	queue.Add("Three")

	assert.Equal(t, 3, queue.Len())
	assert.Equal(t, []string{"One", "Two", "Three"}, queue.Items())
}

func TestEvictingAdd(t *testing.T) {
	queue := New[string](3)

	queue.Add("One", "Two", "Three", "Four")

	assert.Equal(t, 3, queue.Len())

	val, ok := queue.Get(0)
	assert.True(t, ok)
	assert.Equal(t, "Two", val)

	val, ok = queue.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "Four", val)
}

func TestGetOutOfRange(t *testing.T) {
	queue := New[int](2)
	queue.Add(1)

	_, ok := queue.Get(1)
	assert.False(t, ok)

	_, ok = queue.Get(-1)
	assert.False(t, ok)
}

func TestUnbounded(t *testing.T) {
	queue := New[int](0)
	queue.Add(1, 2, 3, 4, 5)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, queue.Items())
}

func TestItemsIsACopy(t *testing.T) {
	queue := New[int](2)
	queue.Add(1, 2)

	items := queue.Items()
	items[0] = 99

	assert.Equal(t, []int{1, 2}, queue.Items())
}

func TestConcurrentAdd(t *testing.T) {
	queue := New[int](10)

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			queue.Add(i)
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 10, queue.Len())
}
