package funct

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	doubled, err := Map([]int{1, 2, 3}, func(x int) (int, error) {
		return x * 2, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, doubled)
}

func TestMapError(t *testing.T) {
	_, err := Map([]string{"1", "x"}, func(s string) (int, error) {
		return strconv.Atoi(s)
	})
	assert.Error(t, err)
}

func TestFilter(t *testing.T) {
	even := Filter([]int{1, 2, 3, 4}, func(x int) bool {
		return x%2 == 0
	})
	assert.Equal(t, []int{2, 4}, even)
}

func TestIndex(t *testing.T) {
	index := Index([]string{"a", "b", "c"}, func(s string) bool {
		return s == "b"
	})
	assert.Equal(t, 1, index)

	index = Index([]string{"a"}, func(s string) bool {
		return s == "z"
	})
	assert.Equal(t, -1, index)
}

func TestSome(t *testing.T) {
	assert.True(t, Some([]int{1, 2}, func(x int) bool { return x > 1 }))
	assert.False(t, Some([]int{1, 2}, func(x int) bool { return x > 5 }))
}

func TestCount(t *testing.T) {
	count := Count([]error{nil, errors.New("x"), nil}, func(err error) bool {
		return err != nil
	})
	assert.Equal(t, 1, count)
}
