package storage

import (
	"encoding/json"
	"testing"

	"github.com/Siddhesh-Agarwal/pwactl/internal/id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionOperations(t *testing.T) {
	var c Collection[string]
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Keys())

	first, second := id.New(), id.New()
	c.Set(second, "second")
	c.Set(first, "first")
	c.Set(id.Nil, "nil")

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []id.ID{id.Nil, first, second}, c.Keys())
	assert.Equal(t, []string{"nil", "first", "second"}, c.Values())

	v, ok := c.Get(first)
	assert.True(t, ok)
	assert.Equal(t, "first", v)

	c.Set(first, "replaced")
	v, _ = c.Get(first)
	assert.Equal(t, "replaced", v)
	assert.Equal(t, 3, c.Len())

	assert.True(t, c.Delete(first))
	assert.False(t, c.Delete(first))
	assert.False(t, c.Has(first))
	assert.Equal(t, 2, c.Len())
}

func TestCollectionAll(t *testing.T) {
	c := NewCollection[int]()
	keys := []id.ID{id.New(), id.New(), id.New()}
	for i := len(keys) - 1; i >= 0; i-- {
		c.Set(keys[i], i)
	}

	var seen []int
	for key, v := range c.All() {
		assert.Equal(t, keys[v], key)
		seen = append(seen, v)
	}
	assert.Equal(t, []int{0, 1, 2}, seen)

	seen = nil
	for _, v := range c.All() {
		seen = append(seen, v)
		break
	}
	assert.Equal(t, []int{0}, seen)
}

func TestCollectionJSON(t *testing.T) {
	var zero Collection[int]
	data, err := json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	c := NewCollection[string]()
	c.Set(id.MustParse("01BX5ZZKBKACTAV9WEVGEMMVRZ"), "b")
	c.Set(id.MustParse("01ARZ3NDEKTSV4RRFFQ69G5FAV"), "a")

	data, err = json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `{"01ARZ3NDEKTSV4RRFFQ69G5FAV":"a","01BX5ZZKBKACTAV9WEVGEMMVRZ":"b"}`, string(data))

	var decoded Collection[string]
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, c, decoded)
}

func TestCollectionUnmarshalReplaces(t *testing.T) {
	c := NewCollection[int]()
	c.Set(id.New(), 1)

	require.NoError(t, json.Unmarshal([]byte(`{}`), &c))
	assert.Equal(t, 0, c.Len())
}

func TestCollectionUnmarshalRejectsNonObjects(t *testing.T) {
	for _, input := range []string{`null`, `[]`, `"x"`, `1`, `true`} {
		var c Collection[int]
		assert.Error(t, json.Unmarshal([]byte(input), &c), input)
	}
}
