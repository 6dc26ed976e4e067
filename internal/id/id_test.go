package id

import (
	"crypto/rand"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilID(t *testing.T) {
	assert.True(t, Nil.IsNil())
	assert.Equal(t, "00000000000000000000000000", Nil.String())
	assert.False(t, New().IsNil())
}

func TestGeneratorMonotonic(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	g := NewGenerator(func() time.Time { return now }, rand.Reader)

	prev := g.New()
	for i := 0; i < 1000; i++ {
		next := g.New()
		require.True(t, Less(prev, next), "%s should sort before %s", prev, next)
		prev = next
	}
	assert.Equal(t, now.UnixMilli(), prev.Time().UnixMilli())
}

func TestGeneratorClockStepsBack(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	g := NewGenerator(func() time.Time { return now }, rand.Reader)

	first := g.New()
	now = now.Add(-time.Hour)
	second := g.New()

	assert.True(t, Less(first, second))
	assert.Equal(t, first.Time(), second.Time())
}

func TestGeneratorLaterTimeSortsAfter(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	g := NewGenerator(func() time.Time { return now }, rand.Reader)

	early := g.New()
	now = now.Add(time.Millisecond)
	late := g.New()

	assert.Equal(t, -1, Compare(early, late))
	assert.Equal(t, 1, Compare(late, early))
	assert.Equal(t, 0, Compare(late, late))
}

func TestParse(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   string
		want    ID
		wantErr bool
	}{
		{name: "canonical", input: v.String(), want: v},
		{name: "lower case", input: strings.ToLower(v.String()), want: v},
		{name: "nil", input: "00000000000000000000000000", want: Nil},
		{name: "too short", input: "01ARZ3NDEKTSV4RRFFQ69G5FA", wantErr: true},
		{name: "invalid character", input: "01ARZ3NDEKTSV4RRFFQ69G5FAU", wantErr: true},
		{name: "overflow", input: "81ARZ3NDEKTSV4RRFFQ69G5FAV", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextEncodingAsMapKey(t *testing.T) {
	a := MustParse("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	in := map[ID]int{a: 1, Nil: 0}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"00000000000000000000000000":0,"01ARZ3NDEKTSV4RRFFQ69G5FAV":1}`, string(data))

	var out map[ID]int
	require.NoError(t, json.Unmarshal([]byte(`{"01arz3ndektsv4rrffq69g5fav":1}`), &out))
	assert.Equal(t, map[ID]int{a: 1}, out)
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("nope") })
}
