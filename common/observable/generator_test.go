package observable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexpGenerator(t *testing.T) {
	gen, err := NewRegexpGenerator("stringstriingstriiing", "(stri*ng)")
	require.NoError(t, err)

	for _, want := range []string{"string", "striing", "striiing"} {
		got, err := gen.Next()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err = gen.Next()
	assert.ErrorIs(t, err, ErrStreamExhausted)
	assert.Equal(t, "", gen.Rest())
}

func TestRegexpGenerator_WholeMatch(t *testing.T) {
	gen, err := NewRegexpGenerator("a1 b22 c333", `\d+`)
	require.NoError(t, err)

	var got []string
	for {
		s, err := gen.Next()
		if err != nil {
			assert.ErrorIs(t, err, ErrStreamExhausted)
			break
		}
		got = append(got, s)
	}
	assert.Equal(t, []string{"1", "22", "333"}, got)
}

func TestRegexpGenerator_EmptyMatch(t *testing.T) {
	gen, err := NewRegexpGenerator("ab", `x*`)
	require.NoError(t, err)

	count := 0
	for {
		s, err := gen.Next()
		if err != nil {
			break
		}
		assert.Equal(t, "", s)
		count++
	}
	// before a, before b and at the end
	assert.Equal(t, 3, count)
}

func TestRegexpGenerator_Clone(t *testing.T) {
	gen, err := NewRegexpGenerator("stringstriingstriiing", "(stri*ng)")
	require.NoError(t, err)

	_, err = gen.Next()
	require.NoError(t, err)

	clone := gen.Clone().(*RegexpGenerator)
	assert.Equal(t, gen.Offset(), clone.Offset())
	assert.Equal(t, "striingstriiing", clone.Rest())

	// advancing the clone leaves the original where it was
	s, err := clone.Next()
	require.NoError(t, err)
	assert.Equal(t, "striing", s)
	assert.Equal(t, 6, gen.Offset())
	assert.Equal(t, 13, clone.Offset())

	// the clone does not read through the original's buffer
	gen.buffer[6] = 'X'
	s, err = clone.Next()
	require.NoError(t, err)
	assert.Equal(t, "striiing", s)

	_, err = clone.Next()
	assert.ErrorIs(t, err, ErrStreamExhausted)
}

func TestRegexpGenerator_BadPattern(t *testing.T) {
	_, err := NewRegexpGenerator("x", "(")
	assert.Error(t, err)
}

func TestSliceGenerator(t *testing.T) {
	items := []string{"mov", "%eax", "%ebx"}
	gen := NewSliceGenerator(items)
	items[0] = "changed"

	first, err := gen.Next()
	require.NoError(t, err)
	assert.Equal(t, "mov", first)
	assert.Equal(t, 2, gen.Remaining())

	clone := gen.Clone()
	for _, want := range []string{"%eax", "%ebx"} {
		got, err := clone.Next()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err = clone.Next()
	assert.ErrorIs(t, err, ErrStreamExhausted)
	assert.Equal(t, 2, gen.Remaining())
}

func TestSubject_GeneratorExhaustsAfterK(t *testing.T) {
	const k = 4
	gen := NewSliceGenerator([]int{1, 2, 3, 4})
	subj := NewSubjectWithGenerator[int](gen)

	var got []int
	subj.Subscribe(func(n int) { got = append(got, n) })

	for i := 0; i < k; i++ {
		require.NoError(t, subj.Next())
		if i == 1 {
			copied := subj.Clone()
			require.NoError(t, copied.Next())
			require.NoError(t, copied.Next())
			assert.ErrorIs(t, copied.Next(), ErrStreamExhausted)
		}
	}
	assert.ErrorIs(t, subj.Next(), ErrStreamExhausted)
	assert.Equal(t, []int{1, 2, 3, 4, 3, 4}, got)
}
