package stats

import (
	"testing"

	"github.com/Cmiroslaf/BEFA-Library/common/observable"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	c := NewCounter[string]()
	for _, k := range []string{"mov", "push", "mov", "ret", "mov", "push"} {
		c.Add(k)
	}

	assert.Equal(t, 6, c.Total())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 3, c.Count("mov"))
	assert.Equal(t, 0, c.Count("jmp"))
	assert.Equal(t, []Entry[string]{
		{Key: "mov", Count: 3},
		{Key: "push", Count: 2},
		{Key: "ret", Count: 1},
	}, c.Entries())
}

func TestCounter_Top(t *testing.T) {
	c := NewCounter[int]()
	for _, k := range []int{1, 2, 2, 3, 3, 4} {
		c.Add(k)
	}

	assert.Equal(t, []Entry[int]{{Key: 2, Count: 2}, {Key: 3, Count: 2}}, c.Top(2))
	assert.Len(t, c.Top(-1), 4)
	assert.Equal(t, 1, c.Top(10)[2].Key)
}

func TestCounter_Attach(t *testing.T) {
	subj := observable.NewEmptySubject[string]()
	c := NewCounter[string]()
	sub := c.Attach(subj.AsObservable())

	subj.Update("a")
	subj.Update("b")
	subj.Update("a")
	sub.Unsubscribe()
	subj.Update("c")

	assert.Equal(t, 3, c.Total())
	assert.Equal(t, 2, c.Count("a"))
	assert.Equal(t, 0, c.Count("c"))

	c.Reset()
	assert.Equal(t, 0, c.Total())
	assert.Empty(t, c.Entries())
}
