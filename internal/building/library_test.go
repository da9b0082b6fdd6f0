package building

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibrary_CheckOutAndReturn(t *testing.T) {
	log, logs := newObservedLogger()
	l := NewLibrary(Options{Name: "L"}, log)

	l.AddTitle("X")
	assert.True(t, l.ContainsTitle("X"))
	assert.True(t, l.IsAvailable("X"))

	l.CheckOut("X")
	assert.False(t, l.IsAvailable("X"))
	assert.True(t, l.ContainsTitle("X"))

	l.CheckOut("X")
	assert.False(t, l.IsAvailable("X"))
	assert.Equal(t, 1, logs.FilterMessage("Title is not available").Len())

	l.ReturnBook("X")
	assert.True(t, l.IsAvailable("X"))

	l.ReturnBook("X")
	assert.True(t, l.IsAvailable("X"))
	assert.Equal(t, 1, logs.FilterMessage("Title cannot be returned").Len())
}

func TestLibrary_MissingTitle(t *testing.T) {
	log, logs := newObservedLogger()
	l := NewLibrary(Options{}, log)
	l.AddTitle("Macbeth")

	assert.False(t, l.IsAvailable("Twilight"))

	l.CheckOut("Twilight")
	l.ReturnBook("Twilight")
	got := l.RemoveTitle("Twilight")

	assert.Equal(t, "Twilight", got)
	assert.False(t, l.ContainsTitle("Twilight"))
	assert.Equal(t, []string{"Macbeth"}, l.Titles())
	assert.Equal(t, 1, logs.FilterMessage("Title is not available").Len())
	assert.Equal(t, 1, logs.FilterMessage("Title cannot be returned").Len())
	assert.Equal(t, 1, logs.FilterMessage("Title does not exist in the collection").Len())
}

func TestLibrary_AddTitleResetsAvailability(t *testing.T) {
	l := NewLibrary(Options{}, nil)
	l.AddTitle("A")
	l.AddTitle("B")
	l.CheckOut("A")

	l.AddTitle("A")

	assert.True(t, l.IsAvailable("A"))
	assert.Equal(t, []string{"A", "B"}, l.Titles())
}

func TestLibrary_RemoveTitle(t *testing.T) {
	l := NewLibrary(Options{}, nil)
	l.AddTitle("A")
	l.AddTitle("B")
	l.AddTitle("C")
	l.CheckOut("B")

	assert.Equal(t, "B", l.RemoveTitle("B"))

	assert.False(t, l.ContainsTitle("B"))
	assert.Equal(t, []TitleStatus{{Title: "A", Available: true}, {Title: "C", Available: true}}, l.Snapshot())
}

func TestLibrary_EndToEnd(t *testing.T) {
	l := NewLibrary(Options{Name: "L", Address: "A", Floors: 4, HasElevator: true}, nil)

	l.AddTitle("T1")
	l.AddTitle("T2")
	l.CheckOut("T1")

	assert.False(t, l.IsAvailable("T1"))
	assert.True(t, l.IsAvailable("T2"))
	assert.False(t, l.ContainsTitle("T3"))

	l.Enter()
	require.NoError(t, l.GoToFloor(4))
}

func TestLibrary_PrintCollectionKeepsInsertionOrder(t *testing.T) {
	var out bytes.Buffer
	l := NewLibrary(Options{Output: &out}, nil)
	l.AddTitle("Twilight")
	l.AddTitle("Macbeth")
	l.AddTitle("Little Women")
	l.CheckOut("Little Women")

	l.PrintCollection()

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "Title"))
	assert.True(t, strings.HasPrefix(lines[2], "Twilight"))
	assert.True(t, strings.HasSuffix(lines[2], "Available"))
	assert.True(t, strings.HasPrefix(lines[3], "Macbeth"))
	assert.True(t, strings.HasPrefix(lines[4], "Little Women"))
	assert.True(t, strings.HasSuffix(lines[4], "Not Available"))
}
