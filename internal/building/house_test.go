package building

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHouse_MoveInMoveOut(t *testing.T) {
	h := NewHouse(Options{Name: "H"}, nil)

	h.MoveIn("A")
	h.MoveIn("B")
	got := h.MoveOut("A")

	assert.Equal(t, "A", got)
	assert.False(t, h.IsResident("A"))
	assert.True(t, h.IsResident("B"))
	assert.Equal(t, 1, h.NResidents())
}

func TestHouse_MoveOutUnknownResident(t *testing.T) {
	log, logs := newObservedLogger()
	h := NewHouse(Options{Name: "Grace's House"}, log)
	h.MoveIn("Grace")

	got := h.MoveOut("Jordan")

	assert.Equal(t, "Jordan", got)
	assert.Equal(t, 1, h.NResidents())
	assert.Equal(t, []string{"Grace"}, h.Residents())

	warned := logs.FilterMessage("Not a resident of this house").All()
	require.Len(t, warned, 1)
	assert.Equal(t, "Jordan", warned[0].ContextMap()["resident"])
}

func TestHouse_DuplicateNamesRemoveFirstOccurrence(t *testing.T) {
	h := NewHouse(Options{}, nil)
	h.MoveIn("Kira")
	h.MoveIn("Fiadh")
	h.MoveIn("Kira")

	h.MoveOut("Kira")

	assert.Equal(t, []string{"Fiadh", "Kira"}, h.Residents())
	assert.True(t, h.IsResident("Kira"))
}

func TestHouse_MoveInRoomIgnoresRoom(t *testing.T) {
	h := NewHouse(Options{}, nil)

	h.MoveInRoom("Grace", 12)
	h.MoveIn("Kira")

	assert.Equal(t, []string{"Grace", "Kira"}, h.Residents())
}

func TestHouse_ResidentsIsCopy(t *testing.T) {
	h := NewHouse(Options{}, nil)
	h.MoveIn("Grace")

	residents := h.Residents()
	residents[0] = "Mallory"

	assert.True(t, h.IsResident("Grace"))
	assert.False(t, h.IsResident("Mallory"))
}

func TestHouse_Flags(t *testing.T) {
	h := NewHouse(Options{Floors: 3, HasDiningRoom: true}, nil)
	assert.True(t, h.HasDiningRoom())
	assert.False(t, h.HasElevator())

	h.Enter()
	require.ErrorIs(t, h.GoToFloor(3), ErrNoElevator)

	h.SetElevator(true)
	h.SetDiningRoom(false)
	require.NoError(t, h.GoToFloor(3))
	assert.False(t, h.HasDiningRoom())
}
