package layrsequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/layr-arb/layr/layrgraph"
	"github.com/layr-arb/layr/layrlayouts/layrsequence"
)

func TestActorsFirstSeen(t *testing.T) {
	t.Parallel()

	steps := []layrgraph.SequenceStep{
		{From: "User", To: "API", Action: "login"},
		{From: "API", To: "DB", Action: "query"},
		{From: "DB", To: "API", Action: "rows"},
		{From: "API", To: "User", Action: "token"},
		{From: "Cache", To: " ", Action: "noop"},
	}
	assert.Equal(t, []string{"User", "API", "DB", "Cache"}, layrsequence.Actors(steps))
}

func TestLayoutLanes(t *testing.T) {
	t.Parallel()

	steps := []layrgraph.SequenceStep{
		{From: "User", To: "API", Action: "login"},
		{From: "API", To: "DB", Action: "query"},
	}
	d := layrsequence.Layout(steps)

	assert.Len(t, d.Actors, 3)
	for i, a := range d.Actors {
		assert.Equal(t, float64(i+1)*layrsequence.ACTOR_SPACING, a.X)
		assert.Equal(t, a.X, a.Box.Center().X)
	}
	assert.Equal(t, 800., d.Width)
	assert.Equal(t, 600., d.Height)
	assert.Equal(t, 580., d.LifelineBottom)

	assert.Len(t, d.Steps, 2)
	assert.Equal(t, layrsequence.FIRST_STEP_Y, d.Steps[0].Y)
	assert.Equal(t, layrsequence.FIRST_STEP_Y+layrsequence.STEP_SPACING, d.Steps[1].Y)
	assert.Nil(t, d.Steps[0].Loop)
}

func TestSelfCall(t *testing.T) {
	t.Parallel()

	d := layrsequence.Layout([]layrgraph.SequenceStep{{From: "User", To: "User", Action: "validate"}})
	assert.Len(t, d.Actors, 1)
	st := d.Steps[0]
	assert.True(t, st.IsSelfCall())
	assert.Len(t, st.Loop, 4)
	assert.Equal(t, st.From.X+layrsequence.SELF_LOOP_WIDTH, st.Loop[1].X)
	assert.Equal(t, st.From.X, st.Loop[3].X)
	assert.Equal(t, st.Y+layrsequence.SELF_LOOP_HEIGHT, st.Loop[3].Y)
	assert.Equal(t, st.From.X+50, st.LabelAnchor().X)
}

func TestNotesAddSpace(t *testing.T) {
	t.Parallel()

	d := layrsequence.Layout([]layrgraph.SequenceStep{
		{From: "A", To: "B", Action: "ping", Notes: "async"},
		{From: "B", To: "A", Action: "pong"},
	})
	first, second := d.Steps[0], d.Steps[1]
	assert.NotNil(t, first.NoteBox)
	assert.Nil(t, second.NoteBox)
	assert.Equal(t, first.Y+layrsequence.STEP_SPACING+layrsequence.NOTE_SPACING, second.Y)
	assert.Equal(t, first.To.X+layrsequence.NOTE_OFFSET_X, first.NoteBox.TopLeft.X)
	assert.Equal(t, 45., first.NoteBox.Width)
}

func TestLayoutGrowsWithSteps(t *testing.T) {
	t.Parallel()

	var steps []layrgraph.SequenceStep
	for i := 0; i < 20; i++ {
		steps = append(steps, layrgraph.SequenceStep{From: "A", To: "B", Action: "x", Notes: "n"})
	}
	d := layrsequence.Layout(steps)
	last := d.Steps[len(d.Steps)-1]
	assert.LessOrEqual(t, last.NoteBox.Bottom(), d.LifelineBottom)
	assert.Equal(t, d.Height-layrsequence.LIFELINE_BOTTOM_MARGIN, d.LifelineBottom)
}

func TestLongActorNames(t *testing.T) {
	t.Parallel()

	d := layrsequence.Layout([]layrgraph.SequenceStep{
		{From: "AuthenticationService", To: "PaymentGateway", Action: "charge"},
		{From: "PaymentGateway", To: "NotificationDispatcher", Action: "notify"},
	})
	assert.Len(t, d.Actors, 3)
	assert.GreaterOrEqual(t, d.Actors[0].Box.TopLeft.X, 0.)
	for i := 1; i < len(d.Actors); i++ {
		prev, cur := d.Actors[i-1].Box, d.Actors[i].Box
		assert.False(t, prev.Overlaps(cur), "%s overlaps %s", d.Actors[i-1].Name, d.Actors[i].Name)
		assert.GreaterOrEqual(t, cur.TopLeft.X-prev.Right(), layrsequence.ACTOR_GAP)
	}
	last := d.Actors[len(d.Actors)-1]
	assert.LessOrEqual(t, last.Box.Right(), d.Width)
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	d := layrsequence.Layout(nil)
	assert.Empty(t, d.Actors)
	assert.Empty(t, d.Steps)
	assert.Equal(t, 800., d.Width)
	assert.Equal(t, 600., d.Height)
}

func TestSkippedBlankEndpoint(t *testing.T) {
	t.Parallel()

	d := layrsequence.Layout([]layrgraph.SequenceStep{
		{From: "A", To: "", Action: "lost"},
		{From: "A", To: "B", Action: "ok"},
	})
	assert.Equal(t, []int{0}, d.Skipped)
	assert.Len(t, d.Steps, 1)
	assert.Equal(t, layrsequence.FIRST_STEP_Y, d.Steps[0].Y)
}
