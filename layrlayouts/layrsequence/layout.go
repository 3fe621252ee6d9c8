// Package layrsequence lays out sequence diagrams: one lane per actor in
// first-seen order and one row per step from the top down.
package layrsequence

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/layr-arb/layr/layrgraph"
	"github.com/layr-arb/layr/layrrenderers/layrroute"
	"github.com/layr-arb/layr/lib/geo"
	"github.com/layr-arb/layr/lib/orderedset"
)

type Actor struct {
	Name  string
	Index int
	// lane center
	X   float64
	Box *geo.Box
}

type Step struct {
	layrgraph.SequenceStep
	Index int
	Y     float64
	From  *Actor
	To    *Actor

	// set when Notes is non-empty
	NoteBox *geo.Box
	// set for self-calls: the open rectangle returning to the lane
	Loop geo.Points
}

type Diagram struct {
	Width  float64
	Height float64

	Actors []*Actor
	Steps  []*Step
	// Skipped holds the indexes of steps without a usable endpoint.
	Skipped []int

	LifelineTop    float64
	LifelineBottom float64
}

// Actors returns the distinct endpoint names of steps in first-seen order,
// from before to within each step. Blank names are ignored.
func Actors(steps []layrgraph.SequenceStep) []string {
	set := orderedset.New[string]()
	for _, s := range steps {
		for _, name := range []string{s.From, s.To} {
			if name = strings.TrimSpace(name); name != "" {
				set.Add(name)
			}
		}
	}
	return set.Items()
}

func actorWidth(name string) float64 {
	return float64(uniseg.GraphemeClusterCount(name))*ACTOR_CHAR_WIDTH + ACTOR_PADDING
}

func noteWidth(notes string) float64 {
	return float64(uniseg.GraphemeClusterCount(notes))*NOTE_CHAR_WIDTH + NOTE_PADDING
}

func Layout(steps []layrgraph.SequenceStep) *Diagram {
	names := Actors(steps)

	d := &Diagram{
		Width:  math.Max(MIN_WIDTH, float64(len(names))*ACTOR_SPACING+WIDTH_MARGIN),
		Height: math.Max(MIN_HEIGHT, float64(len(steps))*STEP_HEIGHT_BUDGET+HEIGHT_MARGIN),
	}
	d.LifelineTop = ACTOR_Y + ACTOR_BOX_HEIGHT/2
	d.LifelineBottom = d.Height - LIFELINE_BOTTOM_MARGIN

	byName := make(map[string]*Actor, len(names))
	x := 0.
	prevWidth := 0.
	for i, name := range names {
		w := actorWidth(name)
		if i == 0 {
			x = math.Max(ACTOR_SPACING, w/2+ACTOR_GAP)
		} else {
			x += math.Max(ACTOR_SPACING, (prevWidth+w)/2+ACTOR_GAP)
		}
		prevWidth = w
		a := &Actor{
			Name:  name,
			Index: i,
			X:     x,
			Box:   geo.NewBoxAround(geo.NewPoint(x, ACTOR_Y), w, ACTOR_BOX_HEIGHT),
		}
		d.Actors = append(d.Actors, a)
		byName[name] = a
	}
	if len(d.Actors) > 0 {
		last := d.Actors[len(d.Actors)-1]
		d.Width = math.Max(d.Width, last.X+math.Max(WIDTH_MARGIN, last.Box.Width/2+ACTOR_GAP))
	}

	y := FIRST_STEP_Y
	for i, s := range steps {
		from := byName[strings.TrimSpace(s.From)]
		to := byName[strings.TrimSpace(s.To)]
		if from == nil || to == nil {
			d.Skipped = append(d.Skipped, i)
			continue
		}

		st := &Step{
			SequenceStep: s,
			Index:        i,
			Y:            y,
			From:         from,
			To:           to,
		}
		if from == to {
			st.Loop = layrroute.SelfLoopPoints(geo.NewPoint(from.X, y), SELF_LOOP_WIDTH, SELF_LOOP_HEIGHT)
		}
		advance := STEP_SPACING
		if s.Notes != "" {
			nx := math.Max(from.X, to.X) + NOTE_OFFSET_X
			st.NoteBox = geo.NewBox(geo.NewPoint(nx, y+NOTE_OFFSET_Y), noteWidth(s.Notes), NOTE_HEIGHT)
			advance += NOTE_SPACING
		}
		d.Steps = append(d.Steps, st)
		y += advance
	}

	// notes can push steps past the sized canvas
	bottom := y + LIFELINE_BOTTOM_MARGIN
	for _, st := range d.Steps {
		if st.NoteBox != nil {
			bottom = math.Max(bottom, st.NoteBox.Bottom()+LIFELINE_BOTTOM_MARGIN)
			d.Width = math.Max(d.Width, st.NoteBox.Right()+LIFELINE_BOTTOM_MARGIN)
		}
	}
	if bottom > d.Height {
		d.Height = bottom
		d.LifelineBottom = d.Height - LIFELINE_BOTTOM_MARGIN
	}
	return d
}

// LabelAnchor is the left edge of the label baseline for a step.
func (s *Step) LabelAnchor() *geo.Point {
	if s.Loop != nil {
		return geo.NewPoint(s.From.X+SELF_LOOP_WIDTH+SELF_LOOP_LABEL_OFFSET, s.Y)
	}
	return geo.NewPoint((s.From.X+s.To.X)/2, s.Y-SELF_LOOP_LABEL_OFFSET)
}
