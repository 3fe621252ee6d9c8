package layrcompose

import (
	"context"
	"fmt"

	"cdr.dev/slog"

	"github.com/layr-arb/layr/layrgraph"
	"github.com/layr-arb/layr/layrlayouts/layrsequence"
	"github.com/layr-arb/layr/layrrenderers/layrroute"
	"github.com/layr-arb/layr/layrtarget"
	"github.com/layr-arb/layr/layrthemes"
	"github.com/layr-arb/layr/lib/geo"
	"github.com/layr-arb/layr/lib/log"
	"github.com/layr-arb/layr/lib/shape"
)

const DEFAULT_SEQUENCE_TITLE = "Sequence Diagram"

func (c *Composer) Sequence(ctx context.Context, steps []layrgraph.SequenceStep, title string) (res *layrtarget.Result) {
	if title == "" {
		title = DEFAULT_SEQUENCE_TITLE
	}
	ctx = log.Fields(ctx, slog.F("diagram", "sequence"))
	defer recoverResult(ctx, "sequence", &res)
	log.Debug(ctx, "composing sequence diagram", slog.F("steps", len(steps)))

	d := layrsequence.Layout(steps)

	return c.paint(ctx, "sequence", title, d.Width, d.Height, func(r *render) error {
		for _, i := range d.Skipped {
			r.diags.Addf(layrtarget.EmptyStep, fmt.Sprintf("step %d", i), "step %q has no sender or receiver", steps[i].Action)
		}

		lineStyle := r.lineStyle()
		for _, a := range d.Actors {
			s := shape.NewRectangle(a.Box)
			s.Draw(r.canvas, r.shapeStyle(layrthemes.RoleComponent))
			r.textCentered(a.Box.Center(), a.Name, r.labelFace, r.textOn(layrthemes.RoleComponent))
			r.canvas.DashedLine(
				geo.NewPoint(a.X, d.LifelineTop),
				geo.NewPoint(a.X, d.LifelineBottom),
				layrsequence.LIFELINE_DASH,
				layrsequence.LIFELINE_GAP,
				lineStyle.Stroke,
				1,
			)
		}

		for _, st := range d.Steps {
			anchor := st.LabelAnchor()
			if st.Loop != nil {
				layrroute.SelfLoop(r.canvas, st.Loop, lineStyle)
				r.text(geo.NewPoint(anchor.X, anchor.Y-textHalfHeight(r)), st.Action, r.smallFace, r.color(layrthemes.RoleText))
			} else {
				layrroute.Arrow(r.canvas, geo.NewPoint(st.From.X, st.Y), geo.NewPoint(st.To.X, st.Y), lineStyle)
				r.textCentered(anchor, st.Action, r.smallFace, r.color(layrthemes.RoleText))
			}
			if st.NoteBox != nil {
				note := shape.NewNote(st.NoteBox)
				note.Draw(r.canvas, r.shapeStyle(layrthemes.RoleExternal))
				r.textCentered(note.GetInnerBox().Center(), st.Notes, r.smallFace, r.textOn(layrthemes.RoleExternal))
			}
			r.connectors++
		}
		return nil
	})
}

func textHalfHeight(r *render) float64 {
	m := r.smallFace.Metrics()
	return float64(m.Ascent+m.Descent) / 64 / 2
}
