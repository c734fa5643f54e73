package scenes

import (
	"github.com/coreman2200/arcanim/internal/anim"
	"github.com/coreman2200/arcanim/internal/geom"
	"github.com/coreman2200/arcanim/internal/shape"
	"github.com/coreman2200/arcanim/internal/timeline"
)

var builtins = []Def{
	{Name: "morph", Summary: "square morphs into a circle", Build: morph},
	{Name: "reveal", Summary: "circle is drawn, held, then erased", Build: reveal},
	{Name: "typechange", Summary: "rect stretches, becomes an outline, then a circle", Build: typeChange},
	{Name: "fade", Summary: "two squares fade in and out out of step", Build: fade},
}

func mustRate(name string) timeline.Rate {
	r, ok := anim.RateByName(name)
	if !ok {
		panic("scenes: unknown rate " + name)
	}
	return r
}

func morph(sc *timeline.Scene) {
	sq := shape.New(shape.Square(geom.Pt(0, 0), 2)).WithFill(shape.Teal)
	ci := shape.New(shape.Circle(geom.Pt(0, 0), 1.2, 16)).WithFill(shape.Gold)

	_, tl := timeline.Insert(sc, "shape", sq)
	tl.Show().Forward(0.5)
	tl.Play(anim.Transform(sq, ci).WithDuration(2))
	tl.Forward(0.5)
}

func reveal(sc *timeline.Scene) {
	ci := shape.New(shape.Circle(geom.Pt(0, 0), 1.5, 24)).WithFill(shape.Coral)

	_, tl := timeline.Insert(sc, "circle", ci)
	tl.Play(anim.Create(ci).WithDuration(1.5).WithRate(mustRate("in_out_sine")))
	tl.Forward(1)
	tl.Play(anim.Uncreate(ci).WithDuration(1.5))
	tl.Hide()
}

func typeChange(sc *timeline.Scene) {
	r := shape.NewRect(geom.Pt(-1, 0), 1, 1)
	r.Fill = shape.Blue
	wide := r
	wide.Center, wide.W = geom.Pt(0, 0), 3

	id, rt := timeline.Insert(sc, "block", r)
	rt.Show().Play(anim.Lerp(r, wide).WithDuration(1.5))

	seq := sc.Sequence(id)
	vt := timeline.ChangeType(seq, func(r shape.Rect) shape.VItem { return r.VItem() })
	target := shape.New(shape.Circle(geom.Pt(0, 0), 1, 12)).WithFill(shape.Gold)
	vt.Forward(0.25)
	vt.Play(anim.Transform(vt.State(), target).WithDuration(1.5).WithRate(mustRate("out_cubic")))
	vt.Forward(0.5)
}

func fade(sc *timeline.Scene) {
	left := shape.New(shape.Square(geom.Pt(-1.5, 0), 1.5)).WithFill(shape.Teal)
	right := shape.New(shape.Square(geom.Pt(1.5, 0), 1.5)).WithFill(shape.Coral)

	_, lt := timeline.Insert(sc, "left", left)
	_, rt := timeline.Insert(sc, "right", right)

	lt.Play(anim.FadeIn(left))
	rt.Forward(0.5).Play(anim.FadeIn(right).WithDuration(1.5))
	sc.SyncAll()
	sc.ForwardAll(0.5)

	lt.Play(anim.FadeOut(left).WithPadding(0, 0.25))
	lt.Hide()
	rt.Play(anim.FadeOut(right).WithDuration(0.5))
	rt.Hide()
	sc.SyncAll()
}
