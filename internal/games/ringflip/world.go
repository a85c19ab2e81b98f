package ringflip

import (
	"math"

	"github.com/vovakirdan/ringflip/internal/core"
	"github.com/vovakirdan/ringflip/internal/games/ringflip/ring"
)

// resolveContacts turns the player's movement from prev to cur into rim and
// center events for every collidable ring.
func (g *Game) resolveContacts(prev, cur core.Vec2) {
	hw := g.cfg.Rings.HalfWidth
	rimR := g.cfg.Rings.RimRadius
	touch := g.cfg.World.PlayerRadius + rimR

	for _, r := range g.engine.Rings() {
		if !r.Collidable() {
			continue
		}

		for _, side := range []ring.Side{ring.Left, ring.Right} {
			if !r.RimTouched(side) && cur.Sub(r.Rim(side, hw)).Len() < touch {
				g.engine.OnRimTouched(r.Index(), side)
			}
		}

		_, before := r.Local(prev)
		along, after := r.Local(cur)
		if !crossed(before, after) || math.Abs(along) >= hw-rimR {
			continue
		}
		g.judged(g.engine.OnCenterCrossed(r.Index()))
	}
}

// crossed reports whether the signed distance to the hoop line changed sign.
func crossed(before, after float64) bool {
	return (before > 0 && after <= 0) || (before < 0 && after >= 0)
}

func (g *Game) judged(j ring.Judgement) {
	switch j.Verdict {
	case ring.Perfect:
		g.emit(core.EventPerfectPass)
	case ring.Clean:
		g.emit(core.EventRingPassed)
	default:
		return
	}
	if j.Type == ring.GravityFlip {
		g.emit(core.EventGravityFlipped)
	}
}

// checkBounds ends the run when the player comes into contact with the
// floor or ceiling. Only the start of a contact counts; while the session
// absorbs it the player rests on the boundary until flying off again.
func (g *Game) checkBounds() {
	w := g.cfg.World
	lo := w.Floor + w.PlayerRadius
	hi := w.Ceiling - w.PlayerRadius
	y := g.player.Position().Y
	if y > lo && y < hi {
		g.onBoundary = false
		return
	}

	g.player.ClampY(lo, hi)
	if g.onBoundary {
		return
	}
	g.onBoundary = true

	outcome := g.session.SetGameOver()
	g.logger.Debug("boundary contact", "y", y, "outcome", outcome)
}
