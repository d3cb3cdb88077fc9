package sim

// HitTest reports whether an entity overlaps the player.
type HitTest func(e Entity, p Player) bool

// CircleHit treats both hitboxes as circles inscribed in their widths and
// reports a hit when the centers are closer than the sum of the radii.
func CircleHit(e Entity, p Player) bool {
	return e.Circle().Overlaps(p.Circle())
}

// BoxHit reports a hit when the rectangular hitboxes intersect.
func BoxHit(e Entity, p Player) bool {
	return e.Box().Overlaps(p.Box())
}

// Outcome is the effect of an entity overlapping the player.
type Outcome int

const (
	// OutcomeCaught removes the entity and counts a catch; the round goes on.
	OutcomeCaught Outcome = iota
	// OutcomeRoundOver counts a death and ends the round.
	OutcomeRoundOver
)

// Scoring selects which event adds a point to the score keeper.
type Scoring int

const (
	ScoreDodges Scoring = iota
	ScoreCatches
)

// Resolver applies the out-of-bounds and overlap rules to every entity.
type Resolver struct {
	Hit     HitTest
	OnHit   Outcome
	Scoring Scoring
}

// Report summarizes one frame.
type Report struct {
	Spawned int
	Dodged  int
	Caught  int

	// Hit is set when a round-ending overlap happened this frame.
	// FinalScore is the score the round reached before it was reset.
	Hit        bool
	FinalScore int
}

// Resolve runs one removal pass over c. For each entity in slot order the
// out-of-bounds rule is checked first; an entity that left the world is
// removed as a dodge and never tested for overlap. At most one round-ending
// hit is reported per pass; the caller owns the round reset.
func (r Resolver) Resolve(c *Collection, p *Player, score *ScoreKeeper, l Listener) Report {
	var rep Report

	c.Begin()
	defer c.End()

	for i := 0; i < c.Len(); i++ {
		e := *c.At(i)

		if e.OutOfBounds() {
			c.RemoveAt(i)
			rep.Dodged++
			if r.Scoring == ScoreDodges {
				score.Add(1)
			}
			l.Dodged(e)
			continue
		}

		if rep.Hit || r.Hit == nil || !r.Hit(e, *p) {
			continue
		}

		switch r.OnHit {
		case OutcomeRoundOver:
			p.Deaths++
			rep.Hit = true
			l.Hit(e)
		default:
			c.RemoveAt(i)
			p.Caught++
			rep.Caught++
			if r.Scoring == ScoreCatches {
				score.Add(1)
			}
			l.Caught(e)
		}
	}

	return rep
}
