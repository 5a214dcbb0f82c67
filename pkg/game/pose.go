package game

// Pose selects which bird sprite is drawn
type Pose int

const (
	PoseLevel Pose = iota
	PoseRising
	PoseDescending
	PoseDiving
)

func (p Pose) String() string {
	switch p {
	case PoseRising:
		return "rising"
	case PoseDescending:
		return "descending"
	case PoseDiving:
		return "diving"
	default:
		return "level"
	}
}

// Pose derives the sprite from the pending impulse and how far the bird has
// dropped below its last flap.
func (b BirdState) Pose(diveDepth float64) Pose {
	if b.FlapImpulse > 0 {
		return PoseRising
	}
	drop := b.FallPoint - b.Y
	switch {
	case drop < diveDepth:
		return PoseLevel
	case drop < 2*diveDepth:
		return PoseDescending
	default:
		return PoseDiving
	}
}
