package component

import "fmt"

// HazardType identifies the cause of damage or death
type HazardType uint8

const (
	HazardNone HazardType = iota
	HazardStarImpact
	HazardStarHeat
	HazardStationCollision
)

func (h HazardType) String() string {
	switch h {
	case HazardStarImpact:
		return "star_impact"
	case HazardStarHeat:
		return "star_heat"
	case HazardStationCollision:
		return "station_collision"
	default:
		return "none"
	}
}

// HazardEvent records the most recent damage cause
type HazardEvent struct {
	Type       HazardType
	SourceName string
}

// Reason renders the player-facing death message
func (e HazardEvent) Reason() string {
	switch e.Type {
	case HazardStarImpact:
		return fmt.Sprintf("Flew into %s", e.SourceName)
	case HazardStarHeat:
		return fmt.Sprintf("Burned up near %s", e.SourceName)
	case HazardStationCollision:
		return fmt.Sprintf("Collided with %s", e.SourceName)
	default:
		return "Hull failure"
	}
}
