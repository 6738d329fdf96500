package audio

// Cue identifies a flight sound effect
type Cue int

const (
	CueHeat   Cue = iota // heat damage tick
	CueImpact            // collision or star impact
	CueDock              // docking started
	CueBoost             // boost engaged
	CueKlaxon            // death sequence started
	cueCount
)

var cueNames = [cueCount]string{"heat", "impact", "dock", "boost", "klaxon"}

func (c Cue) String() string {
	if c >= 0 && c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// cueVolumes balances cues against each other before the master gain
var cueVolumes = [cueCount]float64{
	CueHeat:   0.5,
	CueImpact: 0.9,
	CueDock:   0.6,
	CueBoost:  0.4,
	CueKlaxon: 0.7,
}
