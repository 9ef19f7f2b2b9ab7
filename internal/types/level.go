package types

// ExperienceLevel is a closed set of seniority bands.
type ExperienceLevel string

// The eight seniority bands in ascending order. The level estimator only
// ever produces the first five; Director, VP and C-Level exist in the
// profession vocabulary but are not reachable from summed experience years.
const (
	LevelJunior   ExperienceLevel = "Junior"
	LevelMid      ExperienceLevel = "Mid-Level"
	LevelSenior   ExperienceLevel = "Senior"
	LevelLead     ExperienceLevel = "Lead"
	LevelManager  ExperienceLevel = "Manager"
	LevelDirector ExperienceLevel = "Director"
	LevelVP       ExperienceLevel = "VP"
	LevelCLevel   ExperienceLevel = "C-Level"
)

// AllLevels lists every band in ascending seniority order.
var AllLevels = []ExperienceLevel{
	LevelJunior, LevelMid, LevelSenior, LevelLead,
	LevelManager, LevelDirector, LevelVP, LevelCLevel,
}

// Valid reports whether l is one of the defined bands.
func (l ExperienceLevel) Valid() bool {
	for _, level := range AllLevels {
		if l == level {
			return true
		}
	}
	return false
}

func (l ExperienceLevel) String() string {
	return string(l)
}
