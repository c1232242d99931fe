package usecase

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"

	PreferenceInPerson = "in_person"
	PreferenceOnline   = "online"
	PreferenceBoth     = "both"

	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

func isValidLevel(v string) bool {
	switch v {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	}
	return false
}

func isValidPreference(v string) bool {
	switch v {
	case PreferenceInPerson, PreferenceOnline, PreferenceBoth:
		return true
	}
	return false
}

func isValidUrgency(v string) bool {
	switch v {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}
