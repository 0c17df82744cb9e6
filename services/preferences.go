package services

// PreferencePair is a concrete (source, target) language id pair.
type PreferencePair struct {
	SourceLanguageID uint
	TargetLanguageID uint
}

func (p PreferencePair) IsComplete() bool {
	return p.SourceLanguageID != 0 && p.TargetLanguageID != 0
}

// ResolvePreferences fills each language id independently: explicit override
// first, then whatever the visitor already stored, then the configured
// fallback. Pure function; id validity is the caller's concern.
func ResolvePreferences(override, stored, fallback PreferencePair) PreferencePair {
	resolved := PreferencePair{
		SourceLanguageID: firstNonZero(override.SourceLanguageID, stored.SourceLanguageID, fallback.SourceLanguageID),
		TargetLanguageID: firstNonZero(override.TargetLanguageID, stored.TargetLanguageID, fallback.TargetLanguageID),
	}
	return resolved
}

func firstNonZero(ids ...uint) uint {
	for _, id := range ids {
		if id != 0 {
			return id
		}
	}
	return 0
}
