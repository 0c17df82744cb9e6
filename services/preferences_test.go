package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePreferences(t *testing.T) {
	fallback := PreferencePair{SourceLanguageID: 1, TargetLanguageID: 1}

	tests := []struct {
		name     string
		override PreferencePair
		stored   PreferencePair
		expected PreferencePair
	}{
		{
			name:     "nothing supplied falls back to defaults",
			expected: PreferencePair{SourceLanguageID: 1, TargetLanguageID: 1},
		},
		{
			name:     "stored preferences beat defaults",
			stored:   PreferencePair{SourceLanguageID: 2, TargetLanguageID: 3},
			expected: PreferencePair{SourceLanguageID: 2, TargetLanguageID: 3},
		},
		{
			name:     "overrides beat stored",
			override: PreferencePair{SourceLanguageID: 4, TargetLanguageID: 5},
			stored:   PreferencePair{SourceLanguageID: 2, TargetLanguageID: 3},
			expected: PreferencePair{SourceLanguageID: 4, TargetLanguageID: 5},
		},
		{
			name:     "each side resolves independently",
			override: PreferencePair{SourceLanguageID: 4},
			stored:   PreferencePair{TargetLanguageID: 3},
			expected: PreferencePair{SourceLanguageID: 4, TargetLanguageID: 3},
		},
		{
			name:     "partial stored mixes with defaults",
			stored:   PreferencePair{SourceLanguageID: 2},
			expected: PreferencePair{SourceLanguageID: 2, TargetLanguageID: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := ResolvePreferences(tt.override, tt.stored, fallback)
			assert.Equal(t, tt.expected, resolved)
			assert.True(t, resolved.IsComplete())
		})
	}
}
