package rubric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want bool
	}{
		{
			name: "Exact set in rubric order",
			keys: []string{"accuracy", "empathy_and_tone", "clarity", "actionability", "escalation_awareness"},
			want: true,
		},
		{
			name: "Exact set shuffled",
			keys: []string{"clarity", "escalation_awareness", "accuracy", "actionability", "empathy_and_tone"},
			want: true,
		},
		{
			name: "Missing one criterion",
			keys: []string{"accuracy", "empathy_and_tone", "clarity", "actionability"},
			want: false,
		},
		{
			name: "Extra criterion",
			keys: []string{"accuracy", "empathy_and_tone", "clarity", "actionability", "escalation_awareness", "speed"},
			want: false,
		},
		{
			name: "Right count, wrong key",
			keys: []string{"accuracy", "empathy_and_tone", "clarity", "actionability", "speed"},
			want: false,
		},
		{
			name: "Duplicate key padding the count",
			keys: []string{"accuracy", "accuracy", "clarity", "actionability", "escalation_awareness"},
			want: false,
		},
		{
			name: "Empty",
			keys: nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.keys))
		})
	}
}

func TestMissing(t *testing.T) {
	missing := Missing([]string{"accuracy", "clarity"})
	assert.Equal(t, []string{"empathy_and_tone", "actionability", "escalation_awareness"}, missing)

	assert.Nil(t, Missing(Criteria))
}

func TestExtras(t *testing.T) {
	extras := Extras([]string{"accuracy", "speed", "tone"})
	assert.Equal(t, []string{"speed", "tone"}, extras)

	assert.Nil(t, Extras(Criteria))
}

func TestBounds(t *testing.T) {
	assert.Equal(t, 5, MinOverall)
	assert.Equal(t, 25, MaxOverall)
	assert.Len(t, Criteria, 5)
}
