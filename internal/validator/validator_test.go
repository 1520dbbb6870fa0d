package validator_test

import (
	"testing"

	"github.com/NeoVand/WhyBecause/internal/validator"
	"github.com/NeoVand/WhyBecause/pkg/domain"
	"github.com/NeoVand/WhyBecause/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFlow_Clean(t *testing.T) {
	flow := &domain.Flow{
		ID: "f",
		States: []domain.State{
			{ID: "a", Label: "A", Type: domain.StateTypeStart},
			{ID: "b", Label: "B"},
		},
		Transitions: []domain.Transition{
			{ID: "t1", Source: "a", Target: "b"},
		},
	}
	assert.NoError(t, validator.ValidateFlow(flow))
}

func TestValidateFlow_ReportsAllProblems(t *testing.T) {
	flow := &domain.Flow{
		ID: "f",
		States: []domain.State{
			{ID: "a", Label: "A", Type: domain.StateTypeStart},
			{ID: "a", Label: "A again"},
			{ID: "island", Label: "Island"},
		},
		Transitions: []domain.Transition{
			{ID: "t1", Source: "a", Target: "ghost"},
			{ID: "t1", Source: "ghost", Target: "a"},
		},
	}

	err := validator.ValidateFlow(flow)
	require.Error(t, err)

	require.NotNil(t, schema.ValidationErrors(err))

	joined := validator.Summarize(err)
	assert.Contains(t, joined, "duplicate state id")
	assert.Contains(t, joined, "duplicate transition id")
	assert.Contains(t, joined, "target references missing state")
	assert.Contains(t, joined, "source references missing state")
	assert.Contains(t, joined, "unreachable")
}

func TestValidateFlow_SelfLoopIsLegal(t *testing.T) {
	flow := &domain.Flow{
		ID: "f",
		States: []domain.State{
			{ID: "a", Label: "A", Type: domain.StateTypeStart},
		},
		Transitions: []domain.Transition{
			{ID: "loop", Source: "a", Target: "a"},
		},
	}
	assert.NoError(t, validator.ValidateFlow(flow))
}

func TestValidateFlow_NoStartFallsBackToNoInbound(t *testing.T) {
	flow := &domain.Flow{
		ID: "f",
		States: []domain.State{
			{ID: "a", Label: "A"},
			{ID: "b", Label: "B"},
		},
		Transitions: []domain.Transition{
			{ID: "t1", Source: "a", Target: "b"},
		},
	}
	assert.NoError(t, validator.ValidateFlow(flow))
}
