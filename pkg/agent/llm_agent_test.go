package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boristopalov/bandits/pkg/core"
)

// MockLLMClient implements providers.Client for testing
type MockLLMClient struct {
	response string
	err      error
	prompts  []string
}

func (m *MockLLMClient) Complete(ctx context.Context, model string, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.response, m.err
}

func TestNewLLMAgent(t *testing.T) {
	t.Run("requires a client", func(t *testing.T) {
		_, err := NewLLMAgent(3, 1)
		assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
	})

	t.Run("generates an id", func(t *testing.T) {
		a, err := NewLLMAgent(3, 1, WithClient(&MockLLMClient{}))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(a.GetID(), "agent-"))
		assert.Equal(t, "gpt-4o-mini", a.GetModel().Id)
	})

	t.Run("keeps explicit settings", func(t *testing.T) {
		a, err := NewLLMAgent(3, 1,
			WithClient(&MockLLMClient{}),
			WithAgentId("test-agent"),
			WithModel(ModelInfo{Id: "mock-model"}),
		)
		require.NoError(t, err)
		assert.Equal(t, "test-agent", a.GetID())
		assert.Equal(t, "mock-model", a.GetModel().Id)
	})
}

func TestLLMAgentSelectArm(t *testing.T) {
	ctx := context.Background()
	client := &MockLLMClient{response: "Arm 2 looks promising.\nANSWER: 2"}
	a, err := NewLLMAgent(4, 1, WithClient(client), WithModel(ModelInfo{Id: "mock-model"}))
	require.NoError(t, err)

	arm, err := a.SelectArm(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, arm)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "4-armed bandit")
	assert.Contains(t, client.prompts[0], "arm 3: pulled 0 times")
	assert.Contains(t, client.prompts[0], "none yet")

	a.Update(arm, 1.25, core.StepInfo{Step: 1})
	_, err = a.SelectArm(ctx)
	require.NoError(t, err)
	assert.Contains(t, client.prompts[1], "arm 2: pulled 1 times, average reward 1.250")
	assert.Contains(t, client.prompts[1], "step 1: arm 2 paid 1.250")
}

func TestLLMAgentConsultEvery(t *testing.T) {
	ctx := context.Background()
	client := &MockLLMClient{response: "ANSWER: 1"}
	a, err := NewLLMAgent(3, 1, WithClient(client), WithConsultEvery(3))
	require.NoError(t, err)

	for step := 1; step <= 7; step++ {
		arm, err := a.SelectArm(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, arm)
		a.Update(arm, 0, core.StepInfo{Step: step})
	}
	// steps 1, 4 and 7
	assert.Len(t, client.prompts, 3)
}

func TestLLMAgentFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("provider error", func(t *testing.T) {
		boom := errors.New("rate limited")
		a, err := NewLLMAgent(3, 1, WithClient(&MockLLMClient{err: boom}))
		require.NoError(t, err)
		_, err = a.SelectArm(ctx)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("missing answer", func(t *testing.T) {
		a, err := NewLLMAgent(3, 1, WithClient(&MockLLMClient{response: "I would pull the second arm"}))
		require.NoError(t, err)
		_, err = a.SelectArm(ctx)
		assert.ErrorIs(t, err, core.ErrContractViolation)
	})
}

func TestLLMAgentReset(t *testing.T) {
	a, err := NewLLMAgent(2, 1, WithClient(&MockLLMClient{response: "ANSWER: 0"}))
	require.NoError(t, err)
	a.Update(1, 2, core.StepInfo{Step: 1})
	require.Equal(t, 1, a.GetMemory().Len())

	a.Reset(1)
	assert.Equal(t, 0, a.GetMemory().Len())
	assert.Equal(t, []int{0, 0}, a.Counts())
	assert.Equal(t, []float64{0, 0}, a.Q())
}

func TestParseArmResponse(t *testing.T) {
	tests := []struct {
		response string
		want     int
		wantErr  bool
	}{
		{"ANSWER: 3", 3, false},
		{"thinking...\nANSWER:7", 7, false},
		{"ANSWER: -1", -1, false},
		{"answer is 2", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseArmResponse(tt.response)
		if tt.wantErr {
			assert.Error(t, err, tt.response)
			continue
		}
		require.NoError(t, err, tt.response)
		assert.Equal(t, tt.want, got)
	}
}
