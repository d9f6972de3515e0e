package agent

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/boristopalov/bandits/pkg/core"
	"github.com/boristopalov/bandits/pkg/memory"
	"github.com/boristopalov/bandits/pkg/providers"
)

const (
	SYSTEM_PROMPT = `You are playing a %d-armed bandit. Each arm pays a noisy reward around a fixed but unknown mean. Your goal is to collect as much reward as possible over the whole episode, so balance trying arms you know little about against playing the arm that has paid best so far.`

	SELECTION_PROMPT_TEMPLATE = `%s

It is now step %d. Here is what you know about each arm:
%s
Your most recent pulls:
%s
Which arm do you pull next? Very briefly think step by step, then give your answer as an arm index between 0 and %d following the string "ANSWER" like so: ANSWER: 3`
)

var answerPattern = regexp.MustCompile(`ANSWER:\s*(-?\d+)`)

// LLMAgent asks a language model which arm to pull. The model is consulted
// every ConsultEvery steps; in between the agent repeats its last choice.
type LLMAgent struct {
	estimates
	id           string
	n            int
	model        ModelInfo
	client       providers.Client
	memory       *memory.Memory
	consultEvery int
	step         int
	last         int
}

func NewLLMAgent(nArms int, seed int64, opts ...Option) (*LLMAgent, error) {
	params := applyOptions(opts)
	if nArms <= 0 {
		return nil, fmt.Errorf("%w: n_arms must be positive, got %d", core.ErrInvalidConfiguration, nArms)
	}
	if params.Client == nil {
		return nil, fmt.Errorf("%w: llm agent needs a provider client", core.ErrInvalidConfiguration)
	}
	if params.ConsultEvery <= 0 {
		params.ConsultEvery = 1
	}
	if params.AgentID == "" {
		params.AgentID = "agent-" + uuid.New().String()
	}

	a := &LLMAgent{
		estimates:    newEstimates(nArms),
		id:           params.AgentID,
		n:            nArms,
		model:        params.Model,
		client:       params.Client,
		memory:       memory.NewMemory(params.HistorySize),
		consultEvery: params.ConsultEvery,
	}
	a.Reset(seed)
	return a, nil
}

func (a *LLMAgent) GetID() string {
	return a.id
}

func (a *LLMAgent) GetModel() ModelInfo {
	return a.model
}

func (a *LLMAgent) GetMemory() *memory.Memory {
	return a.memory
}

// Reset forgets every observation. The model itself is stateless between
// calls, so there is no stream to reseed.
func (a *LLMAgent) Reset(seed int64) {
	a.reset()
	a.memory.Reset()
	a.step = 0
	a.last = 0
}

func (a *LLMAgent) SelectArm(ctx context.Context) (int, error) {
	defer func() { a.step++ }()
	if a.step%a.consultEvery != 0 {
		return a.last, nil
	}

	prompt := a.buildPrompt()
	response, err := a.client.Complete(ctx, a.model.Id, prompt)
	if err != nil {
		return 0, fmt.Errorf("agent %s failed to generate response: %w", a.id, err)
	}

	arm, err := parseArmResponse(response)
	if err != nil {
		return 0, fmt.Errorf("agent %s: %w", a.id, err)
	}
	a.last = arm
	return arm, nil
}

func (a *LLMAgent) Update(arm int, reward float64, info core.StepInfo) {
	a.observe(arm, reward)
	a.memory.Store(memory.Observation{Step: info.Step, Arm: arm, Reward: reward})
}

func (a *LLMAgent) buildPrompt() string {
	var table strings.Builder
	for i := 0; i < a.n; i++ {
		fmt.Fprintf(&table, "arm %d: pulled %d times, average reward %.3f\n", i, a.counts[i], a.q[i])
	}

	var recent strings.Builder
	history := a.memory.All()
	if len(history) == 0 {
		recent.WriteString("none yet\n")
	}
	for _, obs := range history {
		recent.WriteString(obs.String())
		recent.WriteString("\n")
	}

	return fmt.Sprintf(SELECTION_PROMPT_TEMPLATE,
		fmt.Sprintf(SYSTEM_PROMPT, a.n),
		a.step+1,
		table.String(),
		recent.String(),
		a.n-1,
	)
}

// parseArmResponse extracts the arm index following "ANSWER:"
func parseArmResponse(response string) (int, error) {
	matches := answerPattern.FindStringSubmatch(response)
	if len(matches) < 2 {
		log.Printf("no answer in model response: %q", response)
		return 0, fmt.Errorf("%w: could not find answer in response", core.ErrContractViolation)
	}

	arm, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("%w: could not parse arm index: %v", core.ErrContractViolation, err)
	}
	return arm, nil
}
