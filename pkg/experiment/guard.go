package experiment

import (
	"context"
	"fmt"

	"github.com/boristopalov/bandits/pkg/core"
)

// Guard enforces the Agent contract on behalf of the trial runner: every
// selection must be in range and must be followed by exactly one Update for
// the same arm before the next selection.
type Guard struct {
	agent   core.Agent
	nArms   int
	pending bool
	last    int
}

func NewGuard(a core.Agent, nArms int) *Guard {
	return &Guard{agent: a, nArms: nArms}
}

func (g *Guard) SelectArm(ctx context.Context) (int, error) {
	if g.pending {
		return 0, fmt.Errorf("%w: arm %d selected twice without an update", core.ErrContractViolation, g.last)
	}
	arm, err := g.agent.SelectArm(ctx)
	if err != nil {
		return 0, err
	}
	if arm < 0 || arm >= g.nArms {
		return 0, fmt.Errorf("%w: agent selected arm %d, want [0, %d)", core.ErrIndexOutOfRange, arm, g.nArms)
	}
	g.pending = true
	g.last = arm
	return arm, nil
}

func (g *Guard) Update(arm int, reward float64, info core.StepInfo) error {
	if !g.pending {
		return fmt.Errorf("%w: update for arm %d without a prior selection", core.ErrContractViolation, arm)
	}
	if arm != g.last {
		return fmt.Errorf("%w: update for arm %d but arm %d was selected", core.ErrContractViolation, arm, g.last)
	}
	g.pending = false
	g.agent.Update(arm, reward, info)
	return nil
}
