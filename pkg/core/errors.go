package core

import "errors"

var (
	// ErrInvalidConfiguration reports a non-positive arm, episode or step count
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrIndexOutOfRange reports an arm index outside [0, n_arms)
	ErrIndexOutOfRange = errors.New("arm index out of range")
	// ErrContractViolation reports an agent that broke the Agent contract
	ErrContractViolation = errors.New("agent contract violation")
)
