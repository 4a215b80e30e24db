package game

import (
	"errors"
	"fmt"
)

// ErrConfig indicates a game could not be constructed from its inputs.
var ErrConfig = errors.New("invalid game configuration")

// ErrContractViolation indicates a decision-maker returned a value outside
// the constraints of the operation it was asked to perform.
var ErrContractViolation = errors.New("decision contract violation")

// ErrDeckExhausted indicates a draw could not be satisfied even after
// folding the discard pile back into the draw pile.
var ErrDeckExhausted = errors.New("deck exhausted")

// ContractError describes a single out-of-contract decision.
type ContractError struct {
	Player    string
	Operation string
	Detail    string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s returned by %s: %s", ErrContractViolation, e.Operation, e.Player, e.Detail)
}

// Unwrap lets errors.Is match ErrContractViolation.
func (e *ContractError) Unwrap() error {
	return ErrContractViolation
}

func violation(player, operation, format string, args ...any) error {
	return &ContractError{
		Player:    player,
		Operation: operation,
		Detail:    fmt.Sprintf(format, args...),
	}
}
