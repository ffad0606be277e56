// Package debugging provides diagnostics helpers for the container
// packages in this module.
package debugging

import (
	"github.com/Invicton-Labs/go-stackerr"

	"github.com/Invicton-Labs/go-deque/log"
)

// Validatable is a container that can check its own structural invariants.
type Validatable interface {
	Validate() stackerr.Error
}

// CheckInvariants validates the container and logs any violation through
// the default logger. It returns the validation error, if any.
func CheckInvariants(container Validatable) stackerr.Error {
	return CheckInvariantsWithLogger(log.Default(), container)
}

// CheckInvariantsWithLogger validates the container and logs any
// violation through the given logger. It returns the validation error,
// if any.
func CheckInvariantsWithLogger(logger log.Logger, container Validatable) stackerr.Error {
	err := container.Validate()
	if err != nil {
		logger.Error(err)
	}
	return err
}
