package client

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingParameter ...
	ErrMissingParameter = errors.New("missing parameter")
	// ErrMissingPath is returned by seed-scanning operations called
	// without a wallet chain path. Checked before any network activity.
	ErrMissingPath = fmt.Errorf("%w: BIP32 path", ErrMissingParameter)
	// ErrMissingIndexationKey ...
	ErrMissingIndexationKey = fmt.Errorf("%w: indexation key", ErrMissingParameter)
	// ErrInvalidRange ...
	ErrInvalidRange = errors.New("address range end must be greater than start")
	// ErrTransaction signals a violated message construction invariant,
	// like a null network id or degenerate parents.
	ErrTransaction = errors.New("message construction failed")
	// ErrMissingPayload is returned when trying to reattach a message that
	// carries no payload.
	ErrMissingPayload = errors.New("message carries no payload to reattach")
	// ErrNoNeedPromoteOrReattach is returned by Retry when the node
	// reports the message needs neither promotion nor reattachment. The
	// caller should not retry again without new information.
	ErrNoNeedPromoteOrReattach = errors.New(
		"message needs neither promotion nor reattachment",
	)
)
