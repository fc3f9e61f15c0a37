package api

import "github.com/everettroeth/vitalis-sub000/internal/domain"

// checkPayload rejects an outbound body before any request is built, so an
// out-of-set enum value never reaches the wire.
func checkPayload(op string, body any) error {
	if err := domain.Validate(body); err != nil {
		return &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidPayload,
			Err:  err,
		}
	}
	return nil
}
