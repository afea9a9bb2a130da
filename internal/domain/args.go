package domain

import (
	"github.com/samber/lo"
	"github.com/trebuchet-org/update-addresses/internal/domain/models"
)

// ParseUpdateArgs splits a raw argument vector into the chain id and the
// name/address pairs that follow it, in argument order.
func ParseUpdateArgs(args []string) (string, []models.AddressPair, error) {
	if len(args) < 3 || len(args)%2 == 0 {
		return "", nil, InvalidArgumentsErr{Count: len(args)}
	}

	chainID := args[0]
	if chainID == "" {
		return "", nil, InvalidArgumentsErr{Count: len(args), Reason: "chain id must not be empty"}
	}

	pairs := lo.Map(lo.Chunk(args[1:], 2), func(chunk []string, _ int) models.AddressPair {
		return models.AddressPair{Name: chunk[0], Address: chunk[1]}
	})

	return chainID, pairs, nil
}
