package service

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/zkontract/zkbounty/internal/domain"
	"github.com/zkontract/zkbounty/internal/infrastructure/aleo"
)

const (
	TransferPublicFunction  = "transfer_public"
	TransferPrivateFunction = "transfer_private"
)

// FeeTable maps a function name to its fee in credits, written as a decimal
// string so conversion to microcredits is exact.
type FeeTable map[string]string

// DefaultFees were measured on the Leo playground.
var DefaultFees = FeeTable{
	TransferPublicFunction:  "0.04406",
	TransferPrivateFunction: "0.04406",
}

// FeeFor returns the fee of functionName in microcredits
func (t FeeTable) FeeFor(functionName string) (uint64, error) {
	credits, ok := t[functionName]
	if !ok {
		return 0, errors.Wrap(domain.ErrUnknownFunction, functionName)
	}

	fee, err := creditsToMicro(credits)
	if err != nil {
		return 0, errors.Wrapf(err, "fee for %s", functionName)
	}

	return fee, nil
}

// FeeFor looks functionName up in DefaultFees
func FeeFor(functionName string) (uint64, error) {
	return DefaultFees.FeeFor(functionName)
}

func creditsToMicro(credits string) (uint64, error) {
	whole, frac, _ := strings.Cut(credits, ".")
	if len(frac) > 6 {
		return 0, errors.Errorf("fee %q has more than 6 decimals", credits)
	}
	frac += strings.Repeat("0", 6-len(frac))

	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing fee %q", credits)
	}
	f, err := strconv.ParseUint(frac, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing fee %q", credits)
	}

	return w*aleo.MicrocreditsPerCredit + f, nil
}
