package kernel

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/pkg/errs"
)

// ErrOrderNumberIsNotConstructed indicates an OrderNumber that bypassed its constructors.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via NewOrderNumber or OrderNumberFromString")

const orderNumberPrefix = "ORD"

// OrderNumber is a globally unique, human-displayable order token.
// The format is "ORD-<unix-millis>-<random-hex>"; uniqueness is the only hard
// requirement, the timestamp component merely makes tokens roughly sortable
// and easy to eyeball in support tooling.
type OrderNumber struct {
	value string
}

// NewOrderNumber generates a fresh order number from the current time and
// a random suffix.
func NewOrderNumber() OrderNumber {
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	return OrderNumber{
		value: fmt.Sprintf("%s-%d-%s", orderNumberPrefix, time.Now().UnixMilli(), hex.EncodeToString(suffix)),
	}
}

// OrderNumberFromString reconstructs an order number from persistence.
// Returns an error for empty values or values lacking the expected prefix.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if s == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("order number")
	}
	if !strings.HasPrefix(s, orderNumberPrefix+"-") {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"order number",
			fmt.Errorf("%q lacks the %q prefix", s, orderNumberPrefix),
		)
	}
	return OrderNumber{value: s}, nil
}

// Validate checks that the order number was created through a constructor.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}

// String returns the displayable token.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}
