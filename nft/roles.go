package nft

import (
	"fmt"

	"github.com/gofrs/uuid"
)

// Roles are the three identities a ledger is deployed with. They may be equal.
type Roles struct {
	Owner          string
	MetadataSetter string
	FeeRecipient   string
}

func (r Roles) validate() error {
	for _, id := range []string{r.Owner, r.MetadataSetter, r.FeeRecipient} {
		err := ValidateIdentity(id)
		if err != nil {
			return err
		}
	}
	return nil
}

// ValidateIdentity accepts only non-nil Mixin user ids.
func ValidateIdentity(id string) error {
	uid, err := uuid.FromString(id)
	if err != nil || uid == uuid.Nil {
		return fmt.Errorf("%w %q", ErrInvalidIdentity, id)
	}
	return nil
}

func (r Roles) canSetMetadata(caller string) bool {
	return caller == r.MetadataSetter
}
