package types

import (
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// DraftVendorPrefix marks vendors created during a session rather than
// loaded from the seed dataset. Only such vendors may be deleted.
const DraftVendorPrefix = "new-"

// VendorID is the stable identifier of a vendor record
type VendorID string

// NewDraftVendorID returns a time-ordered identifier for a vendor added in
// the current session.
func NewDraftVendorID() VendorID {
	return VendorID(DraftVendorPrefix + uuid.Must(uuid.NewV7()).String())
}

// Validate checks if the VendorID is valid
func (v VendorID) Validate() error {
	if v == "" {
		return goerr.New("vendor ID cannot be empty")
	}
	if strings.TrimSpace(string(v)) != string(v) {
		return goerr.New("vendor ID must not have surrounding spaces", goerr.V("id", v))
	}
	return nil
}

// IsDraft reports whether the vendor was created in the current session
func (v VendorID) IsDraft() bool {
	return strings.HasPrefix(string(v), DraftVendorPrefix)
}

// String returns the string representation of VendorID
func (v VendorID) String() string {
	return string(v)
}
