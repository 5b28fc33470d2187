package validator

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidUUID validates the canonical 36-character UUID form.
func ValidUUID[S ~string]() Validation[S] {
	return Check(KindFormat, "must be a valid UUID", func(v S) bool {
		_, ok := parseUUID(string(v))
		return ok
	}, nil)
}

// NonNilUUID fails for uuid.Nil.
func NonNilUUID() Validation[uuid.UUID] {
	return Check(KindRequired, "UUID cannot be nil", func(v uuid.UUID) bool {
		return v != uuid.Nil
	}, nil)
}

func UUIDVersion(version int) Validation[uuid.UUID] {
	return Check(KindFormat, fmt.Sprintf("must be a UUID version %d", version), func(v uuid.UUID) bool {
		return v.Version() == uuid.Version(version)
	}, map[string]any{"version": version})
}

// parseUUID rejects anything but the hyphenated form before parsing, since
// uuid.Parse also accepts braced and URN forms.
func parseUUID(value string) (uuid.UUID, bool) {
	if len(value) != 36 || value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
