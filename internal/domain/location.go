package domain

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const MaxLocationNameLength = 30

var locationNamePattern = regexp.MustCompile(`^[A-Za-z0-9 _-]+$`)

type LocationEntry struct {
	Name     string
	Accounts []*AccountState
}

// ValidateLocationName enforces the naming rules checked before a name reaches
// the model: ASCII letters, digits, space, dash and underscore, at most 30
// characters.
func ValidateLocationName(name string) error {
	err := validation.Validate(name,
		validation.Required,
		validation.Length(1, MaxLocationNameLength),
		validation.Match(locationNamePattern).Error("must contain only letters, digits, spaces, dashes or underscores"),
	)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidLocationName, name, err)
	}

	return nil
}
