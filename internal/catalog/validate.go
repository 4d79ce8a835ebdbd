package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a course pack for structural problems: missing
// required fields, duplicate IDs, and item payloads that do not match
// their declared kind.
func Validate(c *Course) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("course %s: %w", c.ID, err)
	}

	moduleIDs := make(map[string]bool, len(c.Modules))
	itemIDs := make(map[string]string)

	for i := range c.Modules {
		m := &c.Modules[i]
		if moduleIDs[m.ID] {
			return fmt.Errorf("course %s: duplicate module ID %q", c.ID, m.ID)
		}
		moduleIDs[m.ID] = true

		for j := range m.Items {
			it := &m.Items[j]
			if prev, ok := itemIDs[it.ID]; ok {
				return fmt.Errorf("course %s: item ID %q appears in modules %q and %q", c.ID, it.ID, prev, m.ID)
			}
			itemIDs[it.ID] = m.ID

			if err := it.validatePayload(); err != nil {
				return fmt.Errorf("course %s, module %s: %w", c.ID, m.ID, err)
			}
		}
	}
	return nil
}
