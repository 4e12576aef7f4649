package conference

import "fmt"

// Conference is an optional grouping of teams.
type Conference struct {
	ID   string
	Name string
}

func (c Conference) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("conference id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("conference name is required")
	}

	return nil
}
