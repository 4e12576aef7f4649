package team

import "fmt"

// Team is a club competing in the season. Unowned teams (nil OwnerUserID)
// exist during setup until a user claims one or is randomly assigned.
type Team struct {
	ID           string
	OwnerUserID  *string
	Name         string
	Abbreviation string
	CaptainID    *string
	ConferenceID *string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.Abbreviation == "" {
		return fmt.Errorf("team abbreviation is required")
	}

	return nil
}
