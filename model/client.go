package model

// Contact is a named contact at a client organisation
type Contact struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	IsPrimary bool   `json:"isPrimary"`
}

// Client represents a client organisation and its workspace profile.
// Clients are immutable after intake except for the phase batch that
// belongs to them.
type Client struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Industry       string    `json:"industry"`
	Size           string    `json:"size"`
	Contacts       []Contact `json:"contacts"`
	StrategicGoals []string  `json:"strategicGoals"`
	CreatedAt      string    `json:"createdAt"` // ISO date, no time component
}

// PrimaryContact returns the first contact flagged primary, or the first
// contact when none is flagged. Multiple primary flags are tolerated; the
// intake path only ever sets one.
func (c *Client) PrimaryContact() *Contact {
	for i := range c.Contacts {
		if c.Contacts[i].IsPrimary {
			return &c.Contacts[i]
		}
	}
	if len(c.Contacts) > 0 {
		return &c.Contacts[0]
	}
	return nil
}
