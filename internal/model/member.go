package model

import (
	"bytes"
	"strconv"
)

// Member is one chamber business as listed in members.json.
type Member struct {
	Name            string `json:"name"`
	Tagline         string `json:"tagline"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Website         string `json:"website"`
	Image           string `json:"image"`
	MembershipLevel Rank   `json:"membershipLevel"`
}

// Rank is a membership rank. It decodes leniently: an integer or an
// integer string keeps its value, anything else reads as 0 so one odd record
// never fails the whole list.
type Rank int

// UnmarshalJSON implements json.Unmarshaler. It never returns an error.
func (r *Rank) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(b), `"`))
	n, err := strconv.Atoi(s)
	if err != nil {
		n = 0
	}
	*r = Rank(n)
	return nil
}
