package user

import (
	"time"
)

// DemographicType is a coarse user category used only to pick the
// assistant's phrasing, never the substance of its advice.
type DemographicType string

const (
	Student      DemographicType = "student"
	Professional DemographicType = "professional"
	Retiree      DemographicType = "retiree"
	Entrepreneur DemographicType = "entrepreneur"
)

type Tone string

const (
	ToneCasual       Tone = "casual"
	ToneProfessional Tone = "professional"
	ToneFormal       Tone = "formal"
	ToneFriendly     Tone = "friendly"
)

type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityDetailed Complexity = "detailed"
)

type Demographic struct {
	Type       DemographicType `json:"type"`
	Age        int             `json:"age,omitempty"`
	Location   string          `json:"location,omitempty"`
	Occupation string          `json:"occupation,omitempty"`
}

type Record struct {
	ID          string       `json:"id"`
	Email       string       `json:"email"`
	FullName    string       `json:"fullName"`
	Password    string       `json:"password,omitempty"`
	Demographic *Demographic `json:"demographic,omitempty"`
	Goals       []string     `json:"goals,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Tone returns the phrasing tone for the user's demographic type.
// Users without a demographic get the friendly default.
func (r *Record) Tone() Tone {
	if r.Demographic == nil {
		return ToneFriendly
	}
	switch r.Demographic.Type {
	case Student:
		return ToneCasual
	case Professional:
		return ToneProfessional
	case Retiree:
		return ToneFormal
	case Entrepreneur:
		return ToneProfessional
	}
	return ToneFriendly
}

func (r *Record) Complexity() Complexity {
	if r.Demographic == nil {
		return ComplexityModerate
	}
	switch r.Demographic.Type {
	case Student:
		return ComplexitySimple
	case Retiree:
		return ComplexitySimple
	case Professional:
		return ComplexityModerate
	case Entrepreneur:
		return ComplexityDetailed
	}
	return ComplexityModerate
}
