package pricing

import (
	"errors"
	"fmt"
)

const MaxPartySize = 100

var (
	ErrInvalidPartySize  = fmt.Errorf("party size must be between 1 and %d", MaxPartySize)
	ErrInvalidAgeBracket = errors.New("invalid age bracket")
	ErrParticipantIndex  = errors.New("participant index out of range")
)

type AgeBracket string

const (
	BracketNone  AgeBracket = ""
	Bracket0to5  AgeBracket = "0-5"
	Bracket6to10 AgeBracket = "6-10"
)

func ParseAgeBracket(s string) (AgeBracket, error) {
	switch b := AgeBracket(s); b {
	case BracketNone, Bracket0to5, Bracket6to10:
		return b, nil
	default:
		return BracketNone, ErrInvalidAgeBracket
	}
}

func (b AgeBracket) String() string {
	return string(b)
}

func (b AgeBracket) IsChild() bool {
	return b == Bracket0to5 || b == Bracket6to10
}

type Participant struct {
	Name       string
	AgeBracket AgeBracket
}

// Participants is ordered; index 0 is the responsible adult.
// Mutators return a new sequence and never touch the receiver.
type Participants []Participant

func NewParticipants() Participants {
	return Participants{{}}
}

func ValidatePartySize(count int) error {
	if count < 1 || count > MaxPartySize {
		return ErrInvalidPartySize
	}
	return nil
}

// Resize keeps entries at retained indices, appends blanks or truncates from the end
func (ps Participants) Resize(count int) (Participants, error) {
	if err := ValidatePartySize(count); err != nil {
		return nil, err
	}
	out := make(Participants, count)
	copy(out, ps)
	return out.Normalize(), nil
}

func (ps Participants) WithName(index int, name string) (Participants, error) {
	if index < 0 || index >= len(ps) {
		return nil, ErrParticipantIndex
	}
	out := ps.clone()
	out[index].Name = name
	return out, nil
}

// ToggleBracket selects b for the participant, clearing the other bracket.
// Selecting the bracket already held clears it. The responsible participant
// keeps no bracket whatever is requested.
func (ps Participants) ToggleBracket(index int, b AgeBracket) (Participants, error) {
	if index < 0 || index >= len(ps) {
		return nil, ErrParticipantIndex
	}
	if !b.IsChild() {
		return nil, ErrInvalidAgeBracket
	}
	if index == 0 {
		return ps.Normalize().clone(), nil
	}

	out := ps.clone()
	if out[index].AgeBracket == b {
		out[index].AgeBracket = BracketNone
	} else {
		out[index].AgeBracket = b
	}
	return out, nil
}

// Normalize forces the responsible participant to hold no bracket
func (ps Participants) Normalize() Participants {
	if len(ps) > 0 && ps[0].AgeBracket != BracketNone {
		out := ps.clone()
		out[0].AgeBracket = BracketNone
		return out
	}
	return ps
}

func (ps Participants) CountBracket(b AgeBracket) int {
	n := 0
	for i, p := range ps {
		if i > 0 && p.AgeBracket == b {
			n++
		}
	}
	return n
}

func (ps Participants) clone() Participants {
	out := make(Participants, len(ps))
	copy(out, ps)
	return out
}
