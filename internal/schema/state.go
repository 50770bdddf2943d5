package schema

import "github.com/boddenberg/zapay-go/internal/domain"

// StateKeysDTO flags which lookup keys a state's debt search accepts.
type StateKeysDTO struct {
	Plate   bool `json:"plate"`
	Renavam bool `json:"renavam"`
}

// StateDTO describes one federative unit and its service coverage.
type StateDTO struct {
	Abbreviation string       `json:"abbreviation"`
	FullName     string       `json:"fullName"`
	IsAvailable  bool         `json:"isAvailable"`
	Keys         StateKeysDTO `json:"keys"`
}

// SerializeStateRecord maps a registry entry to its DTO.
func SerializeStateRecord(s domain.State) StateDTO {
	return StateDTO{
		Abbreviation: s.Abbreviation,
		FullName:     s.FullName,
		IsAvailable:  s.Available,
		Keys: StateKeysDTO{
			Plate:   s.Keys.Plate,
			Renavam: s.Keys.Renavam,
		},
	}
}
