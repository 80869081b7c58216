package domain

import (
	"time"

	"gorm.io/datatypes"
)

// MaxTeamSize is the number of characters a party can field
const MaxTeamSize = 4

type Team struct {
	ID           string                      `json:"id" gorm:"primaryKey"`
	Name         string                      `json:"name" gorm:"not null"`
	CharacterIDs datatypes.JSONSlice[string] `json:"characterIds" gorm:"type:jsonb;not null"` // not checked against the catalog
	Description  string                      `json:"description"`
	Synergies    datatypes.JSONSlice[string] `json:"synergies" gorm:"type:jsonb;not null"`
	CreatedAt    time.Time                   `json:"-" gorm:"index"`
}
