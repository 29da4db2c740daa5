// pkg/db/models.go
package db

import (
	"time"

	"gorm.io/datatypes"
)

type Problem struct {
	ID              string    `gorm:"primaryKey;size:36"`
	Number          uint      `gorm:"not null;uniqueIndex"` // published catalog number
	Name            string    `gorm:"not null;uniqueIndex"`
	Category        string    `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null"`
	LastPracticedAt time.Time `gorm:"not null"`
	TimesPracticed  int       `gorm:"not null;default:0"`
}

type PracticeEvent struct {
	ID          uint           `gorm:"primaryKey"`
	ProblemID   string         `gorm:"size:36;not null;index"`
	PracticedAt time.Time      `gorm:"not null;index"`
	PracticedOn datatypes.Date `gorm:"not null"`
}
