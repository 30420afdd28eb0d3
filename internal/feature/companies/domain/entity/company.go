// Package entity defines the domain models for the companies feature.
package entity

// Company represents a discovered startup persisted in the system.
// Rows are written by the discovery pipeline and are never updated
// or deleted here.
type Company struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:255;not null;index"`
	Website  string `gorm:"size:255;not null"`
	TechArea string `gorm:"size:100;not null;index"`
}
