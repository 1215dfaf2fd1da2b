package model

import (
	"strings"
	"time"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Valid reports whether s is one of the accepted status values.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Valid reports whether p is one of the accepted priority values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

const (
	DefaultStatus   = StatusOpen
	DefaultPriority = PriorityMedium
)

// ValidTitle rejects empty and whitespace-only titles.
func ValidTitle(s string) bool {
	return strings.TrimSpace(s) != ""
}

type Task struct {
	TaskID      uint       `gorm:"primaryKey;autoIncrement"`
	UserID      int64      `gorm:"not null;index"`
	Title       string     `gorm:"not null"`
	Description string
	Status      Status     `gorm:"not null;default:'Open'"`
	Priority    Priority   `gorm:"not null;default:'Medium'"`
	DueDate     *time.Time
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (Task) TableName() string {
	return "tasks"
}

// TaskUpdate is the set of fields supplied in a partial update. A nil
// pointer leaves the stored value untouched; DueDate additionally
// distinguishes an explicit null, which clears the stored date.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *Status
	DueDate     OptionalDate
}

// Empty reports whether the update supplies no fields at all.
func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil && !u.DueDate.Set
}
