package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// TaskStatus represents the possible statuses of a task.
type TaskStatus string

const (
	StatusBacklog    TaskStatus = "backlog"
	StatusToday      TaskStatus = "today" // user-pinned into the daily stack
	StatusInProgress TaskStatus = "in-progress"
	StatusPending    TaskStatus = "pending" // waiting on a future nextActionAt
	StatusDone       TaskStatus = "done"
	StatusArchived   TaskStatus = "archived"
)

// Domain is a top-level life area a task belongs to.
type Domain string

const (
	DomainLife Domain = "life"
	DomainWork Domain = "work"
)

// Task represents a unit of work.
type Task struct {
	ID              string     `json:"id" yaml:"id" toml:"id" validate:"required,uuid4"`
	Title           string     `json:"title" yaml:"title" toml:"title" validate:"required,min=1,max=255"`
	Description     string     `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Domain          Domain     `json:"domain" yaml:"domain" toml:"domain" validate:"required,oneof=life work"`
	CategoryID      string     `json:"categoryId,omitempty" yaml:"categoryId,omitempty" toml:"categoryId,omitempty" validate:"omitempty,uuid4"`
	Status          TaskStatus `json:"status" yaml:"status" toml:"status" validate:"required,oneof=backlog today in-progress pending done archived"`
	Priority        int        `json:"priority" yaml:"priority" toml:"priority" validate:"min=1,max=4"` // 1 = highest
	DueDate         *time.Time `json:"dueDate,omitempty" yaml:"dueDate,omitempty" toml:"dueDate,omitempty"`
	SoftDeadline    *time.Time `json:"softDeadline,omitempty" yaml:"softDeadline,omitempty" toml:"softDeadline,omitempty"`
	BlockedBy       []string   `json:"blockedBy,omitempty" yaml:"blockedBy,omitempty" toml:"blockedBy,omitempty" validate:"dive,uuid4"`
	EstimateMinutes *int       `json:"estimateMinutes,omitempty" yaml:"estimateMinutes,omitempty" toml:"estimateMinutes,omitempty" validate:"omitempty,min=0"`
	MoneyImpact     *float64   `json:"moneyImpact,omitempty" yaml:"moneyImpact,omitempty" toml:"moneyImpact,omitempty"`
	NextActionAt    *time.Time `json:"nextActionAt,omitempty" yaml:"nextActionAt,omitempty" toml:"nextActionAt,omitempty"` // only meaningful while pending
	ParentID        *string    `json:"parentId,omitempty" yaml:"parentId,omitempty" toml:"parentId,omitempty" validate:"omitempty,uuid4"`
	SubtaskIDs      []string   `json:"subtaskIds,omitempty" yaml:"subtaskIds,omitempty" toml:"subtaskIds,omitempty" validate:"dive,uuid4"`
	CreatedAt       time.Time  `json:"createdAt" yaml:"createdAt" toml:"createdAt" validate:"required"`
	UpdatedAt       time.Time  `json:"updatedAt" yaml:"updatedAt" toml:"updatedAt" validate:"required"`
	CompletedAt     *time.Time `json:"completedAt,omitempty" yaml:"completedAt,omitempty" toml:"completedAt,omitempty"`
}

// IsComplete reports whether the task is done or archived.
func (t Task) IsComplete() bool {
	return t.Status == StatusDone || t.Status == StatusArchived
}

// CategoryKind selects a fixed priority weight in the stack builder.
// The set is open; unknown kinds simply carry no weight.
type CategoryKind string

const (
	KindLegal       CategoryKind = "legal"
	KindMoney       CategoryKind = "money"
	KindMaintenance CategoryKind = "maintenance"
	KindCaregiver   CategoryKind = "caregiver"
)

// Category is a named grouping of tasks. Categories outlive the tasks
// that reference them.
type Category struct {
	ID     string       `json:"id" yaml:"id" toml:"id" validate:"required,uuid4"`
	Name   string       `json:"name" yaml:"name" toml:"name" validate:"required,min=1,max=100"`
	Domain Domain       `json:"domain" yaml:"domain" toml:"domain" validate:"required,oneof=life work"`
	Kind   CategoryKind `json:"kind" yaml:"kind" toml:"kind" validate:"required"`
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		validate = validator.New()
	}
	err := validate.Struct(s)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}

// NewTask creates a task with defaults applied. The caller supplies the id
// so stores remain free to choose their own id scheme.
func NewTask(id, title string, domain Domain) *Task {
	now := time.Now()
	return &Task{
		ID:         id,
		Title:      title,
		Domain:     domain,
		Status:     StatusBacklog,
		Priority:   3,
		BlockedBy:  []string{},
		SubtaskIDs: []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
