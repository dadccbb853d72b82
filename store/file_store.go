package store

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/daystacklabs/daystack/internal/stack"
	"github.com/daystacklabs/daystack/models"
	"github.com/daystacklabs/daystack/types"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
	yaml "gopkg.in/yaml.v3"
)

const (
	defaultDataFile   = "daystack.json"
	dataFileKey       = "dataFile"
	dataFileFormatKey = "dataFileFormat"
	defaultDataFormat = "json"
	formatJSON        = "json"
	formatYAML        = "yaml"
	formatTOML        = "toml"
	checksumSuffix    = ".checksum"
)

// document is the single on-disk snapshot holding every collection.
type document struct {
	Tasks      []models.Task     `json:"tasks" yaml:"tasks" toml:"tasks"`
	Categories []models.Category `json:"categories" yaml:"categories" toml:"categories"`
	Habits     []models.Habit    `json:"habits" yaml:"habits" toml:"habits"`
	HabitLogs  []models.HabitLog `json:"habitLogs" yaml:"habitLogs" toml:"habitLogs"`
}

// FileStore implements the Store interface over a single snapshot file.
// It supports JSON, YAML, and TOML formats and serializes all mutation
// through a file lock, which is what gives the engine's transition helpers
// their single-writer guarantee.
type FileStore struct {
	filePath   string
	format     string
	flk        *flock.Flock
	tasks      map[string]models.Task
	categories map[string]models.Category
	habits     map[string]models.Habit
	logs       map[string]models.HabitLog // keyed habitID + "/" + date
}

// NewFileStore creates a new instance of FileStore. It does not initialize
// the store; Initialize must be called separately.
func NewFileStore() *FileStore {
	return &FileStore{
		tasks:      make(map[string]models.Task),
		categories: make(map[string]models.Category),
		habits:     make(map[string]models.Habit),
		logs:       make(map[string]models.HabitLog),
	}
}

// Initialize configures the FileStore. It expects a 'dataFile' key in the
// config map; if absent it defaults to 'daystack.json' in the working
// directory. Existing data is loaded and a file lock established.
func (s *FileStore) Initialize(config map[string]string) error {
	if val, ok := config[dataFileKey]; ok && val != "" {
		s.filePath = val
	} else {
		s.filePath = defaultDataFile
	}

	if val, ok := config[dataFileFormatKey]; ok && val != "" {
		formatLower := strings.ToLower(val)
		switch formatLower {
		case formatJSON, formatYAML, formatTOML:
			s.format = formatLower
		default:
			return fmt.Errorf("unsupported dataFileFormat: %s. Supported formats are json, yaml, toml", val)
		}
	} else {
		s.format = defaultDataFormat
	}

	if s.filePath == defaultDataFile && s.format != formatJSON {
		ext := filepath.Ext(s.filePath)
		s.filePath = strings.TrimSuffix(s.filePath, ext) + "." + s.format
	}

	dir := filepath.Dir(s.filePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	s.flk = flock.New(s.filePath)
	locked, err := s.flk.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire initial lock for %s: %w", s.filePath, err)
	}
	if !locked {
		if err := s.flk.Lock(); err != nil {
			return fmt.Errorf("failed to acquire blocking initial lock for %s: %w", s.filePath, err)
		}
	}
	defer func() { _ = s.flk.Unlock() }()

	return s.loadInternal()
}

// calculateChecksum computes the SHA256 checksum of the given data.
func calculateChecksum(data []byte) string {
	hasher := sha256.New()
	hasher.Write(data) // Write never returns an error
	return hex.EncodeToString(hasher.Sum(nil))
}

// loadInternal reads the snapshot from disk, verifies its checksum, and
// rebuilds the in-memory maps. Callers must hold the file lock.
func (s *FileStore) loadInternal() error {
	checksumFilePath := s.filePath + checksumSuffix

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.reset(document{})
			_ = os.Remove(checksumFilePath)
			f, createErr := os.OpenFile(s.filePath, os.O_CREATE|os.O_RDWR, 0o644)
			if createErr != nil {
				return fmt.Errorf("failed to create data file %s: %w", s.filePath, createErr)
			}
			_ = f.Close()
			_ = os.WriteFile(checksumFilePath, []byte(calculateChecksum([]byte{})), 0o644)
			return nil
		}
		return fmt.Errorf("failed to read data file %s: %w", s.filePath, err)
	}

	if _, err := os.Stat(checksumFilePath); err == nil {
		expectedBytes, readErr := os.ReadFile(checksumFilePath)
		if readErr != nil {
			return fmt.Errorf("failed to read checksum file %s: %w", checksumFilePath, readErr)
		}
		expected := strings.TrimSpace(string(expectedBytes))
		if actual := calculateChecksum(data); actual != expected {
			return fmt.Errorf("checksum mismatch for %s - expected %s, got %s - file is corrupt or tampered", s.filePath, expected, actual)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("error checking checksum file %s: %w", checksumFilePath, err)
	}
	// A missing checksum file next to existing data predates checksums;
	// allow the load, the next save recreates it.

	if len(data) == 0 {
		_ = os.WriteFile(checksumFilePath, []byte(calculateChecksum([]byte{})), 0o644)
		s.reset(document{})
		return nil
	}

	var doc document
	switch s.format {
	case formatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to unmarshal JSON from %s: %w", s.filePath, err)
		}
	case formatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to unmarshal YAML from %s: %w", s.filePath, err)
		}
	case formatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to unmarshal TOML from %s: %w", s.filePath, err)
		}
	default:
		return fmt.Errorf("unsupported data format for loading: %s", s.format)
	}

	s.reset(doc)
	return nil
}

func (s *FileStore) reset(doc document) {
	s.tasks = make(map[string]models.Task, len(doc.Tasks))
	for _, t := range doc.Tasks {
		s.tasks[t.ID] = t
	}
	s.categories = make(map[string]models.Category, len(doc.Categories))
	for _, c := range doc.Categories {
		s.categories[c.ID] = c
	}
	s.habits = make(map[string]models.Habit, len(doc.Habits))
	for _, h := range doc.Habits {
		s.habits[h.ID] = h
	}
	s.logs = make(map[string]models.HabitLog, len(doc.HabitLogs))
	for _, l := range doc.HabitLogs {
		s.logs[logKey(l.HabitID, l.Date)] = l
	}
}

func logKey(habitID, date string) string {
	return habitID + "/" + date
}

// saveInternal writes the snapshot to disk atomically, then its checksum.
// Callers must hold the file lock.
func (s *FileStore) saveInternal() error {
	doc := document{
		Tasks:      make([]models.Task, 0, len(s.tasks)),
		Categories: make([]models.Category, 0, len(s.categories)),
		Habits:     make([]models.Habit, 0, len(s.habits)),
		HabitLogs:  make([]models.HabitLog, 0, len(s.logs)),
	}
	for _, t := range s.tasks {
		doc.Tasks = append(doc.Tasks, t)
	}
	for _, c := range s.categories {
		doc.Categories = append(doc.Categories, c)
	}
	for _, h := range s.habits {
		doc.Habits = append(doc.Habits, h)
	}
	for _, l := range s.logs {
		doc.HabitLogs = append(doc.HabitLogs, l)
	}

	var marshaled []byte
	var err error
	switch s.format {
	case formatJSON:
		marshaled, err = json.MarshalIndent(doc, "", "  ")
	case formatYAML:
		marshaled, err = yaml.Marshal(doc)
	case formatTOML:
		buf := new(bytes.Buffer)
		if encodeErr := toml.NewEncoder(buf).Encode(doc); encodeErr == nil {
			marshaled = buf.Bytes()
		} else {
			err = fmt.Errorf("failed to marshal TOML: %w", encodeErr)
		}
	default:
		return fmt.Errorf("unsupported data format for saving: %s", s.format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal data to %s: %w", s.format, err)
	}

	tempFilePath := s.filePath + ".tmp"
	checksumFilePath := s.filePath + checksumSuffix
	tempChecksumFilePath := checksumFilePath + ".tmp"

	defer func() { _ = os.Remove(tempFilePath) }()
	defer func() { _ = os.Remove(tempChecksumFilePath) }()

	if err := os.WriteFile(tempFilePath, marshaled, 0o644); err != nil {
		return fmt.Errorf("failed to write to temporary data file %s: %w", tempFilePath, err)
	}
	if err := os.WriteFile(tempChecksumFilePath, []byte(calculateChecksum(marshaled)), 0o644); err != nil {
		return fmt.Errorf("failed to write to temporary checksum file %s: %w", tempChecksumFilePath, err)
	}
	if err := os.Rename(tempFilePath, s.filePath); err != nil {
		return fmt.Errorf("failed to rename temporary data file %s to %s: %w", tempFilePath, s.filePath, err)
	}
	if err := os.Rename(tempChecksumFilePath, checksumFilePath); err != nil {
		return fmt.Errorf("data file %s updated, but failed to update checksum file %s: %w - store may be inconsistent", s.filePath, checksumFilePath, err)
	}
	return nil
}

// generateID creates a new universally unique identifier string.
func generateID() string {
	return uuid.NewString()
}

// withLock runs fn with the file lock held and the latest snapshot loaded,
// saving afterwards when fn reports a mutation.
func (s *FileStore) withLock(mutate bool, fn func() error) error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("could not lock data file: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadInternal(); err != nil {
		return fmt.Errorf("failed to reload data: %w", err)
	}
	if err := fn(); err != nil {
		return err
	}
	if mutate {
		if err := s.saveInternal(); err != nil {
			// Best-effort rollback: reload the unchanged file.
			_ = s.loadInternal()
			return fmt.Errorf("failed to save data: %w", err)
		}
	}
	return nil
}

// CreateTask adds a new task to the store, assigning id and timestamps.
func (s *FileStore) CreateTask(task models.Task) (models.Task, error) {
	err := s.withLock(true, func() error {
		if task.ID == "" {
			task.ID = generateID()
		} else if _, exists := s.tasks[task.ID]; exists {
			return fmt.Errorf("task with ID '%s' already exists", task.ID)
		}

		now := time.Now().UTC()
		task.CreatedAt = now
		task.UpdatedAt = now
		if task.Status == "" {
			task.Status = models.StatusBacklog
		}
		if task.Priority == 0 {
			task.Priority = 3
		}

		if err := models.ValidateStruct(task); err != nil {
			return fmt.Errorf("validation failed for new task: %w", err)
		}

		if task.CategoryID != "" {
			if _, exists := s.categories[task.CategoryID]; !exists {
				return fmt.Errorf("%w: %s", types.ErrCategoryNotFound, task.CategoryID)
			}
		}
		if task.ParentID != nil && *task.ParentID != "" {
			parent, exists := s.tasks[*task.ParentID]
			if !exists {
				return fmt.Errorf("parent task: %w: %s", types.ErrTaskNotFound, *task.ParentID)
			}
			parent.SubtaskIDs = appendMissing(parent.SubtaskIDs, task.ID)
			parent.UpdatedAt = now
			s.tasks[*task.ParentID] = parent
		}
		for _, blockerID := range task.BlockedBy {
			if blockerID == task.ID {
				return fmt.Errorf("task cannot block itself")
			}
			if _, exists := s.tasks[blockerID]; !exists {
				return fmt.Errorf("blocking task: %w: %s", types.ErrTaskNotFound, blockerID)
			}
		}

		s.tasks[task.ID] = task
		return nil
	})
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// GetTask retrieves a task by its unique identifier.
func (s *FileStore) GetTask(id string) (models.Task, error) {
	var task models.Task
	err := s.withLock(false, func() error {
		t, ok := s.tasks[id]
		if !ok {
			return fmt.Errorf("%w: %s", types.ErrTaskNotFound, id)
		}
		task = t
		return nil
	})
	return task, err
}

// UpdateTask modifies an existing task from a map of field updates.
func (s *FileStore) UpdateTask(id string, updates map[string]interface{}) (models.Task, error) {
	var task models.Task
	err := s.withLock(true, func() error {
		t, exists := s.tasks[id]
		if !exists {
			return fmt.Errorf("%w: %s", types.ErrTaskNotFound, id)
		}
		now := time.Now().UTC()

		for key, value := range updates {
			switch key {
			case "title":
				if v, ok := value.(string); ok {
					t.Title = v
				}
			case "description":
				if v, ok := value.(string); ok {
					t.Description = v
				}
			case "priority":
				switch v := value.(type) {
				case int:
					t.Priority = v
				case float64:
					t.Priority = int(v)
				}
			case "categoryId":
				if v, ok := value.(string); ok {
					if v != "" {
						if _, exists := s.categories[v]; !exists {
							return fmt.Errorf("%w: %s", types.ErrCategoryNotFound, v)
						}
					}
					t.CategoryID = v
				}
			case "dueDate":
				t.DueDate = toTimePtr(value)
			case "softDeadline":
				t.SoftDeadline = toTimePtr(value)
			case "estimateMinutes":
				switch v := value.(type) {
				case int:
					t.EstimateMinutes = &v
				case float64:
					m := int(v)
					t.EstimateMinutes = &m
				case nil:
					t.EstimateMinutes = nil
				}
			case "moneyImpact":
				switch v := value.(type) {
				case float64:
					t.MoneyImpact = &v
				case int:
					m := float64(v)
					t.MoneyImpact = &m
				case nil:
					t.MoneyImpact = nil
				}
			case "blockedBy":
				if v, ok := value.([]string); ok {
					for _, blockerID := range v {
						if _, exists := s.tasks[blockerID]; !exists {
							return fmt.Errorf("blocking task: %w: %s", types.ErrTaskNotFound, blockerID)
						}
					}
					t.BlockedBy = v
				}
			default:
				return fmt.Errorf("unsupported update field: %s", key)
			}
		}

		t.UpdatedAt = now
		if err := models.ValidateStruct(t); err != nil {
			return fmt.Errorf("validation failed for updated task: %w", err)
		}
		s.tasks[id] = t
		task = t
		return nil
	})
	return task, err
}

func toTimePtr(value interface{}) *time.Time {
	switch v := value.(type) {
	case time.Time:
		return &v
	case *time.Time:
		return v
	case string:
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			return &parsed
		}
		if parsed, err := time.Parse(models.DateFormat, v); err == nil {
			return &parsed
		}
	}
	return nil
}

func appendMissing(slice []string, item string) []string {
	for _, s := range slice {
		if s == item {
			return slice
		}
	}
	return append(slice, item)
}

// DeleteTask removes a task and detaches it from parents and blockers.
func (s *FileStore) DeleteTask(id string) error {
	return s.withLock(true, func() error {
		if _, exists := s.tasks[id]; !exists {
			return fmt.Errorf("%w: %s", types.ErrTaskNotFound, id)
		}
		delete(s.tasks, id)
		for tid, t := range s.tasks {
			changed := false
			if filtered := removeString(t.SubtaskIDs, id); len(filtered) != len(t.SubtaskIDs) {
				t.SubtaskIDs = filtered
				changed = true
			}
			if filtered := removeString(t.BlockedBy, id); len(filtered) != len(t.BlockedBy) {
				t.BlockedBy = filtered
				changed = true
			}
			if changed {
				s.tasks[tid] = t
			}
		}
		return nil
	})
}

func removeString(slice []string, item string) []string {
	out := make([]string, 0, len(slice))
	for _, s := range slice {
		if s != item {
			out = append(out, s)
		}
	}
	return out
}

// ListTasks retrieves tasks, optionally filtered and sorted. With a nil
// sortFn tasks come back ordered by creation time so selection stays
// stable across runs.
func (s *FileStore) ListTasks(filterFn func(models.Task) bool, sortFn func([]models.Task) []models.Task) ([]models.Task, error) {
	var tasks []models.Task
	err := s.withLock(false, func() error {
		for _, t := range s.tasks {
			if filterFn == nil || filterFn(t) {
				tasks = append(tasks, t)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if sortFn != nil {
		return sortFn(tasks), nil
	}
	sortTasksByCreation(tasks)
	return tasks, nil
}

func sortTasksByCreation(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
}

// transition applies one of the engine's pure status transitions under the
// file lock.
func (s *FileStore) transition(id string, apply func(models.Task) models.Task) (models.Task, error) {
	var task models.Task
	err := s.withLock(true, func() error {
		t, exists := s.tasks[id]
		if !exists {
			return fmt.Errorf("%w: %s", types.ErrTaskNotFound, id)
		}
		t = apply(t)
		s.tasks[id] = t
		task = t
		return nil
	})
	return task, err
}

// MarkTaskDone completes a task. When every sibling subtask of the task's
// parent is now complete, the parent auto-completes as well.
func (s *FileStore) MarkTaskDone(id string, now time.Time) (models.Task, error) {
	var task models.Task
	err := s.withLock(true, func() error {
		t, exists := s.tasks[id]
		if !exists {
			return fmt.Errorf("%w: %s", types.ErrTaskNotFound, id)
		}
		t = stack.MarkDone(t, now)
		s.tasks[id] = t
		task = t

		if t.ParentID != nil {
			if parent, ok := s.tasks[*t.ParentID]; ok && len(parent.SubtaskIDs) > 0 && !parent.IsComplete() {
				allDone := true
				for _, subID := range parent.SubtaskIDs {
					if sub, ok := s.tasks[subID]; ok && !sub.IsComplete() {
						allDone = false
						break
					}
				}
				if allDone {
					s.tasks[*t.ParentID] = stack.MarkDone(parent, now)
				}
			}
		}
		return nil
	})
	return task, err
}

// ArchiveTask moves a task to archived, preserving an existing completedAt.
func (s *FileStore) ArchiveTask(id string, now time.Time) (models.Task, error) {
	return s.transition(id, func(t models.Task) models.Task { return stack.Archive(t, now) })
}

// UndoTask revives a done or archived task back to backlog.
func (s *FileStore) UndoTask(id string, now time.Time) (models.Task, error) {
	return s.transition(id, func(t models.Task) models.Task { return stack.UndoCompletion(t, now) })
}

// PinTask promotes a backlog task into the pinned tier.
func (s *FileStore) PinTask(id string, now time.Time) (models.Task, error) {
	return s.transition(id, func(t models.Task) models.Task { return stack.Pin(t, now) })
}

// UnpinTask returns a pinned task to backlog.
func (s *FileStore) UnpinTask(id string, now time.Time) (models.Task, error) {
	return s.transition(id, func(t models.Task) models.Task { return stack.Unpin(t, now) })
}

// StartTask moves a task to in-progress.
func (s *FileStore) StartTask(id string, now time.Time) (models.Task, error) {
	return s.transition(id, func(t models.Task) models.Task { return stack.Start(t, now) })
}

// DeferTask parks a task as pending until nextActionAt.
func (s *FileStore) DeferTask(id string, nextActionAt, now time.Time) (models.Task, error) {
	return s.transition(id, func(t models.Task) models.Task { return stack.Defer(t, nextActionAt, now) })
}

// SweepDuePending moves pending tasks whose nextActionAt has elapsed back
// to backlog.
func (s *FileStore) SweepDuePending(now time.Time) (int, error) {
	count := 0
	err := s.withLock(true, func() error {
		for id, t := range s.tasks {
			if t.Status != models.StatusPending || t.NextActionAt == nil || t.NextActionAt.After(now) {
				continue
			}
			t.Status = models.StatusBacklog
			t.UpdatedAt = now
			s.tasks[id] = t
			count++
		}
		return nil
	})
	return count, err
}

// CreateCategory adds a new category to the store.
func (s *FileStore) CreateCategory(category models.Category) (models.Category, error) {
	err := s.withLock(true, func() error {
		if category.ID == "" {
			category.ID = generateID()
		} else if _, exists := s.categories[category.ID]; exists {
			return fmt.Errorf("category with ID '%s' already exists", category.ID)
		}
		if err := models.ValidateStruct(category); err != nil {
			return fmt.Errorf("validation failed for new category: %w", err)
		}
		s.categories[category.ID] = category
		return nil
	})
	if err != nil {
		return models.Category{}, err
	}
	return category, nil
}

// GetCategory retrieves a category by id.
func (s *FileStore) GetCategory(id string) (models.Category, error) {
	var category models.Category
	err := s.withLock(false, func() error {
		c, ok := s.categories[id]
		if !ok {
			return fmt.Errorf("%w: %s", types.ErrCategoryNotFound, id)
		}
		category = c
		return nil
	})
	return category, err
}

// ListCategories retrieves all categories.
func (s *FileStore) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := s.withLock(false, func() error {
		for _, c := range s.categories {
			categories = append(categories, c)
		}
		return nil
	})
	return categories, err
}

// CreateHabit adds a new habit to the store.
func (s *FileStore) CreateHabit(habit models.Habit) (models.Habit, error) {
	err := s.withLock(true, func() error {
		if habit.ID == "" {
			habit.ID = generateID()
		} else if _, exists := s.habits[habit.ID]; exists {
			return fmt.Errorf("habit with ID '%s' already exists", habit.ID)
		}
		if habit.CreatedAt.IsZero() {
			habit.CreatedAt = time.Now().UTC()
		}
		if err := models.ValidateStruct(habit); err != nil {
			return fmt.Errorf("validation failed for new habit: %w", err)
		}
		s.habits[habit.ID] = habit
		return nil
	})
	if err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// GetHabit retrieves a habit by id.
func (s *FileStore) GetHabit(id string) (models.Habit, error) {
	var habit models.Habit
	err := s.withLock(false, func() error {
		h, ok := s.habits[id]
		if !ok {
			return fmt.Errorf("%w: %s", types.ErrHabitNotFound, id)
		}
		habit = h
		return nil
	})
	return habit, err
}

// ListHabits retrieves habits, excluding soft-archived ones unless asked.
func (s *FileStore) ListHabits(includeArchived bool) ([]models.Habit, error) {
	var habits []models.Habit
	err := s.withLock(false, func() error {
		for _, h := range s.habits {
			if h.IsArchived() && !includeArchived {
				continue
			}
			habits = append(habits, h)
		}
		return nil
	})
	return habits, err
}

// ArchiveHabit soft-archives a habit. Its logs are retained.
func (s *FileStore) ArchiveHabit(id string, now time.Time) (models.Habit, error) {
	var habit models.Habit
	err := s.withLock(true, func() error {
		h, ok := s.habits[id]
		if !ok {
			return fmt.Errorf("%w: %s", types.ErrHabitNotFound, id)
		}
		if h.ArchivedAt == nil {
			h.ArchivedAt = &now
			s.habits[id] = h
		}
		habit = h
		return nil
	})
	return habit, err
}

// UpsertHabitLog records one outcome per (habit, date). An existing record
// for the pair is overwritten in place; its id and createdAt survive.
func (s *FileStore) UpsertHabitLog(habitID, date string, patch LogPatch, now time.Time) (models.HabitLog, error) {
	var log models.HabitLog
	err := s.withLock(true, func() error {
		if _, ok := s.habits[habitID]; !ok {
			return fmt.Errorf("%w: %s", types.ErrHabitNotFound, habitID)
		}
		key := logKey(habitID, date)
		existing, ok := s.logs[key]
		if ok {
			existing.Status = patch.Status
			existing.Value = patch.Value
			existing.Note = patch.Note
			existing.UpdatedAt = now
			log = existing
		} else {
			log = models.HabitLog{
				ID:        generateID(),
				HabitID:   habitID,
				Date:      date,
				Status:    patch.Status,
				Value:     patch.Value,
				Note:      patch.Note,
				CreatedAt: now,
				UpdatedAt: now,
			}
		}
		if err := models.ValidateStruct(log); err != nil {
			return fmt.Errorf("validation failed for habit log: %w", err)
		}
		s.logs[key] = log
		return nil
	})
	return log, err
}

// ListHabitLogs returns a habit's logs keyed by date, the shape the habit
// engine consumes.
func (s *FileStore) ListHabitLogs(habitID string) (map[string]models.HabitLog, error) {
	logs := make(map[string]models.HabitLog)
	err := s.withLock(false, func() error {
		for _, l := range s.logs {
			if l.HabitID == habitID {
				logs[l.Date] = l
			}
		}
		return nil
	})
	return logs, err
}

// Backup copies the current data file to the destination path.
func (s *FileStore) Backup(destinationPath string) error {
	return s.withLock(false, func() error {
		data, err := os.ReadFile(s.filePath)
		if err != nil {
			return fmt.Errorf("failed to read data file for backup: %w", err)
		}
		if dir := filepath.Dir(destinationPath); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create backup directory %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(destinationPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write backup file %s: %w", destinationPath, err)
		}
		return nil
	})
}

// Restore replaces the current data with the contents of the source path.
func (s *FileStore) Restore(sourcePath string) error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("could not lock data file: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read restore source %s: %w", sourcePath, err)
	}
	if err := os.WriteFile(s.filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write data file %s: %w", s.filePath, err)
	}
	if err := os.WriteFile(s.filePath+checksumSuffix, []byte(calculateChecksum(data)), 0o644); err != nil {
		return fmt.Errorf("failed to write checksum file: %w", err)
	}
	return s.loadInternal()
}

// Close releases the file lock.
func (s *FileStore) Close() error {
	if s.flk != nil {
		return s.flk.Unlock()
	}
	return nil
}
