package backup

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/leandrodevsilva/Gestoque/pkg/types"
)

// Sink is the external write capability handed to the scheduler.
// The core never touches the filesystem directly for backups.
type Sink interface {
	// ResolveDir returns the directory backup files are written to,
	// creating it if needed.
	ResolveDir() (string, error)

	// WriteBackupFile writes content to name inside dir.
	WriteBackupFile(dir, name string, content []byte) error
}

// ConfigPatch carries the fields of a Configure call. Nil fields are
// left unchanged.
type ConfigPatch struct {
	AutoBackupEnabled *bool
	IntervalDays      *int
	MaxRetained       *int
}

// Scheduler decides when an automatic backup is due and maintains the
// bounded rotating emergency backup list. Polled reactively by the host;
// a single in-progress flag guards against re-entrant firing.
type Scheduler struct {
	store  types.Store
	sink   Sink
	logger *zap.Logger

	mu      sync.Mutex
	running bool
}

// NewScheduler returns a Scheduler over the given store and sink.
// A nil logger is replaced with a no-op logger.
func NewScheduler(store types.Store, sink Sink, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{store: store, sink: sink, logger: logger}
}

// Config returns the persisted scheduler configuration, falling back to
// the first-use defaults when nothing is stored yet.
func (s *Scheduler) Config() (types.SchedulerConfig, error) {
	cfg := types.DefaultSchedulerConfig()
	if err := s.store.Get(types.KeySchedulerConfig, &cfg); err != nil {
		return types.SchedulerConfig{}, err
	}
	return cfg, nil
}

// Configure merges the patch into the persisted configuration.
// Non-positive interval or retention values are rejected.
func (s *Scheduler) Configure(patch ConfigPatch) (types.SchedulerConfig, error) {
	if patch.IntervalDays != nil && *patch.IntervalDays <= 0 {
		return types.SchedulerConfig{}, types.ErrInvalidInterval
	}
	if patch.MaxRetained != nil && *patch.MaxRetained <= 0 {
		return types.SchedulerConfig{}, types.ErrInvalidRetention
	}

	cfg, err := s.Config()
	if err != nil {
		return types.SchedulerConfig{}, err
	}
	if patch.AutoBackupEnabled != nil {
		cfg.AutoBackupEnabled = *patch.AutoBackupEnabled
	}
	if patch.IntervalDays != nil {
		cfg.IntervalDays = *patch.IntervalDays
	}
	if patch.MaxRetained != nil {
		cfg.MaxRetained = *patch.MaxRetained
	}
	if err := s.store.Set(types.KeySchedulerConfig, cfg); err != nil {
		return types.SchedulerConfig{}, err
	}
	return cfg, nil
}

// IsDue reports whether an automatic backup should run now: never while
// disabled, always when no backup has run yet, otherwise when the whole
// days elapsed since the last backup reach the configured interval.
func (s *Scheduler) IsDue() (bool, error) {
	cfg, err := s.Config()
	if err != nil {
		return false, err
	}
	if !cfg.AutoBackupEnabled {
		return false, nil
	}
	if cfg.LastBackupAt == nil {
		return true, nil
	}
	days := int(nowFunc().Sub(*cfg.LastBackupAt).Hours() / 24)
	return days >= cfg.IntervalDays, nil
}

// Poll fires one backup attempt if due. Failures are logged, not
// returned; the config stays unchanged so the next poll retries.
func (s *Scheduler) Poll() {
	due, err := s.IsDue()
	if err != nil {
		s.logger.Error("backup due check failed", zap.Error(err))
		return
	}
	if !due {
		return
	}
	if err := s.RunAutoBackup(); err != nil {
		s.logger.Error("automatic backup failed", zap.Error(err))
	}
}

// RunAutoBackup builds a snapshot tagged automatic, writes it through
// the sink, pushes a copy onto the emergency list, and only then records
// the backup time. Any failure leaves the configuration untouched.
// At most one run is in flight at a time.
func (s *Scheduler) RunAutoBackup() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	doc, err := BuildSnapshot(s.store, types.BackupAutomatic)
	if err != nil {
		return fmt.Errorf("building snapshot: %w", err)
	}
	content, err := Serialize(doc)
	if err != nil {
		return fmt.Errorf("serializing snapshot: %w", err)
	}

	name := AutoFilename(doc.CreatedAt)
	dir, err := s.sink.ResolveDir()
	if err != nil {
		return fmt.Errorf("resolving backup dir: %w", err)
	}
	if err := s.sink.WriteBackupFile(dir, name, content); err != nil {
		return fmt.Errorf("writing backup file: %w", err)
	}

	cfg, err := s.Config()
	if err != nil {
		return err
	}
	if err := s.pushEmergency(doc, name, cfg.MaxRetained); err != nil {
		return fmt.Errorf("recording emergency backup: %w", err)
	}

	now := nowFunc()
	cfg.LastBackupAt = &now
	if err := s.store.Set(types.KeySchedulerConfig, cfg); err != nil {
		return err
	}

	s.logger.Info("automatic backup created",
		zap.String("file", name),
		zap.String("size", HumanSize(len(content))))
	return nil
}

// pushEmergency prepends a snapshot copy to the emergency list and
// truncates it to max entries, newest first.
func (s *Scheduler) pushEmergency(doc types.BackupDocument, name string, max int) error {
	backups, err := s.listEmergency()
	if err != nil {
		return err
	}
	entry := types.EmergencyBackup{
		ID:       newID(),
		Name:     name,
		Date:     doc.CreatedAt,
		Document: doc,
	}
	backups = append([]types.EmergencyBackup{entry}, backups...)
	if len(backups) > max {
		backups = backups[:max]
	}
	return s.store.Set(types.KeyEmergencyBackups, backups)
}

// ListEmergencyBackups returns the rotating emergency list, newest first.
func (s *Scheduler) ListEmergencyBackups() ([]types.EmergencyBackup, error) {
	return s.listEmergency()
}

// RemoveEmergencyBackup deletes one entry from the emergency list.
func (s *Scheduler) RemoveEmergencyBackup(id string) error {
	backups, err := s.listEmergency()
	if err != nil {
		return err
	}
	for i, b := range backups {
		if b.ID == id {
			return s.store.Set(types.KeyEmergencyBackups, append(backups[:i], backups[i+1:]...))
		}
	}
	return fmt.Errorf("%w: %s", types.ErrBackupNotFound, id)
}

// RestoreEmergencyBackup returns the data section of the identified
// emergency backup. Applying it to the store is the caller's confirmed,
// destructive action.
func (s *Scheduler) RestoreEmergencyBackup(id string) (types.BackupData, error) {
	backups, err := s.listEmergency()
	if err != nil {
		return types.BackupData{}, err
	}
	for _, b := range backups {
		if b.ID == id {
			return b.Document.Data, nil
		}
	}
	return types.BackupData{}, fmt.Errorf("%w: %s", types.ErrBackupNotFound, id)
}

func (s *Scheduler) listEmergency() ([]types.EmergencyBackup, error) {
	var backups []types.EmergencyBackup
	if err := s.store.Get(types.KeyEmergencyBackups, &backups); err != nil {
		return nil, err
	}
	return backups, nil
}
