package jobstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a job id does not exist.
var ErrNotFound = errors.New("job not found")

// timeLayout is a fixed-width UTC format so lexicographic comparisons in
// SQL (ORDER BY, updated_at < ?) agree with chronological order. RFC3339Nano
// trims trailing zeros and breaks that property.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

const schema = `
CREATE TABLE IF NOT EXISTS jobs (
    id         TEXT PRIMARY KEY,
    topic      TEXT NOT NULL,
    status     TEXT NOT NULL,
    stage      TEXT NOT NULL DEFAULT '',
    progress   INTEGER NOT NULL DEFAULT 0,
    error      TEXT NOT NULL DEFAULT '',
    video_path TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs(status);
`

// Store persists job state in SQLite.
type Store struct {
	db *sql.DB
}

// Open initializes or connects to the job database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Create inserts a new queued job.
func (s *Store) Create(ctx context.Context, id, topic string) (*Job, error) {
	now := time.Now().UTC()
	ts := now.Format(timeLayout)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO jobs (id, topic, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, topic, StatusQueued, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	return &Job{
		ID:        id,
		Topic:     topic,
		Status:    StatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Get returns the job with the given id.
func (s *Store) Get(ctx context.Context, id string) (*Job, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, topic, status, stage, progress, error, video_path, created_at, updated_at
         FROM jobs WHERE id = ?`, id)
	return scanJob(row)
}

// List returns all jobs, newest first.
func (s *Store) List(ctx context.Context) ([]*Job, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, topic, status, stage, progress, error, video_path, created_at, updated_at
         FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// SetProgress records the current stage and completion percentage.
func (s *Store) SetProgress(ctx context.Context, id, stage string, progress int) error {
	return s.update(ctx, id,
		`UPDATE jobs SET status = ?, stage = ?, progress = ?, updated_at = ? WHERE id = ?`,
		StatusRunning, stage, progress, timestamp(), id)
}

// Complete marks the job finished with its output video path.
func (s *Store) Complete(ctx context.Context, id, videoPath string) error {
	return s.update(ctx, id,
		`UPDATE jobs SET status = ?, progress = 100, video_path = ?, updated_at = ? WHERE id = ?`,
		StatusCompleted, videoPath, timestamp(), id)
}

// Fail marks the job failed with the error text attached.
func (s *Store) Fail(ctx context.Context, id, errText string) error {
	return s.update(ctx, id,
		`UPDATE jobs SET status = ?, error = ?, updated_at = ? WHERE id = ?`,
		StatusFailed, errText, timestamp(), id)
}

// DeleteOlderThan removes terminal jobs whose last update is before cutoff.
// It returns the number of deleted jobs and the video paths they held, for
// file cleanup. Jobs without a video still count toward deleted.
func (s *Store) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, []string, error) {
	ts := cutoff.UTC().Format(timeLayout)

	rows, err := s.db.QueryContext(ctx,
		`SELECT video_path FROM jobs
         WHERE status IN (?, ?) AND updated_at < ? AND video_path != ''`,
		StatusCompleted, StatusFailed, ts)
	if err != nil {
		return 0, nil, fmt.Errorf("select stale jobs: %w", err)
	}

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			rows.Close()
			return 0, nil, err
		}
		paths = append(paths, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, nil, err
	}

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM jobs WHERE status IN (?, ?) AND updated_at < ?`,
		StatusCompleted, StatusFailed, ts)
	if err != nil {
		return 0, nil, fmt.Errorf("delete stale jobs: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, nil, fmt.Errorf("count deleted jobs: %w", err)
	}
	return deleted, paths, nil
}

func (s *Store) update(ctx context.Context, id, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update job %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*Job, error) {
	var job Job
	var createdAt, updatedAt string

	err := row.Scan(&job.ID, &job.Topic, &job.Status, &job.Stage, &job.Progress,
		&job.Error, &job.VideoPath, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan job: %w", err)
	}

	job.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	job.UpdatedAt, _ = time.Parse(timeLayout, updatedAt)
	return &job, nil
}

func timestamp() string {
	return time.Now().UTC().Format(timeLayout)
}
