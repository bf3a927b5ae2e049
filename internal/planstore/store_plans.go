package planstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kostyll/HudlFfmpeg/internal/command"
	"github.com/kostyll/HudlFfmpeg/internal/fault"
)

// ErrNotFound is returned when a plan does not exist.
var ErrNotFound = errors.New("plan not found")

const planColumns = "id, name, command_id, status, plan_json, input_count, chain_count, output_count, error_kind, error_message, created_at, updated_at"

// Save stores plan under name as built, replacing any earlier record with the
// same name.
func (s *Store) Save(ctx context.Context, name string, plan command.Plan) (*Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("plan name is required")
	}
	data, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("encode plan: %w", err)
	}
	inputs, chains, outputs := plan.Counts()
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.execWithRetry(ctx, `INSERT INTO plans (name, command_id, status, plan_json, input_count, chain_count, output_count, error_kind, error_message, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NULL, NULL, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			command_id = excluded.command_id,
			status = excluded.status,
			plan_json = excluded.plan_json,
			input_count = excluded.input_count,
			chain_count = excluded.chain_count,
			output_count = excluded.output_count,
			error_kind = NULL,
			error_message = NULL,
			updated_at = excluded.updated_at`,
		name, plan.CommandID, string(StatusBuilt), string(data), inputs, chains, outputs, now, now)
	if err != nil {
		return nil, fmt.Errorf("save plan %q: %w", name, err)
	}
	return s.GetByName(ctx, name)
}

// RecordFailure stores a failed build under name. The status is derived from
// the error kind and any earlier snapshot is cleared.
func (s *Store) RecordFailure(ctx context.Context, name string, buildErr error) (*Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("plan name is required")
	}
	if buildErr == nil {
		return nil, errors.New("record failure requires an error")
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.execWithRetry(ctx, `INSERT INTO plans (name, command_id, status, plan_json, error_kind, error_message, created_at, updated_at)
		VALUES (?, NULL, ?, NULL, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			command_id = NULL,
			status = excluded.status,
			plan_json = NULL,
			input_count = 0,
			chain_count = 0,
			output_count = 0,
			error_kind = excluded.error_kind,
			error_message = excluded.error_message,
			updated_at = excluded.updated_at`,
		name, string(FailureStatus(buildErr)), nullableString(fault.Kind(buildErr)), buildErr.Error(), now, now)
	if err != nil {
		return nil, fmt.Errorf("record failure for %q: %w", name, err)
	}
	return s.GetByName(ctx, name)
}

// GetByID fetches a plan by its numeric id.
func (s *Store) GetByID(ctx context.Context, id int64) (*Record, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, "SELECT "+planColumns+" FROM plans WHERE id = ?", id)
	return scanOne(row, fmt.Sprintf("id %d", id))
}

// GetByName fetches a plan by name.
func (s *Store) GetByName(ctx context.Context, name string) (*Record, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, "SELECT "+planColumns+" FROM plans WHERE name = ?", strings.TrimSpace(name))
	return scanOne(row, fmt.Sprintf("name %q", name))
}

// List returns plans ordered by id, optionally filtered by status.
func (s *Store) List(ctx context.Context, statuses ...Status) ([]*Record, error) {
	ctx = ensureContext(ctx)
	query := "SELECT " + planColumns + " FROM plans"
	args := make([]any, 0, len(statuses))
	if len(statuses) > 0 {
		placeholders := make([]string, len(statuses))
		for i, status := range statuses {
			placeholders[i] = "?"
			args = append(args, string(status))
		}
		query += " WHERE status IN (" + strings.Join(placeholders, ",") + ")"
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plans: %w", err)
	}
	return records, nil
}

// Remove deletes a plan by id. It returns ErrNotFound when nothing was deleted.
func (s *Store) Remove(ctx context.Context, id int64) error {
	res, err := s.execWithRetry(ctx, "DELETE FROM plans WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("remove plan %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove plan %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}

func scanOne(row *sql.Row, label string) (*Record, error) {
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, label)
	}
	if err != nil {
		return nil, fmt.Errorf("get plan %s: %w", label, err)
	}
	return record, nil
}

func scanRecord(scanner interface{ Scan(dest ...any) error }) (*Record, error) {
	var (
		record       Record
		commandID    sql.NullString
		status       string
		planJSON     sql.NullString
		errorKind    sql.NullString
		errorMessage sql.NullString
		createdRaw   string
		updatedRaw   string
	)
	if err := scanner.Scan(
		&record.ID,
		&record.Name,
		&commandID,
		&status,
		&planJSON,
		&record.Inputs,
		&record.Filterchains,
		&record.Outputs,
		&errorKind,
		&errorMessage,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}
	record.CommandID = commandID.String
	record.Status = Status(status)
	record.PlanJSON = planJSON.String
	record.ErrorKind = errorKind.String
	record.ErrorMessage = errorMessage.String
	record.CreatedAt = parseTime(createdRaw)
	record.UpdatedAt = parseTime(updatedRaw)
	return &record, nil
}

func parseTime(raw string) time.Time {
	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func nullableString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
