package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/taskflow/internal/error_values"
	"github.com/limbo/taskflow/pkg/entity"
)

const entryColumns = `id, habit_id, date, value, completed, created_at`

type HabitEntriesRepository struct {
	conn PgConnection
}

func NewHabitEntriesRepo(conn PgConnection) *HabitEntriesRepository {
	return &HabitEntriesRepository{
		conn: conn,
	}
}

func scanEntry(row pgx.Row) (*entity.HabitEntry, error) {
	var e entity.HabitEntry
	if err := row.Scan(&e.ID, &e.HabitID, &e.Date, &e.Value, &e.Completed, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func mapEntryWriteError(op string, err error) error {
	switch code, _ := pgErrorCode(err); code {
	// Unique violation on (habit_id, date)
	case pgUniqueViolation:
		return errorvalues.ErrEntryExists
	case pgFKViolation:
		return errorvalues.ErrHabitNotFound
	}
	return errorvalues.Storage(op, err)
}

func (er *HabitEntriesRepository) GetByHabitID(ctx context.Context, habitID int64, date string) ([]*entity.HabitEntry, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if date != "" {
		rows, err = er.conn.Query(ctx,
			`SELECT `+entryColumns+` FROM habit_entries WHERE habit_id = $1 AND date = $2 ORDER BY date DESC;`,
			habitID, date)
	} else {
		rows, err = er.conn.Query(ctx,
			`SELECT `+entryColumns+` FROM habit_entries WHERE habit_id = $1 ORDER BY date DESC;`, habitID)
	}
	if err != nil {
		return nil, errorvalues.Storage("listing habit entries", err)
	}
	defer rows.Close()
	entries := make([]*entity.HabitEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, errorvalues.Storage("scanning habit entry", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.Storage("iterating habit entries", err)
	}
	return entries, nil
}

func (er *HabitEntriesRepository) GetByHabitAndDate(ctx context.Context, habitID int64, date string) (*entity.HabitEntry, error) {
	row := er.conn.QueryRow(ctx,
		`SELECT `+entryColumns+` FROM habit_entries WHERE habit_id = $1 AND date = $2;`, habitID, date)
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEntryNotFound
		}
		return nil, errorvalues.Storage("getting habit entry by date", err)
	}
	return e, nil
}

func (er *HabitEntriesRepository) Create(ctx context.Context, entry *entity.HabitEntry) (*entity.HabitEntry, error) {
	row := er.conn.QueryRow(ctx,
		`INSERT INTO habit_entries (habit_id, date, value, completed) VALUES ($1, $2, $3, $4) RETURNING `+entryColumns+`;`,
		entry.HabitID, entry.Date, entry.Value, entry.Completed,
	)
	e, err := scanEntry(row)
	if err != nil {
		return nil, mapEntryWriteError("creating habit entry", err)
	}
	return e, nil
}

func (er *HabitEntriesRepository) Update(ctx context.Context, id int64, patch entity.HabitEntryPatch) (*entity.HabitEntry, error) {
	b := newUpdate("habit_entries")
	if patch.Date != nil {
		b.set("date", *patch.Date)
	}
	if patch.Value != nil {
		b.set("value", *patch.Value)
	}
	if patch.Completed != nil {
		b.set("completed", *patch.Completed)
	}
	var row pgx.Row
	if b.empty() {
		row = er.conn.QueryRow(ctx, `SELECT `+entryColumns+` FROM habit_entries WHERE id = $1;`, id)
	} else {
		query, args := b.build(id, entryColumns)
		row = er.conn.QueryRow(ctx, query, args...)
	}
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEntryNotFound
		}
		return nil, mapEntryWriteError("updating habit entry", err)
	}
	return e, nil
}
