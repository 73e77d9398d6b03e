package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/taskflow/internal/error_values"
	"github.com/limbo/taskflow/pkg/entity"
)

const habitColumns = `id, title, description, habit_type, target_value, unit, created_at, is_active`

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepo(conn PgConnection) *HabitsRepository {
	return &HabitsRepository{
		conn: conn,
	}
}

func scanHabit(row pgx.Row) (*entity.Habit, error) {
	var h entity.Habit
	err := row.Scan(&h.ID, &h.Title, &h.Description, &h.HabitType, &h.TargetValue, &h.Unit, &h.CreatedAt, &h.IsActive)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (hr *HabitsRepository) GetActive(ctx context.Context) ([]*entity.Habit, error) {
	rows, err := hr.conn.Query(ctx, `SELECT `+habitColumns+` FROM habits WHERE is_active = TRUE ORDER BY id;`)
	if err != nil {
		return nil, errorvalues.Storage("listing habits", err)
	}
	defer rows.Close()
	habits := make([]*entity.Habit, 0)
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, errorvalues.Storage("scanning habit", err)
		}
		habits = append(habits, h)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.Storage("iterating habits", err)
	}
	return habits, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id int64) (*entity.Habit, error) {
	h, err := scanHabit(hr.conn.QueryRow(ctx, `SELECT `+habitColumns+` FROM habits WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errorvalues.Storage("getting habit by id", err)
	}
	return h, nil
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx,
		`INSERT INTO habits (title, description, habit_type, target_value, unit, is_active) `+
			`VALUES ($1, $2, $3, $4, $5, $6) RETURNING `+habitColumns+`;`,
		habit.Title, habit.Description, habit.HabitType, habit.TargetValue, habit.Unit, habit.IsActive,
	)
	h, err := scanHabit(row)
	if err != nil {
		return nil, errorvalues.Storage("creating habit", err)
	}
	return h, nil
}

func (hr *HabitsRepository) Update(ctx context.Context, id int64, patch entity.HabitPatch) (*entity.Habit, error) {
	b := newUpdate("habits")
	if patch.Title != nil {
		b.set("title", *patch.Title)
	}
	b.setText("description", patch.Description)
	if patch.HabitType != nil {
		b.set("habit_type", *patch.HabitType)
	}
	if patch.TargetValue != nil {
		b.set("target_value", *patch.TargetValue)
	}
	if patch.Unit != nil {
		b.set("unit", *patch.Unit)
	}
	if patch.IsActive != nil {
		b.set("is_active", *patch.IsActive)
	}
	if b.empty() {
		return hr.GetByID(ctx, id)
	}
	query, args := b.build(id, habitColumns)
	h, err := scanHabit(hr.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errorvalues.Storage("updating habit", err)
	}
	return h, nil
}

func (hr *HabitsRepository) Delete(ctx context.Context, id int64) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM habits WHERE id = $1;`, id)
	if err != nil {
		return errorvalues.Storage("deleting habit", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}
