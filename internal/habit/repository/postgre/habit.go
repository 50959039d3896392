package postgre

import (
	"context"
	"database/sql"
	"strings"

	pg "productivity-planner/config/postgre"
	repo "productivity-planner/internal/habit/repository"
	"productivity-planner/internal/model"
)

const habitColumns = `id, user_id, title, description, frequency, target_days, goal_target,
	goal_period, color, is_active, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (model.Habit, error) {
	var (
		h                 model.Habit
		frequency, period string
		targetDays        string
		createdAt         pg.NullTime
	)
	err := row.Scan(
		&h.ID, &h.UserID, &h.Title, &h.Description, &frequency, &targetDays, &h.GoalTarget,
		&period, &h.Color, &h.IsActive, &createdAt,
	)
	if err != nil {
		return model.Habit{}, err
	}

	h.Frequency = model.HabitFrequency(frequency)
	h.GoalPeriod = model.GoalPeriod(period)
	h.TargetDays = splitDays(targetDays)
	h.CreatedAt = createdAt.Time
	return h, nil
}

// target_days holds the day names joined by commas.
func joinDays(days []string) string {
	return strings.Join(days, ",")
}

func splitDays(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// CreateHabit inserts a new active Habit and returns it.
func (r *implRepository) CreateHabit(ctx context.Context, opt repo.CreateHabitOptions) (model.Habit, error) {
	query := `
		INSERT INTO habits (id, user_id, title, description, frequency, target_days, goal_target,
			goal_period, color, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, $10)
		RETURNING ` + habitColumns

	h, err := scanHabit(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.UserID, opt.Title, opt.Description, string(opt.Frequency),
		joinDays(opt.TargetDays), opt.GoalTarget, string(opt.GoalPeriod), opt.Color,
		opt.CreatedAt.UTC(),
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateHabit"), err)
		return model.Habit{}, repo.ErrFailedToInsert
	}
	return h, nil
}

// GetOneHabit returns the active habit with the given id, or a zero Habit.
func (r *implRepository) GetOneHabit(ctx context.Context, opt repo.GetOneHabitOptions) (model.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits
		WHERE id = $1 AND user_id = $2 AND is_active = TRUE LIMIT 1`

	h, err := scanHabit(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if err == sql.ErrNoRows {
		return model.Habit{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneHabit"), err)
		return model.Habit{}, repo.ErrFailedToGet
	}
	return h, nil
}

// ListHabits returns the user's active habits, oldest first.
func (r *implRepository) ListHabits(ctx context.Context, opt repo.ListHabitsOptions) ([]model.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListHabits"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var habits []model.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListHabits"), err)
			return nil, repo.ErrFailedToList
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListHabits"), err)
		return nil, repo.ErrFailedToList
	}
	return habits, nil
}

// DeactivateHabit soft-deletes a habit. Its logs are kept.
func (r *implRepository) DeactivateHabit(ctx context.Context, opt repo.DeactivateHabitOptions) error {
	const query = `UPDATE habits SET is_active = FALSE WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeactivateHabit"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
