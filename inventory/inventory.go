// Package inventory reserves and releases units of counted resources (rooms, events).
//
// A reservation is a single conditional UPDATE:
//
//	UPDATE rooms SET availability = availability - n WHERE id = ? AND availability >= n
//
// Postgres takes the row lock for the statement, so two callers racing for the last
// unit cannot both match. Callers run Reserve inside the transaction that inserts the
// booking rows so that the decrement and the inserts commit or roll back together.
package inventory

import (
	"context"
	"errors"
	"fmt"

	"carbon_zero/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrExhausted     = errors.New("not enough availability")
	ErrInvalidAmount = errors.New("amount must be positive")
)

// Counted is a row with a capacity and an availability counter.
type Counted interface {
	model.Room | model.Event
}

// Reserve takes n units and returns the row as it is after the decrement.
func Reserve[T Counted](tx *gorm.DB, id uint, n int) (*T, error) {
	if n <= 0 {
		return nil, ErrInvalidAmount
	}

	var row T
	result := tx.Model(&row).
		Clauses(clause.Returning{}).
		Where("id = ? AND availability >= ?", id, n).
		Update("availability", gorm.Expr("availability - ?", n))
	if result.Error != nil {
		return nil, fmt.Errorf("reserve %d units of %d: %w", n, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, missingOrExhausted[T](tx, id)
	}
	return &row, nil
}

// Release gives back n units, never raising availability above capacity.
func Release[T Counted](tx *gorm.DB, id uint, n int) (*T, error) {
	if n <= 0 {
		return nil, ErrInvalidAmount
	}

	var row T
	result := tx.Model(&row).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("availability", gorm.Expr("LEAST(availability + ?, capacity)", n))
	if result.Error != nil {
		return nil, fmt.Errorf("release %d units of %d: %w", n, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &row, nil
}

func missingOrExhausted[T Counted](tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return ErrExhausted
}

// Drift is a row whose availability disagrees with capacity minus active bookings.
type Drift struct {
	Table        string
	ID           uint
	Capacity     int
	Availability int
	Active       int
}

func (d Drift) Expected() int {
	expected := d.Capacity - d.Active
	if expected < 0 {
		return 0
	}
	return expected
}

type countedTable struct {
	table      string
	bookings   string
	foreignKey string
}

var countedTables = []countedTable{
	{table: "rooms", bookings: "bookings", foreignKey: "room_id"},
	{table: "events", bookings: "event_bookings", foreignKey: "event_id"},
}

// FindDrift lists rows whose counter does not match capacity minus ACTIVE bookings.
func FindDrift(ctx context.Context, db *gorm.DB) ([]Drift, error) {
	var drifts []Drift
	for _, t := range countedTables {
		var rows []Drift
		query := fmt.Sprintf(`
			SELECT r.id, r.capacity, r.availability, COUNT(b.id) AS active
			FROM %[1]s r
			LEFT JOIN %[2]s b ON b.%[3]s = r.id AND b.status = 'ACTIVE'
			GROUP BY r.id, r.capacity, r.availability
			HAVING r.availability <> GREATEST(r.capacity - COUNT(b.id), 0)`,
			t.table, t.bookings, t.foreignKey)
		if err := db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("scan %s drift: %w", t.table, err)
		}
		for i := range rows {
			rows[i].Table = t.table
		}
		drifts = append(drifts, rows...)
	}
	return drifts, nil
}

// Reconcile rewrites every drifted counter and returns what it fixed. Each row is
// corrected under a row lock so it cannot race a concurrent Reserve.
func Reconcile(ctx context.Context, db *gorm.DB) ([]Drift, error) {
	drifts, err := FindDrift(ctx, db)
	if err != nil {
		return nil, err
	}

	var fixed []Drift
	for _, d := range drifts {
		t := tableFor(d.Table)
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var capacity int
			if err := tx.Raw(fmt.Sprintf("SELECT capacity FROM %s WHERE id = ? FOR UPDATE", t.table), d.ID).
				Scan(&capacity).Error; err != nil {
				return err
			}
			var active int64
			if err := tx.Table(t.bookings).
				Where(t.foreignKey+" = ? AND status = ?", d.ID, "ACTIVE").
				Count(&active).Error; err != nil {
				return err
			}
			d.Capacity = capacity
			d.Active = int(active)
			return tx.Table(t.table).Where("id = ?", d.ID).Update("availability", d.Expected()).Error
		})
		if err != nil {
			return fixed, fmt.Errorf("reconcile %s %d: %w", d.Table, d.ID, err)
		}
		fixed = append(fixed, d)
	}
	return fixed, nil
}

func tableFor(name string) countedTable {
	for _, t := range countedTables {
		if t.table == name {
			return t
		}
	}
	return countedTables[0]
}
