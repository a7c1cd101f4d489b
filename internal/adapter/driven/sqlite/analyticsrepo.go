package sqlite

import (
	"context"
	"fmt"

	"github.com/ericfisherdev/sapdash/internal/domain/model"
	"github.com/ericfisherdev/sapdash/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.AnalyticsStore = (*AnalyticsRepo)(nil)

// AnalyticsRepo is the SQLite implementation of the AnalyticsStore port interface.
type AnalyticsRepo struct {
	db *DB
}

// NewAnalyticsRepo creates a new AnalyticsRepo backed by the given DB.
func NewAnalyticsRepo(db *DB) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// RevenueByMonth returns the monthly revenue series in chart order.
func (r *AnalyticsRepo) RevenueByMonth(ctx context.Context) ([]model.RevenuePoint, error) {
	const query = `SELECT month, value FROM revenue_by_month ORDER BY sort_order`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list revenue: %w", err)
	}
	defer rows.Close()

	var points []model.RevenuePoint
	for rows.Next() {
		var point model.RevenuePoint
		if err := rows.Scan(&point.Month, &point.Value); err != nil {
			return nil, fmt.Errorf("scan revenue point: %w", err)
		}
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revenue: %w", err)
	}

	return points, nil
}

// DepartmentShares returns the department percentage breakdown in chart order.
func (r *AnalyticsRepo) DepartmentShares(ctx context.Context) ([]model.DepartmentShare, error) {
	const query = `SELECT name, percentage FROM department_shares ORDER BY sort_order`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list department shares: %w", err)
	}
	defer rows.Close()

	var shares []model.DepartmentShare
	for rows.Next() {
		var share model.DepartmentShare
		if err := rows.Scan(&share.Name, &share.Percentage); err != nil {
			return nil, fmt.Errorf("scan department share: %w", err)
		}
		shares = append(shares, share)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate department shares: %w", err)
	}

	return shares, nil
}
