package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffline/staffline-backend-go/internal/domain/attendance"
	"github.com/staffline/staffline-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.RecordRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.RecordRepository.
func (r *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rec.ID = uuid.NewString()

	query := `
		INSERT INTO attendance_records (
			id, employee_id, company_id, work_date, clock_in, clock_out,
			status, late_minutes, overtime_minutes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.CompanyID, rec.WorkDate, rec.ClockIn,
		rec.ClockOut, rec.Status, rec.LateMinutes, rec.OvertimeMinutes,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.RecordRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, work_date, clock_in, clock_out,
			   status, late_minutes, overtime_minutes, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND work_date = $2
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.WorkDate, &rec.ClockIn,
		&rec.ClockOut, &rec.Status, &rec.LateMinutes, &rec.OvertimeMinutes,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &rec, nil
}

// Update implements attendance.RecordRepository.
func (r *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET clock_in = $2, clock_out = $3, status = $4,
			late_minutes = $5, overtime_minutes = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rec.ID, rec.ClockIn, rec.ClockOut, rec.Status,
		rec.LateMinutes, rec.OvertimeMinutes,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// ListByCompanyAndDate implements attendance.RecordRepository.
func (r *attendanceRepository) ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]attendance.Record, error) {
	query := `
		SELECT a.id, a.employee_id, a.company_id, a.work_date, a.clock_in,
			   a.clock_out, a.status, a.late_minutes, a.overtime_minutes,
			   a.created_at, a.updated_at, e.name
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.company_id = $1 AND a.work_date = $2
		ORDER BY e.name
	`
	return r.listJoined(ctx, query, companyID, date)
}

// ListByCompanyAndMonth implements attendance.RecordRepository.
func (r *attendanceRepository) ListByCompanyAndMonth(ctx context.Context, companyID string, month, year int) ([]attendance.Record, error) {
	query := `
		SELECT a.id, a.employee_id, a.company_id, a.work_date, a.clock_in,
			   a.clock_out, a.status, a.late_minutes, a.overtime_minutes,
			   a.created_at, a.updated_at, e.name
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.company_id = $1
		  AND EXTRACT(MONTH FROM a.work_date) = $2
		  AND EXTRACT(YEAR FROM a.work_date) = $3
		ORDER BY a.work_date, e.name
	`
	return r.listJoined(ctx, query, companyID, month, year)
}

func (r *attendanceRepository) listJoined(ctx context.Context, query string, args ...any) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.WorkDate, &rec.ClockIn,
			&rec.ClockOut, &rec.Status, &rec.LateMinutes, &rec.OvertimeMinutes,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListByEmployeeAndMonth implements attendance.RecordRepository.
func (r *attendanceRepository) ListByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, work_date, clock_in, clock_out,
			   status, late_minutes, overtime_minutes, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1
		  AND EXTRACT(MONTH FROM work_date) = $2
		  AND EXTRACT(YEAR FROM work_date) = $3
		ORDER BY work_date
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.WorkDate, &rec.ClockIn,
			&rec.ClockOut, &rec.Status, &rec.LateMinutes, &rec.OvertimeMinutes,
			&rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
