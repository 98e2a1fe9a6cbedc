package callrequests

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type PGRepo struct {
	DB *sql.DB
}

const selectColumns = `id, name, email, phone, preferred_time, notes, assessment_id, status, created_at, updated_at`

func (r *PGRepo) Create(ctx context.Context, request CallRequest) error {
	const query = `
INSERT INTO call_requests (id, name, email, phone, preferred_time, notes, assessment_id, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		request.ID,
		request.Name,
		request.Email,
		nullableString(request.Phone),
		nullableString(request.PreferredTime),
		nullableString(request.Notes),
		nullableString(request.AssessmentID),
		request.Status,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, requestID string) (CallRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM call_requests WHERE id = $1 LIMIT 1`, selectColumns)
	row := r.DB.QueryRowContext(ctx, query, requestID)
	request, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CallRequest{}, ErrNotFound
		}
		return CallRequest{}, err
	}
	return request, nil
}

func (r *PGRepo) List(ctx context.Context, status string, limit, offset int) ([]CallRequest, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if status != "" {
		query := fmt.Sprintf(`
SELECT %s FROM call_requests
WHERE status = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`, selectColumns)
		rows, err = r.DB.QueryContext(ctx, query, status, limit, offset)
	} else {
		query := fmt.Sprintf(`
SELECT %s FROM call_requests
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`, selectColumns)
		rows, err = r.DB.QueryContext(ctx, query, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []CallRequest{}
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

func (r *PGRepo) UpdateStatus(ctx context.Context, requestID, status string) error {
	const query = `
UPDATE call_requests
SET status = $2, updated_at = now()
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, requestID, status)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (CallRequest, error) {
	var request CallRequest
	var phone, preferredTime, notes, assessmentID sql.NullString
	err := row.Scan(
		&request.ID,
		&request.Name,
		&request.Email,
		&phone,
		&preferredTime,
		&notes,
		&assessmentID,
		&request.Status,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return CallRequest{}, err
	}
	if phone.Valid {
		request.Phone = phone.String
	}
	if preferredTime.Valid {
		request.PreferredTime = preferredTime.String
	}
	if notes.Valid {
		request.Notes = notes.String
	}
	if assessmentID.Valid {
		request.AssessmentID = assessmentID.String
	}
	return request, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
