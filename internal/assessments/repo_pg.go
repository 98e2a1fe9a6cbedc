package assessments

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"readiness-backend/internal/scoring"
)

// PGRepo stores assessments in Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, assessment Assessment) error {
	const query = `
INSERT INTO assessment_instances (id, tier, responses, result, user_id, company_id, anonymous, was_anonymous, original_device_id, linked_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	responsesJSON, err := json.Marshal(assessment.Responses)
	if err != nil {
		return err
	}
	resultJSON, err := json.Marshal(assessment.Result)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		assessment.ID,
		assessment.Tier,
		responsesJSON,
		resultJSON,
		nullableString(assessment.UserID),
		nullableString(assessment.CompanyID),
		assessment.Anonymous,
		assessment.WasAnonymous,
		nullableString(assessment.OriginalDeviceID),
		assessment.LinkedAt,
		assessment.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, assessmentID string) (Assessment, error) {
	const query = selectColumns + `
FROM assessment_instances
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, assessmentID)
	assessment, err := scanAssessment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Assessment{}, ErrNotFound
		}
		return Assessment{}, err
	}
	return assessment, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Assessment, error) {
	const query = selectColumns + `
FROM assessment_instances
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Assessment
	for rows.Next() {
		assessment, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, assessment)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateOwner(ctx context.Context, assessmentID, userID, companyID, deviceID string, linkedAt time.Time) error {
	const query = `
UPDATE assessment_instances
SET user_id = $2, company_id = $3, anonymous = false, was_anonymous = true, original_device_id = $4, linked_at = $5
WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, assessmentID, userID, nullableString(companyID), deviceID, linkedAt)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

const selectColumns = `
SELECT id, tier, responses, result, user_id, company_id, anonymous, was_anonymous, original_device_id, linked_at, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (Assessment, error) {
	var assessment Assessment
	var responsesJSON []byte
	var resultJSON []byte
	var userID sql.NullString
	var companyID sql.NullString
	var deviceID sql.NullString
	var linkedAt sql.NullTime
	err := row.Scan(
		&assessment.ID,
		&assessment.Tier,
		&responsesJSON,
		&resultJSON,
		&userID,
		&companyID,
		&assessment.Anonymous,
		&assessment.WasAnonymous,
		&deviceID,
		&linkedAt,
		&assessment.CreatedAt,
	)
	if err != nil {
		return Assessment{}, err
	}
	if len(responsesJSON) > 0 {
		if err := json.Unmarshal(responsesJSON, &assessment.Responses); err != nil {
			return Assessment{}, err
		}
	}
	if len(resultJSON) > 0 {
		var result scoring.ScoreResult
		if err := json.Unmarshal(resultJSON, &result); err != nil {
			return Assessment{}, err
		}
		assessment.Result = result
	}
	if userID.Valid {
		assessment.UserID = userID.String
	}
	if companyID.Valid {
		assessment.CompanyID = companyID.String
	}
	if deviceID.Valid {
		assessment.OriginalDeviceID = deviceID.String
	}
	if linkedAt.Valid {
		assessment.LinkedAt = &linkedAt.Time
	}
	return assessment, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
