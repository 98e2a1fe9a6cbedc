package tracking

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// PGRepo stores tracking records in Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, record Record) error {
	const query = `
INSERT INTO anonymous_assessments (id, device_id, assessment_instance_id, device_fingerprint, is_linked, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	fpJSON, err := json.Marshal(record.DeviceFingerprint)
	if err != nil {
		return err
	}
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err = r.DB.ExecContext(ctx, query,
		record.ID,
		record.DeviceID,
		record.AssessmentInstanceID,
		fpJSON,
		record.IsLinked,
		createdAt,
	)
	return err
}

func (r *PGRepo) ListUnlinkedByDevice(ctx context.Context, deviceID string) ([]Record, error) {
	const query = `
SELECT id, device_id, assessment_instance_id, device_fingerprint, is_linked, linked_user_id, linked_company_id, linked_at, created_at
FROM anonymous_assessments
WHERE device_id = $1 AND is_linked = false
ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, deviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

func (r *PGRepo) MarkLinked(ctx context.Context, recordID, userID, companyID string, linkedAt time.Time) error {
	const query = `
UPDATE anonymous_assessments
SET is_linked = true, linked_user_id = $2, linked_company_id = $3, linked_at = $4
WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, recordID, userID, nullableString(companyID), linkedAt)
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

func scanRecord(rows *sql.Rows) (Record, error) {
	var record Record
	var fpJSON []byte
	var linkedUserID sql.NullString
	var linkedCompanyID sql.NullString
	var linkedAt sql.NullTime
	err := rows.Scan(
		&record.ID,
		&record.DeviceID,
		&record.AssessmentInstanceID,
		&fpJSON,
		&record.IsLinked,
		&linkedUserID,
		&linkedCompanyID,
		&linkedAt,
		&record.CreatedAt,
	)
	if err != nil {
		return Record{}, err
	}
	if len(fpJSON) > 0 {
		if err := json.Unmarshal(fpJSON, &record.DeviceFingerprint); err != nil {
			return Record{}, err
		}
	}
	if linkedUserID.Valid {
		record.LinkedUserID = linkedUserID.String
	}
	if linkedCompanyID.Valid {
		record.LinkedCompanyID = linkedCompanyID.String
	}
	if linkedAt.Valid {
		record.LinkedAt = &linkedAt.Time
	}
	return record, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
