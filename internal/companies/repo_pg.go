package companies

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, company Company) error {
	const query = `
INSERT INTO companies (id, name, industry, size_band, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		company.ID,
		company.Name,
		nullableString(company.Industry),
		nullableString(company.SizeBand),
	)
	return err
}

func (r *PGRepo) Update(ctx context.Context, company Company) error {
	const query = `
UPDATE companies
SET name = $2, industry = $3, size_band = $4, updated_at = now()
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		company.ID,
		company.Name,
		nullableString(company.Industry),
		nullableString(company.SizeBand),
	)
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

func (r *PGRepo) GetByID(ctx context.Context, companyID string) (Company, error) {
	const query = `
SELECT id, name, industry, size_band, created_at, updated_at
FROM companies
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, companyID)
	company, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Company{}, ErrNotFound
		}
		return Company{}, err
	}
	return company, nil
}

func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Company, error) {
	const query = `
SELECT id, name, industry, size_band, created_at, updated_at
FROM companies
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := []Company{}
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

func (r *PGRepo) Delete(ctx context.Context, companyID string) error {
	const query = `DELETE FROM companies WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, companyID)
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

func scanCompany(row rowScanner) (Company, error) {
	var company Company
	var industry sql.NullString
	var sizeBand sql.NullString
	err := row.Scan(
		&company.ID,
		&company.Name,
		&industry,
		&sizeBand,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		return Company{}, err
	}
	if industry.Valid {
		company.Industry = industry.String
	}
	if sizeBand.Valid {
		company.SizeBand = sizeBand.String
	}
	return company, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
