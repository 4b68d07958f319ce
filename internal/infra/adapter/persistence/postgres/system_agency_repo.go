package postgres

import (
	"context"
	"time"

	"agency-articles/internal/domain/entity"
	"agency-articles/internal/repository"
)

type SystemAgencyRepo struct {
	db Querier
}

func NewSystemAgencyRepo(db Querier) repository.SystemAgencyRepository {
	return &SystemAgencyRepo{db: db}
}

func (repo *SystemAgencyRepo) List(ctx context.Context) (agencies []*entity.SystemAgency, err error) {
	defer observe("list_system_agencies", time.Now(), &err)

	const query = `
SELECT id_system_agency, name
FROM system_agency
ORDER BY id_system_agency`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, classify("List", err)
	}
	defer func() { _ = rows.Close() }()

	agencies = make([]*entity.SystemAgency, 0, 16)
	for rows.Next() {
		var agency entity.SystemAgency
		if err := rows.Scan(&agency.ID, &agency.Name); err != nil {
			return nil, classify("List: Scan", err)
		}
		agencies = append(agencies, &agency)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("List", err)
	}
	return agencies, nil
}

// Get returns nil, nil when no agency has the given id.
func (repo *SystemAgencyRepo) Get(ctx context.Context, id int64) (agency *entity.SystemAgency, err error) {
	defer observe("get_system_agency", time.Now(), &err)

	const query = `
SELECT id_system_agency, name
FROM system_agency
WHERE id_system_agency = $1
LIMIT 1`
	rows, err := repo.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, classify("Get", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, classify("Get", err)
		}
		return nil, nil
	}
	var a entity.SystemAgency
	if err := rows.Scan(&a.ID, &a.Name); err != nil {
		return nil, classify("Get: Scan", err)
	}
	return &a, nil
}
