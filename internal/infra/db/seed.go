package db

import (
	"bytes"
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"agency-articles/internal/domain/entity"
)

// DefaultAgencySeed is the fixture file shipped with the repository.
//
//go:embed seeds/system_agencies.yaml
var DefaultAgencySeed []byte

type agencySeedFile struct {
	SystemAgencies []struct {
		ID   int64  `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"system_agencies"`
}

// Execer is satisfied by *sql.DB, *sql.Tx and the circuit-breaker wrapper.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// ParseAgencySeed decodes a YAML fixture. Unknown keys are rejected so a typo
// in the file does not silently drop rows.
func ParseAgencySeed(data []byte) ([]entity.SystemAgency, error) {
	var file agencySeedFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode agency seed: %w", err)
	}

	seen := make(map[int64]bool, len(file.SystemAgencies))
	agencies := make([]entity.SystemAgency, 0, len(file.SystemAgencies))
	for i, a := range file.SystemAgencies {
		name := strings.TrimSpace(a.Name)
		switch {
		case a.ID <= 0:
			return nil, fmt.Errorf("agency seed entry %d: id must be positive", i)
		case name == "":
			return nil, fmt.Errorf("agency seed entry %d: name is required", i)
		case seen[a.ID]:
			return nil, fmt.Errorf("agency seed entry %d: duplicate id %d", i, a.ID)
		}
		seen[a.ID] = true
		agencies = append(agencies, entity.SystemAgency{ID: a.ID, Name: name})
	}
	return agencies, nil
}

// SeedSystemAgencies upserts agencies by primary key and returns how many rows
// were written. It only touches rows; the table itself must already exist.
func SeedSystemAgencies(ctx context.Context, ex Execer, agencies []entity.SystemAgency) (int, error) {
	const query = `
INSERT INTO system_agency (id_system_agency, name)
VALUES ($1, $2)
ON CONFLICT (id_system_agency) DO UPDATE SET name = EXCLUDED.name`

	written := 0
	for _, a := range agencies {
		if _, err := ex.ExecContext(ctx, query, a.ID, a.Name); err != nil {
			return written, fmt.Errorf("seed agency %d: %w", a.ID, err)
		}
		written++
	}
	return written, nil
}
