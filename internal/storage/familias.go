package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/your-org/comunidad/internal/models"
)

// ErrVinculoMismaFamilia rejects a family link whose two sides are the
// same family.
var ErrVinculoMismaFamilia = errors.New("un vínculo debe relacionar dos familias distintas")

func (s *PostgresStore) CrearFamilia(ctx context.Context, f *models.Familia) error {
	f.ID = uuid.New()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO familias (id, iglesia_id, apellido, nombre, estado, jefe_familia_id)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at, updated_at`,
		f.ID, f.IglesiaID, f.Apellido, f.Nombre, f.Estado, f.JefeFamiliaID,
	).Scan(&f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create familia: %w", err)
	}
	return nil
}

func (s *PostgresStore) ObtenerFamilia(ctx context.Context, iglesiaID, id uuid.UUID) (*models.Familia, error) {
	f := &models.Familia{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, iglesia_id, apellido, nombre, estado, jefe_familia_id, created_at, updated_at
		 FROM familias WHERE id = $1 AND iglesia_id = $2`, id, iglesiaID,
	).Scan(&f.ID, &f.IglesiaID, &f.Apellido, &f.Nombre, &f.Estado, &f.JefeFamiliaID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get familia: %w", err)
	}
	return f, nil
}

func (s *PostgresStore) ListarFamilias(ctx context.Context, iglesiaID uuid.UUID) ([]models.Familia, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, iglesia_id, apellido, nombre, estado, jefe_familia_id, created_at, updated_at
		 FROM familias WHERE iglesia_id = $1 ORDER BY apellido, nombre`, iglesiaID)
	if err != nil {
		return nil, fmt.Errorf("list familias: %w", err)
	}
	defer rows.Close()

	var familias []models.Familia
	for rows.Next() {
		var f models.Familia
		if err := rows.Scan(&f.ID, &f.IglesiaID, &f.Apellido, &f.Nombre, &f.Estado,
			&f.JefeFamiliaID, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan familia: %w", err)
		}
		familias = append(familias, f)
	}
	return familias, nil
}

func (s *PostgresStore) ActualizarFamilia(ctx context.Context, f *models.Familia) error {
	err := s.pool.QueryRow(ctx,
		`UPDATE familias SET apellido = $1, nombre = $2, estado = $3, jefe_familia_id = $4, updated_at = now()
		 WHERE id = $5 AND iglesia_id = $6 RETURNING updated_at`,
		f.Apellido, f.Nombre, f.Estado, f.JefeFamiliaID, f.ID, f.IglesiaID,
	).Scan(&f.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return fmt.Errorf("familia no encontrada")
		}
		return fmt.Errorf("update familia: %w", err)
	}
	return nil
}

// MiembrosFamilia returns the persons belonging to a family. Membership
// is a foreign key on personas, not a collection on familias.
func (s *PostgresStore) MiembrosFamilia(ctx context.Context, familiaID uuid.UUID) ([]models.Persona, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+columnasPersona+` FROM personas WHERE familia_id = $1 ORDER BY apellidos, nombres`,
		familiaID)
	if err != nil {
		return nil, fmt.Errorf("list miembros: %w", err)
	}
	defer rows.Close()

	var personas []models.Persona
	for rows.Next() {
		var p models.Persona
		if err := escanearPersona(rows, &p); err != nil {
			return nil, fmt.Errorf("scan miembro: %w", err)
		}
		personas = append(personas, p)
	}
	return personas, nil
}

// --- Vínculos entre familias ---

func (s *PostgresStore) CrearVinculo(ctx context.Context, v *models.VinculoFamiliar) error {
	if v.FamiliaOrigenID == v.FamiliaRelacionadaID {
		return ErrVinculoMismaFamilia
	}
	v.ID = uuid.New()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO vinculos_familiares (id, familia_origen_id, familia_relacionada_id, tipo_vinculo, persona_conectora_id)
		 VALUES ($1, $2, $3, $4, $5) RETURNING created_at`,
		v.ID, v.FamiliaOrigenID, v.FamiliaRelacionadaID, v.TipoVinculo, v.PersonaConectoraID,
	).Scan(&v.CreatedAt)
	if err != nil {
		return fmt.Errorf("create vinculo: %w", err)
	}
	return nil
}

// VinculosDeFamilia returns every link touching the family, whichever
// side it was stored on.
func (s *PostgresStore) VinculosDeFamilia(ctx context.Context, familiaID uuid.UUID) ([]models.VinculoFamiliar, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, familia_origen_id, familia_relacionada_id, tipo_vinculo, persona_conectora_id, created_at
		 FROM vinculos_familiares
		 WHERE familia_origen_id = $1 OR familia_relacionada_id = $1
		 ORDER BY created_at`, familiaID)
	if err != nil {
		return nil, fmt.Errorf("list vinculos: %w", err)
	}
	defer rows.Close()

	var vinculos []models.VinculoFamiliar
	for rows.Next() {
		var v models.VinculoFamiliar
		if err := rows.Scan(&v.ID, &v.FamiliaOrigenID, &v.FamiliaRelacionadaID,
			&v.TipoVinculo, &v.PersonaConectoraID, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vinculo: %w", err)
		}
		vinculos = append(vinculos, v)
	}
	return vinculos, nil
}

// EliminarVinculo deletes a link only when it touches the given family
// and that family belongs to the given church.
func (s *PostgresStore) EliminarVinculo(ctx context.Context, iglesiaID, familiaID, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM vinculos_familiares v
		 USING familias f
		 WHERE v.id = $1
		   AND f.id = $2 AND f.iglesia_id = $3
		   AND (v.familia_origen_id = f.id OR v.familia_relacionada_id = f.id)`,
		id, familiaID, iglesiaID)
	if err != nil {
		return fmt.Errorf("delete vinculo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vínculo no encontrado")
	}
	return nil
}
