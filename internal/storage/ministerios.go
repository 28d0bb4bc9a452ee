package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/your-org/comunidad/internal/models"
)

func (s *PostgresStore) CrearMinisterio(ctx context.Context, m *models.Ministerio) error {
	m.ID = uuid.New()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO ministerios (id, iglesia_id, nombre, descripcion, estado)
		 VALUES ($1, $2, $3, $4, $5) RETURNING created_at, updated_at`,
		m.ID, m.IglesiaID, m.Nombre, m.Descripcion, m.Estado,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create ministerio: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListarMinisterios(ctx context.Context, iglesiaID uuid.UUID) ([]models.Ministerio, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, iglesia_id, nombre, descripcion, estado, created_at, updated_at
		 FROM ministerios WHERE iglesia_id = $1 ORDER BY nombre`, iglesiaID)
	if err != nil {
		return nil, fmt.Errorf("list ministerios: %w", err)
	}
	defer rows.Close()

	var ministerios []models.Ministerio
	for rows.Next() {
		var m models.Ministerio
		if err := rows.Scan(&m.ID, &m.IglesiaID, &m.Nombre, &m.Descripcion, &m.Estado,
			&m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ministerio: %w", err)
		}
		ministerios = append(ministerios, m)
	}
	return ministerios, nil
}

func (s *PostgresStore) ActualizarMinisterio(ctx context.Context, m *models.Ministerio) error {
	err := s.pool.QueryRow(ctx,
		`UPDATE ministerios SET nombre = $1, descripcion = $2, estado = $3, updated_at = now()
		 WHERE id = $4 AND iglesia_id = $5 RETURNING created_at, updated_at`,
		m.Nombre, m.Descripcion, m.Estado, m.ID, m.IglesiaID,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return fmt.Errorf("ministerio no encontrado")
		}
		return fmt.Errorf("update ministerio: %w", err)
	}
	return nil
}

func (s *PostgresStore) AsignarPersonaMinisterio(ctx context.Context, ministerioID, personaID uuid.UUID) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO persona_ministerios (ministerio_id, persona_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		ministerioID, personaID)
	if err != nil {
		return fmt.Errorf("assign persona to ministerio: %w", err)
	}
	return nil
}

func (s *PostgresStore) QuitarPersonaMinisterio(ctx context.Context, ministerioID, personaID uuid.UUID) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM persona_ministerios WHERE ministerio_id = $1 AND persona_id = $2`,
		ministerioID, personaID)
	if err != nil {
		return fmt.Errorf("remove persona from ministerio: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("la persona no pertenece al ministerio")
	}
	return nil
}

func (s *PostgresStore) MinisteriosDePersona(ctx context.Context, personaID uuid.UUID) ([]models.Ministerio, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT m.id, m.iglesia_id, m.nombre, m.descripcion, m.estado, m.created_at, m.updated_at
		 FROM ministerios m JOIN persona_ministerios pm ON pm.ministerio_id = m.id
		 WHERE pm.persona_id = $1 ORDER BY m.nombre`, personaID)
	if err != nil {
		return nil, fmt.Errorf("list ministerios de persona: %w", err)
	}
	defer rows.Close()

	var ministerios []models.Ministerio
	for rows.Next() {
		var m models.Ministerio
		if err := rows.Scan(&m.ID, &m.IglesiaID, &m.Nombre, &m.Descripcion, &m.Estado,
			&m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ministerio: %w", err)
		}
		ministerios = append(ministerios, m)
	}
	return ministerios, nil
}
