package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/your-org/comunidad/internal/models"
)

func (s *PostgresStore) CrearTipoActividad(ctx context.Context, t *models.TipoActividad) error {
	t.ID = uuid.New()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO tipos_actividad (id, iglesia_id, nombre, tipo) VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		t.ID, t.IglesiaID, t.Nombre, t.Tipo,
	).Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("create tipo actividad: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListarTiposActividad(ctx context.Context, iglesiaID uuid.UUID) ([]models.TipoActividad, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, iglesia_id, nombre, tipo, created_at FROM tipos_actividad
		 WHERE iglesia_id = $1 ORDER BY nombre`, iglesiaID)
	if err != nil {
		return nil, fmt.Errorf("list tipos actividad: %w", err)
	}
	defer rows.Close()

	var tipos []models.TipoActividad
	for rows.Next() {
		var t models.TipoActividad
		if err := rows.Scan(&t.ID, &t.IglesiaID, &t.Nombre, &t.Tipo, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tipo actividad: %w", err)
		}
		tipos = append(tipos, t)
	}
	return tipos, nil
}

func (s *PostgresStore) ObtenerTipoActividad(ctx context.Context, iglesiaID, id uuid.UUID) (*models.TipoActividad, error) {
	t := &models.TipoActividad{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, iglesia_id, nombre, tipo, created_at FROM tipos_actividad
		 WHERE id = $1 AND iglesia_id = $2`, id, iglesiaID,
	).Scan(&t.ID, &t.IglesiaID, &t.Nombre, &t.Tipo, &t.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo actividad: %w", err)
	}
	return t, nil
}

// --- Actividades ---

func (s *PostgresStore) CrearActividad(ctx context.Context, a *models.Actividad) error {
	a.ID = uuid.New()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO actividades (id, iglesia_id, tipo_actividad_id, nombre, fecha, hora_inicio, hora_fin, estado)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at, updated_at`,
		a.ID, a.IglesiaID, a.TipoActividadID, a.Nombre, a.Fecha, a.HoraInicio, a.HoraFin, a.Estado,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create actividad: %w", err)
	}
	return nil
}

func (s *PostgresStore) ObtenerActividad(ctx context.Context, iglesiaID, id uuid.UUID) (*models.Actividad, error) {
	a := &models.Actividad{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, iglesia_id, tipo_actividad_id, nombre, fecha, hora_inicio, hora_fin, estado, created_at, updated_at
		 FROM actividades WHERE id = $1 AND iglesia_id = $2`, id, iglesiaID,
	).Scan(&a.ID, &a.IglesiaID, &a.TipoActividadID, &a.Nombre, &a.Fecha,
		&a.HoraInicio, &a.HoraFin, &a.Estado, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get actividad: %w", err)
	}

	horarios, err := s.HorariosDeActividad(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	a.Horarios = horarios
	return a, nil
}

type FiltroActividades struct {
	TipoActividadID *uuid.UUID
	Desde           *time.Time
	Hasta           *time.Time
}

func (s *PostgresStore) ListarActividades(ctx context.Context, iglesiaID uuid.UUID, filtro FiltroActividades) ([]models.Actividad, error) {
	where := "WHERE iglesia_id = $1"
	args := []interface{}{iglesiaID}
	argIdx := 2

	if filtro.TipoActividadID != nil {
		where += fmt.Sprintf(" AND tipo_actividad_id = $%d", argIdx)
		args = append(args, *filtro.TipoActividadID)
		argIdx++
	}
	if filtro.Desde != nil {
		where += fmt.Sprintf(" AND fecha >= $%d", argIdx)
		args = append(args, *filtro.Desde)
		argIdx++
	}
	if filtro.Hasta != nil {
		where += fmt.Sprintf(" AND fecha <= $%d", argIdx)
		args = append(args, *filtro.Hasta)
		argIdx++
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, iglesia_id, tipo_actividad_id, nombre, fecha, hora_inicio, hora_fin, estado, created_at, updated_at
		 FROM actividades `+where+` ORDER BY fecha, hora_inicio`, args...)
	if err != nil {
		return nil, fmt.Errorf("list actividades: %w", err)
	}
	defer rows.Close()

	var actividades []models.Actividad
	for rows.Next() {
		var a models.Actividad
		if err := rows.Scan(&a.ID, &a.IglesiaID, &a.TipoActividadID, &a.Nombre, &a.Fecha,
			&a.HoraInicio, &a.HoraFin, &a.Estado, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan actividad: %w", err)
		}
		actividades = append(actividades, a)
	}
	return actividades, nil
}

func (s *PostgresStore) ActualizarActividad(ctx context.Context, a *models.Actividad) error {
	err := s.pool.QueryRow(ctx,
		`UPDATE actividades SET nombre = $1, fecha = $2, hora_inicio = $3, hora_fin = $4, estado = $5, updated_at = now()
		 WHERE id = $6 AND iglesia_id = $7 RETURNING updated_at`,
		a.Nombre, a.Fecha, a.HoraInicio, a.HoraFin, a.Estado, a.ID, a.IglesiaID,
	).Scan(&a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return fmt.Errorf("actividad no encontrada")
		}
		return fmt.Errorf("update actividad: %w", err)
	}
	return nil
}

// --- Horarios ---

func (s *PostgresStore) CrearHorario(ctx context.Context, h *models.Horario) error {
	h.ID = uuid.New()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO horarios (id, actividad_id, fecha, hora_inicio, hora_fin, notas)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`,
		h.ID, h.ActividadID, h.Fecha, h.HoraInicio, h.HoraFin, h.Notas,
	).Scan(&h.CreatedAt)
	if err != nil {
		return fmt.Errorf("create horario: %w", err)
	}
	return nil
}

func (s *PostgresStore) HorariosDeActividad(ctx context.Context, actividadID uuid.UUID) ([]models.Horario, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, actividad_id, fecha, hora_inicio, hora_fin, notas, created_at
		 FROM horarios WHERE actividad_id = $1 ORDER BY created_at`, actividadID)
	if err != nil {
		return nil, fmt.Errorf("list horarios: %w", err)
	}
	defer rows.Close()

	var horarios []models.Horario
	for rows.Next() {
		var h models.Horario
		if err := rows.Scan(&h.ID, &h.ActividadID, &h.Fecha, &h.HoraInicio, &h.HoraFin,
			&h.Notas, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan horario: %w", err)
		}
		horarios = append(horarios, h)
	}
	return horarios, nil
}

// EliminarHorario deletes a slot only when its activity belongs to the
// given church.
func (s *PostgresStore) EliminarHorario(ctx context.Context, iglesiaID, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM horarios h
		 USING actividades a
		 WHERE h.id = $1 AND a.id = h.actividad_id AND a.iglesia_id = $2`, id, iglesiaID)
	if err != nil {
		return fmt.Errorf("delete horario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("horario no encontrado")
	}
	return nil
}
