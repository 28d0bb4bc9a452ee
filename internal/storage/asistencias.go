package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/your-org/comunidad/internal/models"
)

func (s *PostgresStore) CrearAsistencia(ctx context.Context, a *models.Asistencia) error {
	a.ID = uuid.New()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO asistencias (id, iglesia_id, persona_id, actividad_id, horario_id, invitada_por_id, fecha, observaciones)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at`,
		a.ID, a.IglesiaID, a.PersonaID, a.ActividadID, a.HorarioID, a.InvitadaPorID, a.Fecha, a.Observaciones,
	).Scan(&a.CreatedAt)
	if err != nil {
		return fmt.Errorf("create asistencia: %w", err)
	}
	return nil
}

type FiltroAsistencias struct {
	PersonaID   *uuid.UUID
	ActividadID *uuid.UUID
	Desde       *time.Time
	Hasta       *time.Time
}

func (s *PostgresStore) ListarAsistencias(ctx context.Context, iglesiaID uuid.UUID, filtro FiltroAsistencias, limit, offset int) ([]models.Asistencia, int, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}

	baseWhere := "WHERE iglesia_id = $1"
	args := []interface{}{iglesiaID}
	argIdx := 2

	if filtro.PersonaID != nil {
		baseWhere += fmt.Sprintf(" AND persona_id = $%d", argIdx)
		args = append(args, *filtro.PersonaID)
		argIdx++
	}
	if filtro.ActividadID != nil {
		baseWhere += fmt.Sprintf(" AND actividad_id = $%d", argIdx)
		args = append(args, *filtro.ActividadID)
		argIdx++
	}
	if filtro.Desde != nil {
		baseWhere += fmt.Sprintf(" AND fecha >= $%d", argIdx)
		args = append(args, *filtro.Desde)
		argIdx++
	}
	if filtro.Hasta != nil {
		baseWhere += fmt.Sprintf(" AND fecha <= $%d", argIdx)
		args = append(args, *filtro.Hasta)
		argIdx++
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM asistencias " + baseWhere
	if err := s.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count asistencias: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT id, iglesia_id, persona_id, actividad_id, horario_id, invitada_por_id, fecha, observaciones, created_at
		 FROM asistencias %s ORDER BY fecha DESC, created_at DESC LIMIT $%d OFFSET $%d`,
		baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query asistencias: %w", err)
	}
	defer rows.Close()

	var asistencias []models.Asistencia
	for rows.Next() {
		var a models.Asistencia
		if err := rows.Scan(&a.ID, &a.IglesiaID, &a.PersonaID, &a.ActividadID, &a.HorarioID,
			&a.InvitadaPorID, &a.Fecha, &a.Observaciones, &a.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan asistencia: %w", err)
		}
		asistencias = append(asistencias, a)
	}
	return asistencias, total, nil
}

// --- Resumen diario ---

// IncrementarResumen applies one attendance event to the daily rollup.
// The events stream delivers at-least-once, so the asistencia id is
// recorded in the same transaction and a redelivered event is a no-op.
func (s *PostgresStore) IncrementarResumen(ctx context.Context, asistenciaID, iglesiaID uuid.UUID, fecha time.Time, esVisita bool) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin resumen: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`INSERT INTO resumen_procesados (asistencia_id) VALUES ($1) ON CONFLICT DO NOTHING`,
		asistenciaID)
	if err != nil {
		return fmt.Errorf("record processed asistencia: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Already applied on an earlier delivery.
		return nil
	}

	visitas := 0
	if esVisita {
		visitas = 1
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO resumen_asistencias (iglesia_id, fecha, total, visitas, updated_at)
		 VALUES ($1, $2, 1, $3, now())
		 ON CONFLICT (iglesia_id, fecha)
		 DO UPDATE SET total = resumen_asistencias.total + 1,
		               visitas = resumen_asistencias.visitas + $3,
		               updated_at = now()`,
		iglesiaID, fecha, visitas); err != nil {
		return fmt.Errorf("increment resumen: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit resumen: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListarResumen(ctx context.Context, iglesiaID uuid.UUID, desde, hasta *time.Time) ([]models.ResumenAsistencia, error) {
	where := "WHERE iglesia_id = $1"
	args := []interface{}{iglesiaID}
	argIdx := 2

	if desde != nil {
		where += fmt.Sprintf(" AND fecha >= $%d", argIdx)
		args = append(args, *desde)
		argIdx++
	}
	if hasta != nil {
		where += fmt.Sprintf(" AND fecha <= $%d", argIdx)
		args = append(args, *hasta)
		argIdx++
	}

	rows, err := s.pool.Query(ctx,
		`SELECT iglesia_id, fecha, total, visitas, updated_at
		 FROM resumen_asistencias `+where+` ORDER BY fecha DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list resumen: %w", err)
	}
	defer rows.Close()

	var resumen []models.ResumenAsistencia
	for rows.Next() {
		var r models.ResumenAsistencia
		if err := rows.Scan(&r.IglesiaID, &r.Fecha, &r.Total, &r.Visitas, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan resumen: %w", err)
		}
		resumen = append(resumen, r)
	}
	return resumen, nil
}
