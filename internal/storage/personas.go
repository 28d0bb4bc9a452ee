package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/your-org/comunidad/internal/models"
	"github.com/your-org/comunidad/internal/parentesco"
)

const columnasPersona = `id, iglesia_id, nombres, apellidos, correo, telefono, celular, direccion,
	sexo, estado_civil, ocupacion, foto_key, notas, rol, familia_id, convertida_a_id, created_at, updated_at`

func escanearPersona(row pgx.Row, p *models.Persona) error {
	return row.Scan(&p.ID, &p.IglesiaID, &p.Nombres, &p.Apellidos, &p.Correo, &p.Telefono,
		&p.Celular, &p.Direccion, &p.Sexo, &p.EstadoCivil, &p.Ocupacion, &p.FotoKey,
		&p.Notas, &p.Rol, &p.FamiliaID, &p.ConvertidaAID, &p.CreatedAt, &p.UpdatedAt)
}

func (s *PostgresStore) CrearPersona(ctx context.Context, p *models.Persona) error {
	p.ID = uuid.New()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO personas (id, iglesia_id, nombres, apellidos, correo, telefono, celular, direccion,
			sexo, estado_civil, ocupacion, notas, rol, familia_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING created_at, updated_at`,
		p.ID, p.IglesiaID, p.Nombres, p.Apellidos, p.Correo, p.Telefono, p.Celular, p.Direccion,
		p.Sexo, p.EstadoCivil, p.Ocupacion, p.Notas, p.Rol, p.FamiliaID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create persona: %w", err)
	}
	return nil
}

func (s *PostgresStore) ObtenerPersona(ctx context.Context, iglesiaID, id uuid.UUID) (*models.Persona, error) {
	p := &models.Persona{}
	row := s.pool.QueryRow(ctx,
		`SELECT `+columnasPersona+` FROM personas WHERE id = $1 AND iglesia_id = $2`, id, iglesiaID)
	if err := escanearPersona(row, p); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get persona: %w", err)
	}
	return p, nil
}

type FiltroPersonas struct {
	Rol       models.Rol
	FamiliaID *uuid.UUID
	Buscar    string
}

func (s *PostgresStore) ListarPersonas(ctx context.Context, iglesiaID uuid.UUID, filtro FiltroPersonas) ([]models.Persona, error) {
	where := "WHERE iglesia_id = $1"
	args := []interface{}{iglesiaID}
	argIdx := 2

	if filtro.Rol != "" {
		where += fmt.Sprintf(" AND rol = $%d", argIdx)
		args = append(args, filtro.Rol)
		argIdx++
	}
	if filtro.FamiliaID != nil {
		where += fmt.Sprintf(" AND familia_id = $%d", argIdx)
		args = append(args, *filtro.FamiliaID)
		argIdx++
	}
	if filtro.Buscar != "" {
		where += fmt.Sprintf(" AND (nombres ILIKE $%d OR apellidos ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+filtro.Buscar+"%")
		argIdx++
	}

	rows, err := s.pool.Query(ctx,
		`SELECT `+columnasPersona+` FROM personas `+where+` ORDER BY apellidos, nombres`, args...)
	if err != nil {
		return nil, fmt.Errorf("list personas: %w", err)
	}
	defer rows.Close()

	var personas []models.Persona
	for rows.Next() {
		var p models.Persona
		if err := escanearPersona(rows, &p); err != nil {
			return nil, fmt.Errorf("scan persona: %w", err)
		}
		personas = append(personas, p)
	}
	return personas, nil
}

// ActualizarPersona updates editable fields. Rol is deliberately not
// updatable here; it only changes through ConvertirPersona.
func (s *PostgresStore) ActualizarPersona(ctx context.Context, p *models.Persona) error {
	err := s.pool.QueryRow(ctx,
		`UPDATE personas SET nombres = $1, apellidos = $2, correo = $3, telefono = $4, celular = $5,
			direccion = $6, sexo = $7, estado_civil = $8, ocupacion = $9, notas = $10, updated_at = now()
		 WHERE id = $11 AND iglesia_id = $12
		 RETURNING updated_at`,
		p.Nombres, p.Apellidos, p.Correo, p.Telefono, p.Celular, p.Direccion,
		p.Sexo, p.EstadoCivil, p.Ocupacion, p.Notas, p.ID, p.IglesiaID,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return fmt.Errorf("persona no encontrada")
		}
		return fmt.Errorf("update persona: %w", err)
	}
	return nil
}

func (s *PostgresStore) ActualizarFotoKey(ctx context.Context, iglesiaID, id uuid.UUID, key string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE personas SET foto_key = $1, updated_at = now() WHERE id = $2 AND iglesia_id = $3`,
		key, id, iglesiaID)
	if err != nil {
		return fmt.Errorf("update foto key: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("persona no encontrada")
	}
	return nil
}

// AsignarFamilia sets or clears a person's family membership.
func (s *PostgresStore) AsignarFamilia(ctx context.Context, iglesiaID, personaID uuid.UUID, familiaID *uuid.UUID) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE personas SET familia_id = $1, updated_at = now() WHERE id = $2 AND iglesia_id = $3`,
		familiaID, personaID, iglesiaID)
	if err != nil {
		return fmt.Errorf("assign familia: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("persona no encontrada")
	}
	return nil
}

// ConvertirPersona runs the VISITA -> MIEMBRO conversion in one
// transaction: it copies the visitor's personal fields into a new
// member row and sets the back-reference on the original. Attendance
// and relation records stay attached to the original id.
func (s *PostgresStore) ConvertirPersona(ctx context.Context, iglesiaID, personaID uuid.UUID) (*models.Persona, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin conversion: %w", err)
	}
	defer tx.Rollback(ctx)

	visita := &models.Persona{}
	row := tx.QueryRow(ctx,
		`SELECT `+columnasPersona+` FROM personas WHERE id = $1 AND iglesia_id = $2 FOR UPDATE`,
		personaID, iglesiaID)
	if err := escanearPersona(row, visita); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get visita: %w", err)
	}

	if err := visita.PuedeConvertirse(); err != nil {
		return nil, err
	}

	miembro := &models.Persona{
		ID:          uuid.New(),
		IglesiaID:   visita.IglesiaID,
		Nombres:     visita.Nombres,
		Apellidos:   visita.Apellidos,
		Correo:      visita.Correo,
		Telefono:    visita.Telefono,
		Celular:     visita.Celular,
		Direccion:   visita.Direccion,
		Sexo:        visita.Sexo,
		EstadoCivil: visita.EstadoCivil,
		Ocupacion:   visita.Ocupacion,
		Notas:       visita.Notas,
		Rol:         models.RolMiembro,
		FamiliaID:   visita.FamiliaID,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO personas (id, iglesia_id, nombres, apellidos, correo, telefono, celular, direccion,
			sexo, estado_civil, ocupacion, notas, rol, familia_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING created_at, updated_at`,
		miembro.ID, miembro.IglesiaID, miembro.Nombres, miembro.Apellidos, miembro.Correo,
		miembro.Telefono, miembro.Celular, miembro.Direccion, miembro.Sexo, miembro.EstadoCivil,
		miembro.Ocupacion, miembro.Notas, miembro.Rol, miembro.FamiliaID,
	).Scan(&miembro.CreatedAt, &miembro.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create miembro: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE personas SET convertida_a_id = $1, updated_at = now() WHERE id = $2`,
		miembro.ID, visita.ID); err != nil {
		return nil, fmt.Errorf("set back-reference: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit conversion: %w", err)
	}
	return miembro, nil
}

// --- Relaciones familiares ---

func (s *PostgresStore) CrearRelacion(ctx context.Context, r *models.RelacionFamiliar) error {
	r.ID = uuid.New()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO relaciones_familiares (id, persona_id, familiar_id, tipo_relacion)
		 VALUES ($1, $2, $3, $4) RETURNING created_at`,
		r.ID, r.PersonaID, r.FamiliarID, r.TipoRelacion,
	).Scan(&r.CreatedAt)
	if err != nil {
		return fmt.Errorf("create relacion: %w", err)
	}
	return nil
}

// EliminarRelacion deletes a relation only when its source person
// belongs to the given church, so one tenant cannot remove another's
// records by id.
func (s *PostgresStore) EliminarRelacion(ctx context.Context, iglesiaID, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM relaciones_familiares r
		 USING personas p
		 WHERE r.id = $1 AND p.id = r.persona_id AND p.iglesia_id = $2`, id, iglesiaID)
	if err != nil {
		return fmt.Errorf("delete relacion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("relación no encontrada")
	}
	return nil
}

func (s *PostgresStore) relacionesDe(ctx context.Context, query string, personaID uuid.UUID) ([]parentesco.RelacionConPersona, error) {
	rows, err := s.pool.Query(ctx, query, personaID)
	if err != nil {
		return nil, fmt.Errorf("list relaciones: %w", err)
	}
	defer rows.Close()

	var relaciones []parentesco.RelacionConPersona
	for rows.Next() {
		var rc parentesco.RelacionConPersona
		if err := rows.Scan(
			&rc.Relacion.ID, &rc.Relacion.PersonaID, &rc.Relacion.FamiliarID,
			&rc.Relacion.TipoRelacion, &rc.Relacion.CreatedAt,
			&rc.Persona.ID, &rc.Persona.IglesiaID, &rc.Persona.Nombres, &rc.Persona.Apellidos,
			&rc.Persona.Correo, &rc.Persona.Telefono, &rc.Persona.Celular, &rc.Persona.Direccion,
			&rc.Persona.Sexo, &rc.Persona.EstadoCivil, &rc.Persona.Ocupacion, &rc.Persona.FotoKey,
			&rc.Persona.Notas, &rc.Persona.Rol, &rc.Persona.FamiliaID, &rc.Persona.ConvertidaAID,
			&rc.Persona.CreatedAt, &rc.Persona.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan relacion: %w", err)
		}
		relaciones = append(relaciones, rc)
	}
	return relaciones, nil
}

// RelacionesDirectas returns explicit relations recorded from
// personaID's side, with the related person resolved.
func (s *PostgresStore) RelacionesDirectas(ctx context.Context, personaID uuid.UUID) ([]parentesco.RelacionConPersona, error) {
	return s.relacionesDe(ctx,
		`SELECT r.id, r.persona_id, r.familiar_id, r.tipo_relacion, r.created_at, `+prefijarColumnasPersona("p")+`
		 FROM relaciones_familiares r JOIN personas p ON p.id = r.familiar_id
		 WHERE r.persona_id = $1 ORDER BY r.created_at`, personaID)
}

// RelacionesInversas returns relations where personaID is the target;
// the calling side inverts the label for display.
func (s *PostgresStore) RelacionesInversas(ctx context.Context, personaID uuid.UUID) ([]parentesco.RelacionConPersona, error) {
	return s.relacionesDe(ctx,
		`SELECT r.id, r.persona_id, r.familiar_id, r.tipo_relacion, r.created_at, `+prefijarColumnasPersona("p")+`
		 FROM relaciones_familiares r JOIN personas p ON p.id = r.persona_id
		 WHERE r.familiar_id = $1 ORDER BY r.created_at`, personaID)
}

// CoMiembrosFamilia returns the other persons sharing personaID's
// family, or nothing when the person has no family.
func (s *PostgresStore) CoMiembrosFamilia(ctx context.Context, personaID uuid.UUID) ([]models.Persona, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+prefijarColumnasPersona("p2")+`
		 FROM personas p1
		 JOIN personas p2 ON p2.familia_id = p1.familia_id AND p2.id <> p1.id
		 WHERE p1.id = $1 AND p1.familia_id IS NOT NULL
		 ORDER BY p2.apellidos, p2.nombres`, personaID)
	if err != nil {
		return nil, fmt.Errorf("list co-miembros: %w", err)
	}
	defer rows.Close()

	var personas []models.Persona
	for rows.Next() {
		var p models.Persona
		if err := escanearPersona(rows, &p); err != nil {
			return nil, fmt.Errorf("scan co-miembro: %w", err)
		}
		personas = append(personas, p)
	}
	return personas, nil
}

func prefijarColumnasPersona(alias string) string {
	return alias + `.id, ` + alias + `.iglesia_id, ` + alias + `.nombres, ` + alias + `.apellidos, ` +
		alias + `.correo, ` + alias + `.telefono, ` + alias + `.celular, ` + alias + `.direccion, ` +
		alias + `.sexo, ` + alias + `.estado_civil, ` + alias + `.ocupacion, ` + alias + `.foto_key, ` +
		alias + `.notas, ` + alias + `.rol, ` + alias + `.familia_id, ` + alias + `.convertida_a_id, ` +
		alias + `.created_at, ` + alias + `.updated_at`
}
