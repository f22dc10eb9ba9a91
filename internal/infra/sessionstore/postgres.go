package sessionstore

import (
	"context"
	"encoding/json"
	"time"

	"pro-stock-editor/internal/infra"
	"pro-stock-editor/internal/pkg/clock"
	"pro-stock-editor/internal/pkg/pgconv"
	"pro-stock-editor/internal/usecase/stockedit"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	loadSessionSQL = `SELECT state, expires_at FROM stock_edit_sessions WHERE id = $1`

	saveSessionSQL = `
INSERT INTO stock_edit_sessions (id, owner_id, offer_id, generation, state, expires_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
	generation = EXCLUDED.generation,
	state      = EXCLUDED.state,
	expires_at = EXCLUDED.expires_at,
	updated_at = EXCLUDED.updated_at`

	deleteSessionSQL = `DELETE FROM stock_edit_sessions WHERE id = $1`

	purgeSessionsSQL = `DELETE FROM stock_edit_sessions WHERE expires_at <= $1 RETURNING id`
)

// PostgresStore keeps sessions as JSONB rows so that several replicas can
// share them.
type PostgresStore struct {
	db    TxBeginner
	ttl   time.Duration
	clock clock.Clock
}

func NewPostgresStore(db TxBeginner, ttl time.Duration, clk clock.Clock) *PostgresStore {
	return &PostgresStore{
		db:    db,
		ttl:   ttl,
		clock: clk,
	}
}

func (p *PostgresStore) Load(ctx context.Context, id uuid.UUID) (*stockedit.Session, error) {
	var (
		state     []byte
		expiresAt pgtype.Timestamptz
	)
	err := p.db.QueryRow(ctx, loadSessionSQL, pgconv.UUIDToPgtype(id)).Scan(&state, &expiresAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, stockedit.ErrSessionNotFound
		}
		return nil, infra.WrapRepoErr("failed to load edit session", err)
	}

	if !p.clock.Now().Before(pgconv.TimeFromPgtype(expiresAt)) {
		return nil, stockedit.ErrSessionNotFound
	}

	var s stockedit.Session
	if err := json.Unmarshal(state, &s); err != nil {
		return nil, infra.WrapRepoErr("failed to decode edit session", err, infra.KindEncoding)
	}
	return &s, nil
}

func (p *PostgresStore) Save(ctx context.Context, s *stockedit.Session) error {
	state, err := json.Marshal(s)
	if err != nil {
		return infra.WrapRepoErr("failed to encode edit session", err, infra.KindEncoding)
	}
	now := p.clock.Now()

	_, err = withDefaultRetry(ctx, p.db, func(tx DBTX) (struct{}, error) {
		_, err := tx.Exec(ctx, saveSessionSQL,
			pgconv.UUIDToPgtype(s.ID),
			pgconv.UUIDToPgtype(s.OwnerID),
			pgconv.Int8ToPgtype(s.OfferID),
			pgconv.Int8ToPgtype(int64(s.Generation)),
			state,
			pgconv.TimeToPgtype(now.Add(p.ttl)),
			pgconv.TimeToPgtype(now),
		)
		return struct{}{}, err
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save edit session", err)
	}
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := p.db.Exec(ctx, deleteSessionSQL, pgconv.UUIDToPgtype(id)); err != nil {
		return infra.WrapRepoErr("failed to delete edit session", err)
	}
	return nil
}

// Purge deletes expired sessions and returns their ids.
func (p *PostgresStore) Purge(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := p.db.Query(ctx, purgeSessionsSQL, pgconv.TimeToPgtype(p.clock.Now()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to purge edit sessions", err)
	}
	purged, err := pgx.CollectRows(rows, pgx.RowTo[pgtype.UUID])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to purge edit sessions", err)
	}
	ids := make([]uuid.UUID, len(purged))
	for i, id := range purged {
		ids[i] = uuid.UUID(id.Bytes)
	}
	return ids, nil
}
