package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/state/internal/errs"
	"github.com/Astemirdum/library-desk/state/internal/model"
)

type Repository interface {
	GetState(ctx context.Context) (model.State, error)
	// UpsertState writes data when version is newer than the stored one and
	// reports whether the row changed.
	UpsertState(ctx context.Context, data []byte, version int64) (bool, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	stateTableName = `app_state`
	// the whole application state lives in a single row
	stateRowID = 1
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) GetState(ctx context.Context) (model.State, error) {
	query, args, err := qb.Select("json_data", "version", "updated_at").
		From(stateTableName).
		Where(sq.Eq{"id": stateRowID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.State{}, err
	}

	var state model.State
	if err := r.db.GetContext(ctx, &state, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.State{}, errs.ErrNotFound
		}
		r.log.Error("GetState", zap.String("q", query), zap.Error(err))
		return model.State{}, mapPgError(err)
	}
	return state, nil
}

func (r *repository) UpsertState(ctx context.Context, data []byte, version int64) (bool, error) {
	query, args, err := qb.Insert(stateTableName).
		Columns("id", "json_data", "version", "updated_at").
		Values(stateRowID, string(data), version, sq.Expr("now()")).
		Suffix("on conflict (id) do update " +
			"set json_data = excluded.json_data, version = excluded.version, updated_at = excluded.updated_at " +
			"where " + stateTableName + ".version < excluded.version").
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error("UpsertState", zap.String("q", query), zap.Int("size", len(data)), zap.Error(err))
		return false, mapPgError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.InvalidJSONText, pgerrcode.InvalidTextRepresentation:
		return errs.ErrInvalidJSON
	case pgerrcode.UndefinedTable:
		return errors.Wrap(err, "state table is missing, migrations not applied")
	}
	return err
}
