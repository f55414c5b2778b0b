// Package conflict translates store failures into API errors. It is the
// only place where a storage level error becomes a domain level one.
package conflict

import (
	"context"
	"errors"
	"regexp"

	"brainagro/cmd/internal/domain/graph"
	"brainagro/cmd/internal/metrics"
	"brainagro/cmd/internal/utils"
	"brainagro/cmd/internal/utils/apierror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"

	ClassConflict  = "conflict"
	ClassInUse     = "in_use"
	ClassReference = "reference"
	ClassInternal  = "internal"
)

var (
	sqliteUnique     = regexp.MustCompile(`UNIQUE constraint failed: (\w+)\.(\w+)`)
	sqliteForeignKey = regexp.MustCompile(`FOREIGN KEY constraint failed`)
	pgKeyDetail      = regexp.MustCompile(`Key \((\w+)\)=`)
)

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionRead   Action = "read"
)

// Operation describes the write that failed, for messages and logs.
type Operation struct {
	Action Action
	Kind   graph.Kind
	ID     int64
}

type Classifier struct {
	Logger  *log.Logger
	Metrics *metrics.Metrics
}

func NewClassifier(logger *log.Logger, m *metrics.Metrics) *Classifier {
	if logger == nil {
		logger = log.New("conflict")
	}
	return &Classifier{Logger: logger, Metrics: m}
}

// Classify maps err to a client error when it is a uniqueness or foreign key
// violation, and to a generic InternalServerError otherwise. Internal errors
// are logged along with the request method and path found in ctx.
func (c *Classifier) Classify(ctx context.Context, op Operation, err error) apierror.ErrorResponse {
	if err == nil {
		return nil
	}

	req := utils.RequestInfoFromContext(ctx)

	if apierr, ok := c.classifyPostgres(op, err); ok {
		c.logClientError(req, op, apierr, err)
		return apierr
	}

	if apierr, ok := c.classifySQLite(op, err); ok {
		c.logClientError(req, op, apierr, err)
		return apierr
	}

	// Only reachable when gorm runs with TranslateError, no detail is left
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		c.Metrics.IncrementStoreError(ClassConflict)
		c.logClientError(req, op, apierror.DuplicateKeyError, err)
		return apierror.DuplicateKeyError
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		apierr := c.foreignKeyError(op, "", "")
		c.logClientError(req, op, apierr, err)
		return apierr
	}

	c.Metrics.IncrementStoreError(ClassInternal)
	c.Logger.Errorf("%s %s - failed to %s %s (id: %d): %v",
		req.Method, req.Path, op.Action, op.Kind, op.ID, err)
	return apierror.InternalServerError
}

func (c *Classifier) classifyPostgres(op Operation, err error) (apierror.ErrorResponse, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil, false
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		c.Metrics.IncrementStoreError(ClassConflict)
		if kind, nk, ok := graph.NaturalKeyByIndex(pgErr.ConstraintName); ok {
			return apierror.NewConflictError(kind.Label(), nk.Label), true
		}
		return c.uniqueError(pgErr.TableName, pgErr.ColumnName), true

	case pgForeignKeyViolation:
		column := pgErr.ColumnName
		if m := pgKeyDetail.FindStringSubmatch(pgErr.Detail); column == "" && m != nil {
			column = m[1]
		}
		return c.foreignKeyError(op, pgErr.TableName, column), true
	}
	return nil, false
}

func (c *Classifier) classifySQLite(op Operation, err error) (apierror.ErrorResponse, bool) {
	msg := err.Error()

	if m := sqliteUnique.FindStringSubmatch(msg); m != nil {
		c.Metrics.IncrementStoreError(ClassConflict)
		return c.uniqueError(m[1], m[2]), true
	}

	if sqliteForeignKey.MatchString(msg) {
		return c.foreignKeyError(op, "", ""), true
	}
	return nil, false
}

// uniqueError builds "A <entity> with this <key> already exists" out of the
// table (and column, when known) reported by the store.
func (c *Classifier) uniqueError(table, column string) apierror.ErrorResponse {
	kind, ok := graph.KindByTable(table)
	if !ok {
		return apierror.DuplicateKeyError
	}

	if nk, ok := kind.NaturalKeyByColumn(column); ok {
		return apierror.NewConflictError(kind.Label(), nk.Label)
	}

	keys := kind.NaturalKeys()
	if len(keys) == 1 {
		return apierror.NewConflictError(kind.Label(), keys[0].Label)
	}
	return apierror.NewConflictError(kind.Label(), "value")
}

// foreignKeyError handles the race where a referenced row disappeared, or a
// dependent row appeared, between the pre-flight checks and the write.
func (c *Classifier) foreignKeyError(op Operation, table, column string) apierror.ErrorResponse {
	if op.Action == ActionDelete {
		c.Metrics.IncrementStoreError(ClassInUse)
		dependent := "dependent record"
		if kind, ok := graph.KindByTable(table); ok {
			dependent = kind.Label()
		}
		return apierror.NewInUseError(op.Kind.Title(), dependent)
	}

	c.Metrics.IncrementStoreError(ClassReference)
	if !op.Kind.Valid() {
		return apierror.NewUnresolvedReferenceError()
	}

	refs := op.Kind.References()
	for _, ref := range refs {
		if ref.Column == column {
			return apierror.NewReferenceNotFoundError(ref.Field, ref.Target.Label())
		}
	}

	// SQLite does not name the column, which is only unambiguous with a single reference
	if len(refs) == 1 {
		return apierror.NewReferenceNotFoundError(refs[0].Field, refs[0].Target.Label())
	}
	return apierror.NewUnresolvedReferenceError()
}

func (c *Classifier) logClientError(req *utils.RequestInfo, op Operation, apierr apierror.ErrorResponse, err error) {
	c.Logger.Warnf("%s %s - %s %s rejected by the store (status %d): %v",
		req.Method, req.Path, op.Action, op.Kind, apierr.Code(), err)
}
