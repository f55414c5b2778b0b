package service

import (
	"context"
	"net/http"

	"brainagro/cmd/internal/domain/conflict"
	"brainagro/cmd/internal/domain/graph"
	"brainagro/cmd/internal/metrics"
	"brainagro/cmd/internal/utils"
	"brainagro/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
)

// CrudRepository is what every registry service needs from its store.
// Finders return (nil, nil) when nothing matches.
type CrudRepository[T any] interface {
	FindAll(ctx context.Context) ([]*T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, row *T) error
	Save(ctx context.Context, row *T) error
	Delete(ctx context.Context, row *T) error
}

// Registry bundles the collaborators shared by the entity services and
// runs the checks every mutation goes through, in this order: field rules,
// cross-field rules (owned by each service), references, natural keys.
type Registry struct {
	Graph      *graph.Graph
	Classifier *conflict.Classifier
	Validate   *validator.Validate
	Metrics    *metrics.Metrics
}

func NewRegistry(g *graph.Graph, classifier *conflict.Classifier, validate *validator.Validate, m *metrics.Metrics) *Registry {
	return &Registry{
		Graph:      g,
		Classifier: classifier,
		Validate:   validate,
		Metrics:    m,
	}
}

// validate trims every string in req and runs its struct tags.
func (r *Registry) validate(req any) apierror.ErrorResponse {
	utils.Sanitize(req)
	if valerr := r.Validate.Struct(req); valerr != nil {
		return apierror.FromValidationError(valerr)
	}
	return nil
}

// checkReferences reports every supplied foreign key pointing nowhere, all at once.
func (r *Registry) checkReferences(ctx context.Context, op conflict.Operation, refs map[string]int64) apierror.ErrorResponse {
	if len(refs) == 0 {
		return nil
	}

	missing, err := r.Graph.MissingReferences(ctx, op.Kind, refs)
	if err != nil {
		return r.Classifier.Classify(ctx, op, err)
	}

	if len(missing) == 0 {
		return nil
	}

	problems := apierror.NewStructured(http.StatusUnprocessableEntity)
	for _, m := range missing {
		problems.Add(m.Field, "Related "+m.Target.Label()+" not found")
	}
	return problems
}

// checkUnique fails when another row of the same kind (any row but self)
// already holds value in the natural key column.
func (r *Registry) checkUnique(ctx context.Context, op conflict.Operation, column string, value any) apierror.ErrorResponse {
	nk, ok := op.Kind.NaturalKeyByColumn(column)
	if !ok {
		return nil
	}

	id, found, err := r.Graph.FindByNaturalKey(ctx, op.Kind, column, value)
	if err != nil {
		return r.Classifier.Classify(ctx, op, err)
	}

	if found && id != op.ID {
		return apierror.NewConflictError(op.Kind.Label(), nk.Label)
	}
	return nil
}

// checkDeletable refuses to delete a row that is still referenced.
func (r *Registry) checkDeletable(ctx context.Context, op conflict.Operation) apierror.ErrorResponse {
	inUse, dependent, err := r.Graph.InUse(ctx, op.Kind, op.ID)
	if err != nil {
		return r.Classifier.Classify(ctx, op, err)
	}

	if inUse {
		return apierror.NewInUseError(op.Kind.Title(), dependent.Label())
	}
	return nil
}

func (r *Registry) storeError(ctx context.Context, op conflict.Operation, err error) apierror.ErrorResponse {
	return r.Classifier.Classify(ctx, op, err)
}

func (r *Registry) recordMutation(op conflict.Operation) {
	r.Metrics.IncrementMutation(string(op.Kind), string(op.Action))
}

func notFound(kind graph.Kind, id int64) apierror.ErrorResponse {
	return apierror.NewNotFoundError(kind.Title(), id)
}

func operation(action conflict.Action, kind graph.Kind, id int64) conflict.Operation {
	return conflict.Operation{Action: action, Kind: kind, ID: id}
}

// findOrFail loads the row targeted by o, a missing row is a 404.
func findOrFail[T any](ctx context.Context, r *Registry, repo CrudRepository[T], o conflict.Operation) (*T, apierror.ErrorResponse) {
	row, err := repo.FindByID(ctx, o.ID)
	if err != nil {
		return nil, r.storeError(ctx, o, err)
	}

	if row == nil {
		return nil, notFound(o.Kind, o.ID)
	}
	return row, nil
}

func listAll[T any, R any](ctx context.Context, r *Registry, repo CrudRepository[T], kind graph.Kind, fn func(*T) *R) ([]*R, apierror.ErrorResponse) {
	rows, err := repo.FindAll(ctx)
	if err != nil {
		return nil, r.storeError(ctx, operation(conflict.ActionRead, kind, 0), err)
	}
	return mapAll(rows, fn), nil
}

// deleteRow removes the row targeted by o unless a dependent still points at it.
func deleteRow[T any](ctx context.Context, r *Registry, repo CrudRepository[T], o conflict.Operation) apierror.ErrorResponse {
	row, apierr := findOrFail(ctx, r, repo, o)
	if apierr != nil {
		return apierr
	}

	if apierr = r.checkDeletable(ctx, o); apierr != nil {
		return apierr
	}

	if err := repo.Delete(ctx, row); err != nil {
		return r.storeError(ctx, o, err)
	}

	r.recordMutation(o)
	return nil
}
