package conflict_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"brainagro/cmd/internal/domain/conflict"
	"brainagro/cmd/internal/domain/database/databasetest"
	"brainagro/cmd/internal/domain/entity"
	"brainagro/cmd/internal/domain/graph"
	"brainagro/cmd/internal/metrics"
	"brainagro/cmd/internal/utils"
	"brainagro/cmd/internal/utils/apierror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newClassifier(t *testing.T) (*conflict.Classifier, *bytes.Buffer, *metrics.Metrics) {
	t.Helper()

	buf := &bytes.Buffer{}
	logger := log.New("test")
	logger.SetOutput(buf)

	m := metrics.New(prometheus.NewRegistry())
	return conflict.NewClassifier(logger, m), buf, m
}

func message(t *testing.T, apierr apierror.ErrorResponse) string {
	t.Helper()

	simple, ok := apierr.(*apierror.APIError)
	require.True(t, ok, "expected *apierror.APIError, got %T", apierr)
	return simple.Message
}

func TestClassifyPostgresUniqueViolation(t *testing.T) {
	c, _, m := newClassifier(t)
	pgErr := &pgconn.PgError{
		Code:           "23505",
		TableName:      "producers",
		ConstraintName: "uq_producers_tax_id",
	}

	apierr := c.Classify(context.Background(), conflict.Operation{Action: conflict.ActionCreate, Kind: graph.KindProducer},
		fmt.Errorf("insert: %w", pgErr))

	assert.Equal(t, http.StatusBadRequest, apierr.Code())
	assert.Equal(t, "A producer with this tax id already exists", message(t, apierr))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreErrors.WithLabelValues(conflict.ClassConflict)))
}

func TestClassifyPostgresUniqueViolationUnknownConstraint(t *testing.T) {
	c, _, _ := newClassifier(t)

	apierr := c.Classify(context.Background(), conflict.Operation{Action: conflict.ActionCreate, Kind: graph.KindState},
		&pgconn.PgError{Code: "23505", TableName: "states", ConstraintName: "states_pkey"})
	assert.Equal(t, http.StatusBadRequest, apierr.Code())
	assert.Equal(t, "A state with this value already exists", message(t, apierr))

	apierr = c.Classify(context.Background(), conflict.Operation{Action: conflict.ActionCreate},
		&pgconn.PgError{Code: "23505", TableName: "something_else"})
	assert.Same(t, apierror.DuplicateKeyError, apierr)
}

func TestClassifyPostgresForeignKeyViolation(t *testing.T) {
	c, _, _ := newClassifier(t)
	pgErr := &pgconn.PgError{
		Code:      "23503",
		TableName: "farms",
		Detail:    `Key (city_id)=(7) is not present in table "cities".`,
	}

	apierr := c.Classify(context.Background(), conflict.Operation{Action: conflict.ActionCreate, Kind: graph.KindFarm}, pgErr)
	require.Equal(t, http.StatusUnprocessableEntity, apierr.Code())

	structured, ok := apierr.(*apierror.StructuredError)
	require.True(t, ok)
	assert.Equal(t, []string{"Related city not found"}, structured.Errors["city_id"])

	// The same code on delete means a dependent row appeared
	pgErr = &pgconn.PgError{Code: "23503", TableName: "cities"}
	apierr = c.Classify(context.Background(), conflict.Operation{Action: conflict.ActionDelete, Kind: graph.KindState, ID: 1}, pgErr)
	assert.Equal(t, http.StatusConflict, apierr.Code())
	assert.Equal(t, "State is still referenced by at least one city", message(t, apierr))
}

func TestClassifySQLiteErrors(t *testing.T) {
	db := databasetest.Open(t)
	c, _, _ := newClassifier(t)
	ctx := context.Background()

	state := &entity.State{Name: "Minas Gerais", Abbreviation: "MG"}
	require.NoError(t, db.Create(state).Error)
	require.NoError(t, db.Create(&entity.City{Name: "Uberaba", StateID: state.ID}).Error)

	t.Run("unique violation", func(t *testing.T) {
		err := db.Create(&entity.State{Name: "Other", Abbreviation: "MG"}).Error
		require.Error(t, err)

		apierr := c.Classify(ctx, conflict.Operation{Action: conflict.ActionCreate, Kind: graph.KindState}, err)
		assert.Equal(t, http.StatusBadRequest, apierr.Code())
		assert.Equal(t, "A state with this abbreviation already exists", message(t, apierr))
	})

	t.Run("delete while referenced", func(t *testing.T) {
		err := db.Delete(state).Error
		require.Error(t, err)

		apierr := c.Classify(ctx, conflict.Operation{Action: conflict.ActionDelete, Kind: graph.KindState, ID: state.ID}, err)
		assert.Equal(t, http.StatusConflict, apierr.Code())
	})

	t.Run("missing reference", func(t *testing.T) {
		err := db.Create(&entity.City{Name: "Ghost", StateID: state.ID + 1}).Error
		require.Error(t, err)

		apierr := c.Classify(ctx, conflict.Operation{Action: conflict.ActionCreate, Kind: graph.KindCity}, err)
		require.Equal(t, http.StatusUnprocessableEntity, apierr.Code())

		structured, ok := apierr.(*apierror.StructuredError)
		require.True(t, ok)
		assert.Equal(t, []string{"Related state not found"}, structured.Errors["state_id"])
	})

	t.Run("missing reference on a kind with several", func(t *testing.T) {
		city := &entity.City{Name: "Uberlândia", StateID: state.ID}
		require.NoError(t, db.Create(city).Error)

		err := db.Omit("Producer", "City").Create(&entity.Farm{
			Name:       "Orphan",
			TotalArea:  10,
			ProducerID: 42,
			CityID:     city.ID,
		}).Error
		require.Error(t, err)

		apierr := c.Classify(ctx, conflict.Operation{Action: conflict.ActionCreate, Kind: graph.KindFarm}, err)
		require.Equal(t, http.StatusUnprocessableEntity, apierr.Code())

		// Same shape as the checks made before the write
		structured, ok := apierr.(*apierror.StructuredError)
		require.True(t, ok, "expected *apierror.StructuredError, got %T", apierr)
		assert.Equal(t, []string{"Related entity not found"}, structured.Errors[apierror.ReferencesField])
	})
}

func TestClassifyTranslatedGormErrors(t *testing.T) {
	c, _, _ := newClassifier(t)

	apierr := c.Classify(context.Background(), conflict.Operation{Action: conflict.ActionUpdate, Kind: graph.KindCrop}, gorm.ErrDuplicatedKey)
	assert.Same(t, apierror.DuplicateKeyError, apierr)
}

func TestClassifyInternalErrorIsLoggedWithRequest(t *testing.T) {
	c, buf, m := newClassifier(t)
	ctx := utils.WithRequestInfo(context.Background(), &utils.RequestInfo{
		ID:     "req-1",
		Method: http.MethodPost,
		Path:   "/api/farms",
	})

	apierr := c.Classify(ctx, conflict.Operation{Action: conflict.ActionCreate, Kind: graph.KindFarm}, errors.New("connection refused"))

	assert.Same(t, apierror.InternalServerError, apierr)
	assert.Contains(t, buf.String(), "POST /api/farms")
	assert.Contains(t, buf.String(), "failed to create farm")
	assert.Contains(t, buf.String(), "connection refused")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreErrors.WithLabelValues(conflict.ClassInternal)))
}

func TestClassifyNil(t *testing.T) {
	c, _, _ := newClassifier(t)
	assert.Nil(t, c.Classify(context.Background(), conflict.Operation{}, nil))
}
