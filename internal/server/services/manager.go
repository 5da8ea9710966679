package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/projectmanager/internal/common"
	"github.com/dmitrijs2005/projectmanager/internal/logging"
	"github.com/dmitrijs2005/projectmanager/internal/server/repositories/repomanager"
)

const msgNoUpdateData = "No data provided for update"

// base is shared by the managers: the injected store handle, the repository
// manager bound to it, and a logger.
type base struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

// storageFailure logs why a storage call produced no rows and returns the
// flattened failure.
func storageFailure[T any](ctx context.Context, l logging.Logger, op, msg string, err error) Result[T] {
	if errors.Is(err, common.ErrorNotFound) {
		l.Info(ctx, op+": no matching row")
	} else {
		l.Error(ctx, op+" failed", "error", err)
	}
	return Fail[T](KindStorage, msg)
}

// listResult turns rows into a Result. An empty set is reported with the
// failure message, exactly like a storage error.
func listResult[T any](ctx context.Context, l logging.Logger, op string, rows []T, err error, okMsg, failMsg string) Result[[]T] {
	if err != nil {
		return storageFailure[[]T](ctx, l, op, failMsg, err)
	}
	if len(rows) == 0 {
		l.Debug(ctx, op+": no rows")
		return Fail[[]T](KindEmpty, failMsg)
	}
	return Ok(okMsg, rows)
}
