package usecase

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

// logFetchFailure is the only error path of the listings: the failure is
// logged and the caller falls back to an empty result.
func logFetchFailure(log *logrus.Logger, listing string, err error) {
	fields := logrus.Fields{"listing": listing}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		fields["sqlstate"] = pgErr.Code
		fields["table"] = pgErr.TableName
	}

	log.WithFields(fields).Warnf("Failed to fetch %s: %+v", listing, err)
}
