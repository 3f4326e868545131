package corpus

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

var ErrLoaderRequired = errors.New("corpus: loader is required")

const (
	buildPartialCode  = "CORPUS_BUILD_PARTIAL"
	buildCanceledCode = "CORPUS_BUILD_CANCELED"
	buildTimeoutCode  = "CORPUS_BUILD_TIMEOUT"
	buildWalkCode     = "CORPUS_WALK_FAILED"
)

func wrapReportError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "corpus build reported invalid posts").
		WithTextCode(buildPartialCode)
}

func wrapWalkError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "corpus build cancelled").
			WithTextCode(buildCanceledCode)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "corpus build deadline exceeded").
			WithTextCode(buildTimeoutCode)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "corpus walk failed").
			WithTextCode(buildWalkCode)
	}
}
