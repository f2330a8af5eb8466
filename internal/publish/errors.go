package publish

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

const (
	publishValidationCode = "PUBLISH_VALIDATION_FAILED"
	publishConvertCode    = "PUBLISH_CONVERT_FAILED"
	publishCanceledCode   = "PUBLISH_CONTEXT_CANCELED"
	publishTimeoutCode    = "PUBLISH_CONTEXT_TIMEOUT"
	publishContextCode    = "PUBLISH_CONTEXT_ERROR"
)

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "article validation failed").
		WithTextCode(publishValidationCode)
}

func wrapConvertError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "destination conversion failed").
		WithTextCode(publishConvertCode)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch err {
	case context.Canceled:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "publish run cancelled").
			WithTextCode(publishCanceledCode)
	case context.DeadlineExceeded:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "publish run deadline exceeded").
			WithTextCode(publishTimeoutCode)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "publish run context error").
			WithTextCode(publishContextCode)
	}
}
