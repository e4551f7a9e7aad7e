package main

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	configErrorCode = "CONFIG_INVALID"
	buildErrorCode  = "BUILD_FAILED"
)

func wrapConfigError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "configuration error").
		WithTextCode(configErrorCode)
}

func wrapBuildError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "site build failed").
		WithTextCode(buildErrorCode)
}
