package main

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	codeConfigInvalid    = "CMSGRAPH_CONFIG_INVALID"
	codeSourceUnreadable = "CMSGRAPH_SOURCE_UNREADABLE"
	codeBuildAborted     = "CMSGRAPH_BUILD_ABORTED"
	codeEmitFailed       = "CMSGRAPH_EMIT_FAILED"
)

func wrapConfigError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid configuration").
		WithTextCode(codeConfigInvalid)
}

func wrapSourceError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "source unreadable").
		WithTextCode(codeSourceUnreadable)
}

func wrapAbortError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "validation failed").
		WithTextCode(codeBuildAborted)
}

func wrapEmitError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "writing artifacts failed").
		WithTextCode(codeEmitFailed)
}
