package bootstrap

import "errors"

var (
	// ErrInitFailed means the store client could not be started.
	ErrInitFailed = errors.New("client initialization failed")

	// ErrEnsureFailed means a collection could not be looked up or created.
	ErrEnsureFailed = errors.New("failed to create collection")

	// ErrVerifyFailed means listing or counting collections failed.
	ErrVerifyFailed = errors.New("failed to list collections")

	// ErrReportFailed means the report file could not be written.
	ErrReportFailed = errors.New("failed to write report")
)
