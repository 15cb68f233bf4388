// Package bootstrap creates the trading game collections in a vector store,
// verifies what the store holds afterwards and writes a JSON report.
//
// A run walks the configured collections in order. Each one is looked up
// first and only created when the store reports it missing; any other
// lookup error aborts the run. After all collections are ensured, every
// collection in the store is listed with its document count and the result
// is written to the report path.
//
// Errors returned by Run wrap one of ErrEnsureFailed, ErrVerifyFailed or
// ErrReportFailed. ErrInitFailed is used by callers that fail to start the
// store client.
package bootstrap
