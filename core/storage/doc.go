// Package storage provides the object-storage client used to archive
// generated export manifests.
//
// Each export request may opt in to archiving, in which case the rendered
// CSV is uploaded under exports/<set>/<format>-<timestamp>.csv so users can
// re-download past manifests. Upload failures are logged and never fail
// the export response.
//
// The Client interface allows mocking in tests (see the mocks subpackage).
package storage
