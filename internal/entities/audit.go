// Package entities contains core business entities.
package entities

import "time"

// Audit is the provenance quadruple every table carries. The *By fields
// reference the acting user or employee; timestamps are assigned by the
// database at mutation time.
type Audit struct {
	CreatedOn time.Time
	CreatedBy int64
	UpdatedOn *time.Time
	UpdatedBy *int64
	DeletedOn *time.Time
	DeletedBy *int64
}
