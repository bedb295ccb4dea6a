package bulksheet

import "context"

// Uploader defines the contract for delivering a bulksheet to SA360
type Uploader interface {
	UploadKeywords(ctx context.Context, table *Table) error
}
