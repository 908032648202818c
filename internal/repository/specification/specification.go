package specification

import "gorm.io/gorm"

// Specification narrows a query. Repositories apply the given specs in order
// before executing.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
