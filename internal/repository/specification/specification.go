package specification

import "gorm.io/gorm"

// Specification composes GORM query fragments so repositories stay generic.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
