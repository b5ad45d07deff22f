package tenant

import "gorm.io/gorm"

// Scope restricts any query to a single tenant. Every repo query on
// tenant-owned tables goes through this.
func Scope(tenantID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantID)
	}
}
