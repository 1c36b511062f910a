package scope

import "gorm.io/gorm"

func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

// OrderByCountyName is the directory listing order.
func OrderByCountyName(db *gorm.DB) *gorm.DB {
	return db.Order("county ASC").Order("name ASC")
}
