package models

import "gorm.io/gorm"

// Migrate creates or updates the users, posts, tags and post_tags tables
func Migrate(tx *gorm.DB) error {
	return tx.AutoMigrate(&User{}, &Post{}, &Tag{}, &PostTag{})
}
