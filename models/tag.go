package models

import (
	"gorm.io/gorm"
)

type Tag struct {
	ID   uint64 `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(250);not null;uniqueIndex"`
}

func GetTag(tx *gorm.DB, id uint64) (t Tag, err error) {
	if id == 0 {
		return t, lookupError("tag", id, gorm.ErrRecordNotFound)
	}
	err = tx.First(&t, id).Error
	return t, lookupError("tag", id, err)
}

func ListTags(tx *gorm.DB) (tags []Tag, err error) {
	err = tx.Order("name, id").Find(&tags).Error
	return
}

// CreateTag relies on the unique index for duplicate names, those fail with ErrDuplicate
func CreateTag(tx *gorm.DB, name string) (t Tag, err error) {
	if t.Name, err = required("name", name); err != nil {
		return
	}
	err = tx.Create(&t).Error
	return t, writeError("tag "+t.Name, err)
}

func UpdateTag(tx *gorm.DB, id uint64, name string) (t Tag, err error) {
	if t, err = GetTag(tx, id); err != nil {
		return
	}
	if name, err = required("name", name); err != nil {
		return
	}
	t.Name = name
	err = tx.Model(&t).Update("name", t.Name).Error
	return t, writeError("tag "+t.Name, err)
}

// DeleteTag unlinks the tag from all posts and removes it
func DeleteTag(tx *gorm.DB, id uint64) error {
	return tx.Transaction(func(tx *gorm.DB) error {
		if _, err := GetTag(tx, id); err != nil {
			return err
		}
		if err := tx.Where("tag_id = ?", id).Delete(&PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Tag{}, id).Error
	})
}
