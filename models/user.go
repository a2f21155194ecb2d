package models

import (
	"strings"

	"blogly/config"

	"gorm.io/gorm"
)

type User struct {
	ID        uint64 `json:"id" gorm:"primaryKey"`
	FirstName string `json:"first_name" gorm:"type:varchar(50);not null"`
	LastName  string `json:"last_name" gorm:"type:varchar(50);not null"`
	ImageURL  string `json:"image_url" gorm:"type:text"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func imageOrDefault(imageURL string) string {
	if imageURL = strings.TrimSpace(imageURL); imageURL != "" {
		return imageURL
	}
	return config.DEFAULT_IMAGE_URL
}

func GetUser(tx *gorm.DB, id uint64) (u User, err error) {
	if id == 0 {
		return u, lookupError("user", id, gorm.ErrRecordNotFound)
	}
	err = tx.First(&u, id).Error
	return u, lookupError("user", id, err)
}

// ListUsers returns all users in the order they were created
func ListUsers(tx *gorm.DB) (users []User, err error) {
	err = tx.Order("id").Find(&users).Error
	return
}

// CreateUser stores a new user. An empty image URL is replaced with the default placeholder.
func CreateUser(tx *gorm.DB, firstName, lastName, imageURL string) (u User, err error) {
	if u.FirstName, err = required("first name", firstName); err != nil {
		return
	}
	if u.LastName, err = required("last name", lastName); err != nil {
		return
	}
	u.ImageURL = imageOrDefault(imageURL)
	err = tx.Create(&u).Error
	return u, writeError("user", err)
}

// UpdateUser overwrites all editable fields, again falling back to the default image
func UpdateUser(tx *gorm.DB, id uint64, firstName, lastName, imageURL string) (u User, err error) {
	if u, err = GetUser(tx, id); err != nil {
		return
	}
	if firstName, err = required("first name", firstName); err != nil {
		return
	}
	if lastName, err = required("last name", lastName); err != nil {
		return
	}
	u.FirstName = firstName
	u.LastName = lastName
	u.ImageURL = imageOrDefault(imageURL)
	err = tx.Model(&u).Select("first_name", "last_name", "image_url").Updates(&u).Error
	return u, writeError("user", err)
}

// DeleteUser removes the user together with all of their posts and the posts' tag links
func DeleteUser(tx *gorm.DB, id uint64) error {
	return tx.Transaction(func(tx *gorm.DB) error {
		if _, err := GetUser(tx, id); err != nil {
			return err
		}
		ownPosts := tx.Model(&Post{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("post_id IN (?)", ownPosts).Delete(&PostTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&Post{}).Error; err != nil {
			return err
		}
		return tx.Delete(&User{}, id).Error
	})
}
