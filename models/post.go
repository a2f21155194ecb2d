package models

import (
	"time"

	"gorm.io/gorm"
)

type Post struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"type:text;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
	UserID    uint64    `json:"user_id" gorm:"not null;index"`
	User      User      `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func GetPost(tx *gorm.DB, id uint64) (p Post, err error) {
	if id == 0 {
		return p, lookupError("post", id, gorm.ErrRecordNotFound)
	}
	err = tx.First(&p, id).Error
	return p, lookupError("post", id, err)
}

// PostsOfUser returns the posts written by the given user, newest first
func PostsOfUser(tx *gorm.DB, userID uint64) (posts []Post, err error) {
	err = tx.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&posts).Error
	return
}

// CreatePost stores a post for an existing user and links it to every tag in tagIDs.
// Both writes happen in a single transaction.
func CreatePost(tx *gorm.DB, userID uint64, title, content string, tagIDs []uint64) (p Post, err error) {
	if p.Title, err = required("title", title); err != nil {
		return
	}
	if p.Content, err = required("content", content); err != nil {
		return
	}
	p.UserID = userID
	err = tx.Transaction(func(tx *gorm.DB) error {
		if _, err := GetUser(tx, userID); err != nil {
			return err
		}
		tagIDs, err := existingTags(tx, tagIDs)
		if err != nil {
			return err
		}
		if err = tx.Omit("User").Create(&p).Error; err != nil {
			return err
		}
		return linkTags(tx, p.ID, tagIDs)
	})
	return
}

// UpdatePost overwrites title and content. A nil tagIDs keeps the current tags,
// anything else (an empty slice included) replaces them.
func UpdatePost(tx *gorm.DB, id uint64, title, content string, tagIDs []uint64) (p Post, err error) {
	err = tx.Transaction(func(tx *gorm.DB) error {
		var err error
		if p, err = GetPost(tx, id); err != nil {
			return err
		}
		if title, err = required("title", title); err != nil {
			return err
		}
		if content, err = required("content", content); err != nil {
			return err
		}
		p.Title = title
		p.Content = content
		if err = tx.Model(&p).Select("title", "content").Updates(&p).Error; err != nil {
			return err
		}
		if tagIDs == nil {
			return nil
		}
		if tagIDs, err = existingTags(tx, tagIDs); err != nil {
			return err
		}
		if err = tx.Where("post_id = ?", id).Delete(&PostTag{}).Error; err != nil {
			return err
		}
		return linkTags(tx, id, tagIDs)
	})
	return
}

// DeletePost removes the post and its tag links. The deleted post is returned so the caller knows its author.
func DeletePost(tx *gorm.DB, id uint64) (p Post, err error) {
	err = tx.Transaction(func(tx *gorm.DB) error {
		var err error
		if p, err = GetPost(tx, id); err != nil {
			return err
		}
		if err = tx.Where("post_id = ?", id).Delete(&PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Post{}, id).Error
	})
	return
}
