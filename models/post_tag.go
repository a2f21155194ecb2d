package models

import (
	"fmt"

	"gorm.io/gorm"
)

type PostTag struct {
	PostID uint64 `json:"post_id" gorm:"primaryKey"`
	Post   Post   `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	TagID  uint64 `json:"tag_id" gorm:"primaryKey;index"`
	Tag    Tag    `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// TagsOfPost returns the tags attached to a post, by name
func TagsOfPost(tx *gorm.DB, postID uint64) (tags []Tag, err error) {
	err = tx.Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Where("post_tags.post_id = ?", postID).
		Order("tags.name").
		Find(&tags).Error
	return
}

// PostTagIDs is TagsOfPost without loading the tags themselves
func PostTagIDs(tx *gorm.DB, postID uint64) (ids []uint64, err error) {
	err = tx.Model(&PostTag{}).Where("post_id = ?", postID).Order("tag_id").Pluck("tag_id", &ids).Error
	return
}

// PostsOfTag returns the posts carrying a tag, newest first
func PostsOfTag(tx *gorm.DB, tagID uint64) (posts []Post, err error) {
	err = tx.Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Where("post_tags.tag_id = ?", tagID).
		Order("posts.created_at DESC, posts.id DESC").
		Find(&posts).Error
	return
}

// existingTags removes duplicates from ids and fails with ErrValidation if any of them isn't a known tag
func existingTags(tx *gorm.DB, ids []uint64) ([]uint64, error) {
	unique := make([]uint64, 0, len(ids))
	seen := map[uint64]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return unique, nil
	}
	var count int64
	if err := tx.Model(&Tag{}).Where("id IN ?", unique).Count(&count).Error; err != nil {
		return nil, err
	}
	if count != int64(len(unique)) {
		return nil, fmt.Errorf("%w: unknown tag", ErrValidation)
	}
	return unique, nil
}

func linkTags(tx *gorm.DB, postID uint64, tagIDs []uint64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	links := make([]PostTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		links = append(links, PostTag{PostID: postID, TagID: tagID})
	}
	return tx.Omit("Post", "Tag").Create(&links).Error
}
