package main

import (
	"log"

	"blogly/models"

	"gorm.io/gorm"
)

type seedPost struct {
	title, content string
	tags           []string
}

type seedUser struct {
	first, last, image string
	posts              []seedPost
}

var seedTags = []string{"fun", "food", "cats", "life"}

var seedUsers = []seedUser{
	{"Oz", "Kong", "", []seedPost{
		{"Joob", "Wants ham", []string{"food"}},
		{"Nap time", "Sleeping on the keyboard again.", []string{"cats", "life"}},
	}},
	{"Alan", "Alda", "", []seedPost{
		{"First post", "Hello, world!", []string{"fun"}},
	}},
	{"Jane", "Smith", "", nil},
}

// seed inserts the sample data, tags that already exist are reused
func seed(tx *gorm.DB) error {
	tagIDs := map[string]uint64{}
	for _, name := range seedTags {
		var tag models.Tag
		if err := tx.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
			return err
		}
		tagIDs[name] = tag.ID
	}
	for _, su := range seedUsers {
		user, err := models.CreateUser(tx, su.first, su.last, su.image)
		if err != nil {
			return err
		}
		for _, sp := range su.posts {
			ids := []uint64{}
			for _, name := range sp.tags {
				ids = append(ids, tagIDs[name])
			}
			if _, err = models.CreatePost(tx, user.ID, sp.title, sp.content, ids); err != nil {
				return err
			}
		}
		log.Printf("Seeded user %s with %d posts", user.FullName(), len(su.posts))
	}
	return nil
}
