package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	CreatedBy   string `json:"createdBy"` // display name shown in the catalog
	OwnerID     uint   `gorm:"index" json:"ownerId"`
	Price       int    `json:"price"`
	Duration    int    `json:"duration"`
	Views       int    `gorm:"default:0" json:"views"`
	NumOfVideos int    `gorm:"default:0" json:"numOfVideos"`

	PosterID  string `json:"poster_id"`
	PosterURL string `json:"poster_url"`

	Lectures []Lecture `json:"lectures,omitempty"`
}

type Lecture struct {
	gorm.Model
	CourseID    uint   `gorm:"index" json:"course_id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	VideoID     string `json:"video_id"`
	VideoURL    string `json:"video_url"`
}
