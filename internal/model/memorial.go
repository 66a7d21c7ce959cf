package model

import (
	"time"

	"github.com/fhuszti/memorials-ms-go/internal/uuid"
)

type Memorial struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Biography     string     `json:"biography"`
	Slug          string     `json:"slug"`
	MainPhotoURL  string     `json:"main_photo_url"`
	ThemeColour   string     `json:"theme_colour"`
	GalleryPhotos StringList `json:"gallery_photos"`
	GalleryVideos StringList `json:"gallery_videos"`
	BirthYear     *int       `json:"birth_year"`
	DeathYear     *int       `json:"death_year"`
	DeathCause    *string    `json:"death_cause"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
