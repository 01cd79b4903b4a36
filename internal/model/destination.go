package model

import (
	"time"

	"github.com/lib/pq"
)

// Destination представляет туристическое направление (пляж, парк, город и т.п.).
// Slug используется как публичный идентификатор в URL и в ссылках из бронирований,
// отзывов и избранного.
type Destination struct {
	ID              string           `db:"id" json:"uuid"`
	Slug            string           `db:"slug" json:"id"`
	Name            string           `db:"name" json:"name"`
	Location        string           `db:"location" json:"location"`
	Description     string           `db:"description" json:"description"`
	Category        string           `db:"category" json:"category"`
	ImageURL        string           `db:"image_url" json:"image"`
	Gallery         pq.StringArray   `db:"gallery" json:"gallery"`
	Rating          float64          `db:"rating" json:"rating"`
	ReviewCount     int              `db:"review_count" json:"reviews"`
	Activities      Activities       `db:"activities" json:"activities"`
	RecommendedStay string           `db:"recommended_stay" json:"recommendedStay"`
	Budget          string           `db:"budget_range" json:"budget"`
	GoodFor         pq.StringArray   `db:"good_for" json:"goodFor"`
	BestTimeToVisit *BestTimeToVisit `db:"best_time_to_visit" json:"bestTimeToVisit,omitempty"`
	LocalPhrases    LocalPhrases     `db:"local_phrases" json:"localPhrases,omitempty"`
	Itineraries     Itineraries      `db:"itineraries" json:"itineraries,omitempty"`
	Amenities       Amenities        `db:"amenities" json:"amenities,omitempty"`
	Latitude        *float64         `db:"latitude" json:"latitude,omitempty"`
	Longitude       *float64         `db:"longitude" json:"longitude,omitempty"`
	CreatedAt       time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time        `db:"updated_at" json:"updated_at"`

	// хранятся в дочерних таблицах с сохранением порядка
	Highlights        []string `db:"-" json:"highlights"`
	CulturalEtiquette []string `db:"-" json:"culturalEtiquette,omitempty"`
}

// Coordinates возвращает координаты направления или nil, если они не заданы.
func (d *Destination) Coordinates() *Coordinates {
	if d.Latitude == nil || d.Longitude == nil {
		return nil
	}
	return &Coordinates{Lat: *d.Latitude, Lng: *d.Longitude}
}

// Coordinates - точка на карте.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Activity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Price       string `json:"price"`
}

type LocalPhrase struct {
	English       string `json:"english"`
	Language      string `json:"language"`
	Phrase        string `json:"phrase"`
	Pronunciation string `json:"pronunciation"`
}

// BestTimeToVisit описывает сезон посещения; RecommendedMonths - номера месяцев 1-12.
type BestTimeToVisit struct {
	Period            string `json:"period"`
	Description       string `json:"description"`
	RecommendedMonths []int  `json:"recommendedMonths"`
}

type Itinerary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Days        []Day  `json:"days"`
}

type Day struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Activities  []DayActivity `json:"activities"`
}

type DayActivity struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Amenity - объект инфраструктуры рядом с направлением (отель, ресторан, больница).
type Amenity struct {
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Address     string       `json:"address"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Rating      float64      `json:"rating"`
	ContactInfo string       `json:"contact_info"`
}
