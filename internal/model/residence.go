// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package model

import (
	"time"

	"github.com/google/uuid"
)

type Residence struct {
	ID             uuid.UUID       `json:"id"`
	CreatedAt      *time.Time      `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at"`
	Name           string          `json:"name" form:"name"`
	Location       *Location       `json:"location"`
	BookingFormURL string          `json:"booking_form_url" form:"booking_form_url"`
	Rooms          []*Room         `json:"rooms,omitempty"`
	Gallery        []*GalleryImage `json:"gallery,omitempty"`
	Surroundings   []*Location     `json:"surroundings,omitempty"`
}

type Location struct {
	ID           uuid.UUID  `json:"id"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
	Name         string     `json:"name,omitempty" form:"name"`
	Kind         string     `json:"kind,omitempty" form:"kind"`
	URL          string     `json:"url,omitempty" form:"url"`
	Country      string     `json:"country,omitempty" form:"country"`
	City         string     `json:"city,omitempty" form:"city"`
	ZipCode      string     `json:"zipcode,omitempty" form:"zipcode"`
	Street       string     `json:"street,omitempty" form:"street"`
	StreetNumber string     `json:"street_number,omitempty" form:"street_number"`
	Longitude    float64    `json:"longitude,omitempty" form:"longitude"`
	Latitude     float64    `json:"latitude,omitempty" form:"latitude"`
	Phone        string     `json:"phone,omitempty" form:"phone"`
	Email        string     `json:"email,omitempty" form:"email"`
	Website      string     `json:"website,omitempty" form:"website"`
	DistanceKM   float64    `json:"distance_km,omitempty" form:"distance_km"`
}

// Room describes an accommodation. Category matches a priced room
// category, the translated title and description are looked up by it.
type Room struct {
	Category  string   `json:"category" form:"category"`
	SizeM2    int      `json:"size_m2" form:"size_m2"`
	BalconyM2 int      `json:"balcony_m2,omitempty" form:"balcony_m2"`
	Beds      string   `json:"beds" form:"beds"`
	Amenities []string `json:"amenities,omitempty" form:"amenities"`
	Images    []string `json:"images,omitempty" form:"images"`
}

// GalleryImage is a picture of the gallery. AltKey is a translation key
// under the gallery section.
type GalleryImage struct {
	ID     uuid.UUID `json:"id"`
	Src    string    `json:"src" form:"src"`
	AltKey string    `json:"alt_key" form:"alt_key"`
}

func (r *Residence) RoomByCategory(category string) *Room {
	for _, room := range r.Rooms {
		if room.Category == category {
			return room
		}
	}
	return nil
}

// RemoveGalleryImage drops the image with the given id and reports
// whether it was present.
func (r *Residence) RemoveGalleryImage(id uuid.UUID) bool {
	for i := 0; i < len(r.Gallery); i++ {
		if r.Gallery[i].ID == id {
			r.Gallery = append(r.Gallery[:i], r.Gallery[i+1:]...)
			return true
		}
	}
	return false
}

// DefaultBookingFormURL is the embedded booking request form.
const DefaultBookingFormURL = "https://docs.google.com/forms/d/e/1FAIpQLSfnp64jbdhSWsZqQQciqin96KKwzJQE42nBFpWTEOrGCGDgcQ/viewform?embedded=true"

// DemoResidence is used to seed empty stores.
func DemoResidence() *Residence {
	return &Residence{
		ID:             uuid.MustParse("8d3b2f7e-52a4-4c43-9f0e-1c6f0a8f7a11"),
		Name:           "Résidence Yasmina",
		BookingFormURL: DefaultBookingFormURL,
		Location: &Location{
			ID:        uuid.MustParse("851ec3b7-f4ce-4319-96f9-67cc755b06ec"),
			Name:      "Résidence Yasmina",
			Street:    "Rue de la Jeunesse",
			City:      "Agadir",
			ZipCode:   "80000",
			Country:   "Maroc",
			Latitude:  30.4202,
			Longitude: -9.5982,
			Phone:     "+212 528 84 31 30",
			Email:     "contact@residence-yasmina.com",
			URL:       "https://www.openstreetmap.org/?mlat=30.4202&mlon=-9.5982#map=16/30.4202/-9.5982",
		},
		Rooms: []*Room{
			{
				Category:  "appartement",
				SizeM2:    55,
				BalconyM2: 8,
				Beds:      "1 x 140, 3 x 90",
				Amenities: []string{"wifi", "tv", "kitchen", "ac", "living", "balcony"},
				Images:    []string{"/static/img/apartment.jpg", "/static/img/living-room.jpg"},
			},
			{
				Category:  "suiteA",
				SizeM2:    75,
				BalconyM2: 12,
				Beds:      "2 x 140, 3 x 90",
				Amenities: []string{"wifi", "tv", "kitchen", "ac", "living", "balcony", "bathroom"},
				Images:    []string{"/static/img/bedroom.jpg", "/static/img/view.jpg"},
			},
			{
				Category:  "suiteB",
				SizeM2:    65,
				BalconyM2: 10,
				Beds:      "2 x 140, 2 x 90",
				Amenities: []string{"wifi", "tv", "kitchen", "ac", "living", "balcony"},
				Images:    []string{"/static/img/standard-room.jpg", "/static/img/pool.jpg"},
			},
			{
				Category:  "suiteC",
				SizeM2:    45,
				Beds:      "2 x 90, 1 x 140",
				Amenities: []string{"wifi", "tv", "kitchen", "ac"},
				Images:    []string{"/static/img/bedroom.jpg"},
			},
		},
		Gallery: []*GalleryImage{
			{ID: uuid.MustParse("0b7c3c1e-6d1a-4c55-8a3e-2f1d9e0b1a01"), Src: "/static/img/aerial.jpg", AltKey: "aerial"},
			{ID: uuid.MustParse("0b7c3c1e-6d1a-4c55-8a3e-2f1d9e0b1a02"), Src: "/static/img/pool.jpg", AltKey: "pool"},
			{ID: uuid.MustParse("0b7c3c1e-6d1a-4c55-8a3e-2f1d9e0b1a03"), Src: "/static/img/pool-area.jpg", AltKey: "poolArea"},
			{ID: uuid.MustParse("0b7c3c1e-6d1a-4c55-8a3e-2f1d9e0b1a04"), Src: "/static/img/bedroom.jpg", AltKey: "bedroom"},
			{ID: uuid.MustParse("0b7c3c1e-6d1a-4c55-8a3e-2f1d9e0b1a05"), Src: "/static/img/standard-room.jpg", AltKey: "standardRoom"},
			{ID: uuid.MustParse("0b7c3c1e-6d1a-4c55-8a3e-2f1d9e0b1a06"), Src: "/static/img/living-room.jpg", AltKey: "livingRoom"},
			{ID: uuid.MustParse("0b7c3c1e-6d1a-4c55-8a3e-2f1d9e0b1a07"), Src: "/static/img/apartment.jpg", AltKey: "apartment"},
			{ID: uuid.MustParse("0b7c3c1e-6d1a-4c55-8a3e-2f1d9e0b1a08"), Src: "/static/img/garden.jpg", AltKey: "garden"},
			{ID: uuid.MustParse("0b7c3c1e-6d1a-4c55-8a3e-2f1d9e0b1a09"), Src: "/static/img/tennis.jpg", AltKey: "tennis"},
			{ID: uuid.MustParse("0b7c3c1e-6d1a-4c55-8a3e-2f1d9e0b1a10"), Src: "/static/img/view.jpg", AltKey: "view"},
		},
		Surroundings: []*Location{
			{
				ID:         uuid.MustParse("4e657dd1-2f75-48c7-ac87-1d3da0cc9b93"),
				Kind:       "beach",
				Name:       "Plage d'Agadir",
				City:       "Agadir",
				Country:    "Maroc",
				DistanceKM: 1.2,
			},
			{
				ID:         uuid.MustParse("4e657dd1-2f75-48c7-ac87-1d3da0cc9b94"),
				Kind:       "market",
				Name:       "Souk El Had",
				City:       "Agadir",
				Country:    "Maroc",
				DistanceKM: 2.5,
			},
			{
				ID:         uuid.MustParse("4716775f-575d-4524-a0bb-20630cb017b4"),
				Kind:       "airport",
				Name:       "Aéroport Agadir-Al Massira",
				City:       "Agadir",
				Country:    "Maroc",
				DistanceKM: 25,
			},
		},
	}
}
