// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package model

import (
	"encoding/json"

	"github.com/jeremywohl/flatten"
)

const DefaultLanguage = "fr"

type Translation struct {
	LanguageName string                `json:"languageName" form:"languageName"`
	FlagImgSrc   string                `json:"flagImgSrc" form:"flagImgSrc"`
	Nav          TranslationNav        `json:"nav" form:"nav"`
	Hero         TranslationHero       `json:"hero" form:"hero"`
	Home         TranslationHome       `json:"home" form:"home"`
	Rooms        TranslationRooms      `json:"rooms" form:"rooms"`
	Prices       TranslationPrices     `json:"prices" form:"prices"`
	Booking      TranslationBooking    `json:"booking" form:"booking"`
	Gallery      TranslationGallery    `json:"gallery" form:"gallery"`
	About        TranslationAbout      `json:"about" form:"about"`
	Contact      TranslationContact    `json:"contact" form:"contact"`
	Auth         TranslationAuth       `json:"auth" form:"auth"`
	Profile      TranslationProfile    `json:"profile" form:"profile"`
	Footer       TranslationFooter     `json:"footer" form:"footer"`
	Validation   TranslationValidation `json:"validation" form:"validation"`
	Error        Error                 `json:"error" form:"error"`
	Success      Success               `json:"success" form:"success"`
	Admin        TranslationAdmin      `json:"admin" form:"admin"`
}

type TranslationNav struct {
	Home    string `json:"home" form:"home"`
	Rooms   string `json:"rooms" form:"rooms"`
	Booking string `json:"booking" form:"booking"`
	Prices  string `json:"prices" form:"prices"`
	Gallery string `json:"gallery" form:"gallery"`
	About   string `json:"about" form:"about"`
	Contact string `json:"contact" form:"contact"`
	Account string `json:"account" form:"account"`
}

type TranslationHero struct {
	Title    string `json:"title" form:"title"`
	Subtitle string `json:"subtitle" form:"subtitle"`
	CTA      string `json:"cta" form:"cta"`
}

type TranslationHome struct {
	Welcome     string               `json:"welcome" form:"welcome"`
	Description string               `json:"description" form:"description"`
	Highlight   string               `json:"highlight" form:"highlight"`
	Features    TranslationAmenities `json:"features" form:"features"`
}

type TranslationAmenities struct {
	Title   string `json:"title" form:"title"`
	Pool    string `json:"pool" form:"pool"`
	Wifi    string `json:"wifi" form:"wifi"`
	Parking string `json:"parking" form:"parking"`
	Kitchen string `json:"kitchen" form:"kitchen"`
}

type TranslationRooms struct {
	Title     string              `json:"title" form:"title"`
	Subtitle  string              `json:"subtitle" form:"subtitle"`
	Amenities string              `json:"amenities" form:"amenities"`
	Capacity  string              `json:"capacity" form:"capacity"`
	Persons   string              `json:"persons" form:"persons"`
	Size      string              `json:"size" form:"size"`
	Balcony   string              `json:"balcony" form:"balcony"`
	Beds      string              `json:"beds" form:"beds"`
	PriceList string              `json:"priceList" form:"priceList"`
	Apartment TranslationRoomText `json:"appartement" form:"appartement"`
	SuiteA    TranslationRoomText `json:"suiteA" form:"suiteA"`
	SuiteB    TranslationRoomText `json:"suiteB" form:"suiteB"`
	SuiteC    TranslationRoomText `json:"suiteC" form:"suiteC"`
	Amenity   TranslationAmenity  `json:"amenity" form:"amenity"`
}

type TranslationRoomText struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"desc" form:"desc"`
}

type TranslationAmenity struct {
	AC       string `json:"ac" form:"ac"`
	Bathroom string `json:"bathroom" form:"bathroom"`
	Balcony  string `json:"balcony" form:"balcony"`
	Kitchen  string `json:"kitchen" form:"kitchen"`
	Living   string `json:"living" form:"living"`
	Wifi     string `json:"wifi" form:"wifi"`
	TV       string `json:"tv" form:"tv"`
}

type TranslationPrices struct {
	Title      string                `json:"title" form:"title"`
	Subtitle   string                `json:"subtitle" form:"subtitle"`
	Night      string                `json:"night" form:"night"`
	Week       string                `json:"week" form:"week"`
	Persons    string                `json:"persons" form:"persons"`
	Season     TranslationSeasons    `json:"season" form:"season"`
	Calculator TranslationCalculator `json:"calculator" form:"calculator"`
}

type TranslationSeasons struct {
	High   string `json:"high" form:"high"`
	Mid    string `json:"mid" form:"mid"`
	Low    string `json:"low" form:"low"`
	Summer string `json:"summer" form:"summer"`
}

type TranslationCalculator struct {
	Title           string `json:"title" form:"title"`
	RoomType        string `json:"roomType" form:"roomType"`
	Persons         string `json:"persons" form:"persons"`
	Dates           string `json:"dates" form:"dates"`
	CheckIn         string `json:"checkin" form:"checkin"`
	CheckOut        string `json:"checkout" form:"checkout"`
	Submit          string `json:"submit" form:"submit"`
	SelectOptions   string `json:"selectOptions" form:"selectOptions"`
	SelectDates     string `json:"selectDates" form:"selectDates"`
	PricePerNight   string `json:"pricePerNight" form:"pricePerNight"`
	PricePerWeek    string `json:"pricePerWeek" form:"pricePerWeek"`
	TotalPrice      string `json:"totalPrice" form:"totalPrice"`
	Night           string `json:"night" form:"night"`
	Nights          string `json:"nights" form:"nights"`
	ExceedsCapacity string `json:"exceedsCapacity" form:"exceedsCapacity"`
	Unavailable     string `json:"unavailable" form:"unavailable"`
	IncludingTax    string `json:"includingTax" form:"includingTax"`
	BookNow         string `json:"bookNow" form:"bookNow"`
}

type TranslationBooking struct {
	Title       string `json:"title" form:"title"`
	FormTitle   string `json:"formTitle" form:"formTitle"`
	Description string `json:"description" form:"description"`
	OpenNewTab  string `json:"openNewTab" form:"openNewTab"`
	Loading     string `json:"loading" form:"loading"`
}

type TranslationGallery struct {
	Title        string `json:"title" form:"title"`
	Subtitle     string `json:"subtitle" form:"subtitle"`
	Close        string `json:"close" form:"close"`
	Previous     string `json:"previous" form:"previous"`
	Next         string `json:"next" form:"next"`
	Aerial       string `json:"aerial" form:"aerial"`
	Pool         string `json:"pool" form:"pool"`
	PoolArea     string `json:"poolArea" form:"poolArea"`
	Bedroom      string `json:"bedroom" form:"bedroom"`
	StandardRoom string `json:"standardRoom" form:"standardRoom"`
	LivingRoom   string `json:"livingRoom" form:"livingRoom"`
	Apartment    string `json:"apartment" form:"apartment"`
	Garden       string `json:"garden" form:"garden"`
	Tennis       string `json:"tennis" form:"tennis"`
	View         string `json:"view" form:"view"`
}

type TranslationAbout struct {
	Title        string `json:"title" form:"title"`
	Subtitle     string `json:"subtitle" form:"subtitle"`
	Text1        string `json:"text1" form:"text1"`
	Text2        string `json:"text2" form:"text2"`
	Location     string `json:"location" form:"location"`
	LocationDesc string `json:"locationDesc" form:"locationDesc"`
	Surroundings string `json:"surroundings" form:"surroundings"`
	OpenMap      string `json:"openMap" form:"openMap"`
}

type TranslationContact struct {
	Title    string                 `json:"title" form:"title"`
	Subtitle string                 `json:"subtitle" form:"subtitle"`
	Address  string                 `json:"address" form:"address"`
	Phone    string                 `json:"phone" form:"phone"`
	Email    string                 `json:"email" form:"email"`
	Form     TranslationContactForm `json:"form" form:"form"`
}

type TranslationContactForm struct {
	Title   string `json:"title" form:"title"`
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
	Send    string `json:"send" form:"send"`
	Sent    string `json:"sent" form:"sent"`
}

type TranslationAuth struct {
	Login              string `json:"login" form:"login"`
	LoginSubtitle      string `json:"loginSubtitle" form:"loginSubtitle"`
	Signup             string `json:"signup" form:"signup"`
	SignupSubtitle     string `json:"signupSubtitle" form:"signupSubtitle"`
	Email              string `json:"email" form:"email"`
	Password           string `json:"password" form:"password"`
	FullName           string `json:"fullName" form:"fullName"`
	NoAccount          string `json:"noAccount" form:"noAccount"`
	HasAccount         string `json:"hasAccount" form:"hasAccount"`
	InvalidCredentials string `json:"invalidCredentials" form:"invalidCredentials"`
	EmailTaken         string `json:"emailTaken" form:"emailTaken"`
	Captcha            string `json:"captcha" form:"captcha"`
}

type TranslationProfile struct {
	Title       string `json:"title" form:"title"`
	Email       string `json:"email" form:"email"`
	FullName    string `json:"fullName" form:"fullName"`
	Description string `json:"description" form:"description"`
	Avatar      string `json:"avatar" form:"avatar"`
	Upload      string `json:"upload" form:"upload"`
	Save        string `json:"save" form:"save"`
	SaveSuccess string `json:"saveSuccess" form:"saveSuccess"`
	SaveError   string `json:"saveError" form:"saveError"`
	SignOut     string `json:"signOut" form:"signOut"`
}

type TranslationFooter struct {
	Description string `json:"description" form:"description"`
	Links       string `json:"links" form:"links"`
	Contact     string `json:"contact" form:"contact"`
	Follow      string `json:"follow" form:"follow"`
	Rights      string `json:"rights" form:"rights"`
	Legal       string `json:"legal" form:"legal"`
}

type TranslationValidation struct {
	Required string `json:"required" form:"required"`
	Email    string `json:"email" form:"email"`
	TooLong  string `json:"tooLong" form:"tooLong"`
	TooShort string `json:"tooShort" form:"tooShort"`
	Date     string `json:"date" form:"date"`
	Number   string `json:"number" form:"number"`
	Room     string `json:"room" form:"room"`
	Image    string `json:"image" form:"image"`
}

type TranslationAdmin struct {
	Title        string `json:"title" form:"title"`
	Messages     string `json:"messages" form:"messages"`
	Users        string `json:"users" form:"users"`
	Translations string `json:"translations" form:"translations"`
	Save         string `json:"save" form:"save"`
	Delete       string `json:"delete" form:"delete"`
	Upload       string `json:"upload" form:"upload"`
}

type LanguageOption struct {
	Lang       string `json:"lang" form:"lang"`
	Name       string `json:"name" form:"name"`
	FlagImgSrc string `json:"flagImgSrc" form:"flagImgSrc"`
}

type Error struct {
	Title       string `json:"title" form:"title"`
	Process     string `json:"process" form:"process"`
	Maintenance string `json:"maintenance" form:"maintenance"`
	NotFound    string `json:"notFound" form:"notFound"`
	Unavailable string `json:"unavailable" form:"unavailable"`
}

type Success struct {
	Title string `json:"title" form:"title"`
}

// Flatten returns the translation as "section.key" => text pairs.
func (t *Translation) Flatten() (map[string]string, error) {
	out, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	flattened, err := flatten.FlattenString(string(out), "", flatten.DotStyle)
	if err != nil {
		return nil, err
	}
	result := make(map[string]string)
	if err := json.Unmarshal([]byte(flattened), &result); err != nil {
		return nil, err
	}
	return result, nil
}
