// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package model

// DefaultTranslations returns the texts a fresh store is seeded with.
func DefaultTranslations() map[string]*Translation {
	return map[string]*Translation{
		"fr": frenchTranslation(),
		"en": englishTranslation(),
	}
}

func frenchTranslation() *Translation {
	return &Translation{
		LanguageName: "Français",
		FlagImgSrc:   "/static/flags/fr.svg",
		Nav: TranslationNav{
			Home:    "Accueil",
			Rooms:   "Logements",
			Booking: "Réservation",
			Prices:  "Tarifs",
			Gallery: "Galerie",
			About:   "À Propos",
			Contact: "Contact",
			Account: "Mon compte",
		},
		Hero: TranslationHero{
			Title:    "Résidence Yasmina Agadir",
			Subtitle: "Appartements meublés avec piscine au centre de la ville d'Agadir",
			CTA:      "Réserver Maintenant",
		},
		Home: TranslationHome{
			Welcome:     "Bienvenue à la Résidence Yasmina",
			Description: "La résidence est recommandée aux familles, soit pour des courts et longs séjours, en quête de vacances en liberté et tranquillité. La clientèle est en majorité des retraités longs séjours en hiver et plutôt jeunes en été.",
			Highlight:   "La Résidence Yasmina détient l'un des taux de retour les plus élevés de la destination, et nous en sommes très fiers.",
			Features: TranslationAmenities{
				Title:   "Nos Équipements",
				Pool:    "Piscine",
				Wifi:    "WiFi Gratuit",
				Parking: "Parking",
				Kitchen: "Cuisine Équipée",
			},
		},
		Rooms: TranslationRooms{
			Title:     "Nos Logements",
			Subtitle:  "Choisissez l'hébergement qui vous convient",
			Amenities: "Équipements",
			Capacity:  "Capacité",
			Persons:   "personnes",
			Size:      "Surface",
			Balcony:   "Balcon",
			Beds:      "Couchages",
			PriceList: "Tarifs par nuit",
			Apartment: TranslationRoomText{
				Title:       "Appartement",
				Description: "Appartement complet avec salon, cuisine équipée et chambre séparée",
			},
			SuiteA: TranslationRoomText{
				Title:       "Suite A",
				Description: "Grande suite familiale avec deux chambres et terrasse",
			},
			SuiteB: TranslationRoomText{
				Title:       "Suite B",
				Description: "Suite spacieuse avec vue sur la piscine",
			},
			SuiteC: TranslationRoomText{
				Title:       "Suite C",
				Description: "Suite confortable avec lits jumeaux, idéale pour les couples",
			},
			Amenity: TranslationAmenity{
				AC:       "Climatisation",
				Bathroom: "Salle de bain",
				Balcony:  "Balcon",
				Kitchen:  "Cuisine équipée",
				Living:   "Salon",
				Wifi:     "WiFi",
				TV:       "Télévision",
			},
		},
		Prices: TranslationPrices{
			Title:    "Tarifs & Disponibilités",
			Subtitle: "Nos prix varient selon la saison",
			Night:    "nuit",
			Week:     "semaine",
			Persons:  "Personnes",
			Season: TranslationSeasons{
				High:   "Haute Saison",
				Mid:    "Moyenne Saison",
				Low:    "Basse Saison",
				Summer: "Saison d'été",
			},
			Calculator: TranslationCalculator{
				Title:           "Calculateur de prix",
				RoomType:        "Type de logement",
				Persons:         "Nombre de personnes",
				Dates:           "Dates du séjour",
				CheckIn:         "Date d'arrivée",
				CheckOut:        "Date de départ",
				Submit:          "Calculer",
				SelectOptions:   "Sélectionnez un logement et le nombre de personnes",
				SelectDates:     "Sélectionnez vos dates de séjour",
				PricePerNight:   "Prix par nuit",
				PricePerWeek:    "Prix par semaine",
				TotalPrice:      "Prix total",
				Night:           "nuit",
				Nights:          "nuits",
				ExceedsCapacity: "Le nombre de personnes dépasse la capacité du logement, le tarif maximal est appliqué",
				Unavailable:     "Tarif sur demande, contactez-nous",
				IncludingTax:    "Taxes comprises",
				BookNow:         "Réserver",
			},
		},
		Booking: TranslationBooking{
			Title:       "Réservation",
			FormTitle:   "Formulaire de réservation",
			Description: "Remplissez le formulaire ci-dessous, nous vous répondrons rapidement.",
			OpenNewTab:  "Ouvrir le formulaire dans un nouvel onglet",
			Loading:     "Chargement du formulaire...",
		},
		Gallery: TranslationGallery{
			Title:        "Galerie Photos",
			Subtitle:     "Découvrez notre résidence",
			Close:        "Fermer",
			Previous:     "Précédente",
			Next:         "Suivante",
			Aerial:       "Vue aérienne de la résidence",
			Pool:         "Piscine avec parasols",
			PoolArea:     "Espace piscine et détente",
			Bedroom:      "Chambre avec lits jumeaux",
			StandardRoom: "Chambre standard",
			LivingRoom:   "Salon confortable",
			Apartment:    "Appartement avec coin cuisine",
			Garden:       "Jardin tropical",
			Tennis:       "Court de tennis et jardins",
			View:         "Vue depuis le balcon",
		},
		About: TranslationAbout{
			Title:        "À Propos de Nous",
			Subtitle:     "Votre séjour à Agadir",
			Text1:        "La Résidence Yasmina est située au cœur d'Agadir, offrant un accès facile à toutes les commodités de la ville tout en maintenant une atmosphère paisible et accueillante.",
			Text2:        "Nos appartements meublés sont parfaits pour les familles et les voyageurs à la recherche de confort et d'indépendance pendant leur séjour.",
			Location:     "Emplacement",
			LocationDesc: "Centre-ville d'Agadir, à proximité des plages, restaurants et attractions",
			Surroundings: "Aux alentours",
			OpenMap:      "Voir sur la carte",
		},
		Contact: TranslationContact{
			Title:    "Contactez-Nous",
			Subtitle: "Nous sommes là pour vous aider",
			Address:  "Adresse",
			Phone:    "Téléphone",
			Email:    "Email",
			Form: TranslationContactForm{
				Title:   "Envoyez-nous un message",
				Name:    "Nom complet",
				Email:   "Email",
				Subject: "Sujet",
				Message: "Message",
				Send:    "Envoyer",
				Sent:    "Message envoyé ! Nous vous répondrons rapidement.",
			},
		},
		Auth: TranslationAuth{
			Login:              "Connexion",
			LoginSubtitle:      "Connectez-vous à votre compte",
			Signup:             "Inscription",
			SignupSubtitle:     "Créez votre compte",
			Email:              "Email",
			Password:           "Mot de passe",
			FullName:           "Nom complet",
			NoAccount:          "Pas encore de compte ? Inscrivez-vous",
			HasAccount:         "Déjà un compte ? Connectez-vous",
			InvalidCredentials: "Email ou mot de passe incorrect",
			EmailTaken:         "Un compte existe déjà avec cet email",
			Captcha:            "La vérification anti-robot a échoué",
		},
		Profile: TranslationProfile{
			Title:       "Mon Profil",
			Email:       "Email",
			FullName:    "Nom complet",
			Description: "Description",
			Avatar:      "Photo de profil",
			Upload:      "Changer la photo",
			Save:        "Enregistrer",
			SaveSuccess: "Profil mis à jour",
			SaveError:   "Impossible d'enregistrer le profil",
			SignOut:     "Se déconnecter",
		},
		Footer: TranslationFooter{
			Description: "Appartements meublés avec piscine au centre d'Agadir",
			Links:       "Liens Rapides",
			Contact:     "Contact",
			Follow:      "Suivez-nous",
			Rights:      "Tous droits réservés",
			Legal:       "Mentions Légales",
		},
		Validation: TranslationValidation{
			Required: "Ce champ est obligatoire",
			Email:    "Adresse email invalide",
			TooLong:  "Ce champ est trop long",
			TooShort: "Ce champ est trop court",
			Date:     "Date invalide",
			Number:   "Nombre invalide",
			Room:     "Logement inconnu",
			Image:    "Seules les images JPEG, PNG, WebP ou GIF sont acceptées",
		},
		Error: Error{
			Title:       "Une erreur est survenue",
			Process:     "Votre demande n'a pas pu être traitée, veuillez réessayer.",
			Maintenance: "Le site est en maintenance, les modifications sont temporairement désactivées.",
			NotFound:    "Page introuvable",
			Unavailable: "Ce service n'est pas disponible pour le moment.",
		},
		Success: Success{
			Title: "Succès",
		},
		Admin: TranslationAdmin{
			Title:        "Administration",
			Messages:     "Messages",
			Users:        "Utilisateurs",
			Translations: "Traductions",
			Save:         "Enregistrer",
			Delete:       "Supprimer",
			Upload:       "Ajouter une image",
		},
	}
}

func englishTranslation() *Translation {
	return &Translation{
		LanguageName: "English",
		FlagImgSrc:   "/static/flags/en.svg",
		Nav: TranslationNav{
			Home:    "Home",
			Rooms:   "Accommodations",
			Booking: "Booking",
			Prices:  "Prices",
			Gallery: "Gallery",
			About:   "About",
			Contact: "Contact",
			Account: "My account",
		},
		Hero: TranslationHero{
			Title:    "Résidence Yasmina Agadir",
			Subtitle: "Furnished apartments with pool in the heart of Agadir",
			CTA:      "Book Now",
		},
		Home: TranslationHome{
			Welcome:     "Welcome to Résidence Yasmina",
			Description: "The residence is recommended for families, for short and long stays, seeking vacations in freedom and tranquility. Our clientele is mainly retirees for long winter stays and younger guests in summer.",
			Highlight:   "Résidence Yasmina has one of the highest return rates in the destination, and we are very proud of it.",
			Features: TranslationAmenities{
				Title:   "Our Amenities",
				Pool:    "Swimming Pool",
				Wifi:    "Free WiFi",
				Parking: "Parking",
				Kitchen: "Equipped Kitchen",
			},
		},
		Rooms: TranslationRooms{
			Title:     "Our Accommodations",
			Subtitle:  "Choose the accommodation that suits you",
			Amenities: "Amenities",
			Capacity:  "Capacity",
			Persons:   "persons",
			Size:      "Size",
			Balcony:   "Balcony",
			Beds:      "Beds",
			PriceList: "Nightly rates",
			Apartment: TranslationRoomText{
				Title:       "Apartment",
				Description: "Complete apartment with living room, equipped kitchen and separate bedroom",
			},
			SuiteA: TranslationRoomText{
				Title:       "Suite A",
				Description: "Large family suite with two bedrooms and terrace",
			},
			SuiteB: TranslationRoomText{
				Title:       "Suite B",
				Description: "Spacious suite overlooking the pool",
			},
			SuiteC: TranslationRoomText{
				Title:       "Suite C",
				Description: "Comfortable suite with twin beds, ideal for couples",
			},
			Amenity: TranslationAmenity{
				AC:       "Air Conditioning",
				Bathroom: "Bathroom",
				Balcony:  "Balcony",
				Kitchen:  "Equipped Kitchen",
				Living:   "Living Room",
				Wifi:     "WiFi",
				TV:       "Television",
			},
		},
		Prices: TranslationPrices{
			Title:    "Prices & Availability",
			Subtitle: "Our prices vary by season",
			Night:    "night",
			Week:     "week",
			Persons:  "Persons",
			Season: TranslationSeasons{
				High:   "High Season",
				Mid:    "Mid Season",
				Low:    "Low Season",
				Summer: "Summer Season",
			},
			Calculator: TranslationCalculator{
				Title:           "Price calculator",
				RoomType:        "Accommodation type",
				Persons:         "Number of guests",
				Dates:           "Stay dates",
				CheckIn:         "Check-in date",
				CheckOut:        "Check-out date",
				Submit:          "Calculate",
				SelectOptions:   "Select an accommodation and the number of guests",
				SelectDates:     "Select your stay dates",
				PricePerNight:   "Price per night",
				PricePerWeek:    "Price per week",
				TotalPrice:      "Total price",
				Night:           "night",
				Nights:          "nights",
				ExceedsCapacity: "The number of guests exceeds the accommodation capacity, the maximum rate applies",
				Unavailable:     "Price on request, please contact us",
				IncludingTax:    "Taxes included",
				BookNow:         "Book",
			},
		},
		Booking: TranslationBooking{
			Title:       "Booking",
			FormTitle:   "Booking form",
			Description: "Fill in the form below and we will get back to you shortly.",
			OpenNewTab:  "Open the form in a new tab",
			Loading:     "Loading form...",
		},
		Gallery: TranslationGallery{
			Title:        "Photo Gallery",
			Subtitle:     "Discover our residence",
			Close:        "Close",
			Previous:     "Previous",
			Next:         "Next",
			Aerial:       "Aerial view of the residence",
			Pool:         "Pool with umbrellas",
			PoolArea:     "Pool and relaxation area",
			Bedroom:      "Twin bedroom",
			StandardRoom: "Standard room",
			LivingRoom:   "Comfortable living room",
			Apartment:    "Apartment with kitchenette",
			Garden:       "Tropical garden",
			Tennis:       "Tennis court and gardens",
			View:         "View from balcony",
		},
		About: TranslationAbout{
			Title:        "About Us",
			Subtitle:     "Your stay in Agadir",
			Text1:        "Résidence Yasmina is located in the heart of Agadir, offering easy access to all city amenities while maintaining a peaceful and welcoming atmosphere.",
			Text2:        "Our furnished apartments are perfect for families and travelers seeking comfort and independence during their stay.",
			Location:     "Location",
			LocationDesc: "Agadir city center, close to beaches, restaurants and attractions",
			Surroundings: "Surroundings",
			OpenMap:      "Open map",
		},
		Contact: TranslationContact{
			Title:    "Contact Us",
			Subtitle: "We are here to help",
			Address:  "Address",
			Phone:    "Phone",
			Email:    "Email",
			Form: TranslationContactForm{
				Title:   "Send us a message",
				Name:    "Full name",
				Email:   "Email",
				Subject: "Subject",
				Message: "Message",
				Send:    "Send",
				Sent:    "Message sent! We will get back to you shortly.",
			},
		},
		Auth: TranslationAuth{
			Login:              "Login",
			LoginSubtitle:      "Sign in to your account",
			Signup:             "Sign up",
			SignupSubtitle:     "Create your account",
			Email:              "Email",
			Password:           "Password",
			FullName:           "Full name",
			NoAccount:          "No account yet? Sign up",
			HasAccount:         "Already have an account? Log in",
			InvalidCredentials: "Invalid email or password",
			EmailTaken:         "An account already exists for this email",
			Captcha:            "Bot verification failed",
		},
		Profile: TranslationProfile{
			Title:       "My Profile",
			Email:       "Email",
			FullName:    "Full name",
			Description: "Description",
			Avatar:      "Profile picture",
			Upload:      "Change picture",
			Save:        "Save",
			SaveSuccess: "Profile updated",
			SaveError:   "Could not save profile",
			SignOut:     "Sign out",
		},
		Footer: TranslationFooter{
			Description: "Furnished apartments with pool in the center of Agadir",
			Links:       "Quick Links",
			Contact:     "Contact",
			Follow:      "Follow Us",
			Rights:      "All rights reserved",
			Legal:       "Legal Notice",
		},
		Validation: TranslationValidation{
			Required: "This field is required",
			Email:    "Invalid email address",
			TooLong:  "This field is too long",
			TooShort: "This field is too short",
			Date:     "Invalid date",
			Number:   "Invalid number",
			Room:     "Unknown accommodation",
			Image:    "Only JPEG, PNG, WebP or GIF images are accepted",
		},
		Error: Error{
			Title:       "Something went wrong",
			Process:     "Your request could not be processed, please try again.",
			Maintenance: "The site is under maintenance, changes are temporarily disabled.",
			NotFound:    "Page not found",
			Unavailable: "This service is currently unavailable.",
		},
		Success: Success{
			Title: "Success",
		},
		Admin: TranslationAdmin{
			Title:        "Administration",
			Messages:     "Messages",
			Users:        "Users",
			Translations: "Translations",
			Save:         "Save",
			Delete:       "Delete",
			Upload:       "Add image",
		},
	}
}
