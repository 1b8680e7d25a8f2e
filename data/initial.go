// Package data holds the static default content used to seed the store and
// to answer public read endpoints when the store is empty or unreachable.
package data

import (
	"github.com/nyanga-tradition/yayoh-api/models"
)

// DefaultProduct returns the static product shown when no product row exists
func DefaultProduct() models.Product {
	return models.Product{
		Title:          "Yayoh santé",
		Subtitle:       "Un héritage naturel",
		Description:    "Un onguent traditionnel préparé selon le savoir-faire séculaire des communautés locales, à base de plantes soigneusement sélectionnées comme le Moringa, l'Harpagophytum et l'Aloès, récoltées dans le respect de l'environnement.",
		TraditionalUse: "Au sein de la communauté, il est utilisé pour apaiser les sensations liées aux fatigues musculaires et articulaires après les longues journées de travail. Son parfum terreux et sa texture riche en font un élément central des rituels de bien-être.",
		Disclaimer:     "Ce produit est un témoignage d'un savoir-faire traditionnel. Il ne s'agit pas d'un médicament et aucune allégation thérapeutique ou médicale n'est formulée. En cas de problème de santé, consultez un professionnel de santé qualifié.",
		MainImage:      "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=800&auto=format&fit=crop",
		Images: models.StringList{
			"/uploads/gallery-1.jpg",
			"/uploads/gallery-2.jpg",
			"/uploads/gallery-3.jpg",
		},
		ContactPhone:   "+225 0758019243",
		WhatsappNumber: "+2250758019243",
		Email:          "contact@nyanga-tradition.com",
		Testimonials:   []models.Testimonial{},
		Galleries:      []models.Gallery{},
	}
}

// DefaultTestimonials returns the seeded testimonials for the default product
func DefaultTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			Name:     "Marie K.",
			Location: "Bordeaux",
			Text:     "Une découverte incroyable. La texture et l'odeur me rappellent les préparations de ma grand-mère. Un vrai retour aux sources.",
			Rating:   5,
			Avatar:   "/uploads/avatar-1.jpg",
		},
		{
			Name:     "Amadou D.",
			Location: "Dakar",
			Text:     "Enfin un produit qui honore nos traditions sans les dénaturer. La qualité des ingrédients se sent immédiatement.",
			Rating:   5,
			Avatar:   "/uploads/avatar-2.jpg",
		},
		{
			Name:     "Sophie L.",
			Location: "Lyon",
			Text:     "J'apprécie particulièrement l'approche respectueuse et transparente. Le baume fait maintenant partie de ma routine bien-être.",
			Rating:   4,
			Avatar:   "/uploads/avatar-3.jpg",
		},
	}
}

// DefaultGalleries returns the seeded gallery items for the default product
func DefaultGalleries() []models.Gallery {
	return []models.Gallery{
		{Title: "Préparation traditionnelle", ImageURL: "/uploads/gallery-1.jpg", Type: "image", Order: 1},
		{Title: "Ingrédients naturels", ImageURL: "/uploads/gallery-2.jpg", Type: "image", Order: 2},
		{Title: "Atelier de fabrication", ImageURL: "/uploads/gallery-3.jpg", Type: "image", Order: 3},
	}
}

// DefaultSettings returns the static site settings used as seed data and as
// the fallback of the public settings endpoint
func DefaultSettings() models.SiteSettings {
	product := DefaultProduct()
	return models.SiteSettings{
		ID:             models.SiteSettingsID,
		ContactPhone:   product.ContactPhone,
		WhatsappNumber: product.WhatsappNumber,
		Email:          product.Email,
		Address:        "123 Rue Tradition, 75000 Paris, France",
		SocialLinks: models.JSONMap{
			"facebook":  "https://facebook.com/nyangatradition",
			"instagram": "https://instagram.com/nyangatradition",
		},
	}
}
