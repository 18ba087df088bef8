package entity

// Category is one entry of the home screen
type Category struct {
	Key         string
	Title       string
	Description string
	Path        string
}

// Listing names, shared by the search analytics keys and the home categories
const (
	ListingSpecialties = "specialties"
	ListingDiseases    = "diseases"
	ListingDoctors     = "doctors"
	ListingPharmacies  = "pharmacies"
)
