package database

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mathangi54/Travelling-System/internal/models"
)

// SeedRepository loads demo data for the Sri Lankan tourism catalog
type SeedRepository struct {
	db DB
}

// NewSeedRepository creates a new SeedRepository
func NewSeedRepository(db DB) *SeedRepository {
	return &SeedRepository{db: db}
}

// SeedResult reports what a seed run did
type SeedResult struct {
	Seeded        bool `json:"seeded"`
	ExistingTours int  `json:"existing_tours"`
	ToursAdded    int  `json:"tours_added"`
}

type tourFixture struct {
	name        string
	description string
	price       float64
	days        int
	tourType    string
	imageURL    string
}

// tourFixtures holds the 12 Sri Lankan destinations used for demo data
var tourFixtures = []tourFixture{
	{"Pristine Beaches of Mirissa", "Experience whale watching and pristine beaches in southern Sri Lanka with beachfront villa stay and stilt fishing experiences", 850.00, 5, "Beach", "/images/mirrisa1.jpg"},
	{"Misty Mountains of Ella", "Discover tea plantations, Nine Arch Bridge, Little Adams Peak, and traditional tea factory tours in the hill country", 650.00, 6, "Hill Country", "/images/misty_ella.jpg"},
	{"Cultural Triangle Explorer", "Explore ancient cities of Sigiriya Rock Fortress, Anuradhapura sacred city, and Polonnaruwa medieval capital", 1200.00, 8, "Cultural", "/images/trinco.webp"},
	{"Sacred City of Kandy", "Visit Temple of the Tooth Relic, Royal Botanical Gardens, traditional Kandyan dance, and Lake Kandy boat rides", 520.00, 4, "Cultural", "/images/kandy1.jpg"},
	{"Wildlife Safari Adventure", "Leopard spotting in Yala National Park with luxury safari camping, elephant orphanage, and bird watching tours", 800.00, 5, "Wildlife", "/images/safari.jpg"},
	{"Tea Country Experience", "Explore Nuwara Eliya tea plantations, Horton Plains World's End, cool mountain climate, and colonial heritage hotels", 550.00, 4, "Hill Country", "/images/tea1.jpg"},
	{"Golden Beaches of Arugam Bay", "World-class surfing destination with beach bungalow accommodation, Kumana Bird Sanctuary, and fresh seafood dining", 680.00, 6, "Beach", "/images/arugam1.webp"},
	{"Ancient Fortress of Jaffna", "Explore rich Tamil culture, historic Jaffna Fort, Nallur Temple heritage, and island hopping tours", 600.00, 5, "Cultural", "/images/fort.jpg"},
	{"Pristine Trincomalee", "Beautiful Nilaveli Beach, ancient Koneswaram Temple, whale watching cruises, and hot springs experience", 720.00, 6, "Beach", "/images/trinco1.jpg"},
	{"Galle Dutch Fort Heritage", "UNESCO World Heritage colonial fort with cobblestone streets, rampart walks, and ocean views", 480.00, 3, "Heritage", "/images/galle.jpg"},
	{"Tropical Paradise Unawatuna", "Palm-fringed beaches, coral reef snorkeling, sunset catamaran cruises, and beachfront relaxation", 750.00, 7, "Beach", "/images/unawatuna1.webp"},
	{"Sinharaja Rainforest Trek", "UNESCO Biosphere Reserve trekking with endemic wildlife, bird watching, and nature conservation experiences", 580.00, 4, "Nature", "/images/yala.webp"},
}

type guideFixture struct {
	name           string
	specialty      string
	experience     string
	rating         float64
	languages      []string
	imageURL       string
	bio            string
	toursCompleted int
	specialities   []string
	phone          string
	email          string
	priceRange     string
}

// guideFixtures holds the professional guide roster used for demo data
var guideFixtures = []guideFixture{
	{
		name: "Chaminda Perera", specialty: "Cultural Heritage Tours", experience: "12 years",
		rating: 4.9, languages: []string{"Tamil", "English", "Sinhala"}, imageURL: "/images/guide1.webp",
		bio:            "Born in Kandy, expert in Buddhist history and UNESCO World Heritage sites. Specializes in Cultural Triangle tours including Sigiriya, Dambulla, and Anuradhapura.",
		toursCompleted: 485, specialities: []string{"Sigiriya & Dambulla", "Kandy Temple Tours", "Ancient Kingdoms", "UNESCO Sites"},
		phone: "+94 77 123 4567", email: "chaminda@srilankaguides.com", priceRange: "Rs.4,000-8,000/day",
	},
	{
		name: "Nimal Fernando", specialty: "Wildlife & Nature Tours", experience: "15 years",
		rating: 4.95, languages: []string{"Tamil", "English", "Sinhala"}, imageURL: "/images/guide7.jpg",
		bio:            "Wildlife biologist and safari guide with deep knowledge of Yala, Udawalawe and leopard behavior patterns. Expert in bird watching and conservation.",
		toursCompleted: 520, specialities: []string{"Leopard Safaris", "Elephant Watching", "Bird Photography", "Conservation Tours"},
		phone: "+94 71 987 6543", email: "nimal@wildlifeguides.lk", priceRange: "Rs.5,000-8,000/day",
	},
	{
		name: "Priya Wickramasinghe", specialty: "Tea Country & Hill Station Tours", experience: "8 years",
		rating: 4.88, languages: []string{"Tamil", "English", "Sinhala"}, imageURL: "/images/guide12.webp",
		bio:            "Tea plantation heritage expert from Nuwara Eliya, specializing in Ceylon tea history and hill country adventures. Third-generation tea planter family.",
		toursCompleted: 320, specialities: []string{"Tea Factory Tours", "Ella & Nine Arches", "Mountain Trekking", "Colonial Heritage"},
		phone: "+94 76 555 2468", email: "priya@teacountryguides.com", priceRange: "Rs.4,000-6,500/day",
	},
	{
		name: "Ruwan Jayasuriya", specialty: "Coastal & Adventure Tours", experience: "10 years",
		rating: 4.92, languages: []string{"Tamil", "English", "Sinhala"}, imageURL: "/images/guide14.webp",
		bio:            "Certified diving instructor and marine conservation advocate. Expert in southern coast attractions and whale watching. PADI certified with marine biology background.",
		toursCompleted: 410, specialities: []string{"Whale Watching", "Surfing Lessons", "Coastal Heritage", "Marine Conservation"},
		phone: "+94 75 333 7890", email: "ruwan@coastalguides.lk", priceRange: "Rs.5,500-8,000/day",
	},
	{
		name: "Kumari Silva", specialty: "Culinary & Village Tours", experience: "6 years",
		rating: 4.87, languages: []string{"Tamil", "English", "Sinhala"}, imageURL: "/images/guide5.webp",
		bio:            "Traditional Sri Lankan chef and cultural ambassador. Offers authentic village experiences and cooking classes. Expert in regional cuisines from all provinces.",
		toursCompleted: 285, specialities: []string{"Spice Garden Tours", "Traditional Cooking", "Village Experiences", "Local Markets"},
		phone: "+94 78 444 1357", email: "kumari@culinaryguides.com", priceRange: "Rs.4,000-6,000/day",
	},
	{
		name: "Mahinda Rathnayake", specialty: "Adventure & Pilgrimage Tours", experience: "14 years",
		rating: 4.91, languages: []string{"Tamil", "English", "Sinhala"}, imageURL: "/images/guide8.jpeg",
		bio:            "Mountain guide and meditation practitioner. Specializes in Adam's Peak pilgrimages and spiritual journeys. Licensed mountain climbing instructor.",
		toursCompleted: 465, specialities: []string{"Adam's Peak Climb", "Meditation Retreats", "Sacred Sites", "Mountain Adventures"},
		phone: "+94 77 666 9012", email: "mahinda@pilgrimguides.lk", priceRange: "Rs.4,500-7,000/day",
	},
}

// SeedToursIfEmpty loads the demo catalog only when no tours exist yet.
// It inserts the tours, an admin account, and a few confirmed sample
// bookings in a single transaction.
func (r *SeedRepository) SeedToursIfEmpty() (*SeedResult, error) {
	var count int
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM tours`); err != nil {
		return nil, fmt.Errorf("failed to count tours: %w", err)
	}
	if count > 0 {
		return &SeedResult{Seeded: false, ExistingTours: count}, nil
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	tourIDs := make([]int, 0, len(tourFixtures))
	insertTour := `
		INSERT INTO tours (name, description, price, duration_days, tour_type, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	for _, t := range tourFixtures {
		var id int
		if err := tx.QueryRowx(insertTour, t.name, t.description, t.price, t.days, t.tourType, t.imageURL).Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to seed tour %q: %w", t.name, err)
		}
		tourIDs = append(tourIDs, id)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	var adminID int
	insertAdmin := `
		INSERT INTO users (username, email, password_hash, is_admin,
			age, city_tier, monthly_income, owns_car, has_passport, number_of_trips)
		VALUES ('admin', 'admin@srilanka-tours.com', $1, TRUE, 30, 1, 75000, TRUE, TRUE, 5)
		RETURNING id`
	if err := tx.QueryRowx(insertAdmin, string(hash)).Scan(&adminID); err != nil {
		return nil, fmt.Errorf("failed to seed admin user: %w", err)
	}

	sampleBookings := []struct {
		tourIndex   int
		travelDate  time.Time
		guests      int
		totalPrice  float64
		packageType string
		children    int
	}{
		{0, time.Now().AddDate(0, 3, 0), 2, 1700.00, "standard", 0},
		{2, time.Now().AddDate(0, 4, 0), 4, 4800.00, "premium", 2},
		{4, time.Now().AddDate(0, 5, 0), 2, 1600.00, "standard", 0},
	}
	insertBooking := `
		INSERT INTO bookings (user_id, tour_id, travel_date, guests, total_price,
			customer_name, customer_email, customer_phone, status, package_type, number_of_children)
		VALUES ($1, $2, $3, $4, $5, 'Admin User', 'admin@srilanka-tours.com', '+94-123-456-7890', $6, $7, $8)`
	for _, b := range sampleBookings {
		if _, err := tx.Exec(insertBooking,
			adminID, tourIDs[b.tourIndex], b.travelDate, b.guests, b.totalPrice,
			models.BookingStatusConfirmed, b.packageType, b.children,
		); err != nil {
			return nil, fmt.Errorf("failed to seed sample booking: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit seed data: %w", err)
	}
	return &SeedResult{Seeded: true, ToursAdded: len(tourFixtures)}, nil
}

// ReseedTours replaces the entire tour catalog with the demo fixtures.
// Bookings cascade away with their tours.
func (r *SeedRepository) ReseedTours() (int, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tours`); err != nil {
		return 0, fmt.Errorf("failed to clear tours: %w", err)
	}

	insertTour := `
		INSERT INTO tours (name, description, price, duration_days, tour_type, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, t := range tourFixtures {
		if _, err := tx.Exec(insertTour, t.name, t.description, t.price, t.days, t.tourType, t.imageURL); err != nil {
			return 0, fmt.Errorf("failed to seed tour %q: %w", t.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit tours: %w", err)
	}
	return len(tourFixtures), nil
}

// ReseedGuides replaces the entire guide roster with the demo fixtures
func (r *SeedRepository) ReseedGuides() (int, error) {
	guides := make([]models.Guide, 0, len(guideFixtures))
	for _, g := range guideFixtures {
		experience := g.experience
		imageURL := g.imageURL
		bio := g.bio
		phone := g.phone
		email := g.email
		priceRange := g.priceRange
		guides = append(guides, models.Guide{
			Name:           g.name,
			Specialty:      g.specialty,
			Experience:     &experience,
			Rating:         g.rating,
			Languages:      models.StringArray(g.languages),
			ImageURL:       &imageURL,
			Bio:            &bio,
			ToursCompleted: g.toursCompleted,
			Specialities:   models.StringArray(g.specialities),
			Phone:          &phone,
			Email:          &email,
			PriceRange:     &priceRange,
		})
	}
	return NewGuideRepository(r.db).ReplaceAll(guides)
}
