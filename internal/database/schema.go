package database

import (
	"fmt"
)

// schemaStatements creates all tables in dependency order. Statements are
// idempotent so startup can always run them.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(50) UNIQUE NOT NULL,
		email VARCHAR(100) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		age INT,
		city_tier INT,
		monthly_income NUMERIC(10,2),
		owns_car BOOLEAN,
		has_passport BOOLEAN,
		number_of_trips INT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS tours (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description TEXT,
		price NUMERIC(10,2) NOT NULL,
		duration_days INT,
		tour_type VARCHAR(50) NOT NULL DEFAULT 'Standard',
		image_url VARCHAR(255),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id SERIAL PRIMARY KEY,
		user_id INT REFERENCES users(id) ON DELETE SET NULL,
		tour_id INT NOT NULL REFERENCES tours(id) ON DELETE CASCADE,
		booking_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		travel_date DATE NOT NULL,
		guests INT NOT NULL,
		total_price NUMERIC(10,2) NOT NULL,
		ai_suggested_price NUMERIC(10,2),
		customer_name VARCHAR(100) NOT NULL,
		customer_email VARCHAR(100) NOT NULL,
		customer_phone VARCHAR(20) NOT NULL,
		special_requests TEXT,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		package_type VARCHAR(50) NOT NULL,
		preferred_star_rating INT NOT NULL DEFAULT 3,
		number_of_children INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS guides (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		specialty VARCHAR(100) NOT NULL,
		experience VARCHAR(50),
		rating NUMERIC(3,2) NOT NULL DEFAULT 0,
		languages TEXT[] NOT NULL DEFAULT '{}',
		image_url VARCHAR(255),
		bio TEXT,
		tours_completed INT NOT NULL DEFAULT 0,
		specialities TEXT[] NOT NULL DEFAULT '{}',
		phone VARCHAR(30),
		email VARCHAR(100),
		price_range VARCHAR(50),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS guide_requests (
		id SERIAL PRIMARY KEY,
		guide_id INT NOT NULL REFERENCES guides(id) ON DELETE CASCADE,
		request_type VARCHAR(20) NOT NULL,
		customer_name VARCHAR(100) NOT NULL,
		customer_email VARCHAR(100) NOT NULL,
		customer_phone VARCHAR(30),
		preferred_date DATE,
		duration VARCHAR(50),
		group_size VARCHAR(50),
		tour_type VARCHAR(50),
		message TEXT NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS custom_tour_requests (
		id SERIAL PRIMARY KEY,
		user_id INT REFERENCES users(id) ON DELETE SET NULL,
		customer_name VARCHAR(100) NOT NULL,
		customer_email VARCHAR(100) NOT NULL,
		customer_phone VARCHAR(30) NOT NULL,
		travel_date DATE,
		number_of_travelers INT NOT NULL,
		duration_days INT NOT NULL,
		budget_level VARCHAR(20) NOT NULL,
		selected_destinations TEXT[] NOT NULL DEFAULT '{}',
		destination_names TEXT[] NOT NULL DEFAULT '{}',
		estimated_cost NUMERIC(10,2) NOT NULL,
		special_requests TEXT,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_tour_id ON bookings(tour_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings(status)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_travel_date ON bookings(travel_date)`,
	`CREATE INDEX IF NOT EXISTS idx_guide_requests_guide_id ON guide_requests(guide_id)`,
}

// EnsureSchema creates any missing tables and indexes
func EnsureSchema(db DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
