// Command seed loads a small set of demo data into an empty database:
// one admin account, a handful of customers, the house's room types and
// rooms, and a sample booking with occupancy charges.
package main

import (
	"log"
	"passat/config"
	"passat/infras/postgres"
	"passat/shared/password"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const seedUser = "seed"

func main() {
	cfg := config.Get()
	db := postgres.New(cfg)

	if err := run(db.Write); err != nil {
		log.Fatal(err)
	}

	log.Println("seed data loaded")
}

func run(db *sqlx.DB) error {
	adminID := uuid.NewString()
	customerID := uuid.NewString()
	roomTypeSingleID := uuid.NewString()
	roomTypeDoubleID := uuid.NewString()
	roomID := uuid.NewString()
	bookingID := uuid.NewString()

	hash, err := password.Hash("changeme")
	if err != nil {
		return err
	}

	_, err = db.NamedExec(`
		INSERT INTO users (id, email, password, full_name, role, active, created_by, modified_by)
		VALUES (:id, :email, :password, :full_name, :role, TRUE, :by, :by)`,
		map[string]any{
			"id":        adminID,
			"email":     "admin@example.com",
			"password":  hash,
			"full_name": "Administrator",
			"role":      "superadmin",
			"by":        seedUser,
		})
	if err != nil {
		return err
	}

	_, err = db.NamedExec(`
		INSERT INTO customers (id, first_name, last_name, email, phone, street, postal_code, city, country, privacy_consent, created_by, modified_by)
		VALUES (:id, :first_name, :last_name, :email, :phone, :street, :postal_code, :city, :country, TRUE, :by, :by)`,
		map[string]any{
			"id":          customerID,
			"first_name":  "Erika",
			"last_name":   "Mustermann",
			"email":       "erika.mustermann@example.com",
			"phone":       "+49 30 1234567",
			"street":      "Heidestraße 17",
			"postal_code": "10557",
			"city":        "Berlin",
			"country":     "Deutschland",
			"by":          seedUser,
		})
	if err != nil {
		return err
	}

	roomTypes := []map[string]any{
		{
			"id":           roomTypeSingleID,
			"name":         "Einzelzimmer Standard",
			"category":     "single",
			"nightly_rate": decimal.NewFromFloat(89.00),
			"by":           seedUser,
		},
		{
			"id":           roomTypeDoubleID,
			"name":         "Doppelzimmer Komfort",
			"category":     "double",
			"nightly_rate": decimal.NewFromFloat(129.00),
			"by":           seedUser,
		},
	}
	for _, rt := range roomTypes {
		_, err = db.NamedExec(`
			INSERT INTO room_types (id, name, category, nightly_rate, created_by, modified_by)
			VALUES (:id, :name, :category, :nightly_rate, :by, :by)`, rt)
		if err != nil {
			return err
		}
	}

	rooms := []map[string]any{
		{"id": roomID, "number": "101", "name": "Seeblick", "room_type_id": roomTypeDoubleID, "capacity": 2, "by": seedUser},
		{"id": uuid.NewString(), "number": "102", "name": "Gartenblick", "room_type_id": roomTypeDoubleID, "capacity": 2, "by": seedUser},
		{"id": uuid.NewString(), "number": "201", "name": "", "room_type_id": roomTypeSingleID, "capacity": 1, "by": seedUser},
	}
	for _, r := range rooms {
		_, err = db.NamedExec(`
			INSERT INTO rooms (id, number, name, room_type_id, capacity, created_by, modified_by)
			VALUES (:id, :number, :name, :room_type_id, :capacity, :by, :by)`, r)
		if err != nil {
			return err
		}
	}

	arrival := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	departure := arrival.AddDate(0, 0, 3)

	_, err = db.NamedExec(`
		INSERT INTO bookings (id, booking_number, customer_id, room_id, arrival_date, departure_date, status, booking_kind, created_by, modified_by)
		VALUES (:id, :booking_number, :customer_id, :room_id, :arrival_date, :departure_date, 'confirmed', 'private', :by, :by)`,
		map[string]any{
			"id":             bookingID,
			"booking_number": "BU-" + arrival.Format("20060102") + "-001",
			"customer_id":    customerID,
			"room_id":        roomID,
			"arrival_date":   arrival,
			"departure_date": departure,
			"by":             seedUser,
		})
	if err != nil {
		return err
	}

	charges := []map[string]any{
		{
			"id":          uuid.NewString(),
			"booking_id":  bookingID,
			"description": "Frühstück",
			"quantity":    2,
			"unit_price":  decimal.NewFromFloat(15.00),
			"total":       decimal.NewFromFloat(30.00),
			"by":          seedUser,
		},
		{
			"id":          uuid.NewString(),
			"booking_id":  bookingID,
			"description": "Parkplatz",
			"quantity":    3,
			"unit_price":  decimal.NewFromFloat(8.00),
			"total":       decimal.NewFromFloat(24.00),
			"by":          seedUser,
		},
	}
	for _, c := range charges {
		_, err = db.NamedExec(`
			INSERT INTO occupancy_charges (id, booking_id, description, quantity, unit_price, total, created_by, modified_by)
			VALUES (:id, :booking_id, :description, :quantity, :unit_price, :total, :by, :by)`, c)
		if err != nil {
			return err
		}
	}

	return nil
}
