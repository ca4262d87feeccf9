package fakes

import (
	"fmt"

	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

// DB agrupa as tabelas em memória; os repositórios são visões sobre ela e
// resolvem as associações na leitura.
type DB struct {
	clients      *table[models.Client]
	pets         *table[models.Pet]
	categories   *table[models.ServiceCategory]
	services     *table[models.Service]
	appointments *table[models.Appointment]
	stays        *table[models.HotelStay]
	records      *table[models.MedicalRecord]
	vaccinations *table[models.Vaccination]
	pqrs         *table[models.Pqr]
	users        *table[models.User]
}

func NewDB() *DB {
	return &DB{
		clients:      newTable[models.Client]("client"),
		pets:         newTable[models.Pet]("pet"),
		categories:   newTable[models.ServiceCategory]("service_category"),
		services:     newTable[models.Service]("service"),
		appointments: newTable[models.Appointment]("appointment"),
		stays:        newTable[models.HotelStay]("hotel_stay"),
		records:      newTable[models.MedicalRecord]("medical_record"),
		vaccinations: newTable[models.Vaccination]("vaccination"),
		pqrs:         newTable[models.Pqr]("pqr"),
		users:        newTable[models.User]("user"),
	}
}

// --------------------------------------------------
// Seeds
// --------------------------------------------------

func (db *DB) Client(name string) models.Client {
	c := models.Client{
		Name:                 name,
		Email:                fmt.Sprintf("%s@example.com", name),
		Phone:                "3000000000",
		Address:              "Calle 1",
		IdentificationType:   "CC",
		IdentificationNumber: fmt.Sprintf("ID-%s", name),
	}
	db.clients.insert(func(id uint) { c.ID = id }, func() models.Client { return c })
	return c
}

func (db *DB) Pet(clientID uint, name string) models.Pet {
	p := models.Pet{ClientID: clientID, Name: name, Species: "Perro", Breed: "Criollo", Gender: "male"}
	db.pets.insert(func(id uint) { p.ID = id }, func() models.Pet { return p })
	return p
}

func (db *DB) Category(name string, seg models.Segment) models.ServiceCategory {
	c := models.ServiceCategory{Name: name, Segment: seg}
	db.categories.insert(func(id uint) { c.ID = id }, func() models.ServiceCategory { return c })
	return c
}

func (db *DB) Service(categoryID uint, name string, price float64) models.Service {
	s := models.Service{ServiceCategoryID: categoryID, Name: name, Price: price, IsActive: true}
	db.services.insert(func(id uint) { s.ID = id }, func() models.Service { return s })
	return s
}

func (db *DB) User(name string, role string) models.User {
	u := models.User{Name: name, Email: name + "@petcare.test", Role: role, Active: true}
	db.users.insert(func(id uint) { u.ID = id }, func() models.User { return u })
	return u
}

func (db *DB) Appointment(ap models.Appointment) models.Appointment {
	if ap.Status == "" {
		ap.Status = "scheduled"
	}
	db.appointments.insert(func(id uint) { ap.ID = id }, func() models.Appointment { return ap })
	return ap
}

func (db *DB) HotelStay(hs models.HotelStay) models.HotelStay {
	if hs.Status == "" {
		hs.Status = "reserved"
	}
	db.stays.insert(func(id uint) { hs.ID = id }, func() models.HotelStay { return hs })
	return hs
}

func (db *DB) MedicalRecord(m models.MedicalRecord) models.MedicalRecord {
	db.records.insert(func(id uint) { m.ID = id }, func() models.MedicalRecord { return m })
	return m
}

func (db *DB) Vaccination(v models.Vaccination) models.Vaccination {
	db.vaccinations.insert(func(id uint) { v.ID = id }, func() models.Vaccination { return v })
	return v
}

func (db *DB) Pqr(p models.Pqr) models.Pqr {
	if p.Status == "" {
		p.Status = "pending"
	}
	db.pqrs.insert(func(id uint) { p.ID = id }, func() models.Pqr { return p })
	return p
}

// --------------------------------------------------
// Associações
// --------------------------------------------------

func (db *DB) serviceWithCategory(id uint) *models.Service {
	s, err := db.services.get(id)
	if err != nil {
		return nil
	}
	if c, err := db.categories.get(s.ServiceCategoryID); err == nil {
		s.Category = &c
	}
	return &s
}

func (db *DB) clientRef(id uint) *models.Client {
	c, err := db.clients.get(id)
	if err != nil {
		return nil
	}
	c.Pets = nil
	return &c
}

func (db *DB) petRef(id uint) *models.Pet {
	p, err := db.pets.get(id)
	if err != nil {
		return nil
	}
	return &p
}

func (db *DB) userRef(id uint) *models.User {
	u, err := db.users.get(id)
	if err != nil {
		return nil
	}
	return &u
}

func (db *DB) serviceSegment(serviceID uint) models.Segment {
	if s := db.serviceWithCategory(serviceID); s != nil && s.Category != nil {
		return s.Category.Segment
	}
	return ""
}
