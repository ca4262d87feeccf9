package repository

import "github.com/BruksfildServices01/petcare-manager/internal/models"

const serviceSegmentSubquery = "SELECT s.id FROM services s " +
	"JOIN service_categories sc ON sc.id = s.service_category_id " +
	"WHERE sc.segment IN ?"

const serviceSegmentEqSubquery = "SELECT s.id FROM services s " +
	"JOIN service_categories sc ON sc.id = s.service_category_id " +
	"WHERE sc.segment = ?"

func likeArgs(like string, n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = like
	}
	return args
}

var clientRenderer = renderer{
	fields: map[string]string{
		"identification_type": "clients.identification_type",
		"name":                "clients.name",
		"created_at":          "clients.created_at",
	},
	search: func(like string) (string, []any) {
		return "LOWER(clients.name) LIKE ? OR LOWER(clients.email) LIKE ? OR " +
			"clients.phone LIKE ? OR clients.identification_number LIKE ?", likeArgs(like, 4)
	},
	defaultSort: "clients.created_at DESC",
}

var petRenderer = renderer{
	fields: map[string]string{
		"client_id":  "pets.client_id",
		"species":    "LOWER(pets.species) = LOWER(?)",
		"name":       "pets.name",
		"created_at": "pets.created_at",
	},
	search: func(like string) (string, []any) {
		return "LOWER(pets.name) LIKE ? OR LOWER(pets.species) LIKE ? OR LOWER(pets.breed) LIKE ? OR " +
			"EXISTS (SELECT 1 FROM clients c WHERE c.id = pets.client_id AND LOWER(c.name) LIKE ?)", likeArgs(like, 4)
	},
	defaultSort: "pets.created_at DESC",
}

var serviceRenderer = renderer{
	fields: map[string]string{
		"service_category_id": "services.service_category_id",
		"is_active":           "services.is_active",
		"segment":             "services.service_category_id IN (SELECT id FROM service_categories WHERE segment = ?)",
		"name":                "services.name",
		"price":               "services.price",
	},
	search: func(like string) (string, []any) {
		return "LOWER(services.name) LIKE ? OR LOWER(services.description) LIKE ?", likeArgs(like, 2)
	},
	segment: func(segs []string) (string, []any) {
		return "services.service_category_id IN (SELECT id FROM service_categories WHERE segment IN ?)", []any{segs}
	},
	defaultSort: "services.name ASC",
}

var categoryRenderer = renderer{
	fields: map[string]string{
		"segment": "service_categories.segment",
		"name":    "service_categories.name",
	},
	segment: func(segs []string) (string, []any) {
		return "service_categories.segment IN ?", []any{segs}
	},
	defaultSort: "service_categories.name ASC",
}

var appointmentRenderer = renderer{
	fields: map[string]string{
		"status":           "appointments.status",
		"service_id":       "appointments.service_id",
		"user_id":          "appointments.user_id",
		"client_id":        "appointments.client_id",
		"pet_id":           "appointments.pet_id",
		"appointment_date": "appointments.appointment_date",
		"completed_at":     "appointments.completed_at",
		"segment":          "appointments.service_id IN (" + serviceSegmentEqSubquery + ")",
	},
	search: func(like string) (string, []any) {
		return "EXISTS (SELECT 1 FROM clients c WHERE c.id = appointments.client_id AND LOWER(c.name) LIKE ?) OR " +
			"EXISTS (SELECT 1 FROM pets p WHERE p.id = appointments.pet_id AND LOWER(p.name) LIKE ?)", likeArgs(like, 2)
	},
	segment: func(segs []string) (string, []any) {
		return "appointments.service_id IN (" + serviceSegmentSubquery + ")", []any{segs}
	},
	defaultSort: "appointments.appointment_date DESC",
}

var hotelStayRenderer = renderer{
	fields: map[string]string{
		"status":         "hotel_stays.status",
		"room_type":      "hotel_stays.room_type",
		"client_id":      "hotel_stays.client_id",
		"pet_id":         "hotel_stays.pet_id",
		"check_in_date":  "hotel_stays.check_in_date",
		"check_out_date": "hotel_stays.check_out_date",
		"checked_out_at": "hotel_stays.checked_out_at",
	},
	search: func(like string) (string, []any) {
		return "EXISTS (SELECT 1 FROM clients c WHERE c.id = hotel_stays.client_id AND LOWER(c.name) LIKE ?) OR " +
			"EXISTS (SELECT 1 FROM pets p WHERE p.id = hotel_stays.pet_id AND LOWER(p.name) LIKE ?)", likeArgs(like, 2)
	},
	segment:     fixedSegment(models.SegmentHotel),
	defaultSort: "hotel_stays.check_in_date DESC",
}

var medicalRecordRenderer = renderer{
	fields: map[string]string{
		"pet_id":          "medical_records.pet_id",
		"veterinarian_id": "medical_records.veterinarian_id",
		"appointment_id":  "medical_records.appointment_id",
		"created_at":      "medical_records.created_at",
	},
	search: func(like string) (string, []any) {
		return "LOWER(medical_records.diagnosis) LIKE ? OR LOWER(medical_records.treatment) LIKE ? OR " +
			"EXISTS (SELECT 1 FROM pets p WHERE p.id = medical_records.pet_id AND LOWER(p.name) LIKE ?)", likeArgs(like, 3)
	},
	segment:     fixedSegment(models.SegmentClinic),
	defaultSort: "medical_records.created_at DESC",
}

var vaccinationRenderer = renderer{
	fields: map[string]string{
		"pet_id":           "vaccinations.pet_id",
		"application_date": "vaccinations.application_date",
		"next_dose_date":   "vaccinations.next_dose_date",
	},
	search: func(like string) (string, []any) {
		return "LOWER(vaccinations.vaccine_name) LIKE ?", likeArgs(like, 1)
	},
	segment:     fixedSegment(models.SegmentClinic),
	defaultSort: "vaccinations.application_date DESC",
}

var pqrRenderer = renderer{
	fields: map[string]string{
		"status":      "pqrs.status",
		"type":        "pqrs.type",
		"assigned_to": "pqrs.assigned_to",
		"created_at":  "pqrs.created_at",
	},
	search: func(like string) (string, []any) {
		return "LOWER(pqrs.subject) LIKE ? OR LOWER(pqrs.description) LIKE ? OR LOWER(pqrs.client_name) LIKE ? OR LOWER(pqrs.client_email) LIKE ?", likeArgs(like, 4)
	},
	defaultSort: "pqrs.created_at DESC",
}

var userRenderer = renderer{
	fields: map[string]string{
		"role":   "users.role",
		"active": "users.active",
		"name":   "users.name",
	},
	search: func(like string) (string, []any) {
		return "LOWER(users.name) LIKE ? OR LOWER(users.email) LIKE ?", likeArgs(like, 2)
	},
	defaultSort: "users.name ASC",
}
