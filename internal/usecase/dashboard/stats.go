package dashboard

import (
	"github.com/BruksfildServices01/petcare-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type BaseStats struct {
	TotalClients      int64 `json:"total_clients"`
	TotalPets         int64 `json:"total_pets"`
	AppointmentsToday int64 `json:"appointments_today"`
	PendingPqrs       int64 `json:"pending_pqrs"`
}

type ManagerStats struct {
	MonthlyRevenue      float64 `json:"monthly_revenue"`
	HotelRevenueMonth   float64 `json:"hotel_revenue_month"`
	ActiveHotelStays    int64   `json:"active_hotel_stays"`
	TotalActiveServices int64   `json:"total_services"`
}

type HotelStats struct {
	ActiveStays    int64 `json:"active_stays"`
	CheckinsToday  int64 `json:"checkins_today"`
	CheckoutsToday int64 `json:"checkouts_today"`
}

type ClinicStats struct {
	ClinicAppointmentsToday int64 `json:"clinic_appointments_today"`
	PendingMedicalRecords   int64 `json:"pending_medical_records"`
}

type SpaStats struct {
	SpaAppointmentsToday int64   `json:"spa_appointments_today"`
	SpaRevenueMonth      float64 `json:"spa_revenue_month"`
}

// Dashboard traz só o bloco do papel de quem pediu; os outros ficam nil.
type Dashboard struct {
	Stats   BaseStats     `json:"stats"`
	Manager *ManagerStats `json:"manager,omitempty"`
	Hotel   *HotelStats   `json:"hotel,omitempty"`
	Clinic  *ClinicStats  `json:"clinic,omitempty"`
	Spa     *SpaStats     `json:"spa,omitempty"`

	UpcomingAppointments []models.Appointment       `json:"upcoming_appointments"`
	PopularServices      []appointment.ServiceUsage `json:"popular_services"`
}
