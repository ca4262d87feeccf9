package access

import (
	"sort"

	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type Role string

const (
	RoleGeneralManager Role = "general_manager"
	RoleHotelEmployee  Role = "hotel_employee"
	RoleClinicAdmin    Role = "clinic_admin"
	RoleSpaAssistant   Role = "spa_assistant"
	RolePublic         Role = "public"
)

type Permission string

const (
	ManageUsers Permission = "manage_users"
	ViewUsers   Permission = "view_users"

	ManageClients Permission = "manage_clients"
	ViewClients   Permission = "view_clients"
	ManagePets    Permission = "manage_pets"
	ViewPets      Permission = "view_pets"

	ManageServices Permission = "manage_services"
	ViewServices   Permission = "view_services"
	ManagePrices   Permission = "manage_prices"
	ViewPrices     Permission = "view_prices"

	ManageAppointments Permission = "manage_appointments"
	ViewAppointments   Permission = "view_appointments"
	ManageHotelStays   Permission = "manage_hotel_stays"
	ViewHotelStays     Permission = "view_hotel_stays"

	ManageMedicalRecords Permission = "manage_medical_records"
	ViewMedicalRecords   Permission = "view_medical_records"
	ManageVaccinations   Permission = "manage_vaccinations"
	ViewVaccinations     Permission = "view_vaccinations"

	ManagePqrs  Permission = "manage_pqrs"
	ViewPqrs    Permission = "view_pqrs"
	RespondPqrs Permission = "respond_pqrs"

	ViewReports          Permission = "view_reports"
	ViewServiceReports   Permission = "view_service_reports"
	ViewPqrReports       Permission = "view_pqr_reports"
	ViewBreedReports     Permission = "view_breed_reports"
	ViewFinancialReports Permission = "view_financial_reports"

	ViewPetHistory    Permission = "view_pet_history"
	ViewClientHistory Permission = "view_client_history"
	ViewDashboard     Permission = "view_dashboard"
	ViewAuditLogs     Permission = "view_audit_logs"
)

func AllPermissions() []Permission {
	return []Permission{
		ManageUsers, ViewUsers,
		ManageClients, ViewClients, ManagePets, ViewPets,
		ManageServices, ViewServices, ManagePrices, ViewPrices,
		ManageAppointments, ViewAppointments, ManageHotelStays, ViewHotelStays,
		ManageMedicalRecords, ViewMedicalRecords, ManageVaccinations, ViewVaccinations,
		ManagePqrs, ViewPqrs, RespondPqrs,
		ViewReports, ViewServiceReports, ViewPqrReports, ViewBreedReports, ViewFinancialReports,
		ViewPetHistory, ViewClientHistory, ViewDashboard, ViewAuditLogs,
	}
}

func defaultPermissions() map[Role][]Permission {
	staff := []Permission{
		ManageClients, ViewClients, ManagePets, ViewPets,
		ManageAppointments, ViewAppointments,
		ViewPqrs, RespondPqrs,
		ViewServiceReports, ViewDashboard,
	}

	with := func(extra ...Permission) []Permission {
		out := append([]Permission{}, staff...)
		return append(out, extra...)
	}

	return map[Role][]Permission{
		RoleGeneralManager: AllPermissions(),
		RoleHotelEmployee: with(
			ManageHotelStays, ViewHotelStays,
			ViewMedicalRecords, ViewVaccinations,
			ViewServices, ViewPrices,
			ViewBreedReports,
		),
		RoleClinicAdmin: with(
			ManageMedicalRecords, ViewMedicalRecords,
			ManageVaccinations, ViewVaccinations,
			ViewServices, ViewPrices,
			ViewPetHistory,
		),
		RoleSpaAssistant: with(
			ManageServices, ViewServices,
			ManagePrices, ViewPrices,
			ViewClientHistory,
		),
		RolePublic: {ViewServices, ViewPrices},
	}
}

func defaultSegments() map[Role][]models.Segment {
	return map[Role][]models.Segment{
		RoleHotelEmployee: {models.SegmentHotel, models.SegmentClinic},
		RoleClinicAdmin:   {models.SegmentClinic, models.SegmentSpa},
		RoleSpaAssistant:  {models.SegmentSpa},
		RolePublic:        {},
	}
}

// Registry é imutável depois de construído; todos os getters devolvem cópias.
type Registry struct {
	permissions  map[Role]map[Permission]struct{}
	segments     map[Role][]models.Segment
	unrestricted map[Role]bool
}

// NewRegistry copia as tabelas recebidas. Papéis em unrestricted enxergam
// todos os segmentos e ignoram segments.
func NewRegistry(
	permissions map[Role][]Permission,
	segments map[Role][]models.Segment,
	unrestricted ...Role,
) *Registry {
	r := &Registry{
		permissions:  make(map[Role]map[Permission]struct{}, len(permissions)),
		segments:     make(map[Role][]models.Segment, len(segments)),
		unrestricted: make(map[Role]bool, len(unrestricted)),
	}

	for role, perms := range permissions {
		set := make(map[Permission]struct{}, len(perms))
		for _, p := range perms {
			set[p] = struct{}{}
		}
		r.permissions[role] = set
	}

	for role, segs := range segments {
		r.segments[role] = append([]models.Segment{}, segs...)
	}

	for _, role := range unrestricted {
		r.unrestricted[role] = true
	}

	return r
}

func DefaultRegistry() *Registry {
	return NewRegistry(defaultPermissions(), defaultSegments(), RoleGeneralManager)
}

func (r *Registry) Known(role Role) bool {
	_, ok := r.permissions[role]
	return ok
}

func (r *Registry) Has(role Role, perm Permission) bool {
	_, ok := r.permissions[role][perm]
	return ok
}

func (r *Registry) Permissions(role Role) []Permission {
	out := make([]Permission, 0, len(r.permissions[role]))
	for p := range r.permissions[role] {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Segments devolve os segmentos permitidos e se o papel é restrito.
// Papel desconhecido é tratado como restrito a nenhum segmento.
func (r *Registry) Segments(role Role) ([]models.Segment, bool) {
	if r.unrestricted[role] {
		return models.AllSegments(), false
	}
	return append([]models.Segment{}, r.segments[role]...), true
}

func (r *Registry) AllowsSegment(role Role, seg models.Segment) bool {
	segs, restricted := r.Segments(role)
	if !restricted {
		return true
	}
	for _, s := range segs {
		if s == seg {
			return true
		}
	}
	return false
}

func (r *Registry) Roles() []Role {
	out := make([]Role, 0, len(r.permissions))
	for role := range r.permissions {
		out = append(out, role)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ClinicCapable diz se o papel pode atuar como veterinário.
func (role Role) ClinicCapable() bool {
	return role == RoleClinicAdmin || role == RoleGeneralManager
}
