// Package ownership concentra as verificações entre entidades feitas antes
// de gravar citas, hospedagens e prontuários.
package ownership

import (
	"context"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

// Lookup resolve referências; registros ausentes voltam como NotFoundError.
type Lookup interface {
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	GetPet(ctx context.Context, id uint) (*models.Pet, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
}

// asField converte "não encontrado" em erro de campo; o resto passa.
func asField(err error, field, message string) error {
	if httperr.IsNotFound(err) {
		return httperr.FieldError(field, message)
	}
	return err
}

// PetOfClient resolve pet e cliente e exige que o pet seja do cliente.
func PetOfClient(
	ctx context.Context,
	l Lookup,
	petID uint,
	clientID uint,
) (*models.Pet, *models.Client, error) {

	client, err := l.GetClient(ctx, clientID)
	if err != nil {
		return nil, nil, asField(err, "client_id", "El cliente no existe.")
	}

	pet, err := l.GetPet(ctx, petID)
	if err != nil {
		return nil, nil, asField(err, "pet_id", "La mascota no existe.")
	}

	if pet.ClientID != client.ID {
		return nil, nil, httperr.FieldError("pet_id", "La mascota no pertenece al cliente indicado.")
	}

	return pet, client, nil
}

// Staff exige usuário ativo.
func Staff(ctx context.Context, l Lookup, userID uint, field string) (*models.User, error) {
	u, err := l.GetUser(ctx, userID)
	if err != nil {
		return nil, asField(err, field, "El usuario no existe.")
	}
	if !u.Active {
		return nil, httperr.FieldError(field, "El usuario está inactivo.")
	}
	return u, nil
}

// Veterinarian exige usuário ativo com papel clínico.
func Veterinarian(ctx context.Context, l Lookup, userID uint, field string) (*models.User, error) {
	u, err := Staff(ctx, l, userID, field)
	if err != nil {
		return nil, err
	}
	if !access.Role(u.Role).ClinicCapable() {
		return nil, httperr.FieldError(field, "El usuario no tiene un rol clínico.")
	}
	return u, nil
}

// ServiceSegment resolve o serviço já com a categoria carregada.
func ServiceSegment(ctx context.Context, l Lookup, serviceID uint) (*models.Service, models.Segment, error) {
	svc, err := l.GetService(ctx, serviceID)
	if err != nil {
		return nil, "", asField(err, "service_id", "El servicio no existe.")
	}
	if svc.Category == nil {
		return nil, "", httperr.FieldError("service_id", "El servicio no tiene categoría.")
	}
	return svc, svc.Category.Segment, nil
}
