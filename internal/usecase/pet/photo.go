package pet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/imaging"
	"github.com/BruksfildServices01/petcare-manager/internal/infra/storage"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

// UploadPhoto converte a imagem para WebP, grava com chave nova e só então
// aponta a mascota para ela. A foto anterior é apagada em best-effort.
func (s *Service) UploadPhoto(
	ctx context.Context,
	p *access.Principal,
	id uint,
	body io.Reader,
) (*models.Pet, error) {

	if err := s.guard.Authorize(p, access.ManagePets); err != nil {
		return nil, err
	}

	pet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := imaging.ToWebP(body)
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupported) {
			return nil, httperr.FieldError("photo", "La imagen debe ser JPEG, PNG, GIF o WebP de máximo 2 MB.")
		}
		return nil, err
	}

	key := fmt.Sprintf("pets/%d/%s.webp", pet.ID, uuid.NewString())
	if err := s.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), imaging.ContentType); err != nil {
		if errors.Is(err, storage.ErrDisabled) {
			return nil, httperr.ErrBusinessMsg("storage_disabled", "El almacenamiento de fotos no está configurado.")
		}
		return nil, err
	}

	previous := pet.Photo
	pet.Photo = key
	pet.Client = nil

	if err := s.repo.Update(ctx, pet); err != nil {
		s.removePhoto(ctx, key)
		return nil, err
	}

	s.removePhoto(ctx, previous)
	s.withPhotoURL(pet)
	s.audit.Record(ctx, audit.By(p, "pet_photo_updated", "pet", pet.ID))
	return pet, nil
}

func (s *Service) RemovePhoto(ctx context.Context, p *access.Principal, id uint) (*models.Pet, error) {
	if err := s.guard.Authorize(p, access.ManagePets); err != nil {
		return nil, err
	}

	pet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pet.Photo == "" {
		return pet, nil
	}

	previous := pet.Photo
	pet.Photo = ""
	pet.Client = nil

	if err := s.repo.Update(ctx, pet); err != nil {
		return nil, err
	}

	s.removePhoto(ctx, previous)
	s.audit.Record(ctx, audit.By(p, "pet_photo_removed", "pet", pet.ID))
	return pet, nil
}
