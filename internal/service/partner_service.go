package service

import (
	"context"
	"errors"
	"mime/multipart"

	"packaging-catalog-be/internal/dto"
	"packaging-catalog-be/internal/entity"
	"packaging-catalog-be/internal/repository/specification"
	"packaging-catalog-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const partnerImageDir = "partners"

var ErrPartnerNotFound = errors.New("partner not found")

type IPartnerService interface {
	Create(ctx context.Context, req *dto.CreatePartnerRequest, image *multipart.FileHeader) (*dto.PartnerResponse, error)
	Update(ctx context.Context, req *dto.UpdatePartnerRequest, image *multipart.FileHeader) (*dto.PartnerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkDelete(ctx context.Context, ids []uuid.UUID) error
	List(ctx context.Context) ([]dto.PartnerResponse, error)
}

type partnerService struct {
	uowFactory    unitofwork.RepositoryFactory
	uploadService IUploadService
}

func NewPartnerService(uowFactory unitofwork.RepositoryFactory, uploadService IUploadService) IPartnerService {
	return &partnerService{
		uowFactory:    uowFactory,
		uploadService: uploadService,
	}
}

func (s *partnerService) Create(ctx context.Context, req *dto.CreatePartnerRequest, image *multipart.FileHeader) (*dto.PartnerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var imagePath string
	if image != nil && image.Size > 0 {
		path, err := s.uploadService.SaveFile(image, partnerImageDir)
		if err != nil {
			return nil, err
		}
		imagePath = path
	}

	partner := &entity.Partner{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Image:       imagePath,
	}
	if err := uow.PartnerRepository().Create(ctx, partner); err != nil {
		return nil, err
	}
	return toPartnerResponse(partner), nil
}

func (s *partnerService) Update(ctx context.Context, req *dto.UpdatePartnerRequest, image *multipart.FileHeader) (*dto.PartnerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	partner, err := uow.PartnerRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, ErrPartnerNotFound
	}

	if image != nil && image.Size > 0 {
		path, err := s.uploadService.SaveFile(image, partnerImageDir)
		if err != nil {
			return nil, err
		}
		if partner.Image != "" {
			s.uploadService.DeleteFile(partner.Image)
		}
		partner.Image = path
	}

	partner.Name = req.Name
	partner.Description = req.Description

	if err := uow.PartnerRepository().Update(ctx, partner); err != nil {
		return nil, err
	}
	return toPartnerResponse(partner), nil
}

func (s *partnerService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	partner, err := uow.PartnerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if partner == nil {
		return ErrPartnerNotFound
	}

	if err := uow.PartnerRepository().Delete(ctx, id); err != nil {
		return err
	}
	if partner.Image != "" {
		s.uploadService.DeleteFile(partner.Image)
	}
	return nil
}

func (s *partnerService) BulkDelete(ctx context.Context, ids []uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	partners, err := uow.PartnerRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	for _, partner := range partners {
		if err := uow.PartnerRepository().Delete(ctx, partner.Id); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	for _, partner := range partners {
		if partner.Image != "" {
			s.uploadService.DeleteFile(partner.Image)
		}
	}
	return nil
}

func (s *partnerService) List(ctx context.Context) ([]dto.PartnerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	partners, err := uow.PartnerRepository().FindAll(ctx,
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PartnerResponse, len(partners))
	for i, p := range partners {
		responses[i] = *toPartnerResponse(p)
	}
	return responses, nil
}

func toPartnerResponse(p *entity.Partner) *dto.PartnerResponse {
	return &dto.PartnerResponse{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
	}
}
