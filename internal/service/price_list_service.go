package service

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"packaging-catalog-be/internal/dto"
	"packaging-catalog-be/internal/entity"
	"packaging-catalog-be/internal/pkg/logger"
	"packaging-catalog-be/internal/repository/specification"
	"packaging-catalog-be/internal/repository/unitofwork"
	"packaging-catalog-be/pkg/fileio"

	"github.com/google/uuid"
)

const priceListDir = "pricelist"

var ErrNoPriceList = errors.New("no price list uploaded")

type IPriceListService interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (*dto.PriceListResponse, error)
	Latest(ctx context.Context) (*dto.PriceListResponse, error)
	Table(ctx context.Context) (*dto.PriceTableResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type priceListService struct {
	uowFactory    unitofwork.RepositoryFactory
	uploadService IUploadService
	logger        logger.ILogger
}

func NewPriceListService(
	uowFactory unitofwork.RepositoryFactory,
	uploadService IUploadService,
	sysLogger logger.ILogger,
) IPriceListService {
	return &priceListService{
		uowFactory:    uowFactory,
		uploadService: uploadService,
		logger:        sysLogger,
	}
}

// Upload replaces whatever price list was there before: one current file,
// no history. Old records and the new record swap inside one transaction;
// old files are unlinked only after the commit.
func (s *priceListService) Upload(ctx context.Context, file *multipart.FileHeader) (*dto.PriceListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	previous, err := uow.PriceListRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	path, err := s.uploadService.SaveFile(file, priceListDir)
	if err != nil {
		return nil, err
	}

	priceList := &entity.PriceList{
		Id:         uuid.New(),
		Filename:   file.Filename,
		Path:       path,
		UploadedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.PriceListRepository().DeleteAll(ctx); err != nil {
		return nil, err
	}
	if err := uow.PriceListRepository().Create(ctx, priceList); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	for _, old := range previous {
		s.uploadService.DeleteFile(old.Path)
	}

	s.logger.Info("pricelist", "price list uploaded", map[string]interface{}{
		"filename": priceList.Filename,
	})
	return toPriceListResponse(priceList), nil
}

func (s *priceListService) Latest(ctx context.Context) (*dto.PriceListResponse, error) {
	priceList, err := s.latest(ctx)
	if err != nil {
		return nil, err
	}
	return toPriceListResponse(priceList), nil
}

// Table parses the stored spreadsheet for the public price-list page. Parse
// failures are not errors at this level: the page degrades to a download
// link, so the response carries the reason instead.
func (s *priceListService) Table(ctx context.Context) (*dto.PriceTableResponse, error) {
	priceList, err := s.latest(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.PriceTableResponse{
		PriceList: *toPriceListResponse(priceList),
	}

	diskPath := s.uploadService.ResolvePath(priceList.Path)
	table, err := fileio.ReadPriceTable(diskPath)
	if err != nil {
		s.logger.Warn("pricelist", "failed to parse price list", map[string]interface{}{
			"path":  priceList.Path,
			"error": err.Error(),
		})
		resp.ParseError = err.Error()
		return resp, nil
	}

	resp.Table = table
	return resp, nil
}

func (s *priceListService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	priceList, err := uow.PriceListRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if priceList == nil {
		return ErrNoPriceList
	}

	if err := uow.PriceListRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.uploadService.DeleteFile(priceList.Path)
	return nil
}

func (s *priceListService) latest(ctx context.Context) (*entity.PriceList, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	priceList, err := uow.PriceListRepository().FindOne(ctx,
		specification.OrderBy{Field: "uploaded_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if priceList == nil {
		return nil, ErrNoPriceList
	}
	return priceList, nil
}

func toPriceListResponse(p *entity.PriceList) *dto.PriceListResponse {
	return &dto.PriceListResponse{
		Id:         p.Id,
		Filename:   p.Filename,
		Path:       p.Path,
		UploadedAt: p.UploadedAt,
	}
}
