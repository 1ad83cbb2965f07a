package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"packaging-catalog-be/internal/entity"
	"packaging-catalog-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
)

type fakePriceListRepository struct {
	records []*entity.PriceList
}

func (r *fakePriceListRepository) Create(ctx context.Context, priceList *entity.PriceList) error {
	r.records = append(r.records, priceList)
	return nil
}

func (r *fakePriceListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.records[:0]
	for _, p := range r.records {
		if p.Id != id {
			kept = append(kept, p)
		}
	}
	r.records = kept
	return nil
}

func (r *fakePriceListRepository) DeleteAll(ctx context.Context) error {
	r.records = nil
	return nil
}

func (r *fakePriceListRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PriceList, error) {
	if len(r.records) == 0 {
		return nil, nil
	}
	latest := r.records[0]
	for _, p := range r.records[1:] {
		if p.UploadedAt.After(latest.UploadedAt) {
			latest = p
		}
	}
	return latest, nil
}

func (r *fakePriceListRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PriceList, error) {
	return r.records, nil
}

func newPriceListFixture(t *testing.T, records []*entity.PriceList) (IPriceListService, string) {
	t.Helper()
	uploadsDir := t.TempDir()

	factory := &stubUowFactory{uow: &stubUnitOfWork{
		priceLists: &fakePriceListRepository{records: records},
	}}
	svc := NewPriceListService(factory, NewUploadService(uploadsDir, noopLogger{}), noopLogger{})
	return svc, uploadsDir
}

func writePriceXLSX(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))

	wb := excelize.NewFile()
	defer wb.Close()
	sheet := wb.GetSheetName(0)
	require.NoError(t, wb.SetSheetRow(sheet, "A1", &[]interface{}{"Артикул", "Цена"}))
	require.NoError(t, wb.SetSheetRow(sheet, "A2", &[]interface{}{"BOX-001", "45.5"}))
	require.NoError(t, wb.SaveAs(filepath.Join(dir, name)))
}

func TestPriceListTableParsesStoredFile(t *testing.T) {
	record := &entity.PriceList{
		Id:         uuid.New(),
		Filename:   "прайс.xlsx",
		Path:       "/uploads/pricelist/1-прайс.xlsx",
		UploadedAt: time.Now(),
	}
	svc, uploadsDir := newPriceListFixture(t, []*entity.PriceList{record})
	writePriceXLSX(t, filepath.Join(uploadsDir, "pricelist"), "1-прайс.xlsx")

	resp, err := svc.Table(context.Background())
	require.NoError(t, err)

	assert.Equal(t, record.Id, resp.PriceList.Id)
	assert.Empty(t, resp.ParseError)
	require.NotNil(t, resp.Table)
	assert.Equal(t, []string{"Артикул", "Цена"}, resp.Table.Headers)
	require.Len(t, resp.Table.Rows, 1)
	assert.Equal(t, "BOX-001", resp.Table.Rows[0][0])
}

func TestPriceListTableDegradesOnBrokenFile(t *testing.T) {
	record := &entity.PriceList{
		Id:         uuid.New(),
		Filename:   "прайс.xlsx",
		Path:       "/uploads/pricelist/broken.xlsx",
		UploadedAt: time.Now(),
	}
	svc, uploadsDir := newPriceListFixture(t, []*entity.PriceList{record})

	dir := filepath.Join(uploadsDir, "pricelist")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.xlsx"), []byte("not a workbook"), 0o644))

	resp, err := svc.Table(context.Background())
	require.NoError(t, err, "a broken file downgrades the page, it does not fail it")
	assert.NotEmpty(t, resp.ParseError)
	assert.Nil(t, resp.Table)
}

func TestPriceListLatestEmpty(t *testing.T) {
	svc, _ := newPriceListFixture(t, nil)

	_, err := svc.Latest(context.Background())
	assert.ErrorIs(t, err, ErrNoPriceList)

	_, err = svc.Table(context.Background())
	assert.ErrorIs(t, err, ErrNoPriceList)
}

func TestPriceListDeleteRemovesRecordAndFile(t *testing.T) {
	record := &entity.PriceList{
		Id:         uuid.New(),
		Filename:   "прайс.xlsx",
		Path:       "/uploads/pricelist/1-прайс.xlsx",
		UploadedAt: time.Now(),
	}
	svc, uploadsDir := newPriceListFixture(t, []*entity.PriceList{record})
	writePriceXLSX(t, filepath.Join(uploadsDir, "pricelist"), "1-прайс.xlsx")

	require.NoError(t, svc.Delete(context.Background(), record.Id))

	_, err := os.Stat(filepath.Join(uploadsDir, "pricelist", "1-прайс.xlsx"))
	assert.True(t, os.IsNotExist(err))

	_, err = svc.Latest(context.Background())
	assert.ErrorIs(t, err, ErrNoPriceList)
}
