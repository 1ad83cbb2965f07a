package search

import (
	"fmt"
	"testing"
)

type product struct {
	Name string
	SKU  string
}

func productFields(p product) (string, string) {
	return p.Name, p.SKU
}

func TestScoreNameOutweighsSKU(t *testing.T) {
	query := "короб"

	nameHit := Score(Candidate{Name: "Гофрокороб 300x200x200 мм", SKU: "BOX-001"}, query, 0.6)
	skuHit := Score(Candidate{Name: "Стакан бумажный", SKU: "КОРОБ-77"}, query, 0.6)

	if nameHit != 1 {
		t.Errorf("name substring hit should score 1, got %v", nameHit)
	}
	if skuHit != 0.8 {
		t.Errorf("sku substring hit should score 0.8 after weighting, got %v", skuHit)
	}
	if skuHit >= nameHit {
		t.Errorf("sku hit (%v) must rank below name hit (%v)", skuHit, nameHit)
	}
}

func TestScoreTakesBestOfBothFields(t *testing.T) {
	// Name misses entirely, SKU matches exactly: the weighted SKU score wins.
	got := Score(Candidate{Name: "Стрейч-пленка", SKU: "BOX-001"}, "box-001", 0.6)
	if got != 0.8 {
		t.Errorf("Score = %v, want 0.8", got)
	}
}

func TestPaginateRanksDescending(t *testing.T) {
	catalog := []product{
		{Name: "Стрейч-пленка 500 мм", SKU: "STR-001"},
		{Name: "Гофрокороб 300x200x200 мм", SKU: "BOX-001"},
		{Name: "Стакан бумажный", SKU: "КОРОБ-77"},
		{Name: "Крафт-пакет", SKU: "PKT-001"},
	}

	res := Paginate(catalog, productFields, Params{Query: "короб", Page: 1, PageSize: 10})

	if res.TotalCount != 2 {
		t.Fatalf("TotalCount = %d, want 2 (пленка and пакет filtered out)", res.TotalCount)
	}
	if res.Items[0].SKU != "BOX-001" {
		t.Errorf("top hit = %q, want name match BOX-001", res.Items[0].SKU)
	}
	if res.Items[1].SKU != "КОРОБ-77" {
		t.Errorf("second hit = %q, want discounted sku match КОРОБ-77", res.Items[1].SKU)
	}
}

func TestPaginateStableOnTies(t *testing.T) {
	// All three names contain the query, so all score 1; their input order
	// must survive the sort on every run.
	catalog := []product{
		{Name: "Стакан 100 мл", SKU: "CUP-001"},
		{Name: "Стакан 250 мл", SKU: "CUP-002"},
		{Name: "Стакан 400 мл", SKU: "CUP-003"},
	}

	for run := 0; run < 5; run++ {
		res := Paginate(catalog, productFields, Params{Query: "стакан", Page: 1, PageSize: 10})
		for i, want := range []string{"CUP-001", "CUP-002", "CUP-003"} {
			if res.Items[i].SKU != want {
				t.Fatalf("run %d: items[%d] = %q, want %q", run, i, res.Items[i].SKU, want)
			}
		}
	}
}

func TestPaginateMinScoreCutIsStrict(t *testing.T) {
	// "abc" vs query "xyz" scores exactly 0 and must be dropped once MinScore
	// defaults to 0.3; the cut keeps only scores strictly above it.
	catalog := []product{
		{Name: "abc", SKU: ""},
		{Name: "xyz match", SKU: ""},
	}

	res := Paginate(catalog, productFields, Params{Query: "xyz", Page: 1, PageSize: 10})
	if res.TotalCount != 1 {
		t.Fatalf("TotalCount = %d, want 1", res.TotalCount)
	}
	if res.Items[0].Name != "xyz match" {
		t.Errorf("surviving item = %q", res.Items[0].Name)
	}
}

func TestPaginateBlankQueryKeepsInputOrder(t *testing.T) {
	catalog := make([]product, 5)
	for i := range catalog {
		catalog[i] = product{Name: fmt.Sprintf("Товар %d", i), SKU: fmt.Sprintf("SKU-%03d", i)}
	}

	for _, query := range []string{"", "   "} {
		res := Paginate(catalog, productFields, Params{Query: query, Page: 1, PageSize: 3})
		if res.TotalCount != 5 {
			t.Fatalf("query %q: TotalCount = %d, want 5", query, res.TotalCount)
		}
		if res.TotalPages != 2 {
			t.Errorf("query %q: TotalPages = %d, want 2", query, res.TotalPages)
		}
		if len(res.Items) != 3 || res.Items[0].SKU != "SKU-000" {
			t.Errorf("query %q: first page = %v", query, res.Items)
		}
	}
}

func TestPaginateArithmetic(t *testing.T) {
	catalog := make([]product, 25)
	for i := range catalog {
		catalog[i] = product{Name: fmt.Sprintf("Гофрокороб %d", i), SKU: fmt.Sprintf("BOX-%03d", i)}
	}

	tests := []struct {
		page      int
		wantItems int
	}{
		{1, 12},
		{2, 12},
		{3, 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page %d", tt.page), func(t *testing.T) {
			res := Paginate(catalog, productFields, Params{Query: "короб", Page: tt.page, PageSize: 12})
			if res.TotalCount != 25 {
				t.Errorf("TotalCount = %d, want 25", res.TotalCount)
			}
			if res.TotalPages != 3 {
				t.Errorf("TotalPages = %d, want 3", res.TotalPages)
			}
			if res.CurrentPage != tt.page {
				t.Errorf("CurrentPage = %d, want %d", res.CurrentPage, tt.page)
			}
			if len(res.Items) != tt.wantItems {
				t.Errorf("len(Items) = %d, want %d", len(res.Items), tt.wantItems)
			}
		})
	}
}

func TestPaginatePagePastEnd(t *testing.T) {
	catalog := []product{
		{Name: "Гофрокороб", SKU: "BOX-001"},
	}

	res := Paginate(catalog, productFields, Params{Query: "короб", Page: 9, PageSize: 12})
	if len(res.Items) != 0 {
		t.Errorf("len(Items) = %d, want 0", len(res.Items))
	}
	if res.TotalCount != 1 || res.TotalPages != 1 || res.CurrentPage != 9 {
		t.Errorf("metadata = {%d %d %d}, want {1 1 9}", res.TotalCount, res.TotalPages, res.CurrentPage)
	}
}

func TestPaginateNoMatches(t *testing.T) {
	catalog := []product{
		{Name: "Стакан", SKU: "CUP-001"},
	}

	res := Paginate(catalog, productFields, Params{Query: "qqqqqqqq", Page: 1, PageSize: 12})
	if len(res.Items) != 0 || res.TotalCount != 0 || res.TotalPages != 0 {
		t.Errorf("empty result expected, got %+v", res)
	}
}
