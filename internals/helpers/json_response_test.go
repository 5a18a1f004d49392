package helper

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	if p.TotalPages != 3 {
		t.Errorf("total pages = %d, want 3", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Errorf("page 2 of 3 should have next and prev, got next=%v prev=%v", p.HasNext, p.HasPrev)
	}

	p = BuildPaginationFromPage(0, 1, 20)
	if p.TotalPages != 1 || p.HasNext || p.HasPrev {
		t.Errorf("empty result should be a single page, got %+v", p)
	}

	p = BuildPaginationFromPage(10, 0, 0)
	if p.Page != 1 || p.PerPage != 20 {
		t.Errorf("defaults not applied: %+v", p)
	}
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return c.JSON(ResolvePaging(c, 20, 100))
	})

	cases := []struct {
		url        string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"/x", 1, 20, 0},
		{"/x?page=3&per_page=10", 3, 10, 20},
		{"/x?page=0&per_page=-5", 1, 20, 0},
		{"/x?per_page=9999", 1, 100, 0},
		{"/x?limit=30", 1, 30, 0},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", tc.url, nil))
		if err != nil {
			t.Fatalf("%s: %v", tc.url, err)
		}
		var got Paging
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("%s: decode: %v", tc.url, err)
		}
		resp.Body.Close()
		if got.Page != tc.wantPage || got.Limit != tc.wantLimit || got.Offset != tc.wantOffset {
			t.Errorf("%s: got page=%d limit=%d offset=%d, want page=%d limit=%d offset=%d",
				tc.url, got.Page, got.Limit, got.Offset, tc.wantPage, tc.wantLimit, tc.wantOffset)
		}
	}
}
