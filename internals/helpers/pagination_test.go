package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// withCtx runs fn inside a handler so query helpers see a real request.
func withCtx(t *testing.T, target string, fn func(c *fiber.Ctx)) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		fn(c)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	resp.Body.Close()
}

func TestResolvePagingDefaults(t *testing.T) {
	withCtx(t, "/", func(c *fiber.Ctx) {
		p := ResolvePaging(c)
		if p.Page != 1 || p.PerPage != DefaultPerPage {
			t.Errorf("got %+v", p)
		}
	})
}

func TestResolvePagingCapsPerPage(t *testing.T) {
	withCtx(t, "/?page=3&per_page=500", func(c *fiber.Ctx) {
		p := ResolvePaging(c)
		if p.Page != 3 || p.PerPage != MaxPerPage {
			t.Errorf("got %+v", p)
		}
		if p.Offset() != 2*MaxPerPage {
			t.Errorf("offset = %d", p.Offset())
		}
	})
}

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"name":       "lower(school_name)",
		"created_at": "school_created_at",
	}

	cases := []struct {
		target     string
		defaultKey string
		want       string
	}{
		{"/", "name", "lower(school_name) ASC"},
		{"/", "-created_at", "school_created_at DESC"},
		{"/?ordering=created_at", "name", "school_created_at ASC"},
		{"/?ordering=-created_at", "name", "school_created_at DESC"},
		{"/?ordering=drop_table", "-created_at", "school_created_at DESC"},
	}
	for _, tc := range cases {
		withCtx(t, tc.target, func(c *fiber.Ctx) {
			got, err := SafeOrderClause(c, allowed, tc.defaultKey)
			if err != nil {
				t.Errorf("%s default=%s: %v", tc.target, tc.defaultKey, err)
				return
			}
			if got != tc.want {
				t.Errorf("%s default=%s: got %q, want %q", tc.target, tc.defaultKey, got, tc.want)
			}
		})
	}
}

func TestSafeOrderClauseNoDefault(t *testing.T) {
	withCtx(t, "/", func(c *fiber.Ctx) {
		if _, err := SafeOrderClause(c, map[string]string{"name": "n"}, "missing"); err == nil {
			t.Error("expected error for unknown default key")
		}
	})
}

func TestBuildMeta(t *testing.T) {
	m := BuildMeta(25, Paging{Page: 2, PerPage: 10})
	if m.TotalPages != 3 || !m.HasNext || !m.HasPrev {
		t.Errorf("got %+v", m)
	}
	empty := BuildMeta(0, Paging{Page: 1, PerPage: 10})
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev {
		t.Errorf("got %+v", empty)
	}
}
