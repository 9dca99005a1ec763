package helper

import (
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

/*
Multipart bodies carry nested-collection and relation-set fields as
JSON-encoded strings. The decoders here keep the presence distinction the
update semantics depend on:

  - field absent            → nil  (leave existing data untouched)
  - field present but empty,
    malformed, or "[]"      → empty non-nil slice (clear)
*/

// DecodeJSONSlice decodes a JSON array carried in a form field.
func DecodeJSONSlice[T any](values []string) *[]T {
	if len(values) == 0 {
		return nil
	}
	var out []T
	if err := sonic.Unmarshal([]byte(values[0]), &out); err != nil || out == nil {
		out = []T{}
	}
	return &out
}

// IsMultipart reports whether the request body is form-encoded.
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	return strings.HasPrefix(ct, fiber.MIMEMultipartForm)
}

// TryFormFile returns the first present file among the given field names.
func TryFormFile(c *fiber.Ctx, names ...string) *multipart.FileHeader {
	for _, name := range names {
		if fh, err := c.FormFile(name); err == nil && fh != nil {
			return fh
		}
	}
	return nil
}

// IndexedFormFile fetches a child-record file keyed by item position, e.g.
// gallery_0_image for the first gallery item.
func IndexedFormFile(form *multipart.Form, prefix string, index int, field string) *multipart.FileHeader {
	if form == nil {
		return nil
	}
	key := prefix + "_" + strconv.Itoa(index) + "_" + field
	if fhs := form.File[key]; len(fhs) > 0 {
		return fhs[0]
	}
	return nil
}
