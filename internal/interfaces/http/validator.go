package http

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
)

// requestValidator valida DTOs reportando los campos con su nombre JSON.
type requestValidator struct {
	v *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &requestValidator{v: v}
}

// bind parsea el cuerpo y lo valida. Devuelve false si ya respondió con 400.
func (rv *requestValidator) bind(c *fiber.Ctx, dst any) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, badBody(c)
	}
	if err := rv.v.Struct(dst); err != nil {
		return false, validationFailed(c, err)
	}
	return true, nil
}

func validationFailed(c *fiber.Ctx, err error) error {
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			// "RegisterSaleRequest.items[0].id_producto" -> "items[0].id_producto"
			ns := fe.Namespace()
			if i := strings.Index(ns, "."); i >= 0 {
				ns = ns[i+1:]
			}
			fields[ns] = fe.Tag()
		}
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "VALIDATION", Message: "datos inválidos", Details: fields,
	})
}

// pageFromQuery lee limit/offset con valores por defecto.
func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	p := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	p.DefaultPage()
	return p
}

// dateQuery lee un parámetro de fecha YYYY-MM-DD o RFC3339. Vacío = nil.
// "hasta" en formato fecha cubre el día completo.
func dateQuery(c *fiber.Ctx, key string, endOfDay bool) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, false
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, true
}

func dateRangeQuery(c *fiber.Ctx) (from, to *time.Time, ok bool) {
	from, okFrom := dateQuery(c, "desde", false)
	to, okTo := dateQuery(c, "hasta", true)
	return from, to, okFrom && okTo
}

func invalidDates(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "VALIDATION", Message: "fechas inválidas: use YYYY-MM-DD o RFC3339",
	})
}

// idParam lee :id y exige formato UUID. Devuelve false si ya respondió con 400.
func idParam(c *fiber.Ctx) (string, bool, error) {
	raw := c.Params("id")
	if _, err := uuid.Parse(raw); err != nil {
		return "", false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_ID", Message: "id inválido: se espera un UUID",
		})
	}
	return raw, true, nil
}
