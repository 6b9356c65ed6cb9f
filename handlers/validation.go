package handlers

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/buzaev-fedor/stepik-week-4/models"
)

// phoneRe is the accepted phone shape: optional 8/+7 country code,
// optional 3-digit area code, 7-10 trailing digits with separators.
var phoneRe = regexp.MustCompile(`^((8|\+7)[\- ]?)?(\(?\d{3}\)?[\- ]?)?[\d\- ]{7,10}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("ruphone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	v.RegisterValidation("freetime", func(fl validator.FieldLevel) bool {
		return models.IsFreeTimeBucket(fl.Field().String())
	})
	v.RegisterValidation("timetoken", func(fl validator.FieldLevel) bool {
		_, err := models.ParseTimeToken(fl.Field().String())
		return err == nil
	})

	return v
}

// fieldErrors turns a validator error into a field -> message map the
// client re-renders the form with.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["form"] = "Invalid input"
		return out
	}

	for _, e := range verrs {
		switch e.Tag() {
		case "required":
			out[e.Field()] = "This field is required"
		case "min":
			out[e.Field()] = fmt.Sprintf("Must be at least %s characters long", e.Param())
		case "oneof":
			out[e.Field()] = "Must be one of the allowed values"
		case "ruphone":
			out[e.Field()] = "Invalid phone number"
		case "freetime":
			out[e.Field()] = "Unknown free-time option"
		case "timetoken":
			out[e.Field()] = "Invalid time"
		default:
			out[e.Field()] = "Invalid value"
		}
	}
	return out
}

func validationFailed(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrors(err)})
}

// notFound is the generic "nothing found" response shared by all
// lookup misses.
func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Nothing found! What a shame, head back to the main page!",
	})
}
