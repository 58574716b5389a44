package mockapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/toolshop-qa/api-test-harness/apidef"
)

var validate = validator.New() //nolint:gochecknoglobals

var brandFieldRules = "required,max=" + strconv.Itoa(apidef.MaxBrandFieldLength) //nolint:gochecknoglobals

var brandFields = []string{"name", "slug"} //nolint:gochecknoglobals

// parseBrandPayload validates a brand request body the way the live service does: each field
// must be a non-empty string of at most MaxBrandFieldLength characters. If partial is true, a
// missing or null field is left unchanged instead of being an error. A body that is not a JSON
// object is treated as an empty object.
func parseBrandPayload(body []byte, partial bool) (apidef.BrandParams, apidef.ValidationErrors) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		fields = nil
	}
	errs := make(apidef.ValidationErrors)
	values := make(map[string]string)
	for _, field := range brandFields {
		raw, present := fields[field]
		isNull := !present || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
		if isNull && partial {
			continue
		}
		var value string
		if !isNull {
			if err := json.Unmarshal(raw, &value); err != nil {
				errs[field] = []string{apidef.StringMessage(field)}
				continue
			}
		}
		if message := validateBrandField(field, value); message != "" {
			errs[field] = []string{message}
			continue
		}
		values[field] = value
	}
	if len(errs) != 0 {
		return apidef.BrandParams{}, errs
	}
	return apidef.BrandParams{Name: values["name"], Slug: values["slug"]}, nil
}

func validateBrandField(field, value string) string {
	err := validate.Var(value, brandFieldRules)
	if err == nil {
		return ""
	}
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) != 0 {
		switch fieldErrors[0].Tag() {
		case "required":
			return apidef.RequiredMessage(field)
		case "max":
			return apidef.MaxLengthMessage(field, apidef.MaxBrandFieldLength)
		}
	}
	return err.Error()
}
