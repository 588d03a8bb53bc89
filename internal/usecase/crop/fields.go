package crop

import (
	"strings"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/farmergpt/internal/domain/crop"
	"github.com/BruksfildServices01/farmergpt/internal/httperr"
	"github.com/BruksfildServices01/farmergpt/internal/models"
	"github.com/BruksfildServices01/farmergpt/internal/validators"
)

// Fields holds the writable crop attributes; nil means "not sent".
type Fields struct {
	Name                *string
	Variety             *string
	Area                *decimal.Decimal
	PlantingDate        *string
	ExpectedHarvestDate *string
	Status              *string
	Notes               *string
}

func errCropNotFound() *httperr.Error {
	return httperr.NotFoundError("crop_not_found", "Not found.")
}

func fieldError(code, field, message string) *httperr.Error {
	return httperr.Validation(code, message, map[string][]string{field: {message}})
}

// requireFull checks the fields a create or full update must carry.
func (f Fields) requireFull() error {
	missing := map[string][]string{}
	if f.Name == nil {
		missing["name"] = []string{"This field is required."}
	}
	if f.Area == nil {
		missing["area"] = []string{"This field is required."}
	}
	if f.PlantingDate == nil {
		missing["planting_date"] = []string{"This field is required."}
	}
	if f.ExpectedHarvestDate == nil {
		missing["expected_harvest_date"] = []string{"This field is required."}
	}
	if len(missing) > 0 {
		return httperr.Validation("invalid_request", "Required fields are missing.", missing)
	}
	return nil
}

// apply validates the present fields and copies them onto c.
func (f Fields) apply(c *models.Crop) error {
	if f.Name != nil {
		name := strings.TrimSpace(*f.Name)
		if name == "" {
			return fieldError("invalid_name", "name", "This field may not be blank.")
		}
		c.Name = name
	}

	if f.Variety != nil {
		c.Variety = blankToNil(*f.Variety)
	}

	if f.Area != nil {
		if !validators.FitsNumeric(*f.Area) {
			return fieldError("invalid_area", "area", "Ensure that there are no more than 10 digits in total and 2 decimal places.")
		}
		c.Area = *f.Area
	}

	if f.PlantingDate != nil {
		d, ok := validators.ParseCivilDate(*f.PlantingDate)
		if !ok {
			return fieldError("invalid_date", "planting_date", "Date has wrong format. Use YYYY-MM-DD.")
		}
		c.PlantingDate = d
	}

	if f.ExpectedHarvestDate != nil {
		d, ok := validators.ParseCivilDate(*f.ExpectedHarvestDate)
		if !ok {
			return fieldError("invalid_date", "expected_harvest_date", "Date has wrong format. Use YYYY-MM-DD.")
		}
		c.ExpectedHarvestDate = d
	}

	if f.Status != nil {
		next := domain.Status(*f.Status)
		if !domain.CanTransition(domain.Status(c.Status), next) {
			return fieldError("invalid_status", "status", `"`+*f.Status+`" is not a valid choice.`)
		}
		c.Status = string(next)
	}

	if f.Notes != nil {
		c.Notes = blankToNil(*f.Notes)
	}

	return nil
}

// changed lists the sent field names for the activity log.
func (f Fields) changed() []string {
	out := []string{}
	if f.Name != nil {
		out = append(out, "name")
	}
	if f.Variety != nil {
		out = append(out, "variety")
	}
	if f.Area != nil {
		out = append(out, "area")
	}
	if f.PlantingDate != nil {
		out = append(out, "planting_date")
	}
	if f.ExpectedHarvestDate != nil {
		out = append(out, "expected_harvest_date")
	}
	if f.Status != nil {
		out = append(out, "status")
	}
	if f.Notes != nil {
		out = append(out, "notes")
	}
	return out
}

func blankToNil(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
