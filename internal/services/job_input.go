package services

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"

	"github.com/go-playground/validator/v10"
)

// BuildJob validates a create request and converts it into the job to store.
// It performs no I/O. Validation failures are *ValidationError values:
// ErrMissingJobFields first, then ErrInvalidJobNumbers.
func BuildJob(validate *validator.Validate, req *dto.CreateJobRequest) (*models.Job, error) {
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return nil, ErrMissingJobFields
		}
		return nil, fmt.Errorf("validating create job request: %w", err)
	}

	// Infinity and overflowing values such as 1e400 are answered with the same
	// numeric error as NaN: the stored fields must be finite JSON numbers.
	salary, okSalary := ParseNumber(req.Salary.String())
	experience, okExperience := ParseNumber(req.Experience.String())
	position, okPosition := ParseNumber(req.Position.String())
	if !okSalary || !okExperience || !okPosition {
		return nil, ErrInvalidJobNumbers
	}

	return &models.Job{
		Title:       req.Title.String(),
		Description: req.Description.String(),
		// Empty segments are kept: "a,,b," -> ["a" "" "b" ""]
		Requirements:    strings.Split(req.Requirements.String(), ","),
		Salary:          salary,
		Location:        req.Location.String(),
		JobType:         req.JobType.String(),
		ExperienceLevel: experience,
		Position:        position,
		Company:         models.RefTo[models.Company](req.CompanyID.String()),
		CreatedBy:       req.UserID,
		Applications:    []models.Ref[models.Application]{},
	}, nil
}

// ParseNumber converts form text to a number the way a browser's Number()
// does: surrounding whitespace is ignored, blank text is 0, and decimal,
// exponent and 0x/0o/0b integer forms are accepted. Results that are not
// finite are rejected since they cannot be stored or encoded as JSON.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			return parsePrefixedInt(s[2:], base)
		}
	}

	for _, r := range s {
		if !(r >= '0' && r <= '9') && r != '.' && r != 'e' && r != 'E' && r != '+' && r != '-' {
			return 0, false
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func parsePrefixedInt(digits string, base int) (float64, bool) {
	if strings.ContainsAny(digits, "_+-") {
		return 0, false
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0, false
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	if math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
