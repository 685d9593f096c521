package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yukti-cloud/gpu-advisor/models"
)

// ErrMalformedReply is returned when the LLM reply does not contain
// every labeled field of the mandated template, or a numeric field does
// not parse. Handlers treat it as a distinct failure from upstream
// unavailability.
var ErrMalformedReply = errors.New("malformed recommendation reply")

// ParseRecommendation recovers a typed Recommendation from the LLM's
// labeled-line reply. Lines are matched by label rather than by
// position, so blank lines, reordered sections and surrounding prose do
// not break the parse. All seven fields must be present.
func ParseRecommendation(text string) (models.Recommendation, error) {
	var rec models.Recommendation
	found := map[string]bool{}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(line, "GPU_NAME:"):
			rec.GPUName = strings.TrimSpace(strings.TrimPrefix(line, "GPU_NAME:"))
			found["gpu_name"] = rec.GPUName != ""
		case strings.HasPrefix(line, "DESCRIPTION:"):
			rec.GPUDescription = strings.TrimSpace(strings.TrimPrefix(line, "DESCRIPTION:"))
			found["description"] = rec.GPUDescription != ""
		case hasLabel(line, "Hourly"):
			v, err := dollarAmount(line)
			if err != nil {
				return rec, err
			}
			rec.Prices.Hourly = v
			found["hourly"] = true
		case hasLabel(line, "Monthly"):
			v, err := dollarAmount(line)
			if err != nil {
				return rec, err
			}
			rec.Prices.Monthly = v
			found["monthly"] = true
		case hasLabel(line, "Spot"):
			v, err := dollarAmount(line)
			if err != nil {
				return rec, err
			}
			rec.Prices.Spot = v
			found["spot"] = true
		case hasLabel(line, "vCPUs"):
			v, err := labeledNumber(line)
			if err != nil {
				return rec, err
			}
			rec.Specs.VCPUs = int(v)
			found["vcpus"] = true
		case hasLabel(line, "RAM"):
			v, err := labeledNumber(line)
			if err != nil {
				return rec, err
			}
			rec.Specs.RAM = v
			found["ram"] = true
		}
	}

	required := []string{"gpu_name", "description", "hourly", "monthly", "spot", "vcpus", "ram"}
	for _, field := range required {
		if !found[field] {
			return models.Recommendation{}, fmt.Errorf("%w: missing %s", ErrMalformedReply, field)
		}
	}

	return rec, nil
}

// hasLabel reports whether the line is a template data line for the
// given label, with or without the leading list dash.
func hasLabel(line, label string) bool {
	return strings.HasPrefix(line, "- "+label+":") || strings.HasPrefix(line, label+":")
}

// dollarAmount extracts the numeric value following the first '$'.
func dollarAmount(line string) (float64, error) {
	idx := strings.Index(line, "$")
	if idx < 0 {
		return 0, fmt.Errorf("%w: no dollar amount in %q", ErrMalformedReply, line)
	}
	return leadingNumber(line[idx+1:])
}

// labeledNumber extracts the numeric value following the first ':'.
func labeledNumber(line string) (float64, error) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return 0, fmt.Errorf("%w: no value in %q", ErrMalformedReply, line)
	}
	return leadingNumber(line[idx+1:])
}

func leadingNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.' || s[end] == ',') {
		end++
	}
	token := strings.ReplaceAll(s[:end], ",", "")
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric value %q", ErrMalformedReply, strings.TrimSpace(s))
	}
	return v, nil
}
