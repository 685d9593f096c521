package services

import (
	"strings"

	"github.com/yukti-cloud/gpu-advisor/models"
)

// NormalizeRegion maps raw region codes such as "ap-south-mum-1" to the
// canonical city names used by the pricing catalog. Unrecognized values
// pass through unchanged.
func NormalizeRegion(region string) string {
	lower := strings.ToLower(region)
	switch {
	case strings.Contains(lower, "mum"):
		return "mumbai"
	case strings.Contains(lower, "del"):
		return "delhi"
	case strings.Contains(lower, "noi"):
		return "noida"
	default:
		return region
	}
}

// FilterOptions runs the four-stage constraint funnel over the catalog:
// OS, region, specs, budget, in that order. Each stage consumes the
// previous stage's survivors and the trace records the count after each
// one. An empty result is a normal outcome, the caller decides what to
// do with the trace.
//
// criteria.VRAM is not checked against any catalog field. The original
// product collected it without ever filtering on it; the gap is kept
// rather than silently closed.
func FilterOptions(options []models.GPUOption, criteria models.Criteria) ([]models.GPUOption, models.FilterTrace) {
	trace := models.FilterTrace{TotalOptions: len(options)}

	osFiltered := make([]models.GPUOption, 0, len(options))
	wantOS := strings.ToLower(criteria.OS)
	for _, gpu := range options {
		if strings.Contains(strings.ToLower(gpu.OperatingSystem), wantOS) {
			osFiltered = append(osFiltered, gpu)
		}
	}
	trace.AfterOSFilter = len(osFiltered)

	regionFiltered := make([]models.GPUOption, 0, len(osFiltered))
	wantRegion := strings.ToLower(NormalizeRegion(criteria.Region))
	for _, gpu := range osFiltered {
		if strings.ToLower(gpu.Region) == wantRegion {
			regionFiltered = append(regionFiltered, gpu)
		}
	}
	trace.AfterRegionFilter = len(regionFiltered)

	specsFiltered := make([]models.GPUOption, 0, len(regionFiltered))
	for _, gpu := range regionFiltered {
		if gpu.VCPUs >= criteria.CPUs && gpu.RAM >= criteria.RAM {
			specsFiltered = append(specsFiltered, gpu)
		}
	}
	trace.AfterSpecsFilter = len(specsFiltered)

	budgetFiltered := make([]models.GPUOption, 0, len(specsFiltered))
	for _, gpu := range specsFiltered {
		if gpu.PricePerMonth <= criteria.Budget {
			budgetFiltered = append(budgetFiltered, gpu)
		}
	}
	trace.AfterBudgetFilter = len(budgetFiltered)

	return budgetFiltered, trace
}
