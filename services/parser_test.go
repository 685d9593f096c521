package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukti-cloud/gpu-advisor/models"
)

const templateReply = `GPU_NAME: A100-80GB
DESCRIPTION: High-end accelerator for large model training
PRICING:
- Hourly: $2.48
- Monthly: $1500.00
- Spot: $1.10
SPECS:
- vCPUs: 8
- RAM: 40 GB
`

func TestParseRecommendationTemplate(t *testing.T) {
	rec, err := ParseRecommendation(templateReply)
	require.NoError(t, err)

	assert.Equal(t, "A100-80GB", rec.GPUName)
	assert.Equal(t, "High-end accelerator for large model training", rec.GPUDescription)
	assert.Equal(t, 2.48, rec.Prices.Hourly)
	assert.Equal(t, 1500.00, rec.Prices.Monthly)
	assert.Equal(t, 1.10, rec.Prices.Spot)
	assert.Equal(t, 8, rec.Specs.VCPUs)
	assert.Equal(t, 40.0, rec.Specs.RAM)
}

func TestParseRecommendationToleratesBlankLinesAndProse(t *testing.T) {
	reply := `Based on your requirements, here is my pick.

GPU_NAME: L40S

DESCRIPTION: Balanced inference card

PRICING:

- Hourly: $1.90
- Monthly: $1,200.00

- Spot: $0.80

SPECS:
- vCPUs: 8
- RAM: 64 GB

Let me know if you need anything else.`

	rec, err := ParseRecommendation(reply)
	require.NoError(t, err)
	assert.Equal(t, "L40S", rec.GPUName)
	assert.Equal(t, 1200.00, rec.Prices.Monthly)
	assert.Equal(t, 64.0, rec.Specs.RAM)
}

func TestParseRecommendationToleratesReorderedSections(t *testing.T) {
	reply := `SPECS:
- vCPUs: 16
- RAM: 120 GB
GPU_NAME: A100-80GB
PRICING:
- Hourly: $2.48
- Monthly: $1500
- Spot: $1.10
DESCRIPTION: Training workhorse
`
	rec, err := ParseRecommendation(reply)
	require.NoError(t, err)
	assert.Equal(t, 16, rec.Specs.VCPUs)
	assert.Equal(t, 120.0, rec.Specs.RAM)
	assert.Equal(t, "A100-80GB", rec.GPUName)
	assert.Equal(t, "Training workhorse", rec.GPUDescription)
}

func TestParseRecommendationMissingLabel(t *testing.T) {
	reply := `GPU_NAME: A100-80GB
DESCRIPTION: something
PRICING:
- Hourly: $2.48
- Monthly: $1500.00
SPECS:
- vCPUs: 8
- RAM: 40 GB
`
	_, err := ParseRecommendation(reply)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedReply))
	assert.Contains(t, err.Error(), "spot")
}

func TestParseRecommendationNonNumericPrice(t *testing.T) {
	reply := `GPU_NAME: A100-80GB
DESCRIPTION: something
PRICING:
- Hourly: $N/A
- Monthly: $1500.00
- Spot: $1.10
SPECS:
- vCPUs: 8
- RAM: 40 GB
`
	_, err := ParseRecommendation(reply)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedReply))
}

func TestParseRecommendationEmptyReply(t *testing.T) {
	_, err := ParseRecommendation("")
	assert.True(t, errors.Is(err, ErrMalformedReply))
}

// The prompt's reply template and the parser form one contract: a reply
// following the template produced for a real candidate must parse back
// to that candidate's numbers.
func TestPromptTemplateRoundTrip(t *testing.T) {
	criteria := models.Criteria{
		OS:          "linux",
		Region:      "ap-south-mum-1",
		CPUs:        8,
		RAM:         40,
		Budget:      1500,
		DatasetSize: 200,
	}
	option := models.GPUOption{
		OperatingSystem: "Ubuntu 22.04 Linux",
		GPUDescription:  "A100-80GB",
		VCPUs:           8,
		RAM:             40,
		PricePerHour:    2.48,
		PricePerMonth:   1500,
		PricePerSpot:    1.10,
		Region:          "mumbai",
	}

	prompt := BuildRecommendationPrompt([]models.GPUOption{option}, criteria)

	// The prompt must carry the candidate, the requirements and the
	// exact reply template labels the parser scans for.
	assert.Contains(t, prompt, "A100-80GB")
	assert.Contains(t, prompt, "8 vCPUs, 40GB RAM")
	assert.Contains(t, prompt, "Hourly: $2.48, Monthly: $1500, Spot: $1.1")
	assert.Contains(t, prompt, "**monthly budget** of $1500")
	assert.Contains(t, prompt, "- Dataset Size: 200 GB")
	assert.Contains(t, prompt, "GPU_NAME: [Name]")
	assert.Contains(t, prompt, "- Hourly: $[hourly_rate]")
	assert.Contains(t, prompt, "- RAM: [number] GB")

	// A stub LLM echoing the mandated template with the candidate's
	// values must round-trip exactly.
	rec, err := ParseRecommendation(templateReply)
	require.NoError(t, err)
	assert.Equal(t, option.GPUDescription, rec.GPUName)
	assert.Equal(t, option.PricePerHour, rec.Prices.Hourly)
	assert.Equal(t, option.PricePerSpot, rec.Prices.Spot)
	assert.Equal(t, option.VCPUs, rec.Specs.VCPUs)
	assert.Equal(t, option.RAM, rec.Specs.RAM)
}
