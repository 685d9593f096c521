package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yukti-cloud/gpu-advisor/models"
)

// RecommenderPersona is the system message for the recommendation flow.
const RecommenderPersona = "You are a GPU infrastructure advisor."

// num renders a float the way the prompt expects: no trailing zeros,
// no exponent.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BuildRecommendationPrompt serializes the surviving candidates and the
// user's requirements into the consultant prompt. The reply template at
// the bottom is the wire contract with ParseRecommendation and must not
// drift.
func BuildRecommendationPrompt(options []models.GPUOption, criteria models.Criteria) string {
	var candidates strings.Builder
	for _, gpu := range options {
		candidates.WriteString(fmt.Sprintf(`
- GPU: %s
  Specs: %d vCPUs, %sGB RAM
  Prices: Hourly: $%s, Monthly: $%s, Spot: $%s
  OS: %s, Region: %s
`,
			gpu.GPUDescription,
			gpu.VCPUs,
			num(gpu.RAM),
			num(gpu.PricePerHour),
			num(gpu.PricePerMonth),
			num(gpu.PricePerSpot),
			gpu.OperatingSystem,
			gpu.Region,
		))
		candidates.WriteString("\n")
	}

	return fmt.Sprintf(`
You are a professional cloud infrastructure consultant.

A user is looking for the best GPU instance that meets their needs. They have NOT specified a pricing model preference (hourly, monthly, or spot). Their ONLY budget constraint is a **monthly budget** of $%s.

Here are the available GPU options:
%s
User technical requirements:
- Operating System: %s
- Minimum vCPUs: %d
- Minimum RAM: %s GB
- Dataset Size: %s GB
- Budget: $%s per month

Recommend the best option based on:
1. Value for money within the monthly budget (even if spot/hourly options offer better deal).
2. Performance: How well the GPU fits their technical needs.
3. Suitability of pricing type (e.g. when to prefer spot, hourly, or monthly).
4. Any reliability considerations if recommending spot pricing.
5. Avoid recommending multiple - choose the **single best GPU**.

Format your answer exactly like:
GPU_NAME: [Name]
DESCRIPTION: [Detailed description]
PRICING:
- Hourly: $[hourly_rate]
- Monthly: $[monthly_rate]
- Spot: $[spot_rate]
SPECS:
- vCPUs: [number]
- RAM: [number] GB

`,
		num(criteria.Budget),
		candidates.String(),
		criteria.OS,
		criteria.CPUs,
		num(criteria.RAM),
		num(criteria.DatasetSize),
		num(criteria.Budget),
	)
}
