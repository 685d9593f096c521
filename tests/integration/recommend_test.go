//go:build integration

package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukti-cloud/gpu-advisor/models"
)

func TestRecommendations_Integration(t *testing.T) {
	token := registerAndLogin(t, "carol@test.com")

	recommendBody := func(budget float64) map[string]interface{} {
		return map[string]interface{}{
			"os":          "linux",
			"region":      "ap-south-mum-1",
			"cpus":        8,
			"ram":         40,
			"budget":      budget,
			"datasetSize": 200,
		}
	}

	t.Run("Unauthorized without token", func(t *testing.T) {
		doRequest(t, http.MethodPost, "/recommendations", "", recommendBody(2000), http.StatusUnauthorized)
	})

	t.Run("Full pipeline returns parsed recommendation", func(t *testing.T) {
		w := doRequest(t, http.MethodPost, "/recommendations", token, recommendBody(2000), http.StatusOK)

		var out struct {
			Recommendation models.Recommendation `json:"recommendation"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equal(t, "A100-80GB", out.Recommendation.GPUName)
		assert.Equal(t, 2.48, out.Recommendation.Prices.Hourly)
		assert.Equal(t, 40.0, out.Recommendation.Specs.RAM)
	})

	t.Run("Budget below every option yields trace, not failure", func(t *testing.T) {
		w := doRequest(t, http.MethodPost, "/recommendations", token, recommendBody(100), http.StatusOK)

		var out struct {
			Error string             `json:"error"`
			Debug models.FilterTrace `json:"debug"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equal(t, "No GPUs found matching your criteria", out.Error)
		assert.Equal(t, 1, out.Debug.AfterSpecsFilter)
		assert.Equal(t, 0, out.Debug.AfterBudgetFilter)
	})

	t.Run("Missing fields rejected before any upstream call", func(t *testing.T) {
		doRequest(t, http.MethodPost, "/recommendations", token, map[string]interface{}{
			"os": "linux",
		}, http.StatusBadRequest)
	})
}
