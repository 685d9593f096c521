//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukti-cloud/gpu-advisor/config"
	"github.com/yukti-cloud/gpu-advisor/db"
	"github.com/yukti-cloud/gpu-advisor/handlers"
	"github.com/yukti-cloud/gpu-advisor/internal/testutils"
	"github.com/yukti-cloud/gpu-advisor/llm"
	"github.com/yukti-cloud/gpu-advisor/middleware"
	"github.com/yukti-cloud/gpu-advisor/pricing"
	"github.com/yukti-cloud/gpu-advisor/repositories"
	"github.com/yukti-cloud/gpu-advisor/routes"
	"github.com/yukti-cloud/gpu-advisor/services"
)

var router *gin.Engine

const advisorReply = `GPU_NAME: A100-80GB
DESCRIPTION: Training workhorse
PRICING:
- Hourly: $2.48
- Monthly: $1500.00
- Spot: $1.10
SPECS:
- vCPUs: 8
- RAM: 40 GB`

func TestMain(m *testing.M) {
	gormDB, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	config.LoadConfig()
	config.JwtSecret = "integration-test-secret"
	middleware.Init()
	db.InitWithGormDB(gormDB)

	// Fake upstreams: a one-option pricing catalog and a completion
	// endpoint that always answers with a well-formed reply.
	pricingSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{
			"operating_system": "Linux-Ubuntu",
			"resource_name": "A100-80GB",
			"vcpus": 12,
			"ram": 96,
			"price_per_hour": 2.48,
			"price_per_month": 1500,
			"price_per_spot": 1.1,
			"gpu_description": "Training workhorse",
			"region": "mumbai"
		}]}`))
	}))
	defer pricingSrv.Close()

	llmSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reply := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": advisorReply}},
			},
		}
		_ = json.NewEncoder(w).Encode(reply)
	}))
	defer llmSrv.Close()

	pricingClient := pricing.NewClient(pricingSrv.URL, 5*time.Second)
	llmClient := llm.NewClient(llmSrv.URL, "test-key", "llama3-70b-8192", 0.3, 1024, 5*time.Second)

	repos := repositories.New()
	svc := services.New(repos, pricingClient, llmClient, llmClient)

	gin.SetMode(gin.TestMode)
	router = gin.New()
	routes.RegisterRoutes(router, handlers.New(svc))

	os.Exit(m.Run())
}

func doRequest(t *testing.T, method, path, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(raw))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}
	return w
}

// registerAndLogin creates the user if needed and returns a fresh token.
func registerAndLogin(t *testing.T, email string) string {
	t.Helper()

	doRequest(t, http.MethodPost, "/register", "", map[string]interface{}{
		"email":     email,
		"password":  "password123",
		"full_name": "Integration User",
	}, 0)

	w := doRequest(t, http.MethodPost, "/login", "", map[string]interface{}{
		"email":    email,
		"password": "password123",
	}, http.StatusOK)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}
