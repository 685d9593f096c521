package models

// GPUOption is one priced, region-scoped instance offering as returned
// by the upstream pricing API. Extra fields in the upstream payload are
// ignored.
type GPUOption struct {
	Country         string  `json:"country"`
	OperatingSystem string  `json:"operating_system"`
	ResourceClass   string  `json:"resource_class"`
	ResourceName    string  `json:"resource_name"`
	VCPUs           int     `json:"vcpus"`
	RAM             float64 `json:"ram"`
	PricePerHour    float64 `json:"price_per_hour"`
	PricePerMonth   float64 `json:"price_per_month"`
	PricePerSpot    float64 `json:"price_per_spot"`
	GPUDescription  string  `json:"gpu_description"`
	Region          string  `json:"region"`
}

// Criteria is the user-supplied minimum requirements and budget ceiling
// for a recommendation request. VRAM is collected but not enforced by
// the filter funnel; DatasetSize is informational and only reaches the
// prompt.
type Criteria struct {
	OS          string  `json:"os"`
	Country     string  `json:"country"`
	Region      string  `json:"region"`
	CPUs        int     `json:"cpus"`
	RAM         float64 `json:"ram"`
	VRAM        float64 `json:"vram"`
	Budget      float64 `json:"budget"`
	DatasetSize float64 `json:"datasetSize"`
}

// FilterTrace records the funnel counts after each filter stage. Each
// count is at most the previous one.
type FilterTrace struct {
	TotalOptions      int `json:"totalOptions"`
	AfterOSFilter     int `json:"afterOsFilter"`
	AfterRegionFilter int `json:"afterRegionFilter"`
	AfterSpecsFilter  int `json:"afterSpecsFilter"`
	AfterBudgetFilter int `json:"afterBudgetFilter"`
}

type Prices struct {
	Hourly  float64 `json:"hourly"`
	Monthly float64 `json:"monthly"`
	Spot    float64 `json:"spot"`
}

type Specs struct {
	VCPUs int     `json:"vcpus"`
	RAM   float64 `json:"ram"`
}

// Recommendation is the typed result recovered from the LLM reply.
type Recommendation struct {
	GPUName        string `json:"gpu_name"`
	GPUDescription string `json:"gpu_description"`
	Prices         Prices `json:"prices"`
	Specs          Specs  `json:"specs"`
}
