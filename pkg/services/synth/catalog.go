package synth

import (
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/models/domain"
)

// The catalog holds the fixed pools the generator draws from. Everything in
// this file is constant data; the only randomness is which entry gets picked.

var providerRegions = map[domain.Provider][]string{
	domain.ProviderAWS: {
		"us-east-1", "us-west-2", "eu-west-1", "ap-southeast-1",
		"ca-central-1", "sa-east-1", "eu-central-1", "ap-northeast-1",
	},
	domain.ProviderGCP: {
		"us-central1", "us-east1", "us-west1", "europe-west1",
		"asia-southeast1", "australia-southeast1", "europe-north1",
	},
	domain.ProviderAzure: {
		"East US", "West US 2", "North Europe", "Southeast Asia",
		"Canada Central", "Brazil South", "Germany West Central",
	},
}

var nameTemplates = map[domain.Provider]map[domain.ResourceType][]string{
	domain.ProviderAWS: {
		domain.ResourceTypeCompute:    {"web-server-%d", "app-server-%d", "worker-%d"},
		domain.ResourceTypeDatabase:   {"postgres-db-%d", "mysql-cluster-%d", "redis-cache-%d"},
		domain.ResourceTypeStorage:    {"app-bucket-%d", "logs-bucket-%d", "backup-bucket-%d"},
		domain.ResourceTypeNetwork:    {"alb-%d", "nat-gateway-%d", "vpn-%d"},
		domain.ResourceTypeContainer:  {"ecs-cluster-%d", "eks-node-group-%d"},
		domain.ResourceTypeServerless: {"lambda-%d", "api-gateway-%d"},
	},
	domain.ProviderGCP: {
		domain.ResourceTypeCompute:    {"gce-instance-%d", "gke-node-%d"},
		domain.ResourceTypeDatabase:   {"cloud-sql-%d", "bigtable-%d", "memorystore-%d"},
		domain.ResourceTypeStorage:    {"gcs-bucket-%d", "filestore-%d"},
		domain.ResourceTypeNetwork:    {"cloud-lb-%d", "cloud-nat-%d"},
		domain.ResourceTypeContainer:  {"gke-cluster-%d", "autopilot-%d"},
		domain.ResourceTypeServerless: {"cloud-function-%d", "cloud-run-%d"},
	},
	domain.ProviderAzure: {
		domain.ResourceTypeCompute:    {"vm-%d", "vmss-%d"},
		domain.ResourceTypeDatabase:   {"sql-server-%d", "cosmos-db-%d", "cache-%d"},
		domain.ResourceTypeStorage:    {"storage-account-%d", "file-share-%d"},
		domain.ResourceTypeNetwork:    {"app-gateway-%d", "load-balancer-%d"},
		domain.ResourceTypeContainer:  {"aks-cluster-%d", "container-app-%d"},
		domain.ResourceTypeServerless: {"function-app-%d", "logic-app-%d"},
	},
}

var (
	tagEnvironments = []string{"production", "staging", "development", "test"}
	tagTeams        = []string{"backend", "frontend", "data", "infra", "security"}
	tagProjects     = []string{"web-app", "api", "analytics", "ml-pipeline", "monitoring"}

	awsOwners      = []string{"john.doe", "jane.smith", "admin"}
	gcpCreatedBy   = []string{"terraform", "gcloud", "console"}
	azureCreatedBy = []string{"terraform", "portal", "cli"}
)

var (
	computeInstanceTypes = []string{"t3.medium", "t3.large", "m5.large", "c5.xlarge"}
	computeVCPUs         = []int{2, 4, 8, 16}
	computeMemoryGB      = []int{4, 8, 16, 32, 64}
	computeStorageGB     = []int{20, 50, 100, 200}

	dbEngines       = []string{"postgres", "mysql", "mongodb"}
	dbInstanceTypes = []string{"db.t3.medium", "db.t3.large", "db.r5.large"}
	dbStorageGB     = []int{20, 100, 500, 1000}

	storageClasses    = []string{"STANDARD", "STANDARD_IA", "GLACIER"}
	storageCapacityGB = []int{500, 1000, 5000, 10000}

	networkServices       = []string{"load_balancer", "nat_gateway", "vpn"}
	networkThroughputMbps = []int{100, 500, 1000, 10000}

	containerOrchestrators = []string{"kubernetes", "ecs", "nomad"}
	containerNodeCounts    = []int{2, 3, 5, 10}
	containerNodeVCPUs     = []int{2, 4, 8}
	containerNodeMemoryGB  = []int{4, 8, 16}

	serverlessRuntimes = []string{"python3.11", "nodejs20", "java17", "go1.x"}
	serverlessMemoryMB = []int{128, 256, 512, 1024}
	serverlessTimeouts = []int{30, 60, 300, 900}
)

// Base daily rates in USD before specification scaling. The weekend
// multiplier applies to workload-driven resource types only; always-on
// storage, databases and network plumbing bill flat through the week.
const (
	weekendMultiplier = 0.6
	trendMaxSlope     = 0.3 // up to +-30% drift across a window
	noiseAmplitude    = 0.1 // +-10% daily noise
)

var baseDailyRates = map[domain.ResourceType]float64{
	domain.ResourceTypeCompute:    15.0,
	domain.ResourceTypeDatabase:   25.0,
	domain.ResourceTypeStorage:    2.0,
	domain.ResourceTypeNetwork:    5.0,
	domain.ResourceTypeContainer:  8.0,
	domain.ResourceTypeServerless: 1.0,
}

var weekendSensitive = map[domain.ResourceType]bool{
	domain.ResourceTypeCompute:    true,
	domain.ResourceTypeContainer:  true,
	domain.ResourceTypeServerless: true,
}

// Base utilization ranges per resource type, before the diurnal curve.
type usageBaseline struct {
	cpuLow, cpuHigh         float64
	memLow, memHigh         float64
	netLow, netHigh         float64
	storageLow, storageHigh float64
}

var usageBaselines = map[domain.ResourceType]usageBaseline{
	domain.ResourceTypeCompute:  {20, 80, 30, 90, 10, 50, 40, 80},
	domain.ResourceTypeDatabase: {15, 60, 25, 75, 5, 30, 50, 90},
}

var defaultUsageBaseline = usageBaseline{10, 50, 20, 60, 5, 25, 30, 70}
