package synth

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/models/domain"
)

// Config holds the explicit knobs of a generation run. Everything a run
// produces is a pure function of this configuration; in particular
// ReferenceDate stands in for "now" so that no call ever reads the system
// clock.
type Config struct {
	Seed              int64
	ReferenceDate     time.Time
	Currency          string
	AnomalyMultiplier float64
}

const (
	DefaultCurrency          = "USD"
	DefaultAnomalyMultiplier = 10.0
)

func (c Config) withDefaults() Config {
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
	if c.AnomalyMultiplier <= 0 {
		c.AnomalyMultiplier = DefaultAnomalyMultiplier
	}
	if c.ReferenceDate.IsZero() {
		c.ReferenceDate = time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	}
	return c
}

// Generator produces internally consistent multi-cloud datasets from a seeded
// pseudo-random sequence. A Generator owns its random state and is not safe
// for concurrent use; give each goroutine its own instance.
type Generator struct {
	cfg    Config
	rnd    *rand.Rand
	issued map[string]bool
}

func NewGenerator(cfg Config) *Generator {
	cfg = cfg.withDefaults()
	return &Generator{
		cfg:    cfg,
		rnd:    rand.New(rand.NewSource(cfg.Seed)),
		issued: map[string]bool{},
	}
}

// GenerateResource produces a fully populated resource for the given
// provider and type. When region is empty a provider-appropriate region is
// picked pseudo-randomly.
func (g *Generator) GenerateResource(
	provider domain.Provider,
	resourceType domain.ResourceType,
	region string,
) (domain.CloudResource, error) {
	templates, ok := nameTemplates[provider][resourceType]
	if !ok || len(templates) == 0 {
		return domain.CloudResource{}, &InvalidConfigurationError{
			Provider:     provider,
			ResourceType: resourceType,
		}
	}

	if region == "" {
		region = g.pick(providerRegions[provider])
	}

	createdAt := g.cfg.ReferenceDate.AddDate(0, 0, -g.intBetween(1, 365))
	updatedAt := createdAt.Add(time.Duration(g.intBetween(1, 24*30)) * time.Hour)

	return domain.CloudResource{
		ID:             g.uuid(),
		Provider:       provider,
		ResourceID:     g.resourceID(provider, resourceType),
		ResourceType:   resourceType,
		Name:           fmt.Sprintf(g.pick(templates), g.intBetween(1, 999)),
		Region:         region,
		Tags:           g.tags(provider),
		Specifications: g.specifications(resourceType),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}

func (g *Generator) tags(provider domain.Provider) map[string]string {
	tags := map[string]string{
		"Environment": g.pick(tagEnvironments),
		"Team":        g.pick(tagTeams),
		"Project":     g.pick(tagProjects),
	}
	switch provider {
	case domain.ProviderAWS:
		tags["Owner"] = g.pick(awsOwners)
	case domain.ProviderGCP:
		tags["created-by"] = g.pick(gcpCreatedBy)
	case domain.ProviderAzure:
		tags["createdBy"] = g.pick(azureCreatedBy)
	}
	return tags
}

func (g *Generator) specifications(resourceType domain.ResourceType) domain.Specifications {
	switch resourceType {
	case domain.ResourceTypeCompute:
		return domain.ComputeSpecs{
			InstanceType: g.pick(computeInstanceTypes),
			VCPUs:        g.pickInt(computeVCPUs),
			MemoryGB:     g.pickInt(computeMemoryGB),
			StorageGB:    g.pickInt(computeStorageGB),
		}
	case domain.ResourceTypeDatabase:
		return domain.DatabaseSpecs{
			Engine:       g.pick(dbEngines),
			InstanceType: g.pick(dbInstanceTypes),
			StorageGB:    g.pickInt(dbStorageGB),
			MultiAZ:      g.rnd.Intn(2) == 0,
		}
	case domain.ResourceTypeStorage:
		return domain.StorageSpecs{
			StorageClass: g.pick(storageClasses),
			CapacityGB:   g.pickInt(storageCapacityGB),
			Versioning:   g.rnd.Intn(2) == 0,
			Encryption:   true,
		}
	case domain.ResourceTypeNetwork:
		return domain.NetworkSpecs{
			Service:        g.pick(networkServices),
			ThroughputMbps: g.pickInt(networkThroughputMbps),
		}
	case domain.ResourceTypeContainer:
		return domain.ContainerSpecs{
			Orchestrator: g.pick(containerOrchestrators),
			NodeCount:    g.pickInt(containerNodeCounts),
			VCPUsPerNode: g.pickInt(containerNodeVCPUs),
			MemoryGBNode: g.pickInt(containerNodeMemoryGB),
		}
	case domain.ResourceTypeServerless:
		return domain.ServerlessSpecs{
			Runtime:        g.pick(serverlessRuntimes),
			MemoryMB:       g.pickInt(serverlessMemoryMB),
			TimeoutSeconds: g.pickInt(serverlessTimeouts),
		}
	}
	return nil
}

// resourceID draws provider-specific identifiers until one is new for this
// run: (provider, resource_id) must be unique within a generation run, and
// some formats draw from small pools.
func (g *Generator) resourceID(provider domain.Provider, resourceType domain.ResourceType) string {
	for attempt := 0; ; attempt++ {
		id := g.drawResourceID(provider, resourceType)
		if attempt >= 64 {
			// Pool exhausted; widen the id rather than spin.
			id += "-" + g.hex(6)
		}
		key := string(provider) + "/" + id
		if !g.issued[key] {
			g.issued[key] = true
			return id
		}
	}
}

func (g *Generator) drawResourceID(provider domain.Provider, resourceType domain.ResourceType) string {
	switch provider {
	case domain.ProviderAWS:
		switch resourceType {
		case domain.ResourceTypeCompute:
			return "i-" + g.hex(17)
		case domain.ResourceTypeDatabase:
			return "db-" + g.hex(12)
		case domain.ResourceTypeStorage:
			return fmt.Sprintf("app-bucket-%d", g.intBetween(100, 999))
		case domain.ResourceTypeServerless:
			return fmt.Sprintf("arn:aws:lambda:us-east-1:%012d:function:fn-%s", g.intBetween(1, 999999999), g.hex(8))
		}
	case domain.ProviderGCP:
		switch resourceType {
		case domain.ResourceTypeCompute:
			return "projects/my-project/zones/us-central1-a/instances/" + g.hex(8)
		case domain.ResourceTypeStorage:
			return "my-project.appspot.com/" + g.hex(16)
		}
	case domain.ProviderAzure:
		if resourceType == domain.ResourceTypeCompute {
			return fmt.Sprintf(
				"/subscriptions/%s/resourceGroups/myRG/providers/Microsoft.Compute/virtualMachines/vm%d",
				g.uuid(), g.intBetween(1, 999))
		}
	}
	return g.uuid()
}

// uuid draws an RFC 4122 id from the generator's own random stream so that
// ids reproduce under the same seed.
func (g *Generator) uuid() string {
	return uuid.Must(uuid.NewRandomFromReader(g.rnd)).String()
}

const hexDigits = "0123456789abcdef"

func (g *Generator) hex(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = hexDigits[g.rnd.Intn(len(hexDigits))]
	}
	return string(b)
}

func (g *Generator) pick(values []string) string {
	return values[g.rnd.Intn(len(values))]
}

func (g *Generator) pickInt(values []int) int {
	return values[g.rnd.Intn(len(values))]
}

// intBetween returns a pseudo-random int in [low, high].
func (g *Generator) intBetween(low, high int) int {
	return low + g.rnd.Intn(high-low+1)
}

// floatBetween returns a pseudo-random float in [low, high).
func (g *Generator) floatBetween(low, high float64) float64 {
	return low + g.rnd.Float64()*(high-low)
}
