package synth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/models/domain"
)

func TestGenerateUsagePatterns(t *testing.T) {
	g := NewGenerator(testConfig())
	resource, err := g.GenerateResource(domain.ProviderGCP, domain.ResourceTypeCompute, "")
	require.NoError(t, err)

	start := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(3*24*time.Hour - time.Hour)

	patterns, err := g.GenerateUsagePatterns(resource, start, end, time.Hour)
	require.NoError(t, err)

	t.Run("one sample per interval tick", func(t *testing.T) {
		assert.Len(t, patterns, 3*24)
	})

	t.Run("utilization stays bounded", func(t *testing.T) {
		for _, p := range patterns {
			assert.GreaterOrEqual(t, p.CPUUtilization, 0.0)
			assert.LessOrEqual(t, p.CPUUtilization, 100.0)
			assert.GreaterOrEqual(t, p.MemoryUtilization, 0.0)
			assert.LessOrEqual(t, p.MemoryUtilization, 100.0)
			assert.GreaterOrEqual(t, p.NetworkIn, 0.0)
			assert.GreaterOrEqual(t, p.NetworkOut, 0.0)
			assert.GreaterOrEqual(t, p.StorageUsed, 0.0)
		}
	})

	t.Run("references the resource", func(t *testing.T) {
		for _, p := range patterns {
			assert.Equal(t, resource.ID, p.ResourceID)
		}
	})

	t.Run("non-serverless has no request rate", func(t *testing.T) {
		for _, p := range patterns {
			assert.Nil(t, p.RequestsPerMinute)
		}
	})
}

func TestGenerateUsagePatterns_Serverless(t *testing.T) {
	g := NewGenerator(testConfig())
	resource, err := g.GenerateResource(domain.ProviderAWS, domain.ResourceTypeServerless, "")
	require.NoError(t, err)

	start := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	patterns, err := g.GenerateUsagePatterns(resource, start, start.Add(23*time.Hour), time.Hour)
	require.NoError(t, err)
	require.Len(t, patterns, 24)

	for _, p := range patterns {
		require.NotNil(t, p.RequestsPerMinute)
		assert.GreaterOrEqual(t, *p.RequestsPerMinute, 0.0)
	}
}

func TestGenerateUsagePatterns_DiurnalShape(t *testing.T) {
	g := NewGenerator(testConfig())
	resource, err := g.GenerateResource(domain.ProviderAWS, domain.ResourceTypeCompute, "")
	require.NoError(t, err)

	start := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(30*24*time.Hour - time.Hour)

	patterns, err := g.GenerateUsagePatterns(resource, start, end, time.Hour)
	require.NoError(t, err)

	var businessSum, nightSum float64
	var businessN, nightN int
	for _, p := range patterns {
		hour := p.Date.Hour()
		switch {
		case hour >= 9 && hour <= 17:
			businessSum += p.CPUUtilization
			businessN++
		case hour < 6:
			nightSum += p.CPUUtilization
			nightN++
		}
	}
	require.Positive(t, businessN)
	require.Positive(t, nightN)
	assert.Greater(t, businessSum/float64(businessN), nightSum/float64(nightN))
}

func TestGenerateUsagePatterns_Errors(t *testing.T) {
	g := NewGenerator(testConfig())
	resource, err := g.GenerateResource(domain.ProviderAWS, domain.ResourceTypeCompute, "")
	require.NoError(t, err)

	start := time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC)

	t.Run("inverted window", func(t *testing.T) {
		_, err := g.GenerateUsagePatterns(resource, start, start.AddDate(0, 0, -2), time.Hour)
		var rangeErr *InvalidRangeError
		require.ErrorAs(t, err, &rangeErr)
	})

	t.Run("non-positive interval", func(t *testing.T) {
		_, err := g.GenerateUsagePatterns(resource, start, start.AddDate(0, 0, 2), 0)
		var rangeErr *InvalidRangeError
		require.ErrorAs(t, err, &rangeErr)
	})
}
