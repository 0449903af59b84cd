package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

type Provider string

const (
	ProviderAWS   Provider = "aws"
	ProviderGCP   Provider = "gcp"
	ProviderAzure Provider = "azure"
)

func AllProviders() []Provider {
	return []Provider{ProviderAWS, ProviderGCP, ProviderAzure}
}

func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case ProviderAWS, ProviderGCP, ProviderAzure:
		return Provider(s), nil
	}
	return "", fmt.Errorf("unknown provider %q", s)
}

type ResourceType string

const (
	ResourceTypeCompute    ResourceType = "compute"
	ResourceTypeDatabase   ResourceType = "database"
	ResourceTypeStorage    ResourceType = "storage"
	ResourceTypeNetwork    ResourceType = "network"
	ResourceTypeContainer  ResourceType = "container"
	ResourceTypeServerless ResourceType = "serverless"
)

func AllResourceTypes() []ResourceType {
	return []ResourceType{
		ResourceTypeCompute,
		ResourceTypeDatabase,
		ResourceTypeStorage,
		ResourceTypeNetwork,
		ResourceTypeContainer,
		ResourceTypeServerless,
	}
}

func ParseResourceType(s string) (ResourceType, error) {
	for _, rt := range AllResourceTypes() {
		if ResourceType(s) == rt {
			return rt, nil
		}
	}
	return "", fmt.Errorf("unknown resource type %q", s)
}

// CloudResource is a simulated cloud infrastructure object. The JSON field
// names are part of the persistence contract; downstream consumers bind to
// them directly.
type CloudResource struct {
	ID             string            `json:"id"`
	Provider       Provider          `json:"provider"`
	ResourceID     string            `json:"resource_id"`
	ResourceType   ResourceType      `json:"resource_type"`
	Name           string            `json:"name"`
	Region         string            `json:"region"`
	Tags           map[string]string `json:"tags"`
	Specifications Specifications    `json:"specifications"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func (r *CloudResource) UnmarshalJSON(data []byte) error {
	type alias CloudResource
	aux := struct {
		*alias
		Specifications json.RawMessage `json:"specifications"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	specs, err := decodeSpecifications(r.ResourceType, aux.Specifications)
	if err != nil {
		return fmt.Errorf("resource %s: %w", r.ID, err)
	}
	r.Specifications = specs
	return nil
}
