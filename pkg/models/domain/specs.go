package domain

import (
	"encoding/json"
	"fmt"
)

// Specifications is the per-type shape of a resource's hardware/service
// configuration. Each resource type carries its own variant so that cost
// shaping can read strongly-typed fields instead of poking an untyped bag.
type Specifications interface {
	SpecKind() ResourceType
}

type ComputeSpecs struct {
	InstanceType string `json:"instance_type"`
	VCPUs        int    `json:"vcpus"`
	MemoryGB     int    `json:"memory_gb"`
	StorageGB    int    `json:"storage_gb"`
}

func (ComputeSpecs) SpecKind() ResourceType { return ResourceTypeCompute }

type DatabaseSpecs struct {
	Engine       string `json:"engine"`
	InstanceType string `json:"instance_type"`
	StorageGB    int    `json:"storage_gb"`
	MultiAZ      bool   `json:"multi_az"`
}

func (DatabaseSpecs) SpecKind() ResourceType { return ResourceTypeDatabase }

type StorageSpecs struct {
	StorageClass string `json:"storage_class"`
	CapacityGB   int    `json:"capacity_gb"`
	Versioning   bool   `json:"versioning"`
	Encryption   bool   `json:"encryption"`
}

func (StorageSpecs) SpecKind() ResourceType { return ResourceTypeStorage }

type NetworkSpecs struct {
	Service        string `json:"service"`
	ThroughputMbps int    `json:"throughput_mbps"`
}

func (NetworkSpecs) SpecKind() ResourceType { return ResourceTypeNetwork }

type ContainerSpecs struct {
	Orchestrator string `json:"orchestrator"`
	NodeCount    int    `json:"node_count"`
	VCPUsPerNode int    `json:"vcpus_per_node"`
	MemoryGBNode int    `json:"memory_gb_per_node"`
}

func (ContainerSpecs) SpecKind() ResourceType { return ResourceTypeContainer }

type ServerlessSpecs struct {
	Runtime        string `json:"runtime"`
	MemoryMB       int    `json:"memory_mb"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

func (ServerlessSpecs) SpecKind() ResourceType { return ResourceTypeServerless }

func decodeSpecifications(rt ResourceType, raw json.RawMessage) (Specifications, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var (
		specs Specifications
		err   error
	)
	switch rt {
	case ResourceTypeCompute:
		var s ComputeSpecs
		err = json.Unmarshal(raw, &s)
		specs = s
	case ResourceTypeDatabase:
		var s DatabaseSpecs
		err = json.Unmarshal(raw, &s)
		specs = s
	case ResourceTypeStorage:
		var s StorageSpecs
		err = json.Unmarshal(raw, &s)
		specs = s
	case ResourceTypeNetwork:
		var s NetworkSpecs
		err = json.Unmarshal(raw, &s)
		specs = s
	case ResourceTypeContainer:
		var s ContainerSpecs
		err = json.Unmarshal(raw, &s)
		specs = s
	case ResourceTypeServerless:
		var s ServerlessSpecs
		err = json.Unmarshal(raw, &s)
		specs = s
	default:
		return nil, fmt.Errorf("no specifications variant for resource type %q", rt)
	}

	if err != nil {
		return nil, fmt.Errorf("decode %s specifications: %w", rt, err)
	}
	return specs, nil
}
