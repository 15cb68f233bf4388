package qdrant

import (
	"fmt"

	"github.com/google/uuid"
	qdrant "github.com/qdrant/go-client/qdrant"
)

// registryNamespace seeds the deterministic point IDs of registry entries.
var registryNamespace = uuid.MustParse("6f1c1f2e-4c1b-5d8e-9a4e-2b7f0c3d9e10")

const (
	payloadCollectionKey = "collection"
	payloadMetadataKey   = "metadata"
)

// registryPointID derives the registry point ID of a collection. The same
// name always maps to the same UUID, so re-registering overwrites in place.
func registryPointID(name string) string {
	return uuid.NewSHA1(registryNamespace, []byte(name)).String()
}

// parseDistance maps a configured metric name to the protobuf enum.
func parseDistance(name string) (qdrant.Distance, error) {
	v, ok := qdrant.Distance_value[name]
	if !ok || qdrant.Distance(v) == qdrant.Distance_UnknownDistance {
		return qdrant.Distance_UnknownDistance, fmt.Errorf("[Qdrant] unsupported distance %q", name)
	}
	return qdrant.Distance(v), nil
}

// registryPayload builds the payload stored for a collection.
func registryPayload(name string, metadata map[string]string) map[string]*qdrant.Value {
	meta := make(map[string]any, len(metadata))
	for k, v := range metadata {
		meta[k] = v
	}
	return qdrant.NewValueMap(map[string]any{
		payloadCollectionKey: name,
		payloadMetadataKey:   meta,
	})
}

// metadataFromPayload extracts the string metadata from a registry payload.
// Non-string values are ignored.
func metadataFromPayload(payload map[string]*qdrant.Value) (string, map[string]string) {
	out := make(map[string]string)
	if payload == nil {
		return "", out
	}

	name := payload[payloadCollectionKey].GetStringValue()

	fields := payload[payloadMetadataKey].GetStructValue().GetFields()
	for k, v := range fields {
		if s, ok := v.GetKind().(*qdrant.Value_StringValue); ok {
			out[k] = s.StringValue
		}
	}
	return name, out
}
