package chroma

import (
	chroma "github.com/amikos-tech/chroma-go/pkg/api/v2"
)

func toChromaMetadata(m map[string]string) chroma.CollectionMetadata {
	raw := make(map[string]interface{}, len(m))
	for k, v := range m {
		raw[k] = v
	}
	return chroma.NewMetadataFromMap(raw)
}

// fromChromaMetadata keeps string attributes only; nil yields an empty map.
func fromChromaMetadata(md chroma.CollectionMetadata) map[string]string {
	out := make(map[string]string)
	if md == nil {
		return out
	}
	for _, k := range md.Keys() {
		if v, ok := md.GetString(k); ok {
			out[k] = v
		}
	}
	return out
}
