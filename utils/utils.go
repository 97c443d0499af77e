package utils

import (
	"context"
	"encoding/json"
	rndm "math/rand"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateID creates a random alphanumeric identifier of length n.
func GenerateID(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// --- Link Parsing ---

// LinkPair is one external link attached to an event.
type LinkPair struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ParseLinks parses the free-text links field: comma-separated
// "label - url" pairs. A bare URL gets itself as label; scheme-less URLs
// are prefixed with https://. Malformed segments are skipped.
func ParseLinks(input string) []LinkPair {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	var pairs []LinkPair
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		label, url := part, part
		if i := strings.Index(part, " - "); i >= 0 {
			label = strings.TrimSpace(part[:i])
			url = strings.TrimSpace(part[i+3:])
		}
		if url == "" {
			continue
		}
		if label == "" {
			label = url
		}
		if !strings.HasPrefix(url, "http") {
			url = "https://" + url
		}
		pairs = append(pairs, LinkPair{Label: label, URL: url})
	}
	return pairs
}

// --- Mongo Helpers ---

// FindAndDecode runs a filtered find and decodes the full result set.
func FindAndDecode[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func ToJSON(v any) []byte {
	data, _ := json.Marshal(v)
	return data
}
