// Package cid derives content identifiers for bundle assets. Identifiers are
// CIDv1 over a SHA-256 multihash with the raw codec, so a published asset can
// be addressed by its bytes alone.
package cid

import (
	"fmt"
	"strings"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Of returns the CID of data.
func Of(data []byte) (cid.Cid, error) {
	mh, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, fmt.Errorf("hash content: %w", err)
	}
	return cid.NewCidV1(cid.Raw, mh), nil
}

// Generate returns the string form of the CID of data.
func Generate(data []byte) (string, error) {
	c, err := Of(data)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// Validate reports whether s is a well-formed CID.
func Validate(s string) bool {
	_, err := cid.Decode(s)
	return err == nil
}

// ETag formats an identifier as a strong HTTP entity tag.
func ETag(id string) string {
	return `"` + id + `"`
}

// MatchETag reports whether an If-None-Match header value names id.
func MatchETag(header, id string) bool {
	for _, tag := range strings.Split(header, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "*" {
			return true
		}
		tag = strings.TrimPrefix(tag, "W/")
		if strings.Trim(tag, `"`) == id {
			return true
		}
	}
	return false
}
