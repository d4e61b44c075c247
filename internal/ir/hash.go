package ir

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// DomainTrace prefixes trace digests. The version suffix allows changing
// the canonical form later without colliding with old digests.
const DomainTrace = "keycalc/trace/v1"

// hashWithDomain computes xxhash64(domain + 0x00 + data) as 16 hex digits.
// The null separator keeps domain and data boundaries unambiguous.
func hashWithDomain(domain string, data []byte) string {
	d := xxhash.New()
	_, _ = d.WriteString(domain)
	_, _ = d.Write([]byte{0x00})
	_, _ = d.Write(data)
	return fmt.Sprintf("%016x", d.Sum64())
}

// TraceDigest fingerprints a trace. Two sessions that applied the same
// actions and saw the same displays share a digest regardless of session
// token.
func TraceDigest(events []Event) (string, error) {
	trace := make([]any, len(events))
	for i, event := range events {
		trace[i] = event.CanonicalMap()
	}

	canonical, err := MarshalCanonical(trace)
	if err != nil {
		return "", fmt.Errorf("TraceDigest: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainTrace, canonical), nil
}
