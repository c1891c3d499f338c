package metadata

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRecord wraps every validation failure so callers can detect
// malformed metadata with errors.Is.
var ErrInvalidRecord = errors.New("metadata: invalid record")

var releaseLevels = map[string]struct{}{
	"":                {},
	ReleaseLevelAlpha: {},
	ReleaseLevelBeta:  {},
	ReleaseLevelGA:    {},
	"unknown":         {},
}

var transports = map[string]struct{}{
	"":            {},
	TransportGRPC: {},
	TransportHTTP: {},
	TransportBoth: {},
	TransportNone: {},
}

// Validate enforces the structural invariants rendering relies on. Malformed
// coordinates fail here, at the boundary, so renderers never have to handle
// half-split identifiers mid-render.
func (r Record) Validate() error {
	group, artifact, ok := strings.Cut(r.Repo.DistributionName, ":")
	if !ok || strings.TrimSpace(group) == "" || strings.TrimSpace(artifact) == "" {
		return fmt.Errorf("%w: distribution_name %q must be \"groupId:artifactId\"", ErrInvalidRecord, r.Repo.DistributionName)
	}
	if strings.Contains(artifact, ":") {
		return fmt.Errorf("%w: distribution_name %q has more than one separator", ErrInvalidRecord, r.Repo.DistributionName)
	}

	if strings.TrimSpace(r.Repo.Repo) == "" {
		return fmt.Errorf("%w: repo is required", ErrInvalidRecord)
	}
	if r.Repo.RepoShort() == "" {
		return fmt.Errorf("%w: repo %q has no usable name segment", ErrInvalidRecord, r.Repo.Repo)
	}

	if _, ok := releaseLevels[r.Repo.ReleaseLevel]; !ok {
		return fmt.Errorf("%w: release_level %q not recognised", ErrInvalidRecord, r.Repo.ReleaseLevel)
	}
	if _, ok := transports[r.Repo.Transport]; !ok {
		return fmt.Errorf("%w: transport %q not recognised", ErrInvalidRecord, r.Repo.Transport)
	}

	for i, sample := range r.Samples {
		if strings.TrimSpace(sample.File) == "" {
			return fmt.Errorf("%w: sample %d has no file", ErrInvalidRecord, i)
		}
	}
	return nil
}
