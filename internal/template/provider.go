package template

import (
	"errors"
	"fmt"

	"github.com/samdwyer/roomwalk/internal/room"
)

// ErrMissingTemplate is matched by errors returned when a kind has no
// registered template and cannot fall back.
var ErrMissingTemplate = errors.New("missing room template")

// MissingTemplateError reports a kind that could not be resolved.
type MissingTemplateError struct {
	Kind room.Kind
	ID   string
}

func (e *MissingTemplateError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%v: no template configured for %s", ErrMissingTemplate, e.Kind)
	}
	return fmt.Sprintf("%v: %s template %q is not registered", ErrMissingTemplate, e.Kind, e.ID)
}

// Is reports whether target is ErrMissingTemplate.
func (e *MissingTemplateError) Is(target error) bool {
	return target == ErrMissingTemplate
}

// Provider maps room kinds to templates for one dungeon configuration.
type Provider struct {
	catalog    *Catalog
	defaultID  string
	specialIDs []string
}

// NewProvider creates a provider resolving Default to defaultID and
// Special(i) to specialIDs[i], both looked up in catalog.
func NewProvider(catalog *Catalog, defaultID string, specialIDs []string) *Provider {
	return &Provider{
		catalog:    catalog,
		defaultID:  defaultID,
		specialIDs: append([]string(nil), specialIDs...),
	}
}

// Variants returns the number of special variants.
func (p *Provider) Variants() int {
	return len(p.specialIDs)
}

// Resolve returns the template for kind. Default rooms without an authored
// template use Fallback; special rooms have no fallback.
func (p *Provider) Resolve(kind room.Kind) (*Template, error) {
	v, special := kind.Variant()
	if !special {
		if t := p.catalog.Lookup(p.defaultID); t != nil {
			return t, nil
		}
		return Fallback(), nil
	}

	if v < 0 || v >= len(p.specialIDs) {
		return nil, &MissingTemplateError{Kind: kind}
	}
	id := p.specialIDs[v]
	if t := p.catalog.Lookup(id); t != nil {
		return t, nil
	}
	return nil, &MissingTemplateError{Kind: kind, ID: id}
}
