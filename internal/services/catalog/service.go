// Package catalog exposes the purchasable units of the custom-build
// offering: platform bases, technical features, and service add-ons.
// The source of truth is a static in-memory table; the Service
// interface keeps a CMS-backed source substitutable later.
package catalog

// Service is the read-only catalog source.
type Service interface {
	PlatformBases() []PlatformBase
	TechFeatures() []TechFeature
	ServiceAddons() []ServiceAddon

	PlatformBase(id string) (*PlatformBase, error)
	TechFeature(id string) (*TechFeature, error)
	ServiceAddon(id string) (*ServiceAddon, error)
}

type service struct {
	platforms map[string]PlatformBase
	features  map[string]TechFeature
	addons    map[string]ServiceAddon
}

// NewService creates a catalog service over the static tables.
func NewService() Service {
	s := &service{
		platforms: make(map[string]PlatformBase, len(platformBases)),
		features:  make(map[string]TechFeature, len(techFeatures)),
		addons:    make(map[string]ServiceAddon, len(serviceAddons)),
	}
	for _, p := range platformBases {
		s.platforms[p.ID] = p
	}
	for _, f := range techFeatures {
		s.features[f.ID] = f
	}
	for _, a := range serviceAddons {
		s.addons[a.ID] = a
	}
	return s
}

func (s *service) PlatformBases() []PlatformBase {
	out := make([]PlatformBase, len(platformBases))
	copy(out, platformBases)
	return out
}

func (s *service) TechFeatures() []TechFeature {
	out := make([]TechFeature, len(techFeatures))
	copy(out, techFeatures)
	return out
}

func (s *service) ServiceAddons() []ServiceAddon {
	out := make([]ServiceAddon, len(serviceAddons))
	copy(out, serviceAddons)
	return out
}

func (s *service) PlatformBase(id string) (*PlatformBase, error) {
	p, ok := s.platforms[id]
	if !ok {
		return nil, ErrPlatformNotFound
	}
	return &p, nil
}

func (s *service) TechFeature(id string) (*TechFeature, error) {
	f, ok := s.features[id]
	if !ok {
		return nil, ErrFeatureNotFound
	}
	return &f, nil
}

func (s *service) ServiceAddon(id string) (*ServiceAddon, error) {
	a, ok := s.addons[id]
	if !ok {
		return nil, ErrAddonNotFound
	}
	return &a, nil
}
