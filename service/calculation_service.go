package service

import (
	"context"
	"log"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"petrocalc/domain"
	"petrocalc/repository"
)

type CalculationService struct {
	registry *Registry
	cache    repository.CacheRepository
	cacheTTL time.Duration
}

// NewCalculationService creates a CalculationService over the given registry.
// cache may be nil, in which case every evaluation is computed.
func NewCalculationService(
	registry *Registry,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
) *CalculationService {
	return &CalculationService{registry: registry, cache: cache, cacheTTL: cacheTTL}
}

// List returns every calculation with its parameters, in registration order.
func (s *CalculationService) List() []domain.CalculationInfo {
	names := s.registry.List()
	infos := make([]domain.CalculationInfo, 0, len(names))
	for _, name := range names {
		info, err := s.registry.Describe(name)
		if err != nil {
			continue
		}
		infos = append(infos, info)
	}
	return infos
}

func (s *CalculationService) Describe(name string) (domain.CalculationInfo, error) {
	return s.registry.Describe(name)
}

// Evaluate runs the named calculation with lenient parameter parsing.
// Results are memoized in the cache; cache failures are logged and never
// fail the calculation.
func (s *CalculationService) Evaluate(
	ctx context.Context,
	name string,
	raw map[string]string,
) (domain.CalculationResult, error) {

	spec, ok := s.registry.spec(name)
	if !ok {
		return domain.CalculationResult{}, unknownCalculation(name)
	}

	if s.cache == nil {
		return s.registry.Evaluate(name, raw)
	}

	key := calculationCacheKey(name, raw)
	if cached, hit, err := s.cache.Get(ctx, key); err != nil {
		log.Printf("Warning: cache read failed for %s: %v", key, err)
	} else if hit {
		if bits, err := strconv.ParseUint(cached, 16, 64); err == nil {
			return buildResult(spec, math.Float64frombits(bits)), nil
		}
		log.Printf("Warning: discarding malformed cache entry %s", key)
	}

	result, err := s.registry.Evaluate(name, raw)
	if err != nil {
		return domain.CalculationResult{}, err
	}

	// Guardar el resultado (no crítico si falla)
	encoded := strconv.FormatUint(math.Float64bits(result.Value), 16)
	if err := s.cache.Set(ctx, key, encoded, s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache calculation %s: %v", key, err)
	}

	return result, nil
}

// EvaluateStrict validates every declared parameter before computing.
// Strict results are not cached.
func (s *CalculationService) EvaluateStrict(
	_ context.Context,
	name string,
	raw map[string]string,
) (domain.CalculationResult, error) {
	return s.registry.EvaluateStrict(name, raw)
}

// calculationCacheKey hashes the name and the raw parameters in key order,
// so the same request always maps to the same entry. Every field is length
// prefixed to keep distinct inputs from concatenating to the same bytes.
func calculationCacheKey(name string, raw map[string]string) string {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := xxhash.New()
	writeField(h, name)
	for _, k := range keys {
		writeField(h, k)
		writeField(h, raw[k])
	}
	return calcCacheKeyPrefix + strconv.FormatUint(h.Sum64(), 16)
}

func writeField(h *xxhash.Digest, field string) {
	_, _ = h.WriteString(strconv.Itoa(len(field)))
	_, _ = h.WriteString(":")
	_, _ = h.WriteString(field)
}
