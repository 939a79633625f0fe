package service

import (
	"context"
	"fmt"

	"github.com/Himan2899/SmartFileOrganizer/pkg/cache"
	"github.com/Himan2899/SmartFileOrganizer/pkg/configs"
	ctxPkg "github.com/Himan2899/SmartFileOrganizer/pkg/context"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/types"
	"github.com/Himan2899/SmartFileOrganizer/pkg/rule"
)

// rulesKey is where the active rule set lives in the KV store.
const rulesKey = "organizer:rules"

// RulesService persists the active organization rule set.
type RulesService struct {
	cache *cache.Cache
}

func NewRulesService(c context.Context) *RulesService {
	store := ctxPkg.GetKVClient(c)
	if store == nil {
		return &RulesService{}
	}

	return &RulesService{cache: cache.NewCache(store)}
}

// DefaultRules returns the configured baseline rule set.
func DefaultRules() *types.OrganizationRules {
	cfg := configs.GetConfig().Organizer

	return &types.OrganizationRules{
		OrganizeByDate:   cfg.DefaultOrganizeByDate,
		OrganizeByType:   cfg.DefaultOrganizeByType,
		OrganizeBySize:   cfg.DefaultOrganizeBySize,
		DetectDuplicates: true,
	}
}

// Get returns the stored rule set, falling back to the defaults when none
// has been saved yet.
func (s *RulesService) Get(ctx context.Context) (*types.OrganizationRules, error) {
	if s.cache == nil {
		return DefaultRules(), nil
	}

	rules, err := cache.Get[types.OrganizationRules](ctx, s.cache, rulesKey)
	if err != nil {
		return DefaultRules(), nil
	}

	return &rules, nil
}

// Set validates and stores a new rule set. Rules persist without a TTL.
func (s *RulesService) Set(ctx context.Context, rules *types.OrganizationRules) error {
	if err := rule.ValidateStruct(rules); err != nil {
		return fmt.Errorf("invalid rules: %w", err)
	}

	if s.cache == nil {
		return fmt.Errorf("kv not initialized")
	}

	return cache.Set(ctx, s.cache, rulesKey, *rules, 0)
}

// Reset drops the stored rule set, reverting to the defaults.
func (s *RulesService) Reset(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	return s.cache.Delete(ctx, rulesKey)
}
