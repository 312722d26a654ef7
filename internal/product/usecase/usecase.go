package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/listing"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/product"
	"github.com/fekuna/omnipos-storefront/internal/product/dto"
	"github.com/fekuna/omnipos-storefront/pkg/cache"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/fekuna/omnipos-storefront/pkg/search"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	indexName   = "products"
	listPrefix  = "products:list"
	maxSearchID = 1000
)

const mapping = `{
	"mappings": {
		"properties": {
			"name": { "type": "text" },
			"description": { "type": "text" },
			"brand": { "type": "text" },
			"category": { "type": "keyword" },
			"price": { "type": "double" },
			"created_at": { "type": "date" }
		}
	}
}`

type productUseCase struct {
	repo     product.Repository
	pipeline *listing.Pipeline[model.Product]
	cache    cache.Store
	es       search.Index
	ttl      time.Duration
	logger   logger.ZapLogger
}

// NewProductUseCase wires the listing. cache and es may be nil.
func NewProductUseCase(repo product.Repository, pipeline *listing.Pipeline[model.Product], store cache.Store, es search.Index, ttl time.Duration, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:     repo,
		pipeline: pipeline,
		cache:    store,
		es:       es,
		ttl:      ttl,
		logger:   log,
	}
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.Wrap(product.ErrNotFound, id)
	}
	return p, nil
}

type listKey struct {
	Spec    listing.FilterSpec
	Page    int
	PerPage int
}

func (uc *productUseCase) ListProducts(ctx context.Context, spec listing.FilterSpec, pg listing.Pagination) (listing.Page[model.Product], error) {
	if err := uc.pipeline.Validate(spec); err != nil {
		return listing.Page[model.Product]{}, err
	}

	// 1. Generate Cache Key
	cacheKey, err := cache.Key(listPrefix, listKey{Spec: spec, Page: pg.Page(), PerPage: pg.PerPage()})
	if err != nil {
		uc.logger.Warn("failed to build listing cache key", zap.Error(err))
		cacheKey = ""
	}

	// 2. Cache, falling back to the full listing
	return cache.Remember(ctx, uc.cache, cacheKey, uc.ttl, uc.logCacheError, func() (listing.Page[model.Product], error) {
		return uc.list(ctx, spec, pg)
	})
}

func (uc *productUseCase) list(ctx context.Context, spec listing.FilterSpec, pg listing.Pagination) (listing.Page[model.Product], error) {
	// 3. Search via Elastic (if query present). The hits only narrow the
	// candidates; the query stage still decides the substring match.
	if strings.TrimSpace(spec.Query) != "" && uc.es != nil {
		ids, complete, err := uc.searchIDs(ctx, spec.Query)
		switch {
		case err != nil:
			uc.logger.Error("ES search failed, falling back to substring match", zap.Error(err))
		case !complete:
			uc.logger.Debug("ES hits truncated, skipping id narrowing", zap.Int("hits", len(ids)))
		default:
			spec.IDs = ids
		}
	}

	// 4. Candidates from the repository
	candidates, err := uc.repo.FindAll(ctx, dto.NewProductFilters(spec))
	if err != nil {
		return listing.Page[model.Product]{}, errors.Wrap(err, "find products")
	}

	// 5. Filter, sort, paginate
	return uc.pipeline.Run(candidates, spec, pg)
}

// searchIDs returns the ids of matching products. complete is false when the
// index matched more documents than one request returns.
func (uc *productUseCase) searchIDs(ctx context.Context, query string) (ids []string, complete bool, err error) {
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"query_string": map[string]interface{}{
				"query":  fmt.Sprintf("*%s*", strings.TrimSpace(query)),
				"fields": []string{"name^3", "brand^2", "description"},
			},
		},
		"_source": false,
		"size":    maxSearchID,
	}

	res, err := uc.es.Search(ctx, indexName, q)
	if err != nil {
		return nil, false, err
	}
	ids = make([]string, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, res.Hits.Total.Value <= len(ids), nil
}

func (uc *productUseCase) ListBrands(ctx context.Context) ([]string, error) {
	products, err := uc.repo.FindAll(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "find products")
	}
	seen := map[string]bool{}
	brands := []string{}
	for _, p := range products {
		if b, ok := p.BrandName(); ok && !seen[b] {
			seen[b] = true
			brands = append(brands, b)
		}
	}
	sort.Strings(brands)
	return brands, nil
}

func (uc *productUseCase) SetStock(ctx context.Context, id string, stock int) error {
	if err := uc.repo.UpdateStock(ctx, id, stock); err != nil {
		return err
	}

	// Invalidate Cache
	uc.invalidateListCache(ctx)

	// Sync to Elastic
	if uc.es != nil {
		p, err := uc.repo.FindByID(ctx, id)
		if err == nil && p != nil {
			go uc.syncToElastic(context.Background(), p)
		}
	}
	return nil
}

func (uc *productUseCase) Reindex(ctx context.Context) error {
	if uc.es == nil {
		return nil
	}
	_ = uc.es.CreateIndex(ctx, indexName, mapping)

	products, err := uc.repo.FindAll(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "find products")
	}
	for i := range products {
		if err := uc.es.Index(ctx, indexName, products[i].ID, &products[i]); err != nil {
			return errors.Wrapf(err, "index product %s", products[i].ID)
		}
	}
	uc.logger.Info("indexed products", zap.Int("count", len(products)))
	return nil
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if err := uc.es.Index(ctx, indexName, p.ID, p); err != nil {
		uc.logger.Error("failed to index product", zap.String("id", p.ID), zap.Error(err))
	}
}

func (uc *productUseCase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeletePattern(ctx, listPrefix+":*"); err != nil {
		uc.logger.Warn("failed to invalidate product listings", zap.Error(err))
	}
}

func (uc *productUseCase) logCacheError(err error) {
	uc.logger.Warn("listing cache unavailable", zap.Error(err))
}
