package services

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/you/marketsvc/domain"
)

// Field weights mirror the title-over-description ranking of the catalog
// search: a title hit always outranks a description-only hit.
const (
	titleWeight       = 1.0
	descriptionWeight = 0.4
)

// SearchServiceImpl implements domain.SearchService with weighted
// term-frequency ranking over product title and description.
type SearchServiceImpl struct {
	products domain.ProductRepository
}

// NewSearchService creates a new product search service
func NewSearchService(products domain.ProductRepository) domain.SearchService {
	return &SearchServiceImpl{products: products}
}

// Search implements domain.SearchService. A blank query means no search was
// performed and the unfiltered catalog is returned. Results are ordered by
// descending relevance score, ties broken by ascending product id.
func (s *SearchServiceImpl) Search(ctx context.Context, text string) ([]domain.Product, error) {
	terms := Tokenize(text)
	if len(terms) == 0 {
		return s.products.List(ctx, "", 0, 0)
	}

	candidates, err := s.products.FindMatching(ctx, terms)
	if err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(candidates))
	for _, product := range candidates {
		score := scoreProduct(&product, terms)
		if score > 0 {
			results = append(results, domain.SearchResult{Product: product, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Product.ID < results[j].Product.ID
	})

	products := make([]domain.Product, 0, len(results))
	for _, result := range results {
		products = append(products, result.Product)
	}
	return products, nil
}

// scoreProduct sums per-term match frequency scaled by field weight
func scoreProduct(product *domain.Product, terms []string) float64 {
	titleTokens := Tokenize(product.Title)
	descriptionTokens := Tokenize(product.Description)

	var score float64
	for _, term := range terms {
		score += float64(countToken(titleTokens, term)) * titleWeight
		score += float64(countToken(descriptionTokens, term)) * descriptionWeight
	}
	return score
}

func countToken(tokens []string, term string) int {
	count := 0
	for _, token := range tokens {
		if token == term {
			count++
		}
	}
	return count
}

// Tokenize lowercases text and splits it into alphanumeric terms
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
