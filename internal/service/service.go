package service

import (
	"github.com/mwhite7112/woodpantry-drinks/internal/cocktaildb"
	"github.com/mwhite7112/woodpantry-drinks/internal/db"
)

// Service holds all dependencies for the drink service layer: the account
// store, the upstream recipe source, the lookup cache and the working list.
type Service struct {
	q         db.Querier
	source    cocktaildb.Source
	cache     *drinkCache
	refs      *referenceSets
	list      *drinkList
	threshold float64
}

// New creates a new Service. threshold is the minimum similarity for a
// "did you mean" suggestion when a removal misses.
func New(q db.Querier, source cocktaildb.Source, threshold float64) *Service {
	return &Service{
		q:         q,
		source:    source,
		cache:     newDrinkCache(),
		refs:      &referenceSets{},
		list:      &drinkList{},
		threshold: threshold,
	}
}
