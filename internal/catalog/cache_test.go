package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/m3rciful/barbot/internal/catalog"
	"github.com/m3rciful/barbot/internal/catalog/mocks"
)

type CacheSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	rdb    *redis.Client
	ctrl   *gomock.Controller
	inner  *mocks.MockCatalog
	cached *catalog.Cached
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheSuite))
}

func (s *CacheSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	s.rdb = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.ctrl = gomock.NewController(s.T())
	s.inner = mocks.NewMockCatalog(s.ctrl)
	s.cached = catalog.NewCached(s.inner, s.rdb, catalog.CacheOptions{Prefix: "test:", TTL: time.Minute})
}

func (s *CacheSuite) TearDownTest() {
	s.Require().NoError(s.rdb.Close())
}

func (s *CacheSuite) TestListIsServedFromCacheOnSecondCall() {
	ctx := context.Background()
	s.inner.EXPECT().ListIngredientNames(gomock.Any()).Return([]string{"Gin", "Rum"}, nil).Times(1)

	first, err := s.cached.ListIngredientNames(ctx)
	s.Require().NoError(err)
	second, err := s.cached.ListIngredientNames(ctx)
	s.Require().NoError(err)

	s.Equal(first, second)
	s.True(s.mr.Exists("test:catalog:ingredients"))
	s.Equal(time.Minute, s.mr.TTL("test:catalog:ingredients"))
}

func (s *CacheSuite) TestExpiredEntryIsReloaded() {
	ctx := context.Background()
	s.inner.EXPECT().ListCategoryNames(gomock.Any()).Return([]string{"Shot"}, nil).Times(2)

	_, err := s.cached.ListCategoryNames(ctx)
	s.Require().NoError(err)
	s.mr.FastForward(2 * time.Minute)
	_, err = s.cached.ListCategoryNames(ctx)
	s.Require().NoError(err)
}

func (s *CacheSuite) TestLetterKeyIsLowerCase() {
	ctx := context.Background()
	drinks := []catalog.Drink{{Name: "Mojito", Ingredients: []catalog.Portion{{Name: "Mint"}}}}
	s.inner.EXPECT().FindDrinksByFirstLetter(gomock.Any(), 'M').Return(drinks, nil)

	got, err := s.cached.FindDrinksByFirstLetter(ctx, 'M')
	s.Require().NoError(err)
	s.Equal(drinks, got)
	s.True(s.mr.Exists("test:catalog:letter:m"))

	got, err = s.cached.FindDrinksByFirstLetter(ctx, 'm')
	s.Require().NoError(err)
	s.Equal(drinks, got)
}

func (s *CacheSuite) TestEmptyAndFailedAnswersAreNotCached() {
	ctx := context.Background()
	boom := errors.New("boom")
	gomock.InOrder(
		s.inner.EXPECT().ListIngredientNames(gomock.Any()).Return(nil, boom),
		s.inner.EXPECT().ListIngredientNames(gomock.Any()).Return([]string{}, nil),
		s.inner.EXPECT().ListIngredientNames(gomock.Any()).Return([]string{"Gin"}, nil),
	)

	_, err := s.cached.ListIngredientNames(ctx)
	s.ErrorIs(err, boom)
	got, err := s.cached.ListIngredientNames(ctx)
	s.Require().NoError(err)
	s.Empty(got)
	s.False(s.mr.Exists("test:catalog:ingredients"))

	got, err = s.cached.ListIngredientNames(ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Gin"}, got)
}

func (s *CacheSuite) TestRedisOutageFallsBackToInner() {
	ctx := context.Background()
	s.mr.Close()
	s.inner.EXPECT().ListCategoryNames(gomock.Any()).Return([]string{"Cocktail"}, nil)

	got, err := s.cached.ListCategoryNames(ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Cocktail"}, got)
}

func (s *CacheSuite) TestUncachedQueriesPassThrough() {
	ctx := context.Background()
	s.inner.EXPECT().FindDrinksByName(gomock.Any(), "negroni").Return([]catalog.Drink{{Name: "Negroni"}}, nil).Times(2)

	for range 2 {
		got, err := s.cached.FindDrinksByName(ctx, "negroni")
		s.Require().NoError(err)
		s.Len(got, 1)
	}
}
