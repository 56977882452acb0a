package queries_test

import (
	"context"
	"testing"

	"orderintegrity/internal/core/application/usecases/queries"
	"orderintegrity/internal/core/domain/model/kernel"
	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestNewGetInconsistentOrdersQuery(t *testing.T) {
	query, err := queries.NewGetInconsistentOrdersQuery(0)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, queries.DefaultInconsistentOrdersLimit, query.Limit())

	query, err = queries.NewGetInconsistentOrdersQuery(5)
	require.NoError(t, err)
	assert.Equal(t, 5, query.Limit())

	_, err = queries.NewGetInconsistentOrdersQuery(-1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewGetInconsistentOrdersQuery(queries.MaxInconsistentOrdersLimit + 1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestGetInconsistentOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.GetInconsistentOrdersQuery{}.Validate()
	assert.ErrorIs(t, err, queries.ErrGetInconsistentOrdersQueryIsNotConstructed)
}

type GetInconsistentOrdersQueryHandlerTestSuite struct {
	postgresSuite
	handler queries.GetInconsistentOrdersQueryHandler
}

func (suite *GetInconsistentOrdersQueryHandlerTestSuite) SetupSuite() {
	suite.postgresSuite.SetupSuite()
	suite.handler = queries.NewGetInconsistentOrdersQueryHandler(suite.db)
}

func (suite *GetInconsistentOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetInconsistentOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, _ := queries.NewGetInconsistentOrdersQuery(0)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetInconsistentOrdersQueryHandlerTestSuite) TestHandle_ReturnsOnlyUnassignedPairs() {
	consistent := kernel.NewUUID()
	blank := kernel.NewUUID()
	mismatched := kernel.NewUUID()
	unknown := kernel.NewUUID()

	suite.insertOrder(consistent.String(), "processing", "fraud")
	suite.insertOrder(blank.String(), "", "")
	suite.insertOrder(mismatched.String(), "processing", "complete")
	suite.insertOrder(unknown.String(), "complete", "shipped_partially")

	query, _ := queries.NewGetInconsistentOrdersQuery(0)
	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	byID := make(map[kernel.UUID]queries.GetInconsistentOrdersQueryResponse)
	for _, r := range result {
		byID[r.ID] = r
	}
	suite.Equal(order.Status("complete"), byID[mismatched].Status)
	suite.Equal(order.StateProcessing, byID[mismatched].State)
	suite.Equal(order.Status("shipped_partially"), byID[unknown].Status)
}

func (suite *GetInconsistentOrdersQueryHandlerTestSuite) TestHandle_RespectsLimitAndSortsByID() {
	for range 5 {
		suite.insertOrder(kernel.NewUUID().String(), "new", "complete")
	}

	query, _ := queries.NewGetInconsistentOrdersQuery(3)
	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	for i := range len(result) - 1 {
		suite.Less(result[i].ID.String(), result[i+1].ID.String())
	}
}

func (suite *GetInconsistentOrdersQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.insertOrder(kernel.NewUUID().String(), "new", "complete")
	query, _ := queries.NewGetInconsistentOrdersQuery(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetInconsistentOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetInconsistentOrdersQueryHandlerTestSuite))
}
