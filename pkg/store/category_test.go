package store_test

import (
	"github.com/google/uuid"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/store"
)

func (suite *TestSuiteStandard) TestCategoryNameUniqueIgnoringCase() {
	groceries, err := suite.store.CreateCategory(suite.ctx, suite.owners, models.Category{Name: "Groceries"})
	suite.Require().Nil(err)

	_, err = suite.store.CreateCategory(suite.ctx, suite.owners, models.Category{Name: " groceries "})
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)

	rent, err := suite.store.CreateCategory(suite.ctx, suite.owners, models.Category{Name: "Rent"})
	suite.Require().Nil(err)

	// Renaming to the name of another category
	_, err = suite.store.UpdateCategory(suite.ctx, suite.owners, rent.ID, store.CategoryUpdate{Name: ptr("GROCERIES")})
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)

	// Renaming a category to a different case of its own name
	renamed, err := suite.store.UpdateCategory(suite.ctx, suite.owners, groceries.ID, store.CategoryUpdate{Name: ptr("GROCERIES")})
	suite.Require().Nil(err)
	suite.Assert().Equal("GROCERIES", renamed.Name)

	// Other owners can use the same name
	_, err = suite.store.CreateCategory(suite.ctx, store.Owners{Owner: uuid.New()}, models.Category{Name: "Groceries"})
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestCategoryDeleteInUse() {
	category, err := suite.store.CreateCategory(suite.ctx, suite.owners, models.Category{Name: "Fuel"})
	suite.Require().Nil(err)

	transaction := suite.createTestTransaction(suite.owners, models.Transaction{CategoryID: &category.ID})

	err = suite.store.DeleteCategory(suite.ctx, suite.owners, category.ID)
	suite.Assert().ErrorIs(err, models.ErrCategoryInUse)
	suite.Assert().ErrorIs(err, models.ErrConflict)

	// Removing the category from the transaction allows deletion
	_, err = suite.store.UpdateTransaction(suite.ctx, suite.owners, transaction.ID, store.TransactionUpdate{CategoryID: &uuid.Nil})
	suite.Require().Nil(err)

	err = suite.store.DeleteCategory(suite.ctx, suite.owners, category.ID)
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestThirdPartyNameUniqueIgnoringCase() {
	maria := suite.createTestThirdParty(suite.owners, "Maria")
	joao := suite.createTestThirdParty(suite.owners, "João")

	_, err := suite.store.CreateThirdParty(suite.ctx, suite.owners, models.ThirdParty{Name: "MARIA"})
	suite.Assert().ErrorIs(err, models.ErrThirdPartyNotUnique)

	_, err = suite.store.UpdateThirdParty(suite.ctx, suite.owners, joao.ID, store.ThirdPartyUpdate{Name: ptr("maria")})
	suite.Assert().ErrorIs(err, models.ErrThirdPartyNotUnique)

	_, err = suite.store.UpdateThirdParty(suite.ctx, suite.owners, maria.ID, store.ThirdPartyUpdate{Name: ptr("maria"), Relationship: ptr("sister")})
	suite.Assert().Nil(err)

	// Case folding applies to non-ASCII letters
	_, err = suite.store.CreateThirdParty(suite.ctx, suite.owners, models.ThirdParty{Name: "JOÃO"})
	suite.Assert().ErrorIs(err, models.ErrThirdPartyNotUnique)
}
