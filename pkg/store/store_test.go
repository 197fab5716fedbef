package store_test

import (
	"github.com/google/uuid"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/store"
)

func (suite *TestSuiteStandard) TestOwnersUnlinked() {
	owners, err := suite.store.Owners(suite.ctx, suite.owners.Owner)
	suite.Require().Nil(err)
	suite.Assert().Equal(suite.owners.Owner, owners.Owner)
	suite.Assert().Nil(owners.Linked)
	suite.Assert().Equal([]uuid.UUID{suite.owners.Owner}, owners.IDs())
}

func (suite *TestSuiteStandard) TestOwnersLinked() {
	partner := uuid.New()

	_, err := suite.store.SetLinkedOwner(suite.ctx, suite.owners.Owner, &partner)
	suite.Require().Nil(err)

	owners, err := suite.store.Owners(suite.ctx, suite.owners.Owner)
	suite.Require().Nil(err)
	suite.Require().NotNil(owners.Linked)
	suite.Assert().Equal(partner, *owners.Linked)
	suite.Assert().ElementsMatch([]uuid.UUID{suite.owners.Owner, partner}, owners.IDs())

	// Removing the link
	profile, err := suite.store.SetLinkedOwner(suite.ctx, suite.owners.Owner, nil)
	suite.Require().Nil(err)
	suite.Assert().Nil(profile.LinkedOwnerID)

	owners, err = suite.store.Owners(suite.ctx, suite.owners.Owner)
	suite.Require().Nil(err)
	suite.Assert().Nil(owners.Linked)
}

func (suite *TestSuiteStandard) TestOwnersLinkedToSelf() {
	_, err := suite.store.SetLinkedOwner(suite.ctx, suite.owners.Owner, &suite.owners.Owner)
	suite.Assert().ErrorIs(err, models.ErrProfileLinkedToSelf)
}

func (suite *TestSuiteStandard) TestLinkedOwnerReadOnly() {
	partner := store.Owners{Owner: uuid.New()}
	partnerAccount := suite.createTestAccount(partner, models.Account{Name: "Partner's"})
	suite.createTestAccount(suite.owners, models.Account{Name: "Mine"})

	// Without a link, the partner's account is not visible
	_, err := suite.store.GetAccount(suite.ctx, suite.owners, partnerAccount.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	linked := store.Owners{Owner: suite.owners.Owner, Linked: &partner.Owner}
	accounts, err := suite.store.ListAccounts(suite.ctx, linked)
	suite.Require().Nil(err)
	suite.Assert().Len(accounts, 2)

	account, err := suite.store.GetAccount(suite.ctx, linked, partnerAccount.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("Partner's", account.Name)

	// Linked resources cannot be changed
	name := "Taken over"
	_, err = suite.store.UpdateAccount(suite.ctx, linked, partnerAccount.ID, store.AccountUpdate{Name: &name})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = suite.store.DeleteAccount(suite.ctx, linked, partnerAccount.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestEmptyListsAreNotNil() {
	accounts, err := suite.store.ListAccounts(suite.ctx, suite.owners)
	suite.Require().Nil(err)
	suite.Assert().NotNil(accounts)
	suite.Assert().Len(accounts, 0)
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	_, err := suite.store.ListAccounts(suite.ctx, suite.owners)
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = suite.store.Load(suite.ctx, suite.owners)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestTransactionRollback() {
	var created models.Account

	err := suite.store.Transaction(suite.ctx, func(s *store.Store) error {
		var err error
		created, err = s.CreateAccount(suite.ctx, suite.owners, models.Account{Name: "Rolled back"})
		suite.Require().Nil(err)

		// Fails validation
		_, err = s.CreateCategory(suite.ctx, suite.owners, models.Category{})
		return err
	})
	suite.Require().ErrorIs(err, models.ErrNameEmpty)

	_, err = suite.store.GetAccount(suite.ctx, suite.owners, created.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
