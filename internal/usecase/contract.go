package usecase

import (
	"context"
	"errors"
	"time"

	domainErrors "github.com/minhvn/sourcehub/internal/domain/errors"
	"github.com/minhvn/sourcehub/internal/domain/model"
	"github.com/minhvn/sourcehub/internal/domain/repository"
)

// MaterializeContract builds the contract record for an accepted quote: the
// supplier and price come from the quote, the shop, product and quantity from
// the RFQ, and the term is the fixed default starting now. It is a pure
// function of its inputs and performs no reads of its own, so the acceptance
// transaction fully determines the contract it produces.
func MaterializeContract(quote *model.Quote, rfq *model.RFQ, now time.Time) *model.Contract {
	return &model.Contract{
		SupplierID:  quote.SupplierID,
		ShopID:      rfq.ShopID,
		ProductID:   rfq.ProductID,
		AgreedPrice: quote.Price,
		Quantity:    rfq.Quantity,
		StartDate:   now,
		EndDate:     now.Add(model.DefaultContractTerm),
		Status:      model.ContractStatusActive,
	}
}

// ContractUseCase exposes read access to contracts.
type ContractUseCase struct {
	contracts repository.ContractRepository
}

// NewContractUseCase constructs ContractUseCase.
func NewContractUseCase(contracts repository.ContractRepository) *ContractUseCase {
	return &ContractUseCase{contracts: contracts}
}

// Get returns a contract if the actor is one of its parties.
func (u *ContractUseCase) Get(ctx context.Context, actor model.Actor, id int64) (*model.Contract, error) {
	contract, err := u.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !contractParty(contract, actor) {
		return nil, domainErrors.ErrForbidden
	}
	return contract, nil
}

// ListForActor returns the actor's contracts, newest first.
func (u *ContractUseCase) ListForActor(ctx context.Context, actor model.Actor) ([]model.Contract, error) {
	switch actor.Role {
	case model.RoleSupplier:
		return u.contracts.ListBySupplier(ctx, actor.ProfileID)
	case model.RoleShop:
		return u.contracts.ListByShop(ctx, actor.ProfileID)
	default:
		return nil, errors.New("unknown actor role")
	}
}

func contractParty(contract *model.Contract, actor model.Actor) bool {
	switch actor.Role {
	case model.RoleSupplier:
		return contract.SupplierID == actor.ProfileID
	case model.RoleShop:
		return contract.ShopID == actor.ProfileID
	default:
		return false
	}
}
