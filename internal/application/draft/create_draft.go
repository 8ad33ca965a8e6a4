package draft

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bizflow/backend/internal/domain/draft"
	"github.com/bizflow/backend/internal/domain/shared"
)

// CreateDraftOrderUseCase parses a free-form order message and stages it
// as a pending draft. Parsing gaps become missing fields and questions on
// the draft; nothing is validated against business rules yet.
type CreateDraftOrderUseCase struct {
	parser         Parser
	scope          TransactionScope
	eventPublisher shared.EventPublisher
}

// NewCreateDraftOrderUseCase creates a new CreateDraftOrderUseCase
func NewCreateDraftOrderUseCase(parser Parser, scope TransactionScope) *CreateDraftOrderUseCase {
	return &CreateDraftOrderUseCase{parser: parser, scope: scope}
}

// SetEventPublisher sets the publisher for domain events
func (uc *CreateDraftOrderUseCase) SetEventPublisher(publisher shared.EventPublisher) {
	uc.eventPublisher = publisher
}

// Execute stages the message
func (uc *CreateDraftOrderUseCase) Execute(ctx context.Context, input CreateDraftInput) (*DraftResult, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, shared.NewValidationError("Order text is required")
	}

	parsed, err := uc.parser.ParseOrderText(ctx, text)
	if err != nil {
		return nil, err
	}

	var (
		result *DraftResult
		events []shared.DomainEvent
	)
	err = uc.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		p := parsed.Parsed
		uc.resolveCustomer(ctx, repos, input.OwnerID, &p)
		uc.resolveItems(ctx, repos, input.OwnerID, &p)

		code, err := repos.Drafts().GenerateDraftCode(ctx, input.OwnerID, time.Now())
		if err != nil {
			return err
		}

		d, err := draft.NewDraftOrder(input.OwnerID, code, text, input.Source, p, parsed.Confidence)
		if err != nil {
			return err
		}
		d.CreatedBy = input.ActorID

		if err := repos.Drafts().Save(ctx, d); err != nil {
			return err
		}

		events = d.GetDomainEvents()
		d.ClearDomainEvents()
		result = NewDraftResult(d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publishEvents(ctx, events)
	return result, nil
}

// resolveCustomer tries to match the parsed customer against existing
// records: phone first, then best name match. Failure to match is fine,
// the draft just keeps the free-text name.
func (uc *CreateDraftOrderUseCase) resolveCustomer(ctx context.Context, repos TransactionalRepositories, ownerID uuid.UUID, p *draft.ParsedOrder) {
	if phone := strings.TrimSpace(p.CustomerPhone); phone != "" {
		if c, err := repos.Customers().FindByPhone(ctx, ownerID, phone); err == nil {
			p.CustomerID = &c.ID
			p.CustomerName = c.Name
			return
		}
	}
	if !p.HasCustomer() {
		return
	}
	if c, err := repos.Customers().FindBestByName(ctx, ownerID, p.CustomerName); err == nil {
		p.CustomerID = &c.ID
		p.CustomerName = c.Name
	}
}

// resolveItems resolves product names against the catalog and fills in
// missing prices from the base price. Unresolved names keep a nil product
// id; confirmation rejects them.
func (uc *CreateDraftOrderUseCase) resolveItems(ctx context.Context, repos TransactionalRepositories, ownerID uuid.UUID, p *draft.ParsedOrder) {
	for i := range p.Items {
		it := &p.Items[i]
		product, err := repos.Products().FindBestByName(ctx, ownerID, it.ProductName)
		if err != nil {
			continue
		}
		it.ProductID = &product.ID
		it.ProductName = product.Name
		if !it.UnitPrice.IsPositive() {
			it.UnitPrice = product.BasePrice
		}
	}
}

func (uc *CreateDraftOrderUseCase) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if uc.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = uc.eventPublisher.Publish(ctx, events...)
}
