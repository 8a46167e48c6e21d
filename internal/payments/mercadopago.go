package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/Pastormerlo/pilates-sistema/internal/models"
)

// LinkBuilder arma links de checkout de Mercado Pago para pagos
// pendientes. Con token vacío el builder es nil y los pagos se
// registran sin link.
type LinkBuilder struct {
	client preference.Client
}

func NewLinkBuilder(accessToken string) (*LinkBuilder, error) {
	if accessToken == "" {
		return nil, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &LinkBuilder{client: preference.NewClient(cfg)}, nil
}

func (b *LinkBuilder) CheckoutLink(
	ctx context.Context,
	studio *models.Studio,
	p *models.Payment,
) (string, error) {

	req := preference.Request{
		ExternalReference: fmt.Sprintf("pago-%d", p.ID),
		Items: []preference.ItemRequest{
			{
				Title:     fmt.Sprintf("%s - %s", studio.Name, p.Concept),
				Quantity:  1,
				UnitPrice: p.Amount,
			},
		},
	}

	pref, err := b.client.Create(ctx, req)
	if err != nil {
		return "", err
	}

	return pref.InitPoint, nil
}
