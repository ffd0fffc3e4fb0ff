package app

import (
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/Alijeyrad/portfolio_backend/config"
	"github.com/Alijeyrad/portfolio_backend/internal/service/contact"
	"github.com/Alijeyrad/portfolio_backend/pkg/email"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(ProvideContactService),
)

type ContactParams struct {
	fx.In

	Cfg     *config.Config
	Sender  email.Sender
	Deduper contact.Deduper
	NC      *nats.Conn `optional:"true"`
}

func ProvideContactService(p ContactParams) contact.Service {
	ec := email.FromCentralConfig(p.Cfg.Email)
	opts := contact.Options{
		From:           ec.Sender(),
		Timeout:        ec.Timeout(),
		IdempotencyTTL: time.Duration(p.Cfg.Contact.IdempotencyTTLSeconds) * time.Second,
		DefaultRegion:  p.Cfg.Contact.DefaultRegion,
		Deduper:        p.Deduper,
		Logger:         slog.Default().With("component", "contact"),
	}
	// A typed nil *nats.Conn must not end up inside the interface.
	if p.NC != nil {
		opts.Publisher = p.NC
	}
	return contact.New(p.Sender, opts)
}
