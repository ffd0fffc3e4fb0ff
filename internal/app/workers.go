package app

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/Alijeyrad/portfolio_backend/internal/service/contact"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc fx.Lifecycle
	NC *nats.Conn `optional:"true"`
}

func RegisterWorkers(p WorkerParams) {
	if p.NC == nil {
		return
	}

	var sub *nats.Subscription
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			sub, err = startDeliveryAuditWorker(p.NC, slog.Default())
			return err
		},
		OnStop: func(ctx context.Context) error {
			// Connection drain handled by ProvideNatsClient
			if sub != nil {
				return sub.Unsubscribe()
			}
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// delivery_audit_worker
// ---------------------------------------------------------------------------

func startDeliveryAuditWorker(nc *nats.Conn, log *slog.Logger) (*nats.Subscription, error) {
	sub, err := nc.Subscribe(contact.SubjectDelivered, func(msg *nats.Msg) {
		auditDelivery(log, msg.Data)
	})
	if err != nil {
		slog.Error("delivery_audit_worker: subscribe failed", "err", err)
		return nil, err
	}

	slog.Info("delivery_audit_worker: started", "subject", contact.SubjectDelivered)
	return sub, nil
}

func auditDelivery(log *slog.Logger, data []byte) {
	var ev contact.DeliveredEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		log.Warn("delivery_audit_worker: bad payload", "err", err)
		return
	}
	log.Info("contact delivered",
		"request_id", ev.RequestID,
		"provider", ev.Provider,
		"wants_reply", ev.WantsReply,
		"has_company", ev.HasCompany,
		"delivered_at", ev.DeliveredAt,
	)
	if !ev.ReceivedAt.IsZero() {
		log.Info("contact delivery latency", "request_id", ev.RequestID, "elapsed", ev.DeliveredAt.Sub(ev.ReceivedAt))
	}
}
