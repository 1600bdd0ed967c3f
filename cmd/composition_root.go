package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	httpin "orderbot/internal/adapters/in/http"
	"orderbot/internal/adapters/out/moltin"
	"orderbot/internal/adapters/out/postgres"
	"orderbot/internal/adapters/out/telegram"
	"orderbot/internal/adapters/out/yandex"
	"orderbot/internal/core/application/ordering"
	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/application/usecases/queries"
	"orderbot/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot owns the adapters and builds handlers on top of them.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	commerce  *moltin.Client
	geocoder  *yandex.Geocoder
	messenger *telegram.Client
	checkout  *ordering.CheckoutOrchestrator
}

func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	httpClient := &http.Client{Timeout: cfg.CollaboratorTimeout}

	commerce, err := moltin.NewClient(ctx, moltin.Config{
		BaseURL:       cfg.CommerceBaseURL,
		TokenURL:      cfg.CommerceTokenURL,
		ClientID:      cfg.CommerceClientID,
		ClientSecret:  cfg.CommerceClientSecret,
		Currency:      cfg.CommerceCurrency,
		PointsFlow:    cfg.CommercePointsFlow,
		CustomersFlow: cfg.CommerceCustomersFlow,
	}, httpClient)
	if err != nil {
		return CompositionRoot{}, err
	}

	geocoder, err := yandex.NewGeocoder(cfg.GeocoderURL, cfg.GeocoderAPIKey, httpClient)
	if err != nil {
		return CompositionRoot{}, err
	}

	messenger, err := telegram.NewClient(telegram.Config{
		APIURL:        cfg.MessengerAPIURL,
		Token:         cfg.MessengerToken,
		ProviderToken: cfg.PaymentProviderToken,
		RatePerSecond: cfg.MessengerRateLimit,
		Burst:         cfg.MessengerBurst,
	}, httpClient)
	if err != nil {
		return CompositionRoot{}, err
	}

	checkout, err := ordering.NewCheckoutOrchestrator(ordering.CheckoutSettings{
		InvoicePayload: cfg.PaymentPayload,
		Currency:       cfg.PaymentCurrency,
		ReminderDelay:  cfg.ReminderDelay,
	}, nil)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		commerce:   commerce,
		geocoder:   geocoder,
		messenger:  messenger,
		checkout:   checkout,
	}, nil
}

func (c *CompositionRoot) CreateHandleEventCommandHandler() commands.HandleEventCommandHandler {
	var f commands.DialogUoWFactory = FuncDialogUoWFactory(func() commands.DialogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewHandleEventCommandHandler(f, commands.DialogDependencies{
		Catalog:   c.commerce,
		Resolver:  ordering.NewFulfillmentResolver(c.geocoder, c.commerce, c.logger),
		Carts:     ordering.NewCartAggregator(c.commerce),
		Checkout:  c.checkout,
		Messenger: c.messenger,
	}, c.cfg.CollaboratorTimeout, c.logger)
}

func (c *CompositionRoot) CreateAnswerPreCheckoutCommandHandler() commands.AnswerPreCheckoutCommandHandler {
	return commands.NewAnswerPreCheckoutCommandHandler(c.checkout, c.messenger, c.logger)
}

func (c *CompositionRoot) CreateCompletePaymentCommandHandler() commands.CompletePaymentCommandHandler {
	return commands.NewCompletePaymentCommandHandler(c.checkout, c.messenger)
}

func (c *CompositionRoot) CreateSendDueRemindersCommandHandler() commands.SendDueRemindersCommandHandler {
	var f commands.ReminderUoWFactory = FuncReminderUoWFactory(func() commands.ReminderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendDueRemindersCommandHandler(f, c.messenger, nil, c.logger)
}

func (c *CompositionRoot) CreateGetSessionQueryHandler() queries.GetSessionQueryHandler {
	return queries.NewGetSessionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	eventHandler := c.CreateHandleEventCommandHandler()
	preCheckoutHandler := c.CreateAnswerPreCheckoutCommandHandler()
	paymentHandler := c.CreateCompletePaymentCommandHandler()

	return httpin.NewServer(
		&eventHandler,
		&preCheckoutHandler,
		&paymentHandler,
		c.CreateGetSessionQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	reminderHandler := c.CreateSendDueRemindersCommandHandler()
	reminderJob := jobs.NewReminderJob(
		&reminderHandler,
		c.cfg.ReminderSchedule,
		c.cfg.ReminderBatch,
		time.Minute,
		c.logger,
	)
	return jobs.NewJobManager(reminderJob)
}

type FuncDialogUoWFactory func() commands.DialogUoW

func (f FuncDialogUoWFactory) Create() commands.DialogUoW {
	return f()
}

type FuncReminderUoWFactory func() commands.ReminderUoW

func (f FuncReminderUoWFactory) Create() commands.ReminderUoW {
	return f()
}
