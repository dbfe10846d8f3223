package mail_fx

import (
	"context"

	"go.uber.org/fx"

	"polisure/internal/services"
	"polisure/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(provideMailService, provideNotifier, bindNotifier),
	fx.Invoke(registerNotifierLifecycle),
)

func provideMailService() (services.IMailService, error) {
	return services.NewSMTPMailService(services.SMTPConfigFromEnv())
}

func provideNotifier(mail services.IMailService, log *logger.Logger) *services.MailNotifier {
	return services.NewMailNotifier(mail, log)
}

func bindNotifier(notifier *services.MailNotifier) services.Notifier {
	return notifier
}

func registerNotifierLifecycle(lc fx.Lifecycle, notifier *services.MailNotifier) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			notifier.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			notifier.Stop()
			return nil
		},
	})
}
