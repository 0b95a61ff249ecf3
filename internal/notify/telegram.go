package notify

import (
	"fmt"

	"github.com/rvbarade2024-dev/tour/internal/config"
	"github.com/rvbarade2024-dev/tour/internal/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier отправляет служебные уведомления менеджерам.
type Notifier interface {
	BookingCreated(bookingID int, planTitle, customer string, seats int)
	PaymentConfirmed(bookingID int, customer string)
}

// TelegramNotifier шлет уведомления в Telegram настроенным менеджерам.
type TelegramNotifier struct {
	bot      *tgbotapi.BotAPI
	managers []int64
	log      *logger.Logger
}

// New создает уведомитель. При пустом токене возвращает no-op реализацию.
func New(cfg config.TelegramConfig, log *logger.Logger) (Notifier, error) {
	if cfg.BotToken == "" {
		log.Info("telegram-уведомления отключены: токен не задан")
		return NoopNotifier{}, nil
	}
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("не удалось инициализировать Telegram Bot API: %w", err)
	}
	return &TelegramNotifier{bot: bot, managers: cfg.Managers, log: log}, nil
}

func (n *TelegramNotifier) send(text string) {
	for _, chatID := range n.managers {
		msg := tgbotapi.NewMessage(chatID, text)
		if _, err := n.bot.Send(msg); err != nil {
			n.log.Warn("не удалось отправить уведомление", "chat_id", chatID, "error", err)
		}
	}
}

func (n *TelegramNotifier) BookingCreated(bookingID int, planTitle, customer string, seats int) {
	n.send(fmt.Sprintf("Новая бронь #%d: %q, клиент %s, мест: %d", bookingID, planTitle, customer, seats))
}

func (n *TelegramNotifier) PaymentConfirmed(bookingID int, customer string) {
	n.send(fmt.Sprintf("Оплата по брони #%d подтверждена (клиент %s)", bookingID, customer))
}

// NoopNotifier используется, когда Telegram не настроен.
type NoopNotifier struct{}

func (NoopNotifier) BookingCreated(int, string, string, int) {}

func (NoopNotifier) PaymentConfirmed(int, string) {}
