package whatsapp

import (
	"context"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/skip2/go-qrcode"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"

	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// messenger часть *whatsmeow.Client, которой пользуется Client
type messenger interface {
	IsConnected() bool
	IsOnWhatsApp(ctx context.Context, phones []string) ([]types.IsOnWhatsAppResponse, error)
	SendMessage(ctx context.Context, to types.JID, message *waE2E.Message, extra ...whatsmeow.SendRequestExtra) (whatsmeow.SendResponse, error)
}

// Config настройки подключения к WhatsApp
type Config struct {
	DataDir string // Каталог с whatsmeow.db (сессия устройства)
}

// Client отправляет подтверждения записей через WhatsApp (whatsmeow)
type Client struct {
	wa        *whatsmeow.Client
	messenger messenger
	log       Logger
}

// NewClient открывает хранилище сессии и создает клиента. Подключение - Connect.
func NewClient(ctx context.Context, cfg Config, log Logger) (*Client, error) {
	container, err := sqlstore.New(ctx, "sqlite3", fmt.Sprintf("file:%s/whatsmeow.db?_foreign_keys=on", cfg.DataDir), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open session store: %v", ErrInternal, err)
	}

	deviceStore, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get device: %v", ErrInternal, err)
	}

	wa := whatsmeow.NewClient(deviceStore, nil)

	client := &Client{
		wa:        wa,
		messenger: wa,
		log:       log,
	}
	wa.AddEventHandler(client.handleEvent)

	return client, nil
}

// handleEvent логирует смену состояния соединения
func (c *Client) handleEvent(evt interface{}) {
	switch v := evt.(type) {
	case *events.Connected:
		c.log.Info("WhatsApp: connection established")
	case *events.Disconnected:
		c.log.Warn("WhatsApp: disconnected")
	case *events.LoggedOut:
		c.log.Error("WhatsApp: device logged out (reason=%s), link it again", v.Reason.String())
	}
}

// Connect подключается к WhatsApp. Если устройство еще не привязано,
// QR-код для привязки печатается в лог, ожидание сканирования идет в фоне.
func (c *Client) Connect(ctx context.Context) error {
	if c.wa.Store.ID != nil {
		if err := c.wa.Connect(); err != nil {
			return fmt.Errorf("%w: failed to connect: %v", ErrInternal, err)
		}
		c.log.Info("WhatsApp: connected as %s", c.wa.Store.ID.String())
		return nil
	}

	qrChan, err := c.wa.GetQRChannel(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to get qr channel: %v", ErrInternal, err)
	}

	if err := c.wa.Connect(); err != nil {
		return fmt.Errorf("%w: failed to connect: %v", ErrInternal, err)
	}

	go func() {
		for evt := range qrChan {
			if evt.Event != "code" {
				c.log.Info("WhatsApp: login event %s", evt.Event)
				continue
			}
			q, err := qrcode.New(evt.Code, qrcode.Medium)
			if err != nil {
				c.log.Warn("WhatsApp: scan this code to link the device: %s", evt.Code)
				continue
			}
			c.log.Info("WhatsApp: scan the QR code to link the device\n%s", q.ToSmallString(false))
		}
	}()

	return nil
}

// SendText отправляет текстовое сообщение на номер (нормализуется через NormalizePhone)
func (c *Client) SendText(ctx context.Context, phone, text string) error {
	if !c.messenger.IsConnected() {
		return ErrNotConnected
	}

	digits := NormalizePhone(phone)
	if digits == "" {
		return fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
	}

	// Отправляем на JID, который вернул сам WhatsApp
	resp, err := c.messenger.IsOnWhatsApp(ctx, []string{"+" + digits})
	if err != nil {
		return fmt.Errorf("%w: failed to verify number: %v", ErrInternal, err)
	}
	if len(resp) == 0 || !resp[0].IsIn {
		return fmt.Errorf("%w: %s", ErrNotOnWhatsApp, digits)
	}

	sent, err := c.messenger.SendMessage(ctx, resp[0].JID, &waE2E.Message{
		Conversation: &text,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to send message: %v", ErrInternal, err)
	}

	c.log.Info("WhatsApp: message %s sent to %s", sent.ID, resp[0].JID.String())
	return nil
}

// NotifyPickup отправляет клиенту подтверждение записи на выдачу
func (c *Client) NotifyPickup(ctx context.Context, appointment *domain.Appointment) error {
	return c.SendText(ctx, appointment.Phone, PickupMessage(appointment))
}

// Close отключается от WhatsApp
func (c *Client) Close() {
	c.wa.Disconnect()
}
