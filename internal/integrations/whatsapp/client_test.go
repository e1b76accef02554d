package whatsapp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"

	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
	"github.com/m04kA/SMC-MotoAgenda/pkg/logger"
)

type fakeMessenger struct {
	connected bool
	isIn      bool
	checkErr  error

	checked []string
	sentTo  types.JID
	sent    string
}

func (f *fakeMessenger) IsConnected() bool {
	return f.connected
}

func (f *fakeMessenger) IsOnWhatsApp(_ context.Context, phones []string) ([]types.IsOnWhatsAppResponse, error) {
	f.checked = phones
	if f.checkErr != nil {
		return nil, f.checkErr
	}
	return []types.IsOnWhatsAppResponse{{
		Query: phones[0],
		JID:   types.NewJID(phones[0][1:], types.DefaultUserServer),
		IsIn:  f.isIn,
	}}, nil
}

func (f *fakeMessenger) SendMessage(_ context.Context, to types.JID, message *waE2E.Message, _ ...whatsmeow.SendRequestExtra) (whatsmeow.SendResponse, error) {
	f.sentTo = to
	f.sent = message.GetConversation()
	return whatsmeow.SendResponse{ID: "3EB0TEST"}, nil
}

func TestNotifyPickup_Sends(t *testing.T) {
	fake := &fakeMessenger{connected: true, isIn: true}
	c := &Client{messenger: fake, log: logger.Nop()}

	err := c.NotifyPickup(context.Background(), &domain.Appointment{
		CustomerName: "João Silva",
		Phone:        "(79) 99999-0000",
		PickupTime:   "09:00",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"+5579999990000"}, fake.checked)
	assert.Equal(t, "5579999990000", fake.sentTo.User)
	assert.Contains(t, fake.sent, "Olá, João!")
}

func TestSendText_Errors(t *testing.T) {
	ctx := context.Background()

	c := &Client{messenger: &fakeMessenger{connected: false}, log: logger.Nop()}
	assert.ErrorIs(t, c.SendText(ctx, "79999990000", "oi"), ErrNotConnected)

	c = &Client{messenger: &fakeMessenger{connected: true}, log: logger.Nop()}
	assert.ErrorIs(t, c.SendText(ctx, "---", "oi"), ErrInvalidPhone)
	assert.ErrorIs(t, c.SendText(ctx, "79999990000", "oi"), ErrNotOnWhatsApp)

	c = &Client{messenger: &fakeMessenger{connected: true, checkErr: errors.New("timeout")}, log: logger.Nop()}
	assert.ErrorIs(t, c.SendText(ctx, "79999990000", "oi"), ErrInternal)
}

func TestClient_HandleEventIgnoresUnknown(t *testing.T) {
	c := &Client{log: logger.Nop()}

	assert.NotPanics(t, func() {
		c.handleEvent(&events.Connected{})
		c.handleEvent(&events.Disconnected{})
		c.handleEvent(&events.LoggedOut{Reason: events.ConnectFailureLoggedOut})
		c.handleEvent("something else")
	})
}
