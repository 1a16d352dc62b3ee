package tg

import (
	"context"
	"time"

	"go.uber.org/zap"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/logger"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/assistant"
)

const (
	defaultUpdateOffset = 0
	timeoutSeconds      = 35
)

type tokenGetter interface {
	Token() string
}

type Client struct {
	client *tgbotapi.BotAPI
}

func New(tokenGetter tokenGetter) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(tokenGetter.Token())
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	return &Client{client}, nil
}

func (c *Client) SendMessage(text string, chatID int64) error {
	_, err := c.client.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}

// ListenUpdates routes every incoming message through the assistant.
// The assistant never fails to produce text, so the only errors here
// are transport and storage ones.
func (c *Client) ListenUpdates(ctx context.Context, svc *assistant.Service) {
	u := tgbotapi.NewUpdate(defaultUpdateOffset)
	u.Timeout = 60

	updates := c.client.GetUpdatesChan(u)

	logger.Info("Start listening for messages")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop listening for messages")
			return
		case update := <-updates:
			c.listenOnce(ctx, update, svc)
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, update tgbotapi.Update, svc *assistant.Service) {
	if update.Message == nil {
		return
	}
	logger.Info("incoming message", zap.String("user", update.Message.From.UserName))

	ctx, cancel := context.WithTimeout(ctx, time.Second*timeoutSeconds)
	defer cancel()

	reply, err := svc.HandleMessage(ctx, update.Message.Text)
	if err != nil {
		logger.Error("error processing message", zap.Error(err))
	}
	if reply.Text == "" {
		return
	}
	if err := c.SendMessage(reply.Text, update.Message.Chat.ID); err != nil {
		logger.Error("error sending reply", zap.Error(err))
	}
}
