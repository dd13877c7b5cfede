package telegram

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"autonomous-task-extraction/internal/extraction"
	"autonomous-task-extraction/internal/model"
	pkgResponse "autonomous-task-extraction/pkg/response"
	pkgTelegram "autonomous-task-extraction/pkg/telegram"
)

const (
	commandStart = "/start"
	commandHelp  = "/help"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and replies from a background goroutine.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := *update.Message
	// Keep the request id for logging but outlive the HTTP request.
	bgCtx := context.WithoutCancel(ctx)
	h.spawn(func() {
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage failed: %v", err)
		}
	})

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) processMessage(ctx context.Context, msg pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Body())
	if text == "" {
		return nil
	}

	switch command(text) {
	case commandStart:
		return h.reply(ctx, msg, startMessage)
	case commandHelp:
		return h.reply(ctx, msg, helpMessage)
	}

	output, err := h.uc.Extract(ctx, extraction.ExtractInput{
		Input: model.RawInput{
			Text:       msg.Body(),
			Origin:     model.OriginChat,
			ReceivedAt: msg.SentAt().In(h.cfg.Location),
		},
	})
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: uc.Extract failed: %v", err)
		return h.reply(ctx, msg, errorMessage(err))
	}

	tasks := h.filter(output.Tasks)
	h.l.Infof(ctx, "telegram handler: chat=%d candidates=%d replied=%d", msg.Chat.ID, len(output.Tasks), len(tasks))
	if len(tasks) == 0 {
		return h.reply(ctx, msg, noTasksMessage)
	}
	return h.reply(ctx, msg, formatTasks(tasks, h.cfg.Location))
}

func (h *handler) filter(tasks []model.ExtractedTask) []model.ExtractedTask {
	var out []model.ExtractedTask
	for _, t := range tasks {
		if t.OverallConfidence < h.cfg.MinConfidence {
			continue
		}
		out = append(out, t)
		if h.cfg.MaxResults > 0 && len(out) == h.cfg.MaxResults {
			break
		}
	}
	return out
}

func (h *handler) reply(ctx context.Context, msg pkgTelegram.Message, text string) error {
	return h.bot.SendMessageRequest(ctx, pkgTelegram.SendMessageRequest{
		ChatID:           msg.Chat.ID,
		Text:             text,
		ParseMode:        pkgTelegram.ParseModeMarkdown,
		ReplyToMessageID: msg.MessageID,
	})
}

// command returns the bot command of text without any @botname suffix, or "".
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(strings.Fields(text)[0], "@")
	return cmd
}
