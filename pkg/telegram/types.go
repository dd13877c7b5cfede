package telegram

import "time"

// Update is an incoming webhook update. Only messages are consumed.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message,omitempty"`
}

// Message is a chat message, possibly forwarded from another chat.
type Message struct {
	MessageID   int64  `json:"message_id"`
	From        *User  `json:"from,omitempty"`
	Chat        *Chat  `json:"chat"`
	Date        int64  `json:"date"`
	ForwardDate int64  `json:"forward_date,omitempty"`
	Text        string `json:"text,omitempty"`
	Caption     string `json:"caption,omitempty"`
}

// SentAt returns when the message was originally written: the forward date
// for forwarded messages, the message date otherwise.
func (m Message) SentAt() time.Time {
	if m.ForwardDate > 0 {
		return time.Unix(m.ForwardDate, 0)
	}
	return time.Unix(m.Date, 0)
}

// Body returns the text of the message or, for media, its caption.
func (m Message) Body() string {
	if m.Text != "" {
		return m.Text
	}
	return m.Caption
}

type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	Username  string `json:"username,omitempty"`
}

type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// SendMessageRequest is the payload for the sendMessage method.
type SendMessageRequest struct {
	ChatID           int64  `json:"chat_id"`
	Text             string `json:"text"`
	ParseMode        string `json:"parse_mode,omitempty"`
	ReplyToMessageID int64  `json:"reply_to_message_id,omitempty"`
}

// APIResponse is the Bot API response envelope.
type APIResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}
