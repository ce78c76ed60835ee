package domain

// SMTPSettings holds outbound email configuration.
type SMTPSettings struct {
	Active      bool   `json:"active" bson:"active"`
	Server      string `json:"server" bson:"server"`
	Port        int    `json:"port" bson:"port"`
	User        string `json:"user" bson:"user"`
	Password    string `json:"password" bson:"password"`
	SystemEmail string `json:"system_email" bson:"system_email"`
}

// WhatsappSettings holds the Twilio-style WhatsApp sender configuration.
type WhatsappSettings struct {
	Active     bool   `json:"active" bson:"active"`
	AccountSID string `json:"account_sid" bson:"account_sid"`
	AuthToken  string `json:"auth_token" bson:"auth_token"`
	FromNumber string `json:"from_number" bson:"from_number"`
}

// SMSSettings holds the SMS provider configuration.
type SMSSettings struct {
	Active     bool   `json:"active" bson:"active"`
	Provider   string `json:"provider" bson:"provider"`
	APIKey     string `json:"api_key" bson:"api_key"`
	FromNumber string `json:"from_number" bson:"from_number"`
}

// MessageSettings is the single notification-channel configuration
// document, stored at a fixed id in the settings collection.
type MessageSettings struct {
	SMTP     SMTPSettings     `json:"smtp" bson:"smtp"`
	Whatsapp WhatsappSettings `json:"whatsapp" bson:"whatsapp"`
	SMS      SMSSettings      `json:"sms" bson:"sms"`
}

// MessageSettingsUpdate is a partial update of MessageSettings; nil
// sections are left untouched.
type MessageSettingsUpdate struct {
	SMTP     *SMTPSettings     `json:"smtp,omitempty"`
	Whatsapp *WhatsappSettings `json:"whatsapp,omitempty"`
	SMS      *SMSSettings      `json:"sms,omitempty"`
}

// OutboundEmail is a composed message handed to the mail dispatcher.
type OutboundEmail struct {
	Subject     string
	Body        string
	Recipients  []string
	Attachments []Attachment
}

// Attachment is an in-memory file attached to an outbound email.
type Attachment struct {
	Filename string
	Content  []byte
}
