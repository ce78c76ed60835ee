package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adminhub/console-api/internal/api/metrics"
	"github.com/adminhub/console-api/internal/core/domain"
	"github.com/adminhub/console-api/internal/core/ports"
)

// MessageHandler serves the notification configuration and outbound
// email endpoints.
type MessageHandler struct {
	messageService ports.MessageService
}

func NewMessageHandler(messageService ports.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// GetConfig returns the notification settings document.
//
// @Summary      Fetch the notification configuration
// @Tags         messages
// @Produce      json
// @Success      200  {object}  domain.MessageSettings
// @Failure      404  {object}  map[string]string
// @Router       /config [get]
func (h *MessageHandler) GetConfig(c echo.Context) error {
	settings, err := h.messageService.Settings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateConfig applies a partial update to the notification settings.
//
// @Summary      Update the notification configuration
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body      domain.MessageSettingsUpdate  true  "Sections to update"
// @Success      200   {object}  domain.MessageSettings
// @Failure      404   {object}  map[string]string
// @Router       /config [put]
func (h *MessageHandler) UpdateConfig(c echo.Context) error {
	var update domain.MessageSettingsUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	settings, err := h.messageService.UpdateSettings(c.Request().Context(), &update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// TestEmail sends a probe email and persists the outcome in smtp.active.
//
// @Summary      Test SMTP connectivity
// @Tags         messages
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /test-email [post]
func (h *MessageHandler) TestEmail(c echo.Context) error {
	if err := h.messageService.TestConnection(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError,
			"failed to send test email, SMTP status set to inactive: "+err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Test email sent successfully. SMTP status set to active.",
	})
}

// SendEmail delivers a composed email with optional file attachments.
// The request is multipart form data: subject, body, to_emails
// (repeatable) and files.
//
// @Summary      Send an email
// @Tags         messages
// @Accept       multipart/form-data
// @Produce      json
// @Param        subject    formData  string  true   "Subject line"
// @Param        body       formData  string  true   "Plain-text body"
// @Param        to_emails  formData  string  true   "Recipient address (repeatable)"
// @Param        files      formData  file    false  "Attachments"
// @Success      200  {object}  map[string]string
// @Router       /send-email [post]
func (h *MessageHandler) SendEmail(c echo.Context) error {
	subject := c.FormValue("subject")
	body := c.FormValue("body")
	if subject == "" || body == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "subject and body are required")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	recipients := form.Value["to_emails"]
	if len(recipients) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one recipient is required")
	}

	var attachments []domain.Attachment
	for _, fh := range form.File["files"] {
		f, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable attachment "+fh.Filename)
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable attachment "+fh.Filename)
		}
		attachments = append(attachments, domain.Attachment{Filename: fh.Filename, Content: content})
	}

	email := domain.OutboundEmail{
		Subject:     subject,
		Body:        body,
		Recipients:  recipients,
		Attachments: attachments,
	}
	if err := h.messageService.Send(c.Request().Context(), email); err != nil {
		metrics.EmailsSentTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.EmailsSentTotal.WithLabelValues("sent").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "Email sent and saved successfully"})
}
