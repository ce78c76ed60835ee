package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adminhub/console-api/internal/core/ports"
	"github.com/adminhub/console-api/internal/infrastructure/openai"
)

// ChatHandler proxies questions to the chat-completion API.
type ChatHandler struct {
	chatService ports.ChatService
}

func NewChatHandler(chatService ports.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat forwards a question to the configured model.
//
// @Summary      Chat with the model
// @Tags         chat
// @Produce      json
// @Param        question  query     string  true  "Question to ask"
// @Param        model     query     string  true  "Model name"  Enums(gpt-3.5-turbo, gpt-4)
// @Success      200       {object}  map[string]string
// @Failure      400       {object}  map[string]string
// @Router       /chat [get]
func (h *ChatHandler) Chat(c echo.Context) error {
	question := c.QueryParam("question")
	if question == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "question is required")
	}

	model := c.QueryParam("model")
	if !openai.AllowedModel(model) {
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported model")
	}

	answer, err := h.chatService.Ask(c.Request().Context(), question, model)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": answer})
}
