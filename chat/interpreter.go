package chat

import (
	"context"
	"errors"
	"log"
	"os"

	openai "github.com/sashabaranov/go-openai"
	"gorm.io/gorm"

	"github.com/quocthai179/my-succulent-store/models"
)

// ErrExternalService marks a failed turn against the language-model
// backend. Tool calls already executed in the same turn stay committed.
var ErrExternalService = errors.New("chat backend failure")

// Interpreter turns a free-text user message into cart mutations plus a
// reply. Implementations are stateless across turns; only the cart
// persists.
type Interpreter interface {
	Run(ctx context.Context, message string, cart *models.Cart) (string, error)
}

// NewInterpreter picks the chat strategy once at startup: the OpenAI
// tool-calling agent when an API key is configured, the deterministic
// parser otherwise. There is no per-request re-selection and no
// fallback after a failed backend call.
func NewInterpreter(db *gorm.DB) Interpreter {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("OPENAI_API_KEY not set, chat assistant runs in simple parser mode")
		return NewSimpleParser(db)
	}
	return NewAgent(db, openai.NewClient(apiKey))
}
