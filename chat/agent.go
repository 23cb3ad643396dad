package chat

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"gorm.io/gorm"

	"github.com/quocthai179/my-succulent-store/crud"
	"github.com/quocthai179/my-succulent-store/models"
)

const systemPrompt = "Bạn là trợ lý bán sen đá. Hãy giúp người dùng tìm sản phẩm, " +
	"thêm/xóa/cập nhật giỏ hàng và tóm tắt đơn hàng. Trả lời bằng tiếng Việt, " +
	"gợi ý xác nhận trước khi chốt đơn."

// Cap on planner round-trips within a single turn.
const maxToolRounds = 8

// Agent is the tool-calling chat strategy. The planner decides which of
// the six cart operations to invoke; each call executes immediately
// against the live cart, so later calls in the same turn see the
// effects of earlier ones.
type Agent struct {
	db     *gorm.DB
	client *openai.Client
	model  string
}

func NewAgent(db *gorm.DB, client *openai.Client) *Agent {
	return &Agent{db: db, client: client, model: openai.GPT4oMini}
}

func (a *Agent) Run(ctx context.Context, message string, cart *models.Cart) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: message},
	}
	for round := 0; round < maxToolRounds; round++ {
		resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       a.model,
			Temperature: 0.2,
			Messages:    messages,
			Tools:       toolDefinitions(),
		})
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrExternalService, err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("%w: empty completion", ErrExternalService)
		}
		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			return msg.Content, nil
		}
		messages = append(messages, msg)
		for _, call := range msg.ToolCalls {
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				ToolCallID: call.ID,
				Content:    a.dispatch(call, cart),
			})
		}
	}
	return "", fmt.Errorf("%w: tool loop did not settle after %d rounds", ErrExternalService, maxToolRounds)
}

type toolArgs struct {
	Query     string `json:"query"`
	ProductID uint   `json:"product_id"`
	ItemID    uint   `json:"item_id"`
	Quantity  int    `json:"quantity"`
}

// dispatch executes one requested tool call. Failures are reported back
// to the planner as the tool result text; it may retry or explain.
func (a *Agent) dispatch(call openai.ToolCall, cart *models.Cart) string {
	var args toolArgs
	if call.Function.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return "error: " + err.Error()
		}
	}
	switch call.Function.Name {
	case "find_products":
		products, err := crud.FindProducts(a.db, args.Query)
		if err != nil {
			return "error: " + err.Error()
		}
		found := make([]productSummary, 0, len(products))
		for _, product := range products {
			found = append(found, productSummary{
				ID:       product.ID,
				Name:     product.Name,
				Category: product.Category,
				Price:    product.Price.String(),
			})
		}
		payload, _ := json.Marshal(found)
		return string(payload)
	case "add_to_cart":
		fresh, err := crud.AddToCart(a.db, cart, args.ProductID, args.Quantity)
		if err != nil {
			return "error: " + err.Error()
		}
		*cart = *fresh
		return renderCart(cart)
	case "update_cart_item":
		if _, err := crud.UpdateCartItem(a.db, args.ItemID, args.Quantity); err != nil {
			return "error: " + err.Error()
		}
		if err := a.refresh(cart); err != nil {
			return "error: " + err.Error()
		}
		return renderCart(cart)
	case "remove_cart_item":
		if _, err := crud.RemoveCartItem(a.db, args.ItemID); err != nil {
			return "error: " + err.Error()
		}
		if err := a.refresh(cart); err != nil {
			return "error: " + err.Error()
		}
		return renderCart(cart)
	case "show_cart":
		return renderCart(cart)
	case "calculate_total":
		return crud.CalculateCartTotal(cart).String()
	default:
		return "error: unknown tool " + call.Function.Name
	}
}

func (a *Agent) refresh(cart *models.Cart) error {
	fresh, err := crud.GetOrCreateCart(a.db, cart.ID)
	if err != nil {
		return err
	}
	*cart = *fresh
	return nil
}

func toolDefinitions() []openai.Tool {
	quantity := jsonschema.Definition{Type: jsonschema.Integer, Description: "Số lượng, tối thiểu 1"}
	return []openai.Tool{
		function("find_products", "Tìm sản phẩm theo tên", map[string]jsonschema.Definition{
			"query": {Type: jsonschema.String, Description: "Chuỗi tìm kiếm trong tên sản phẩm"},
		}, "query"),
		function("add_to_cart", "Thêm sản phẩm vào giỏ hàng", map[string]jsonschema.Definition{
			"product_id": {Type: jsonschema.Integer, Description: "ID sản phẩm"},
			"quantity":   quantity,
		}, "product_id", "quantity"),
		function("update_cart_item", "Cập nhật số lượng một dòng trong giỏ hàng", map[string]jsonschema.Definition{
			"item_id":  {Type: jsonschema.Integer, Description: "ID dòng giỏ hàng"},
			"quantity": quantity,
		}, "item_id", "quantity"),
		function("remove_cart_item", "Xóa một dòng khỏi giỏ hàng", map[string]jsonschema.Definition{
			"item_id": {Type: jsonschema.Integer, Description: "ID dòng giỏ hàng"},
		}, "item_id"),
		function("show_cart", "Xem giỏ hàng hiện tại", map[string]jsonschema.Definition{}),
		function("calculate_total", "Tính tổng tiền giỏ hàng", map[string]jsonschema.Definition{}),
	}
}

func function(name, description string, properties map[string]jsonschema.Definition, required ...string) openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        name,
			Description: description,
			Parameters: jsonschema.Definition{
				Type:       jsonschema.Object,
				Properties: properties,
				Required:   required,
			},
		},
	}
}
