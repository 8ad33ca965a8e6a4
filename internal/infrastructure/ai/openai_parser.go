package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	openaishared "github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"
	"github.com/shopspring/decimal"

	appdraft "github.com/bizflow/backend/internal/application/draft"
	"github.com/bizflow/backend/internal/domain/draft"
)

const defaultModel = string(openaishared.ChatModelGPT4o)

// parsedOrderPayload is the wire shape the model is constrained to.
// Amounts come back as plain numbers and are converted to decimals once.
type parsedOrderPayload struct {
	CustomerName  string  `json:"customer_name" jsonschema_description:"Tên khách hàng, chuỗi rỗng nếu không nhắc đến"`
	CustomerPhone string  `json:"customer_phone" jsonschema_description:"Số điện thoại khách nếu có"`
	Items         []struct {
		ProductName string  `json:"product_name" jsonschema_description:"Tên sản phẩm như khách nói"`
		Quantity    float64 `json:"quantity" jsonschema_description:"Số lượng, 0 nếu không rõ"`
		UnitPrice   float64 `json:"unit_price" jsonschema_description:"Đơn giá nếu được nhắc đến, 0 nếu không"`
	} `json:"items"`
	PaymentMethod  string  `json:"payment_method" jsonschema_description:"CASH, TRANSFER, CARD hoặc CREDIT"`
	IsDebt         bool    `json:"is_debt" jsonschema_description:"true nếu khách mua nợ / ghi sổ"`
	PaidAmount     float64 `json:"paid_amount" jsonschema_description:"Số tiền khách đã đưa / trả trước / đặt cọc, 0 nếu không nhắc đến"`
	DiscountAmount float64 `json:"discount_amount" jsonschema_description:"Giảm giá cho cả đơn nếu có"`
	Notes          string  `json:"notes" jsonschema_description:"Ghi chú giao hàng hoặc yêu cầu khác"`
	Confidence     float64 `json:"confidence" jsonschema_description:"Độ tin cậy 0.0-1.0 của kết quả trích xuất"`
}

const parsePrompt = `Bạn là trợ lý bán hàng cho cửa hàng vật liệu xây dựng / tạp hóa Việt Nam.
Nhiệm vụ: trích xuất đơn hàng từ tin nhắn tự do của chủ cửa hàng.

Quy tắc:
1. Giữ nguyên tên sản phẩm như trong tin nhắn, không dịch, không đoán thêm.
2. Số lượng không rõ thì để 0, KHÔNG bịa.
3. "nợ", "ghi nợ", "ghi sổ", "thiếu lại" nghĩa là is_debt = true.
4. "đưa", "trả trước", "đặt cọc", "thanh toán" kèm số tiền là paid_amount; không nhắc thì để 0.
5. Không nhắc đến khách hàng thì customer_name là chuỗi rỗng.
6. confidence phản ánh mức độ chắc chắn của toàn bộ kết quả (0.0-1.0).

Tin nhắn: %s`

// OpenAIParser extracts order drafts with a JSON-schema constrained
// responses call.
type OpenAIParser struct {
	client *openai.Client
	model  string
}

// NewOpenAIParser creates a parser backed by the OpenAI API.
// An empty model falls back to gpt-4o.
func NewOpenAIParser(apiKey, model string) *OpenAIParser {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	if model == "" {
		model = defaultModel
	}
	return &OpenAIParser{client: &client, model: model}
}

// ParseOrderText implements draft.Parser
func (p *OpenAIParser) ParseOrderText(ctx context.Context, text string) (*appdraft.ParseResult, error) {
	schemaMap, err := payloadSchema()
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: openaishared.ResponsesModel(p.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(fmt.Sprintf(parsePrompt, text)),
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Type:        constant.JSONSchema("json_schema"),
					Name:        "draft_order_extraction",
					Strict:      param.NewOpt(true),
					Schema:      schemaMap,
					Description: param.NewOpt("Structured order extracted from a Vietnamese shop message"),
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai responses error: %w", err)
	}

	content := resp.OutputText()
	if content == "" {
		return nil, fmt.Errorf("empty response content")
	}

	var payload parsedOrderPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse completion: %w", err)
	}

	return payload.toResult(), nil
}

func (p *parsedOrderPayload) toResult() *appdraft.ParseResult {
	parsed := draft.ParsedOrder{
		CustomerName:   p.CustomerName,
		CustomerPhone:  p.CustomerPhone,
		PaymentMethod:  p.PaymentMethod,
		IsDebt:         p.IsDebt,
		PaidAmount:     decimal.NewFromFloat(p.PaidAmount),
		DiscountAmount: decimal.NewFromFloat(p.DiscountAmount),
		Notes:          p.Notes,
	}
	for _, it := range p.Items {
		parsed.Items = append(parsed.Items, draft.ParsedItem{
			ProductName: it.ProductName,
			Quantity:    decimal.NewFromFloat(it.Quantity),
			UnitPrice:   decimal.NewFromFloat(it.UnitPrice),
		})
	}

	confidence := p.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return &appdraft.ParseResult{Parsed: parsed, Confidence: confidence}
}

func payloadSchema() (map[string]any, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schemaJSON, err := json.Marshal(reflector.Reflect(parsedOrderPayload{}))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(schemaJSON, &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema to map: %w", err)
	}
	return schemaMap, nil
}

var _ appdraft.Parser = (*OpenAIParser)(nil)
