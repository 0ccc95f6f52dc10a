package infra

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/model"
)

const consejoInstrucciones = "Eres un experto en logística de distribución de carnes en Colombia."

// ConsejoClient asks the OpenAI API for short profitability advice based on
// the current inventory and the most recent sale totals. Callers treat any
// error as soft: the advice service substitutes a fallback string.
type ConsejoClient struct {
	client *openai.Client
	model  string
}

func NewConsejoClient(apiKey, model string) *ConsejoClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &ConsejoClient{client: &client, model: model}
}

func (c *ConsejoClient) ConsejoInventario(ctx context.Context, productos []model.Producto, ventas []model.Venta) (string, error) {
	type inv struct {
		N string `json:"n"`
		S string `json:"s"`
	}
	type vta struct {
		T string `json:"t"`
	}

	inventario := make([]inv, 0, len(productos))
	for _, p := range productos {
		inventario = append(inventario, inv{N: p.Nombre, S: p.Stock.String()})
	}
	recientes := make([]vta, 0, len(ventas))
	for _, v := range ventas {
		recientes = append(recientes, vta{T: v.Total.String()})
	}

	invJSON, err := json.Marshal(inventario)
	if err != nil {
		return "", fmt.Errorf("consejo: marshal inventario: %w", err)
	}
	vtaJSON, err := json.Marshal(recientes)
	if err != nil {
		return "", fmt.Errorf("consejo: marshal ventas: %w", err)
	}

	prompt := fmt.Sprintf(`Analiza el siguiente inventario y ventas de "Super Carnes" y da 3 consejos cortos en español para mejorar la rentabilidad.
Inventario: %s
Ventas recientes: %s`, invJSON, vtaJSON)

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(c.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
		Instructions: param.NewOpt(consejoInstrucciones),
		Temperature:  param.NewOpt(0.7),
	}

	resp, err := c.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("consejo: openai responses error: %w", err)
	}
	return resp.OutputText(), nil
}
